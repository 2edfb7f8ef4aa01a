package service

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate() ([]byte, error)
}

// BoardQRGenerator renders a table-top code that opens the public menu board.
type BoardQRGenerator struct {
	BoardURL string
}

func (g BoardQRGenerator) Generate() ([]byte, error) {
	return qrcode.Encode(g.BoardURL, qrcode.Medium, 256)
}
