package service

import (
	"fmt"
	"strings"

	"boum-cafe/broadcast-svc/internal/domain"
	"boum-cafe/speech"

	"golang.org/x/text/unicode/norm"
)

const (
	AssetSmoking      = "smoking.mp3"
	AssetClosingFloor = "closing-floor.mp3"
	AssetClosingStore = "closing-store.mp3"
)

// Script is what an announcement plays: text to synthesize or a
// prerecorded asset, never both.
type Script struct {
	Text  string
	Asset string
}

// FormatNumberForSpeech spaces out the characters of num so the voice reads
// each digit on its own.
func FormatNumberForSpeech(num string) string {
	return strings.Join(strings.Split(num, ""), " ")
}

func GenerateBroadcastText(content string) string {
	return speech.BroadcastText(content)
}

func VibrationText(number string) string {
	n := FormatNumberForSpeech(number)
	return fmt.Sprintf("진동벨 %s번, 진동벨 %s번 고객님 주문하신 음료 나왔습니다.", n, n)
}

func VehicleText(number string) string {
	n := FormatNumberForSpeech(number)
	return fmt.Sprintf("차량번호 %s번, 차량번호 %s번 차주님 이동 주차 부탁드립니다.", n, n)
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func BuildScript(a domain.Announcement) (Script, error) {
	switch a.Kind {
	case domain.KindVibration:
		n := normalize(a.Number)
		if n == "" {
			return Script{}, fmt.Errorf("%w: vibration bell number is required", ErrInvalidAnnouncement)
		}
		return Script{Text: GenerateBroadcastText(VibrationText(n))}, nil
	case domain.KindVehicle:
		n := normalize(a.Number)
		if n == "" {
			return Script{}, fmt.Errorf("%w: vehicle number is required", ErrInvalidAnnouncement)
		}
		return Script{Text: GenerateBroadcastText(VehicleText(n))}, nil
	case domain.KindCustom:
		text := normalize(a.Text)
		if text == "" {
			return Script{}, fmt.Errorf("%w: text is required", ErrInvalidAnnouncement)
		}
		return Script{Text: GenerateBroadcastText(text)}, nil
	case domain.KindSmoking:
		return Script{Asset: AssetSmoking}, nil
	case domain.KindClosing:
		switch a.Closing {
		case domain.ClosingFloor:
			return Script{Asset: AssetClosingFloor}, nil
		case domain.ClosingStore:
			return Script{Asset: AssetClosingStore}, nil
		}
		return Script{}, fmt.Errorf("%w: closing type must be floor or store", ErrInvalidAnnouncement)
	default:
		return Script{}, fmt.Errorf("%w: unknown broadcast type %q", ErrInvalidAnnouncement, a.Kind)
	}
}
