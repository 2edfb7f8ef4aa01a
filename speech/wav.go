package speech

import (
	"bytes"
	"encoding/binary"
)

const (
	SampleRate    = 24000
	Channels      = 1
	BitsPerSample = 16
	wavHeaderSize = 44
)

// EncodeWAV prefixes 16-bit little-endian PCM with a canonical 44-byte
// RIFF/WAVE header.
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	bytesPerSample := BitsPerSample / 8
	blockAlign := channels * bytesPerSample

	buf := bytes.NewBuffer(make([]byte, 0, wavHeaderSize+len(pcm)))
	le := func(v any) { binary.Write(buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	le(uint32(36 + len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	le(uint32(16))
	le(uint16(1)) // PCM
	le(uint16(channels))
	le(uint32(sampleRate))
	le(uint32(sampleRate * blockAlign))
	le(uint16(blockAlign))
	le(uint16(BitsPerSample))

	buf.WriteString("data")
	le(uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
