package tests

import (
	"strings"
	"testing"

	"boum-cafe/broadcast-svc/internal/domain"
	"boum-cafe/broadcast-svc/internal/playback"
	"boum-cafe/broadcast-svc/internal/service"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumberForSpeech(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"123", "1 2 3"},
		{"7", "7"},
		{"", ""},
		{"12가3456", "1 2 가 3 4 5 6"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.want, service.FormatNumberForSpeech(testCase.in), testCase.in)
	}
}

func TestGenerateBroadcastText(t *testing.T) {
	assert.Equal(t, "보움에서 알려드립니다. 안녕하세요 감사합니다.", service.GenerateBroadcastText("안녕하세요"))
}

func TestBuildScript_Golden(t *testing.T) {
	announcements := []domain.Announcement{
		{Kind: domain.KindVibration, Number: "123"},
		{Kind: domain.KindVehicle, Number: " 12가3456 "},
		{Kind: domain.KindCustom, Text: "  잠시 후 매장 정리가 시작됩니다.  "},
		{Kind: domain.KindSmoking},
		{Kind: domain.KindClosing, Closing: domain.ClosingFloor},
		{Kind: domain.KindClosing, Closing: domain.ClosingStore},
	}

	var b strings.Builder
	for _, a := range announcements {
		script, err := service.BuildScript(a)
		require.NoError(t, err)
		b.WriteString(string(a.Kind) + " | " + script.Text + " | " + script.Asset + "\n")
	}

	g := goldie.New(t)
	g.Assert(t, "scripts", []byte(b.String()))
}

func TestBuildScript_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		in   domain.Announcement
	}{
		{"vibration without number", domain.Announcement{Kind: domain.KindVibration, Number: "  "}},
		{"vehicle without number", domain.Announcement{Kind: domain.KindVehicle}},
		{"custom without text", domain.Announcement{Kind: domain.KindCustom, Text: "\t"}},
		{"closing without type", domain.Announcement{Kind: domain.KindClosing}},
		{"closing with bad type", domain.Announcement{Kind: domain.KindClosing, Closing: "roof"}},
		{"unknown kind", domain.Announcement{Kind: "fire"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.BuildScript(testCase.in)
			assert.ErrorIs(t, err, service.ErrInvalidAnnouncement)
		})
	}
}

func TestBuildScript_NormalizesToNFC(t *testing.T) {
	// U+AC00 spelled as two conjoining jamo.
	decomposed := "\u1100\u1161"
	script, err := service.BuildScript(domain.Announcement{Kind: domain.KindCustom, Text: decomposed})
	require.NoError(t, err)
	assert.Equal(t, service.GenerateBroadcastText("\uac00"), script.Text)
}

func TestPlaybackMessage(t *testing.T) {
	assert.Equal(t, "브라우저 정책으로 인해 자동 재생이 차단되었습니다.", service.PlaybackMessage(playback.ErrAutoplayBlocked))
	assert.Equal(t, "지원하지 않는 오디오 형식입니다.", service.PlaybackMessage(playback.ErrUnsupportedFormat))
	assert.Equal(t, "재생에 실패했습니다", service.PlaybackMessage(playback.ErrPlaybackFailed))
	assert.Equal(t, "재생에 실패했습니다", service.PlaybackMessage(assert.AnError))
}
