package service

import (
	"errors"

	"boum-cafe/broadcast-svc/internal/playback"
)

var (
	ErrInvalidAnnouncement = errors.New("invalid announcement")
	ErrInvalidSchedule     = errors.New("invalid schedule")
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrBroadcastBusy       = errors.New("another broadcast is playing")
	ErrPlaylistNotFound    = errors.New("playlist not found")
	ErrNoPlaylist          = errors.New("no playlist selected")
)

const (
	msgAutoplayBlocked   = "브라우저 정책으로 인해 자동 재생이 차단되었습니다."
	msgUnsupportedFormat = "지원하지 않는 오디오 형식입니다."
	msgPlaybackFailed    = "재생에 실패했습니다"
)

// PlaybackMessage is the operator-facing text for a failed playback.
func PlaybackMessage(err error) string {
	switch {
	case errors.Is(err, playback.ErrAutoplayBlocked):
		return msgAutoplayBlocked
	case errors.Is(err, playback.ErrUnsupportedFormat):
		return msgUnsupportedFormat
	default:
		return msgPlaybackFailed
	}
}
