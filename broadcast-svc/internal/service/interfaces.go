package service

import (
	"context"

	"boum-cafe/broadcast-svc/internal/domain"
	"boum-cafe/broadcast-svc/internal/playback"
)

type ScheduleRepository interface {
	ListActiveSchedules() ([]domain.Schedule, error)
	CreateSchedule(schedule *domain.Schedule) error
	DeleteSchedule(id string) (int64, error)
}

type PlaylistRepository interface {
	ListActivePlaylists() ([]domain.Playlist, error)
	GetPlaylist(id string) (*domain.Playlist, error)
}

type ChangePublisher interface {
	PublishChange(ctx context.Context, event domain.ChangeEvent) error
}

// Synthesizer returns text as playable WAV bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Player interface {
	Play(ctx context.Context, clip playback.Clip) error
}

type MusicController interface {
	IsPlaying() bool
	Pause() error
	Resume() error
	Load(ctx context.Context, url string) error
}

type BroadcasterInterface interface {
	Start(a domain.Announcement) error
	Run(ctx context.Context, a domain.Announcement) error
	Status() domain.Status
}

type ScheduleServiceInterface interface {
	List(ctx context.Context) ([]domain.Schedule, error)
	Create(ctx context.Context, schedule *domain.Schedule) error
	Delete(ctx context.Context, id string) error
	Reload(ctx context.Context) error
}

type MusicServiceInterface interface {
	Playlists(ctx context.Context) ([]domain.Playlist, error)
	Select(ctx context.Context, id string) (domain.MusicState, error)
	Toggle(ctx context.Context) (domain.MusicState, error)
	State() domain.MusicState
}

var (
	_ BroadcasterInterface     = (*Broadcaster)(nil)
	_ ScheduleServiceInterface = (*ScheduleService)(nil)
	_ MusicServiceInterface    = (*MusicService)(nil)
)
