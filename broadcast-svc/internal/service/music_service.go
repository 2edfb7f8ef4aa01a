package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"boum-cafe/broadcast-svc/internal/domain"

	"github.com/google/uuid"
)

type MusicService struct {
	playlists PlaylistRepository
	music     MusicController

	mu      sync.Mutex
	current *domain.Playlist
}

func NewMusicService(playlists PlaylistRepository, music MusicController) *MusicService {
	return &MusicService{playlists: playlists, music: music}
}

func (s *MusicService) Playlists(ctx context.Context) ([]domain.Playlist, error) {
	return s.playlists.ListActivePlaylists()
}

// Select loads the playlist's track on loop and starts it.
func (s *MusicService) Select(ctx context.Context, id string) (domain.MusicState, error) {
	if _, err := uuid.Parse(id); err != nil {
		return s.State(), ErrPlaylistNotFound
	}
	p, err := s.playlists.GetPlaylist(id)
	if errors.Is(err, sql.ErrNoRows) {
		return s.State(), ErrPlaylistNotFound
	}
	if err != nil {
		return s.State(), err
	}
	if !p.IsActive {
		return s.State(), ErrPlaylistNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.music.Load(ctx, p.AudioURL); err != nil {
		return s.stateLocked(), err
	}
	s.current = p
	return s.stateLocked(), nil
}

func (s *MusicService) Toggle(ctx context.Context) (domain.MusicState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return s.stateLocked(), ErrNoPlaylist
	}

	var err error
	if s.music.IsPlaying() {
		err = s.music.Pause()
	} else {
		err = s.music.Resume()
	}
	return s.stateLocked(), err
}

func (s *MusicService) State() domain.MusicState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *MusicService) stateLocked() domain.MusicState {
	return domain.MusicState{Playlist: s.current, Playing: s.current != nil && s.music.IsPlaying()}
}
