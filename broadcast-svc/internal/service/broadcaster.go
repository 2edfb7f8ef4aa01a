package service

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"boum-cafe/broadcast-svc/internal/domain"
	"boum-cafe/broadcast-svc/internal/playback"
)

const (
	StatusReady        = "시스템 준비 중..."
	StatusSynthesizing = "음성 생성 중..."
	StatusPlaying      = "음성 재생 중..."
	StatusDone         = "방송 완료"
	statusErrorPrefix  = "오류: "
)

type Broadcaster struct {
	synth    Synthesizer
	player   Player
	music    MusicController
	lease    *Lease
	assetDir string

	mu     sync.RWMutex
	status domain.Status
}

func NewBroadcaster(synth Synthesizer, player Player, music MusicController, lease *Lease, assetDir string) *Broadcaster {
	return &Broadcaster{
		synth:    synth,
		player:   player,
		music:    music,
		lease:    lease,
		assetDir: assetDir,
		status:   domain.Status{Message: StatusReady, UpdatedAt: time.Now()},
	}
}

func (b *Broadcaster) Status() domain.Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

func (b *Broadcaster) setStatus(playing bool, message string, current *domain.Announcement) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = domain.Status{Playing: playing, Message: message, Current: current, UpdatedAt: time.Now()}
}

// Start begins a manual broadcast in the background. It refuses with
// ErrBroadcastBusy while another broadcast holds the speakers.
func (b *Broadcaster) Start(a domain.Announcement) error {
	script, err := BuildScript(a)
	if err != nil {
		return err
	}
	if !b.lease.TryAcquire() {
		return ErrBroadcastBusy
	}
	go func() {
		defer b.lease.Release()
		if err := b.play(context.Background(), a, script); err != nil {
			log.Printf("[broadcast-svc] manual %s broadcast failed: %v", a.Kind, err)
		}
	}()
	return nil
}

// Run plays a scheduled broadcast, queueing behind one already in progress.
func (b *Broadcaster) Run(ctx context.Context, a domain.Announcement) error {
	script, err := BuildScript(a)
	if err != nil {
		return err
	}
	if err := b.lease.Acquire(ctx); err != nil {
		return err
	}
	defer b.lease.Release()
	return b.play(ctx, a, script)
}

func (b *Broadcaster) play(ctx context.Context, a domain.Announcement, script Script) error {
	current := a
	defer b.pauseMusic()()

	var clip playback.Clip
	if script.Asset != "" {
		clip = playback.FileClip(filepath.Join(b.assetDir, script.Asset))
	} else {
		b.setStatus(true, StatusSynthesizing, &current)
		wav, err := b.synth.Synthesize(ctx, script.Text)
		if err != nil {
			b.setStatus(false, statusErrorPrefix+err.Error(), nil)
			return err
		}
		clip = playback.WAVClip(wav)
	}

	b.setStatus(true, StatusPlaying, &current)
	if err := b.player.Play(ctx, clip); err != nil {
		b.setStatus(false, statusErrorPrefix+PlaybackMessage(err), nil)
		return err
	}
	b.setStatus(false, StatusDone, nil)
	return nil
}

// pauseMusic pauses background music if it is playing and returns the
// function that resumes it.
func (b *Broadcaster) pauseMusic() func() {
	if b.music == nil || !b.music.IsPlaying() {
		return func() {}
	}
	if err := b.music.Pause(); err != nil {
		log.Printf("[broadcast-svc] failed to pause background music: %v", err)
		return func() {}
	}
	return func() {
		if err := b.music.Resume(); err != nil {
			log.Printf("[broadcast-svc] failed to resume background music: %v", err)
		}
	}
}
