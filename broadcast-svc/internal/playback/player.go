// Package playback drives the store speakers through an external audio
// player process.
package playback

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const DefaultCommand = "ffplay -nodisp -autoexit -loglevel error"

// waitDelay bounds how long a killed player may hold its output pipes open.
const waitDelay = 2 * time.Second

var (
	// ErrAutoplayBlocked means the audio output refused to start playback.
	ErrAutoplayBlocked   = errors.New("audio output blocked playback")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrPlaybackFailed    = errors.New("playback failed")
)

// Clip is either a file on disk or an in-memory WAV.
type Clip struct {
	Path string
	Data []byte
}

func FileClip(path string) Clip { return Clip{Path: path} }

func WAVClip(data []byte) Clip { return Clip{Data: data} }

type ExecPlayer struct {
	Command []string
	TempDir string
}

func NewExecPlayer(command string) *ExecPlayer {
	if strings.TrimSpace(command) == "" {
		command = DefaultCommand
	}
	return &ExecPlayer{Command: strings.Fields(command)}
}

// Play blocks until the clip has finished or ctx is cancelled.
func (p *ExecPlayer) Play(ctx context.Context, clip Clip) error {
	path := clip.Path
	if len(clip.Data) > 0 {
		f, err := os.CreateTemp(p.TempDir, "broadcast-*.wav")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
		}
		defer os.Remove(f.Name())
		if _, err := f.Write(clip.Data); err != nil {
			f.Close()
			return fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
		}
		path = f.Name()
	}
	if path == "" {
		return fmt.Errorf("%w: empty clip", ErrPlaybackFailed)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %v", ErrPlaybackFailed, err)
	}

	args := append(append([]string{}, p.Command[1:]...), path)
	cmd := exec.CommandContext(ctx, p.Command[0], args...)
	cmd.WaitDelay = waitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return classify(err, stderr.String())
	}
	return nil
}

func classify(err error, stderr string) error {
	msg := strings.ToLower(stderr)
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		detail = err.Error()
	}
	switch {
	case strings.Contains(msg, "invalid data found"),
		strings.Contains(msg, "could not find codec"),
		strings.Contains(msg, "unknown format"):
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, detail)
	case strings.Contains(msg, "audio device"),
		strings.Contains(msg, "sdl_openaudio"),
		strings.Contains(msg, "no available audio"):
		return fmt.Errorf("%w: %s", ErrAutoplayBlocked, detail)
	default:
		return fmt.Errorf("%w: %s", ErrPlaybackFailed, detail)
	}
}
