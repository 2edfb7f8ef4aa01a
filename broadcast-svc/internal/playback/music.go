package playback

import (
	"context"
	"errors"
	"log"
	"os/exec"
	"strings"
	"sync"
	"syscall"
)

const DefaultMusicCommand = "ffplay -nodisp -loglevel error -loop 0"

var ErrNoTrack = errors.New("no background track loaded")

// ExecMusic loops one background track in a player process. Pausing stops
// the process with SIGSTOP so that Resume continues where it left off.
type ExecMusic struct {
	Command []string

	mu     sync.Mutex
	cmd    *exec.Cmd
	paused bool
}

func NewExecMusic(command string) *ExecMusic {
	if strings.TrimSpace(command) == "" {
		command = DefaultMusicCommand
	}
	return &ExecMusic{Command: strings.Fields(command)}
}

// Load replaces the current track with url and starts it.
func (m *ExecMusic) Load(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()

	args := append(append([]string{}, m.Command[1:]...), url)
	cmd := exec.Command(m.Command[0], args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	m.cmd = cmd
	m.paused = false

	go func() {
		err := cmd.Wait()
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.cmd == cmd {
			m.cmd = nil
			m.paused = false
			if err != nil {
				log.Printf("[broadcast-svc] background music exited: %v", err)
			}
		}
	}()
	return nil
}

func (m *ExecMusic) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cmd != nil && !m.paused
}

func (m *ExecMusic) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cmd == nil {
		return ErrNoTrack
	}
	if m.paused {
		return nil
	}
	if err := m.cmd.Process.Signal(syscall.SIGSTOP); err != nil {
		return err
	}
	m.paused = true
	return nil
}

func (m *ExecMusic) Resume() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cmd == nil {
		return ErrNoTrack
	}
	if !m.paused {
		return nil
	}
	if err := m.cmd.Process.Signal(syscall.SIGCONT); err != nil {
		return err
	}
	m.paused = false
	return nil
}

func (m *ExecMusic) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

func (m *ExecMusic) stopLocked() {
	if m.cmd == nil {
		return
	}
	if m.paused {
		m.cmd.Process.Signal(syscall.SIGCONT)
	}
	m.cmd.Process.Kill()
	m.cmd = nil
	m.paused = false
}
