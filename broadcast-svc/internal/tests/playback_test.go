package tests

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"boum-cafe/broadcast-svc/internal/playback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shellPlayer runs script with the clip path as $1.
func shellPlayer(t *testing.T, script string) *playback.ExecPlayer {
	return &playback.ExecPlayer{Command: []string{"sh", "-c", script, "player"}, TempDir: t.TempDir()}
}

func TestNewExecPlayer_DefaultCommand(t *testing.T) {
	assert.Equal(t, strings.Fields(playback.DefaultCommand), playback.NewExecPlayer("  ").Command)
	assert.Equal(t, []string{"aplay", "-q"}, playback.NewExecPlayer("aplay -q").Command)
}

func TestExecPlayer_Play(t *testing.T) {
	asset := filepath.Join(t.TempDir(), "smoking.mp3")
	require.NoError(t, os.WriteFile(asset, []byte("ID3"), 0644))

	testCases := []struct {
		name    string
		script  string
		clip    playback.Clip
		wantErr error
	}{
		{"in-memory wav", `test -s "$1"`, playback.WAVClip([]byte("RIFF....WAVE")), nil},
		{"asset file", `test "$1" = "` + asset + `"`, playback.FileClip(asset), nil},
		{"unsupported format", `echo "$1: Invalid data found when processing input" >&2; exit 1`, playback.WAVClip([]byte("junk")), playback.ErrUnsupportedFormat},
		{"no audio device", `echo "SDL_OpenAudio: Couldn't open audio device" >&2; exit 1`, playback.FileClip(asset), playback.ErrAutoplayBlocked},
		{"other failure", `exit 3`, playback.FileClip(asset), playback.ErrPlaybackFailed},
		{"missing asset", `exit 0`, playback.FileClip(filepath.Join(t.TempDir(), "nope.mp3")), playback.ErrPlaybackFailed},
		{"empty clip", `exit 0`, playback.Clip{}, playback.ErrPlaybackFailed},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			player := shellPlayer(t, testCase.script)
			err := player.Play(context.Background(), testCase.clip)
			if testCase.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, testCase.wantErr)
			}

			leftovers, err := os.ReadDir(player.TempDir)
			require.NoError(t, err)
			assert.Empty(t, leftovers, "temporary clips are removed")
		})
	}
}

func TestExecPlayer_PlayHonoursContext(t *testing.T) {
	player := shellPlayer(t, `exec sleep 5`)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := player.Play(ctx, playback.WAVClip([]byte("RIFF")))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExecMusic_PauseResume(t *testing.T) {
	music := &playback.ExecMusic{Command: []string{"sleep"}}
	assert.False(t, music.IsPlaying())
	assert.ErrorIs(t, music.Pause(), playback.ErrNoTrack)
	assert.ErrorIs(t, music.Resume(), playback.ErrNoTrack)

	require.NoError(t, music.Load(context.Background(), "30"))
	defer music.Stop()
	assert.True(t, music.IsPlaying())

	require.NoError(t, music.Pause())
	assert.False(t, music.IsPlaying())
	require.NoError(t, music.Pause())

	require.NoError(t, music.Resume())
	assert.True(t, music.IsPlaying())

	require.NoError(t, music.Load(context.Background(), "30"))
	assert.True(t, music.IsPlaying())

	music.Stop()
	assert.False(t, music.IsPlaying())
}

func TestExecMusic_TrackEnds(t *testing.T) {
	music := playback.NewExecMusic("true")
	require.NoError(t, music.Load(context.Background(), "track.mp3"))
	assert.Eventually(t, func() bool { return !music.IsPlaying() }, 2*time.Second, 10*time.Millisecond)
}
