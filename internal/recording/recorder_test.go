package recording

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whisperctl/whisperctl/internal/config"
)

func testConfig(t *testing.T) config.Config {
	return config.Config{
		ScratchDir:   filepath.Join(t.TempDir(), "scratch"),
		SampleRate:   44100,
		Channels:     2,
		Device:       "default",
		FfmpegPath:   "ffmpeg",
		FfmpegFormat: "alsa",
	}
}

func TestResetClearsScratchDir(t *testing.T) {
	cfg := testConfig(t)
	r := NewRecorder(cfg)

	require.NoError(t, os.MkdirAll(cfg.ScratchDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ScratchDir, "recording.wav"), []byte("stale"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ScratchDir, "recording_pid"), []byte("123"), 0666))

	require.NoError(t, r.Reset())

	entries, err := os.ReadDir(cfg.ScratchDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBuildCaptureArgs(t *testing.T) {
	cfg := testConfig(t)
	r := NewRecorder(cfg)

	assert.Equal(t, []string{
		"-y",
		"-f", "alsa",
		"-i", "default",
		"-ar", "44100",
		"-ac", "2",
		cfg.AudioFile(),
	}, r.buildCaptureArgs())
}

func TestPidFileRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	r := NewRecorder(cfg)
	require.NoError(t, r.Reset())

	require.NoError(t, r.writePidFile(4242))

	data, err := os.ReadFile(cfg.PidFile())
	require.NoError(t, err)
	assert.Equal(t, "4242\n", string(data))

	pid, err := r.ReadPid()
	require.NoError(t, err)
	assert.Equal(t, 4242, pid)
}

func TestReadPidRejectsGarbage(t *testing.T) {
	cfg := testConfig(t)
	r := NewRecorder(cfg)
	require.NoError(t, r.Reset())

	require.NoError(t, os.WriteFile(cfg.PidFile(), []byte("not-a-pid\n"), 0666))
	_, err := r.ReadPid()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(cfg.PidFile(), []byte("-7\n"), 0666))
	_, err = r.ReadPid()
	assert.Error(t, err)
}

func TestStartWritesMatchingPidFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a unix stand-in for ffmpeg")
	}

	// Stand-in binary: exits immediately on the unknown flags, but the spawn
	// itself succeeds, which is all the pid-file contract needs.
	cfg := testConfig(t)
	cfg.FfmpegPath = "sleep"
	r := NewRecorder(cfg)
	require.NoError(t, r.Reset())

	handle, err := r.Start()
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.PidFile())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(handle.Pid())+"\n", string(data))

	assert.NoError(t, handle.Stop())
}
