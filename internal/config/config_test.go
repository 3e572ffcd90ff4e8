package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/whisper_recording", cfg.MarkerFile)
	assert.Equal(t, "/tmp/whisper_control", cfg.ControlFile)
	assert.Equal(t, 44100, cfg.SampleRate)
	assert.Equal(t, 2, cfg.Channels)
	assert.Equal(t, 8095, cfg.Port)
	assert.NotEmpty(t, cfg.FfmpegPath)
	assert.NotEmpty(t, cfg.FfmpegFormat)
	assert.NotEmpty(t, cfg.Device)

	if runtime.GOOS == "linux" && !isWSL() {
		assert.Equal(t, "alsa", cfg.FfmpegFormat)
		assert.Equal(t, "default", cfg.Device)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := chdirTemp(t)

	toml := `
markerFile = "/run/rec_marker"
controlFile = "/run/rec_control"
scratchDir = "` + filepath.ToSlash(filepath.Join(dir, "work")) + `"
sampleRate = 16000
channels = 1
port = 9000
broker = "broker.local"
`
	require.NoError(t, os.WriteFile("config.toml", []byte(toml), 0666))

	cfg := LoadConfig()

	assert.Equal(t, "/run/rec_marker", cfg.MarkerFile)
	assert.Equal(t, "/run/rec_control", cfg.ControlFile)
	assert.Equal(t, 16000, cfg.SampleRate)
	assert.Equal(t, 1, cfg.Channels)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "broker.local", cfg.Broker)
}

func TestEnvOverrides(t *testing.T) {
	chdirTemp(t)

	t.Setenv("FFMPEG_PATH", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("FFMPEG_FORMAT", "pulse")
	t.Setenv("CAPTURE_DEVICE", "hw:1,0")
	t.Setenv("SCRATCH_DIR", "/var/tmp/capture")
	t.Setenv("STATUS_PORT", "8200")

	cfg := LoadConfig()

	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FfmpegPath)
	assert.Equal(t, "pulse", cfg.FfmpegFormat)
	assert.Equal(t, "hw:1,0", cfg.Device)
	assert.Equal(t, "/var/tmp/capture", cfg.ScratchDir)
	assert.Equal(t, 8200, cfg.Port)
}

func TestScratchDerivedPaths(t *testing.T) {
	cfg := Config{ScratchDir: filepath.Join("/home/x", "dev", "s2t", "tmp")}

	assert.Equal(t, filepath.Join(cfg.ScratchDir, "recording.wav"), cfg.AudioFile())
	assert.Equal(t, filepath.Join(cfg.ScratchDir, "recording_pid"), cfg.PidFile())
}
