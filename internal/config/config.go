package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/whisperctl/whisperctl/internal/logging"
)

type Config struct {
	MarkerFile  string `toml:"markerFile"`  // existence means "recording is active"
	ControlFile string `toml:"controlFile"` // last commanded action: start or stop
	ScratchDir  string `toml:"scratchDir"`  // wiped and recreated before each session

	SampleRate int    `toml:"sampleRate"` // capture sample rate in Hz
	Channels   int    `toml:"channels"`
	Device     string `toml:"device"` // ffmpeg input device

	FfmpegPath   string `toml:"ffmpegPath"`
	FfmpegFormat string `toml:"ffmpegFormat"`

	Port   int    `toml:"port"`   // status server port, 0 disables it
	Broker string `toml:"broker"` // MQTT broker host, empty disables announcements
}

// AudioFile returns the capture output path inside the scratch directory
func (c Config) AudioFile() string {
	return filepath.Join(c.ScratchDir, "recording.wav")
}

// PidFile returns the path holding the capture process id
func (c Config) PidFile() string {
	return filepath.Join(c.ScratchDir, "recording_pid")
}

func isWSL() bool {
	if data, err := os.ReadFile("/proc/version"); err == nil {
		return strings.Contains(strings.ToLower(string(data)), "wsl")
	}
	return false
}

func LoadConfig() Config {
	var config Config
	config.MarkerFile = "/tmp/whisper_recording"
	config.ControlFile = "/tmp/whisper_control"
	config.ScratchDir = defaultScratchDir()
	config.SampleRate = 44100 // default capture rate
	config.Channels = 2
	config.Port = 8095 // default status server port

	if _, err := os.Stat("config.toml"); err == nil {
		if _, err := toml.DecodeFile("config.toml", &config); err != nil {
			logging.ErrorLogger.Printf("Error reading config.toml: %v", err)
		}
	} else {
		logging.Trace("config.toml file not found, using default configuration")
	}

	if config.FfmpegPath == "" || config.Device == "" || config.FfmpegFormat == "" {
		switch {
		case runtime.GOOS == "windows":
			if config.FfmpegPath == "" {
				config.FfmpegPath = "C:\\ProgramData\\chocolatey\\bin\\ffmpeg.exe"
			}
			if config.Device == "" {
				config.Device = "audio=Microphone"
			}
			if config.FfmpegFormat == "" {
				config.FfmpegFormat = "dshow"
			}
		case isWSL():
			if config.FfmpegPath == "" {
				config.FfmpegPath = "/mnt/c/ProgramData/chocolatey/bin/ffmpeg.exe"
			}
			if config.Device == "" {
				config.Device = "audio=Microphone"
			}
			if config.FfmpegFormat == "" {
				config.FfmpegFormat = "dshow"
			}
		case runtime.GOOS == "darwin":
			if config.FfmpegPath == "" {
				config.FfmpegPath = "/opt/homebrew/bin/ffmpeg"
			}
			if config.Device == "" {
				config.Device = ":default"
			}
			if config.FfmpegFormat == "" {
				config.FfmpegFormat = "avfoundation"
			}
		default: // Linux
			if config.FfmpegPath == "" {
				config.FfmpegPath = "/usr/bin/ffmpeg"
			}
			if config.Device == "" {
				config.Device = "default"
			}
			if config.FfmpegFormat == "" {
				config.FfmpegFormat = "alsa"
			}
		}
	}

	if path := os.Getenv("FFMPEG_PATH"); path != "" {
		config.FfmpegPath = path
	}
	if format := os.Getenv("FFMPEG_FORMAT"); format != "" {
		config.FfmpegFormat = format
	}
	if device := os.Getenv("CAPTURE_DEVICE"); device != "" {
		config.Device = device
	}
	if dir := os.Getenv("SCRATCH_DIR"); dir != "" {
		config.ScratchDir = dir
	}
	if port := os.Getenv("STATUS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Port = p
		}
	}

	return config
}

func defaultScratchDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "s2t")
	}
	return filepath.Join(home, "dev", "s2t", "tmp")
}
