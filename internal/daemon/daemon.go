package daemon

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/whisperctl/whisperctl/internal/config"
	"github.com/whisperctl/whisperctl/internal/httpServer"
	"github.com/whisperctl/whisperctl/internal/jobutil"
	"github.com/whisperctl/whisperctl/internal/logging"
	"github.com/whisperctl/whisperctl/internal/monitor"
	"github.com/whisperctl/whisperctl/internal/recording"
	"github.com/whisperctl/whisperctl/internal/state"
	"github.com/whisperctl/whisperctl/internal/status"
)

// pollInterval backs up the fsnotify watcher. Hotkey scripts tend to replace
// the control file instead of rewriting it in place, and some filesystems
// drop events entirely, so the daemon also polls.
const pollInterval = 500 * time.Millisecond

// capture abstracts the recorder so command dispatch can be tested without
// spawning ffmpeg
type capture interface {
	StartCapture() error
	StopCapture() error
	Active() bool
}

// recorderCapture adapts recording.Recorder, holding the handle of the
// capture it started
type recorderCapture struct {
	rec    *recording.Recorder
	handle *recording.Handle
}

func (c *recorderCapture) StartCapture() error {
	if err := c.rec.Reset(); err != nil {
		return err
	}
	handle, err := c.rec.Start()
	if err != nil {
		return err
	}
	c.handle = handle
	return nil
}

func (c *recorderCapture) StopCapture() error {
	if c.handle != nil {
		err := c.handle.Stop()
		c.handle = nil
		return err
	}
	// Not a capture we started: the daemon restarted, or the capture was
	// launched with "whisperctl record". Fall back to the pid file.
	return c.rec.StopDetached()
}

func (c *recorderCapture) Active() bool {
	return c.handle != nil && c.handle.Alive()
}

// Daemon watches the control file and starts/stops audio capture on
// start/stop command words
type Daemon struct {
	cfg      config.Config
	store    *state.Store
	cap      capture
	lastWord string
}

func New(cfg config.Config) *Daemon {
	return &Daemon{
		cfg:   cfg,
		store: state.NewStore(cfg.MarkerFile, cfg.ControlFile),
		cap:   &recorderCapture{rec: recording.NewRecorder(cfg)},
	}
}

// Run watches the control file until the context is canceled. Any capture
// still running at shutdown is stopped so the WAV gets finalized.
func (d *Daemon) Run(ctx context.Context) error {
	if err := jobutil.Init(); err != nil {
		logging.WarningLogger.Printf("Could not initialize job object: %v", err)
	}

	if err := d.store.SeedControl(); err != nil {
		return err
	}

	// Remember the word found at startup so a stale command left over from
	// a previous run is not replayed.
	if word, err := d.store.ReadControl(); err == nil {
		d.lastWord = word
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: replacing the control file swaps
	// the inode out from under a file watch.
	if err := watcher.Add(filepath.Dir(d.cfg.ControlFile)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(d.cfg.ControlFile), err)
	}

	if d.cfg.Port > 0 {
		go httpServer.StartServer(d.cfg, d.store, recording.NewRecorder(d.cfg))
	}
	monitor.Announce(d.cfg)
	defer monitor.Disconnect()

	recording.SendStatus(status.Idle, "Daemon ready")
	logging.InfoLogger.Printf("Watching control file %s", d.cfg.ControlFile)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.InfoLogger.Println("Shutting down...")
			if d.cap.Active() {
				if err := d.cap.StopCapture(); err != nil {
					logging.ErrorLogger.Printf("Failed to stop capture on shutdown: %v", err)
				}
			}
			httpServer.StopServer()
			return nil
		case event := <-watcher.Events:
			if event.Name == d.cfg.ControlFile && event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				d.poll()
			}
		case err := <-watcher.Errors:
			logging.WarningLogger.Printf("Watcher error: %v", err)
		case <-ticker.C:
			d.poll()
		}
	}
}

func (d *Daemon) poll() {
	word, err := d.store.ReadControl()
	if err != nil {
		logging.Trace("control file unreadable: %v", err)
		return
	}
	d.dispatch(word)
}

// dispatch acts on command-word transitions; a repeated word is a no-op
func (d *Daemon) dispatch(word string) {
	if word == d.lastWord {
		return
	}
	d.lastWord = word

	switch word {
	case state.CommandStart:
		if d.cap.Active() {
			logging.Trace("capture already running, ignoring start")
			return
		}
		if err := d.cap.StartCapture(); err != nil {
			logging.ErrorLogger.Printf("Failed to start capture: %v", err)
			recording.SendStatus(status.Idle, "Capture failed to start")
			return
		}
		logging.InfoLogger.Println("Recording started")
		recording.SendStatus(status.Recording, "Recording from default input device")
	case state.CommandStop:
		if err := d.cap.StopCapture(); err != nil {
			logging.ErrorLogger.Printf("Failed to stop capture: %v", err)
			return
		}
		logging.InfoLogger.Printf("Recording stopped, audio saved to %s", d.cfg.AudioFile())
		recording.SendStatus(status.Stopped, "Recording stopped, file ready")
	default:
		// "ready" seed or unknown word; nothing to do
	}
}
