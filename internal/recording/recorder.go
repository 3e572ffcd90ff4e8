package recording

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/whisperctl/whisperctl/internal/config"
	"github.com/whisperctl/whisperctl/internal/jobutil"
	"github.com/whisperctl/whisperctl/internal/logging"
)

// Recorder owns the scratch directory and spawns ffmpeg audio capture
type Recorder struct {
	cfg config.Config
}

func NewRecorder(cfg config.Config) *Recorder {
	return &Recorder{cfg: cfg}
}

// Reset discards the scratch directory, including any not-yet-consumed prior
// recording, and recreates it empty
func (r *Recorder) Reset() error {
	if err := os.RemoveAll(r.cfg.ScratchDir); err != nil {
		return fmt.Errorf("removing scratch directory: %w", err)
	}
	if err := os.MkdirAll(r.cfg.ScratchDir, os.ModePerm); err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	return nil
}

// buildCaptureArgs builds the ffmpeg arguments for audio capture
func (r *Recorder) buildCaptureArgs() []string {
	return []string{
		"-y", // Overwrite output files
		"-f", r.cfg.FfmpegFormat,
		"-i", r.cfg.Device,
		"-ar", strconv.Itoa(r.cfg.SampleRate),
		"-ac", strconv.Itoa(r.cfg.Channels),
		r.cfg.AudioFile(),
	}
}

// Handle owns a running capture process
type Handle struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// Pid returns the capture process id
func (h *Handle) Pid() int {
	return h.cmd.Process.Pid
}

// Alive reports whether the capture process is still running
func (h *Handle) Alive() bool {
	if h.cmd.ProcessState != nil {
		return false
	}
	return processAlive(h.cmd.Process.Pid)
}

// Release detaches from the capture process so it keeps running after the
// launcher exits. The handle must not be used afterwards.
func (h *Handle) Release() {
	if err := h.cmd.Process.Release(); err != nil {
		logging.Trace("releasing capture process: %v", err)
	}
}

// Stop ends the capture gracefully: ask ffmpeg to finish via stdin so the
// WAV header gets written, then escalate to a signal and finally a kill.
func (h *Handle) Stop() error {
	if h.stdin != nil {
		if _, err := h.stdin.Write([]byte("q\n")); err != nil {
			logging.Trace("could not write 'q' to capture process (this is normal if it exited): %v", err)
		}
		h.stdin.Close()
	}

	done := make(chan error, 1)
	go func() { done <- h.cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			logging.Trace("capture process exited with error (this is normal): %v", err)
		}
		return nil
	case <-time.After(3 * time.Second):
	}

	interruptCmd(h.cmd)
	select {
	case <-done:
		return nil
	case <-time.After(2 * time.Second):
	}

	if err := forceKillCmd(h.cmd); err != nil {
		return fmt.Errorf("killing capture process: %w", err)
	}
	<-done
	return nil
}

// Start spawns ffmpeg capturing from the configured input device into the
// scratch directory and persists its pid. The scratch directory must exist.
func (r *Recorder) Start() (*Handle, error) {
	args := r.buildCaptureArgs()
	cmd := createCaptureCmd(r.cfg.FfmpegPath, args)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	logging.InfoLogger.Printf("Executing capture command: %s", cmd.String())
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("failed to start capture: %w", err)
	}

	if err := jobutil.Assign(cmd); err != nil {
		logging.WarningLogger.Printf("Could not assign capture process to job object: %v", err)
	}

	if err := r.writePidFile(cmd.Process.Pid); err != nil {
		forceKillCmd(cmd)
		return nil, err
	}

	return &Handle{cmd: cmd, stdin: stdin}, nil
}

// Launch is the fire-and-forget path: reset the scratch directory, start
// capture, and release the process. A capture failure after the spawn (bad
// device, missing codec) happens asynchronously and is not observed here.
func (r *Recorder) Launch() (int, error) {
	if err := r.Reset(); err != nil {
		return 0, err
	}
	handle, err := r.Start()
	if err != nil {
		return 0, err
	}
	pid := handle.Pid()
	handle.Release()
	logging.InfoLogger.Printf("Started capture process %d writing to %s", pid, r.cfg.AudioFile())
	return pid, nil
}

// StopDetached stops a capture process that this process did not spawn,
// using the pid file. Used by the daemon after a restart.
func (r *Recorder) StopDetached() error {
	pid, err := r.ReadPid()
	if err != nil {
		return err
	}
	if !processAlive(pid) {
		logging.InfoLogger.Printf("Capture process %d already exited", pid)
		return nil
	}

	interruptPid(pid)
	for i := 0; i < 20; i++ {
		if !processAlive(pid) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	if err := killPid(pid); err != nil {
		return fmt.Errorf("killing capture process %d: %w", pid, err)
	}
	return nil
}

func (r *Recorder) writePidFile(pid int) error {
	if err := os.WriteFile(r.cfg.PidFile(), []byte(strconv.Itoa(pid)+"\n"), 0666); err != nil {
		return fmt.Errorf("writing pid file: %w", err)
	}
	return nil
}

// ReadPid returns the pid stored in the pid file
func (r *Recorder) ReadPid() (int, error) {
	data, err := os.ReadFile(r.cfg.PidFile())
	if err != nil {
		return 0, fmt.Errorf("reading pid file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid pid file contents: %q", strings.TrimSpace(string(data)))
	}
	return pid, nil
}

// PidAlive reports whether the process in the pid file is still running
func (r *Recorder) PidAlive() bool {
	pid, err := r.ReadPid()
	if err != nil {
		return false
	}
	return processAlive(pid)
}
