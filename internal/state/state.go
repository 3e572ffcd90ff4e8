package state

import (
	"fmt"
	"os"
	"strings"
)

// Command words written to the control file. The daemon seeds the file with
// "ready" so hotkey bindings have something to read before the first toggle.
const (
	CommandStart = "start"
	CommandStop  = "stop"
	CommandReady = "ready"
)

// Store wraps the marker and control files. The marker's existence is the
// sole source of truth for "recording is active"; the control word is the
// command channel consumed by the daemon.
type Store struct {
	markerFile  string
	controlFile string
}

func NewStore(markerFile, controlFile string) *Store {
	return &Store{
		markerFile:  markerFile,
		controlFile: controlFile,
	}
}

// IsRecording reports whether the recording marker exists
func (s *Store) IsRecording() bool {
	_, err := os.Stat(s.markerFile)
	return err == nil
}

// Toggle flips the marker under an exclusive lock and writes the matching
// command word. Returns true when the new state is "recording". The lock
// makes concurrent toggles (a hotkey pressed twice in quick succession)
// serialize instead of racing on the marker check.
func (s *Store) Toggle() (bool, error) {
	unlock, err := s.lock()
	if err != nil {
		return false, err
	}
	defer unlock()

	if s.IsRecording() {
		if err := os.Remove(s.markerFile); err != nil {
			return false, fmt.Errorf("removing marker: %w", err)
		}
		if err := s.WriteControl(CommandStop); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := os.WriteFile(s.markerFile, nil, 0666); err != nil {
		return false, fmt.Errorf("creating marker: %w", err)
	}
	if err := s.WriteControl(CommandStart); err != nil {
		return true, err
	}
	return true, nil
}

// WriteControl overwrites the control file with the given command word
func (s *Store) WriteControl(word string) error {
	if err := os.WriteFile(s.controlFile, []byte(word+"\n"), 0666); err != nil {
		return fmt.Errorf("writing control file: %w", err)
	}
	return nil
}

// ReadControl returns the current command word, with whitespace trimmed
func (s *Store) ReadControl() (string, error) {
	data, err := os.ReadFile(s.controlFile)
	if err != nil {
		return "", fmt.Errorf("reading control file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SeedControl creates the control file with "ready" if it does not exist yet
func (s *Store) SeedControl() error {
	if _, err := os.Stat(s.controlFile); err == nil {
		return nil
	}
	return s.WriteControl(CommandReady)
}
