package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/whisperctl/whisperctl/internal/logging"
)

// Notifications are best-effort: a machine without a notification facility
// must not fail the toggle, so errors are only logged at trace level.

// Started shows the "recording started" notification. The alert variant is
// used so the toast stands out while the microphone is live.
func Started() {
	if err := beeep.Alert("whisperctl", "Speech recording started", ""); err != nil {
		logging.Trace("notification skipped: %v", err)
	}
}

// Stopped shows the "recording stopped" notification
func Stopped() {
	if err := beeep.Notify("whisperctl", "Speech recording stopped", ""); err != nil {
		logging.Trace("notification skipped: %v", err)
	}
}
