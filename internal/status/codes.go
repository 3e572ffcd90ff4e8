package status

const (
	Idle      = "IDLE" // No capture in progress
	Recording = "REC"  // Capture in progress
	Stopped   = "DONE" // Capture stopped, recording ready
)

// Message wraps a status code and message text
type Message struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// StatusChan carries status updates to the MQTT announcer. Buffered so
// senders never block when no announcer is running.
var StatusChan = make(chan Message, 10)
