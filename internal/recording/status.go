package recording

import (
	"encoding/json"

	"github.com/whisperctl/whisperctl/internal/status"
	"github.com/whisperctl/whisperctl/internal/websocket"
)

// SendStatus sends a status update with code and message
func SendStatus(code string, text string) {
	msg := status.Message{
		Code: code,
		Text: text,
	}

	// Send to web clients
	if data, err := json.Marshal(msg); err == nil {
		websocket.SendMessage(string(data))
	}

	// Send to the MQTT announcer
	select {
	case status.StatusChan <- msg:
	default:
		// Channel is full, skip this update
	}
}
