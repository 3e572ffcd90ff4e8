package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/whisperctl/whisperctl/internal/logging"
)

var (
	clients = make(map[*websocket.Conn]bool)
	mu      sync.Mutex

	Upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// Register adds a client connection to the broadcast set
func Register(conn *websocket.Conn) {
	mu.Lock()
	defer mu.Unlock()
	clients[conn] = true
}

// SendMessage sends a message to all connected WebSocket clients
func SendMessage(message string) {
	mu.Lock()
	defer mu.Unlock()
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			logging.Trace("Error sending message: %v", err)
			client.Close()
			delete(clients, client)
		}
	}
}
