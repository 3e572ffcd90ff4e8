package httpServer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/whisperctl/whisperctl/internal/config"
	"github.com/whisperctl/whisperctl/internal/logging"
	"github.com/whisperctl/whisperctl/internal/recording"
	"github.com/whisperctl/whisperctl/internal/state"
	"github.com/whisperctl/whisperctl/internal/websocket"
)

var Server *http.Server

// StatusResponse is the JSON shape served on /status
type StatusResponse struct {
	Recording bool   `json:"recording"`
	Control   string `json:"control"`
	Pid       int    `json:"pid,omitempty"`
	PidAlive  bool   `json:"pidAlive"`
}

func currentStatus(store *state.Store, rec *recording.Recorder) StatusResponse {
	resp := StatusResponse{
		Recording: store.IsRecording(),
	}
	if word, err := store.ReadControl(); err == nil {
		resp.Control = word
	}
	if pid, err := rec.ReadPid(); err == nil {
		resp.Pid = pid
		resp.PidAlive = rec.PidAlive()
	}
	return resp
}

// StartServer starts the HTTP status server on the configured port
func StartServer(cfg config.Config, store *state.Store, rec *recording.Recorder) {
	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if err := templates.ExecuteTemplate(w, "status.html", currentStatus(store, rec)); err != nil {
			http.Error(w, "Failed to render status page", http.StatusInternalServerError)
		}
	})

	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(currentStatus(store, rec))
	})

	router.HandleFunc("/ws", handleWebSocket)

	addr := fmt.Sprintf(":%d", cfg.Port)
	Server = &http.Server{
		Addr:    addr,
		Handler: router,
	}

	logging.InfoLogger.Printf("Starting HTTP server on %s\n", addr)
	if err := Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.ErrorLogger.Printf("Failed to start server: %v", err)
	}
}

// StopServer shuts the HTTP server down, waiting briefly for in-flight
// requests
func StopServer() {
	if Server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Server.Shutdown(ctx); err != nil {
		logging.ErrorLogger.Printf("Failed to stop server: %v", err)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.ErrorLogger.Printf("Failed to upgrade websocket: %v", err)
		return
	}
	websocket.Register(conn)
}
