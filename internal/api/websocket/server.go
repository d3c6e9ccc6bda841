package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fortuna/scorefeed/internal/dataset"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// Server pushes every persisted record to subscribed clients
type Server struct {
	port   string
	server *http.Server
	hub    *Hub
}

// NewServer creates a new WebSocket server
func NewServer() *Server {
	return &Server{hub: NewHub()}
}

// Start starts the WebSocket server
func (s *Server) Start(port string) error {
	s.port = port

	// Start the hub in a goroutine
	go s.hub.Run()

	// Set up HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/results", s.handleResults)
	mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
	}

	log.Printf("WebSocket server listening on :%s", port)
	return s.server.ListenAndServe()
}

// handleResults handles WebSocket connections for the results feed
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := NewClient(s.hub, conn)
	client.hub.register <- client

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "clients": %d}`, s.hub.ClientCount())
}

// resultEnvelope is the wire shape of a broadcast record
type resultEnvelope struct {
	ResultType dataset.ResultType `json:"resultType"`
	SourceID   string             `json:"sourceId"`
	Record     any                `json:"record"`
	Timestamp  int64              `json:"timestamp"`
}

// BroadcastResult sends one persisted record to all connected clients
func (s *Server) BroadcastResult(resultType dataset.ResultType, sourceID string, record any) {
	payload, err := json.Marshal(resultEnvelope{
		ResultType: resultType,
		SourceID:   sourceID,
		Record:     record,
		Timestamp:  time.Now().Unix(),
	})
	if err != nil {
		log.Printf("[websocket] Failed to encode result %s/%s: %v", resultType, sourceID, err)
		return
	}
	s.hub.Broadcast(payload)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
