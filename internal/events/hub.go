// Package events fans recorded lot activities out to websocket dashboard
// clients.
package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"trace-backend/internal/models"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is consumed cross-origin by the SPA; auth happens via JWT.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type event struct {
	Type     string              `json:"type"`
	Activity *models.LotActivity `json:"activity"`
}

type Hub struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan event
}

func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan event, 64),
	}
	go h.run()
	return h
}

// PublishActivity queues an activity for broadcast. Never blocks: when the
// queue is full the event is dropped, the database remains the source of truth.
func (h *Hub) PublishActivity(a *models.LotActivity) {
	select {
	case h.broadcast <- event{Type: "activity_recorded", Activity: a}:
	default:
	}
}

// ServeWS upgrades the request and registers the client.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Events] Websocket upgrade failed: %v", err)
		return
	}

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()

	// Reader loop only drains control frames and detects disconnect.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) run() {
	for ev := range h.broadcast {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}

		h.clientsMux.Lock()
		for conn := range h.clients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.clientsMux.Unlock()
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.clientsMux.Lock()
	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
	}
	h.clientsMux.Unlock()
}
