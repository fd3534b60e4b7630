package communication

import (
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/CasterlyGit/Home/navigation"
)

// Event is the envelope pushed to rendering clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	// EventStageChange carries a navigation.Snapshot after each transition.
	EventStageChange = "STAGE_CHANGE"
)

type client struct {
	conn      *websocket.Conn
	sessionID string
}

// Hub fans navigation snapshots out to websocket clients. A client registers
// with a session id and only receives that session's stage changes; an empty
// session id subscribes to everything (handy for debugging overlays).
type Hub struct {
	clients    map[*websocket.Conn]string
	broadcast  chan navigation.Snapshot
	register   chan client
	unregister chan *websocket.Conn
	mu         sync.RWMutex
}

// NewHub creates the hub and starts its event loop.
func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[*websocket.Conn]string),
		broadcast:  make(chan navigation.Snapshot, 64),
		register:   make(chan client),
		unregister: make(chan *websocket.Conn),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.conn] = c.sessionID
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case snapshot := <-h.broadcast:
			event := Event{Type: EventStageChange, Payload: snapshot}
			h.mu.Lock()
			for conn, sessionID := range h.clients {
				if sessionID != "" && sessionID != snapshot.SessionID {
					continue
				}
				if err := conn.WriteJSON(event); err != nil {
					log.Warnf("websocket write failed, dropping client: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register subscribes a connection to a session's stage changes.
func (h *Hub) Register(conn *websocket.Conn, sessionID string) {
	h.register <- client{conn: conn, sessionID: sessionID}
}

// Unregister drops a connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// Observer returns a navigation observer that queues snapshots for
// broadcast. The channel is buffered so a slow client never stalls a
// navigation transition; overflow drops the event rather than blocking.
func (h *Hub) Observer() navigation.Observer {
	return func(s navigation.Snapshot) {
		select {
		case h.broadcast <- s:
		default:
			log.Warn("websocket broadcast queue full, dropping stage change")
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
