package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

const EventCatalogChange = "catalog_change"

// Event is pushed to every connected admin client after a catalog write.
type Event struct {
	Type   string    `json:"type"`
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     uint64    `json:"id"`
	At     time.Time `json:"at"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 64),
		log:        log,
	}
}

// Publish queues a catalog change for broadcast. Events are dropped when the
// queue is full rather than blocking the writer.
func (h *Hub) Publish(entity, action string, id uint64) {
	msg, err := json.Marshal(Event{Type: EventCatalogChange, Entity: entity, Action: action, ID: id, At: time.Now().UTC()})
	if err != nil {
		h.log.Error("encode ws event", zap.Error(err))
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.log.Warn("ws broadcast queue full, dropping event",
			zap.String("entity", entity), zap.String("action", action), zap.Uint64("id", id))
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			h.log.Debug("ws client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
