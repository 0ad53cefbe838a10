package ws

import (
	"context"
	"sync"

	"mentor-match/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type outbound struct {
	// uuid.Nil addresses every connected client.
	userID  uuid.UUID
	payload []byte
}

type Hub struct {
	clients    map[*Client]bool
	outbound   chan outbound
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		outbound:   make(chan outbound, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		log:        logger.Component(log, "ws"),
	}
}

// Run serves registrations and deliveries until ctx is done, then closes
// every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug("ws connected", zap.String("user_id", client.userID.String()), zap.Int("total_clients", total))

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.outbound:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				if msg.userID == uuid.Nil || c.userID == msg.userID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					// slow consumer
					h.remove(client)
				}
			}
		}
	}
}

// shutdown closes every client, including ones still waiting in the register
// queue. Register and Unregister stop blocking once done is closed.
func (h *Hub) shutdown() {
	h.stopOnce.Do(func() { close(h.done) })

	h.mutex.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mutex.Unlock()

	for {
		select {
		case c := <-h.register:
			if c != nil {
				close(c.send)
			}
		default:
			return
		}
	}
}

func (h *Hub) remove(client *Client) {
	if client == nil {
		return
	}
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	h.log.Debug("ws disconnected", zap.String("user_id", client.userID.String()), zap.Int("total_clients", total))
}

// Register adds client to the hub. A client registered after the hub stopped
// has its send channel closed straight away.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case <-h.done:
		close(client.send)
		return
	default:
	}
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) SendTo(userID uuid.UUID, payload []byte) {
	h.enqueue(outbound{userID: userID, payload: payload})
}

func (h *Hub) Broadcast(payload []byte) {
	h.enqueue(outbound{payload: payload})
}

func (h *Hub) enqueue(msg outbound) {
	if h == nil {
		return
	}
	select {
	case h.outbound <- msg:
	default:
		h.log.Warn("ws message dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
