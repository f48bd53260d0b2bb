package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"faq-chat-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// RedisChannel carries chat frames between instances so every tab attached
// to a session sees the replies, whichever instance served the turn.
const RedisChannel = "chat_events"

type Hub struct {
	// Connected clients: SessionID -> clients (one per tab)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	broker     Broker
	instanceID string
	subscribed chan struct{}

	logger logger.ILogger
}

type clusterFrame struct {
	Origin          string          `json:"origin"`
	TargetSessionID string          `json:"target_session_id"`
	Message         json.RawMessage `json:"message"`
}

// NewHub builds a hub. broker may be nil for a single instance.
func NewHub(broker Broker, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		broker:     broker,
		instanceID: uuid.NewString(),
		subscribed: make(chan struct{}),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.broker != nil {
		go h.subscribeToCluster()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Session has no more clients", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register attaches c to its session on this instance.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister detaches c and closes its Send channel.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// ClientCount reports the local connections attached to a session.
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// SendToSession delivers a frame to local clients of the session and fans it
// out to the other instances through Redis.
func (h *Hub) SendToSession(sessionID string, frame interface{}) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Hub", "Failed to encode frame", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(sessionID, data)

	if h.broker != nil {
		payload, _ := json.Marshal(clusterFrame{
			Origin:          h.instanceID,
			TargetSessionID: sessionID,
			Message:         data,
		})
		if err := h.broker.Publish(context.Background(), RedisChannel, payload); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) deliverLocal(sessionID string, data []byte) {
	// Held while sending so Run cannot close a Send channel underneath us.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"session_id": sessionID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// Subscribed is closed once frames from other instances are being received.
func (h *Hub) Subscribed() <-chan struct{} {
	return h.subscribed
}

func (h *Hub) subscribeToCluster() {
	frames, err := h.broker.Subscribe(context.Background(), RedisChannel)
	if err != nil {
		h.logger.Error("Hub", "Redis subscribe failed", map[string]interface{}{"error": err.Error()})
		return
	}
	close(h.subscribed)

	for payload := range frames {
		var frame clusterFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		// Already delivered locally by SendToSession.
		if frame.Origin == h.instanceID {
			continue
		}
		h.deliverLocal(frame.TargetSessionID, frame.Message)
	}
}
