// Package dashboard implements the gateway's HTTP/WebSocket control surface:
// a chi router (health check, metrics, WS upgrade, REST controls) and
// a broadcast hub. The hub's readPump/writePump split and per-client
// JSON-event envelope are grounded in birddigital-signalwire-telephony's
// SignalWireAudioBridge/SignalWireCallSession; the chi wiring and
// JWT/logging middleware are adapted from flowpbx-flowpbx/internal/api.
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is the outbound, type-discriminated dashboard message.
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Command is an inbound control message from a dashboard client.
type Command struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}

// CommandHandler processes one inbound dashboard command.
type CommandHandler func(cmd Command) error

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans out Events to every connected dashboard client and routes inbound
// Commands to a single handler.
type Hub struct {
	logger  *slog.Logger
	onCmd   CommandHandler

	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan Event
}

// NewHub constructs an empty Hub. onCmd may be nil to ignore inbound commands.
func NewHub(onCmd CommandHandler, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{logger: logger, onCmd: onCmd, clients: map[*client]struct{}{}}
}

// Broadcast implements orchestrator.Broadcaster: it fans eventType/payload
// out to every connected client, dropping slow clients rather than blocking.
func (h *Hub) Broadcast(eventType string, payload map[string]any) {
	evt := Event{Type: eventType, Payload: payload}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- evt:
		default:
			h.logger.Warn("dashboard: client send buffer full, dropping event", "type", eventType)
		}
	}
}

// ServeWS upgrades an HTTP request to a dashboard WebSocket connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("dashboard: websocket upgrade failed", "error", err)
		return
	}
	c := &client{conn: conn, send: make(chan Event, 64)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer h.removeClient(c)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd Command
		if err := json.Unmarshal(message, &cmd); err != nil {
			h.logger.Warn("dashboard: malformed command", "error", err)
			continue
		}
		if h.onCmd != nil {
			if err := h.onCmd(cmd); err != nil {
				h.logger.Warn("dashboard: command handler error", "type", cmd.Type, "error", err)
			}
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case evt, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// ClientCount returns the number of currently connected dashboard clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
