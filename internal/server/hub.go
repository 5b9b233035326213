package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
)

const (
	writeWait   = 5 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = pongWait * 9 / 10
	sendBufSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Hub fans navigation views out to WebSocket clients.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[*wsClient]struct{}
	closed  bool
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
	seq  uint64 // newest view queued, guarded by Hub.mu
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*wsClient]struct{}),
	}
}

// Handler upgrades the request and streams views. The current view is sent
// immediately on connect; snapshot must return it with the sequence number
// of the last committed transition.
func (h *Hub) Handler(snapshot func() (navigation.View, uint64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade failed", "error", err)
			return
		}
		c := &wsClient{conn: conn, send: make(chan []byte, sendBufSize)}
		if !h.register(c, snapshot) {
			_ = conn.Close()
			return
		}
		go h.writePump(c)
		go h.readPump(c)
	}
}

// Broadcast sends the view committed at seq to every client. Clients that
// already hold a newer view skip it. Slow clients drop messages.
func (h *Hub) Broadcast(v navigation.View, seq uint64) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("marshal view failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if seq <= c.seq {
			continue
		}
		c.seq = seq
		if !c.enqueue(data) {
			h.logger.Debug("websocket client lagging, dropped view")
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all clients and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		c.close()
		delete(h.clients, c)
	}
}

// register adds c and queues the current view as its first message. The
// snapshot is taken under h.mu, so every later broadcast is ordered after
// it. Sends and closes of c.send only happen under h.mu.
func (h *Hub) register(c *wsClient, snapshot func() (navigation.View, uint64)) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	view, seq := snapshot()
	c.seq = seq
	if initial, err := json.Marshal(view); err != nil {
		h.logger.Error("marshal view failed", "error", err)
	} else {
		c.enqueue(initial)
	}
	h.logger.Debug("websocket client connected", "clients", len(h.clients))
	return true
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
		h.logger.Debug("websocket client disconnected", "clients", len(h.clients))
	}
}

func (h *Hub) writePump(c *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.unregister(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unregister(c)
				return
			}
		}
	}
}

// readPump only watches for the peer going away.
func (h *Hub) readPump(c *wsClient) {
	defer h.unregister(c)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *wsClient) enqueue(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *wsClient) close() {
	c.once.Do(func() { close(c.send) })
}
