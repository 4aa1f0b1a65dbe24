// Package vizserver streams arena snapshots to websocket viewers and turns
// their control messages into arena requests.
package vizserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/arena"
)

const writeWait = 2 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// client is one connected viewer. Writes are serialized by mu.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *client) sendJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.send(data)
}

// Hub tracks connected viewers. Broadcast is called from the simulation
// goroutine; inbound requests are queued on Requests for the simulation to
// drain at tick boundaries.
type Hub struct {
	hello    Hello
	logger   *slog.Logger
	requests chan arena.Request

	mu      sync.Mutex
	clients map[*client]struct{}

	server   *http.Server
	listener net.Listener
}

// NewHub creates a hub. queueSize bounds the inbound request queue.
func NewHub(hello Hello, queueSize int, logger *slog.Logger) *Hub {
	if queueSize < 1 {
		queueSize = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		hello:    hello,
		logger:   logger.With("component", "vizserver"),
		requests: make(chan arena.Request, queueSize),
		clients:  make(map[*client]struct{}),
	}
}

// Requests returns the queue of client requests.
func (h *Hub) Requests() <-chan arena.Request {
	return h.requests
}

// Drain applies every queued request to a without blocking.
func (h *Hub) Drain(a *arena.Arena) int {
	n := 0
	for {
		select {
		case req := <-h.requests:
			a.Apply(req)
			n++
		default:
			return n
		}
	}
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handler returns the websocket endpoint.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	return mux
}

// Start listens on addr and serves the websocket endpoint in the background.
func (h *Hub) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	h.listener = ln
	h.server = &http.Server{Handler: h.Handler()}
	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("serve failed", "error", err)
		}
	}()
	h.logger.Info("listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the listening address, or "" before Start.
func (h *Hub) Addr() string {
	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}

// Shutdown stops the server and closes every client.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	for c := range h.clients {
		c.conn.Close()
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	if h.server == nil {
		return nil
	}
	return h.server.Shutdown(ctx)
}

// Broadcast sends a snapshot to every client. Clients that fail are dropped.
func (h *Hub) Broadcast(s arena.Snapshot) {
	h.mu.Lock()
	list := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		list = append(list, c)
	}
	h.mu.Unlock()
	if len(list) == 0 {
		return
	}

	data, err := json.Marshal(Outbound{Type: TypeSnapshot, Data: s})
	if err != nil {
		h.logger.Error("encoding snapshot", "error", err)
		return
	}
	for _, c := range list {
		if err := c.send(data); err != nil {
			h.logger.Warn("client send failed", "error", err)
			h.remove(c)
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.conn.Close()
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "error", err)
		return
	}
	c := &client{conn: conn}
	if err := c.sendJSON(Outbound{Type: TypeHello, Data: h.hello}); err != nil {
		conn.Close()
		return
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("client connected", "remote", r.RemoteAddr)

	defer func() {
		h.remove(c)
		h.logger.Info("client disconnected", "remote", r.RemoteAddr)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := h.reply(c, data); err != nil {
			h.logger.Warn("client send failed", "remote", r.RemoteAddr, "error", err)
			return
		}
	}
}

// reply queues one client message and answers with an ack or an error.
// A returned error means the reply could not be written.
func (h *Hub) reply(c *client, data []byte) error {
	req, err := ParseRequest(data)
	if err != nil {
		return c.sendJSON(Outbound{Type: TypeError, Error: err.Error()})
	}
	select {
	case h.requests <- req:
		return c.sendJSON(Outbound{Type: TypeAck})
	default:
		h.logger.Warn("request queue full, dropping request", "op", req.Op)
		return c.sendJSON(Outbound{Type: TypeError, Error: "request queue full"})
	}
}
