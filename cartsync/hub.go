// Package cartsync carries exactly one signal, "cart-updated", from
// cart-mutating handlers to the navbar badge widget. Clients register under
// their session key; delivery is fire-and-forget with no payload, the
// receiver re-fetches the count on receipt.
package cartsync

import (
	"log"
	"net/http"
	"sync"

	"medistore/globals"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Signal is the only message this hub ever sends.
var Signal = []byte("cart-updated")

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Key  string
}

type Hub struct {
	sessions   map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	publish    chan string
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		publish:    make(chan string, 16),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.sessions {
				for c := range conns {
					close(c.Send)
				}
			}
			h.sessions = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.sessions[c.Key] == nil {
				h.sessions[c.Key] = make(map[*Client]bool)
			}
			h.sessions[c.Key][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.sessions[c.Key]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case key := <-h.publish:
			h.mu.Lock()
			for c := range h.sessions[key] {
				select {
				case c.Send <- Signal:
				default:
					close(c.Send)
					delete(h.sessions[key], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Publish notifies every connection of the given session key. Non-blocking;
// the signal is dropped if the hub is saturated.
func (h *Hub) Publish(key string) {
	if key == "" {
		return
	}
	select {
	case h.publish <- key:
	default:
	}
}

// PublishFor keys the signal off the caller's session cookie, the same key
// the badge widget registered under.
func (h *Hub) PublishFor(r *http.Request) {
	if c, err := r.Cookie(globals.SessionCookieName); err == nil {
		h.Publish(c.Value)
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ServeWS upgrades the badge widget's connection. Guests are rejected; they
// have no cart to watch.
func ServeWS(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		cookie, err := r.Cookie(globals.SessionCookieName)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("cartsync: upgrade:", err)
			return
		}
		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 8),
			Key:  cookie.Value,
		}

		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// drop hands a closed connection back to the hub. After Stop the hub no
// longer drains unregister, so a stopped hub releases the caller instead of
// blocking it; Stop already closed every Send channel itself.
func (h *Hub) drop(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// readPump only watches for the peer closing; clients never send anything.
func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.drop(c)
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
