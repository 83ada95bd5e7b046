// Package realtime bridges websocket connections to solver workers.
// One connection owns exactly one worker: there is no multi-client
// room concept here, only the register/unregister bookkeeping and
// "drain stale, publish latest" broadcast idiom carried over from the
// original connection hub.
package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/crossplay/wfc/internal/worker"
	"github.com/gorilla/websocket"
)

// FrameType tags the JSON envelope exchanged over the websocket.
type FrameType string

const (
	// Client to server
	FrameSetLetter     FrameType = "set_letter"
	FrameSetMask       FrameType = "set_mask"
	FrameResetCell     FrameType = "reset_cell"
	FrameReset         FrameType = "reset"
	FrameUpdateOptions FrameType = "update_options"
	FrameSolve         FrameType = "solve"
	FrameStop          FrameType = "stop"

	// Server to client
	FrameStatus FrameType = "status"
	FrameError  FrameType = "error"
)

// Frame is the wire envelope for both directions of the protocol.
type Frame struct {
	Type    FrameType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// CellPayload addresses a single grid cell for set/mask/reset frames.
type CellPayload struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Letter string `json:"letter,omitempty"`
	Mask   bool   `json:"mask,omitempty"`
}

// StatusPayload is what gets broadcast back after every command:
// the latest grid snapshot plus the outcome of the most recent solve.
type StatusPayload struct {
	Snapshot interface{} `json:"snapshot"`
	Outcome  string      `json:"outcome"`
}

// Client pairs one websocket connection with the session it serves.
type Client struct {
	SessionID string
	Worker    *worker.Worker
	conn      *websocket.Conn
	Send      chan []byte
}

// Hub tracks live client connections so they can be looked up and torn
// down from outside their own goroutines. It owns no crossword state
// itself — each Client's Worker does.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

// NewHub creates an empty hub. Call Run in its own goroutine before
// registering any clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister events until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client.SessionID] = client
			h.mutex.Unlock()
			log.Printf("session registered: %s", client.SessionID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client.SessionID]; ok {
				delete(h.clients, client.SessionID)
				close(client.Send)
			}
			h.mutex.Unlock()
			log.Printf("session unregistered: %s", client.SessionID)
		}
	}
}

func (h *Hub) Register(client *Client)   { h.register <- client }
func (h *Hub) Unregister(client *Client) { h.unregister <- client }

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades an HTTP request to a websocket, registers a client
// for sessionID wrapping w, and blocks relaying frames until either
// side closes the connection. Inbound command frames are pushed onto
// w's own command queue; w's status queue is drained onto the
// connection by a dedicated writer goroutine.
func ServeWs(hub *Hub, rw http.ResponseWriter, r *http.Request, sessionID string, w *worker.Worker) error {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		SessionID: sessionID,
		Worker:    w,
		conn:      conn,
		Send:      make(chan []byte, 4),
	}
	hub.Register(client)

	done := make(chan struct{})
	go writePump(client, done)
	readPump(hub, client)
	close(done)
	return nil
}

// readPump decodes inbound frames and translates them into worker
// commands, until the connection errors out (remote close included).
func readPump(hub *Hub, client *Client) {
	defer func() {
		hub.Unregister(client)
		client.conn.Close()
	}()

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			return
		}

		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			client.sendError("invalid frame")
			continue
		}

		cmd, ok := translateCommand(frame)
		if !ok {
			client.sendError("unknown command")
			continue
		}
		client.Worker.Commands <- cmd
	}
}

// writePump relays the worker's published status onto the connection
// alongside any direct client.Send writes (errors), forwarding
// whichever is ready first.
func writePump(client *Client, done chan struct{}) {
	defer client.conn.Close()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case status, ok := <-client.Worker.Status:
			if !ok {
				return
			}
			payload, err := json.Marshal(StatusPayload{
				Snapshot: status.Snapshot,
				Outcome:  outcomeString(status.Outcome),
			})
			if err != nil {
				continue
			}
			frame, err := json.Marshal(Frame{Type: FrameStatus, Payload: payload})
			if err != nil {
				continue
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-done:
			return
		case <-time.After(30 * time.Second):
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendError(message string) {
	payload, _ := json.Marshal(map[string]string{"message": message})
	frame, err := json.Marshal(Frame{Type: FrameError, Payload: payload})
	if err != nil {
		return
	}
	select {
	case c.Send <- frame:
	default:
	}
}
