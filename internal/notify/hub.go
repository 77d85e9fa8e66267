package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/constants"
	"github.com/fabiano-filho/cronicas-de-algorion-backend/internal/logging"
)

const writeTimeout = 5 * time.Second

type client struct {
	conn     *websocket.Conn
	playerID string
}

// Hub fans session events out to websocket subscribers, one room per
// session id. Connections that fail a write are dropped from the room.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*client]struct{})}
}

// Handle upgrades an HTTP request to a websocket subscription for the
// given session room. It blocks until the client disconnects. Inbound
// messages are discarded: intents travel over the HTTP API.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request, sessionID, playerID string) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		logging.Error("websocket accept failed", err, logging.Fields{constants.LogFieldSessionID: sessionID})
		return
	}
	c := &client{conn: conn, playerID: playerID}
	h.add(sessionID, c)
	defer h.remove(sessionID, c)
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func (h *Hub) add(sessionID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[sessionID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[sessionID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) remove(sessionID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[sessionID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, sessionID)
	}
}

// RoomSize returns the number of connections subscribed to a session.
func (h *Hub) RoomSize(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[sessionID])
}

type frame struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Publish delivers events in order. Payload marshalling happens once per
// event; per-connection write failures are logged and the connection is
// dropped without blocking the remaining subscribers.
func (h *Hub) Publish(ctx context.Context, events ...Event) {
	for _, ev := range events {
		b, err := json.Marshal(frame{Event: ev.Type, Data: ev.Payload})
		if err != nil {
			logging.Error("failed to encode notification", err, logging.Fields{constants.LogFieldEvent: ev.Type})
			continue
		}

		h.mu.RLock()
		targets := make([]*client, 0, len(h.rooms[ev.SessionID]))
		for c := range h.rooms[ev.SessionID] {
			if ev.PlayerID != "" && c.playerID != ev.PlayerID {
				continue
			}
			targets = append(targets, c)
		}
		h.mu.RUnlock()

		for _, c := range targets {
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(wctx, websocket.MessageText, b)
			cancel()
			if err != nil {
				logging.Error("dropping slow websocket subscriber", err, logging.Fields{
					constants.LogFieldSessionID: ev.SessionID,
					constants.LogFieldEvent:     ev.Type,
				})
				h.remove(ev.SessionID, c)
				_ = c.conn.Close(websocket.StatusPolicyViolation, "write timeout")
			}
		}
	}
}
