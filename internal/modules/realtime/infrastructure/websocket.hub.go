package infrastructure

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"trackerMobility/internal/modules/realtime/application/port"
	"trackerMobility/internal/modules/realtime/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type clientSet map[*Client]struct{}

func (s clientSet) add(c *Client) { s[c] = struct{}{} }

func (s clientSet) has(c *Client) bool {
	_, ok := s[c]
	return ok
}

// Hub fans messages out to connected back-office sessions. A client is
// either in a room per topic it joined or on the firehose (receiveAll).
type Hub struct {
	mu       sync.RWMutex
	rooms    map[string]clientSet
	sessions map[string]*Client
	firehose clientSet
}

var _ port.Broadcaster = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		rooms:    make(map[string]clientSet),
		sessions: make(map[string]*Client),
		firehose: make(clientSet),
	}
}

// Attach registers c, replacing any client holding the same session id,
// and joins it to topics.
func (h *Hub) Attach(c *Client, topics []string) {
	h.mu.Lock()
	if previous := h.sessions[c.sessionID]; previous != nil && previous != c {
		h.dropLocked(previous)
	}
	h.sessions[c.sessionID] = c
	if c.receiveAll {
		h.firehose.add(c)
	}
	for _, topic := range topics {
		if topic = strings.TrimSpace(topic); topic != "" {
			h.joinLocked(c, topic)
		}
	}
	joined := len(c.rooms)
	h.mu.Unlock()
	slog.Info("ws session attached", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID), slog.Int("topics", joined))
}

func (h *Hub) join(c *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.joinLocked(c, topic)
}

func (h *Hub) joinLocked(c *Client, topic string) {
	room := h.rooms[topic]
	if room == nil {
		room = make(clientSet)
		h.rooms[topic] = room
	}
	room.add(c)
	c.rooms[topic] = struct{}{}
}

func (h *Hub) leave(c *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c, topic)
	delete(c.rooms, topic)
}

// leaveLocked removes c from one room and forgets the room once empty.
func (h *Hub) leaveLocked(c *Client, topic string) {
	room := h.rooms[topic]
	if room == nil {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, topic)
	}
}

func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

func (h *Hub) dropLocked(c *Client) {
	if c == nil {
		return
	}
	for topic := range c.rooms {
		h.leaveLocked(c, topic)
	}
	if h.sessions[c.sessionID] == c {
		delete(h.sessions, c.sessionID)
	}
	delete(h.firehose, c)
	c.close()
	slog.Info("ws session dropped", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID))
}

// audience snapshots the clients a message on topic should reach.
func (h *Hub) audience(topic, userID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room := h.rooms[topic]
	out := make([]*Client, 0, len(room)+len(h.firehose))
	for c := range room {
		if userID == "" || c.userID == userID {
			out = append(out, c)
		}
	}
	for c := range h.firehose {
		if room.has(c) {
			continue
		}
		if userID == "" || c.userID == userID {
			out = append(out, c)
		}
	}
	return out
}

// Broadcast never blocks: a client whose buffer is full is dropped.
// A "userId" metadata entry restricts delivery to that user's sessions.
func (h *Hub) Broadcast(_ context.Context, msg *domain.Message) {
	if msg == nil {
		return
	}
	frame, err := json.Marshal(msg)
	if err != nil {
		slog.Error("broadcast encode failed", slog.String("topic", msg.Topic), slog.Any("error", err))
		return
	}
	for _, c := range h.audience(msg.Topic, strings.TrimSpace(msg.Metadata["userId"])) {
		if c.enqueue(frame) {
			continue
		}
		slog.Warn("ws send buffer full", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID))
		go h.drop(c)
	}
}

// Sessions reports how many clients are connected.
func (h *Hub) Sessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
