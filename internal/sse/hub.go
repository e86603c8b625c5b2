package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event is one entry in a channel's push stream. ID is the position in the
// redis replay list; consumers resume with Last-Event-ID and de-duplicate
// by the embedded document id in Data.
type Event struct {
	ID   int64       `json:"id"`
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type subscriber struct {
	ch chan Event
}

// Hub fans channel events out to in-process SSE subscribers and mirrors
// them to a redis list so late joiners can replay missed events.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint][]*subscriber // channelID -> subscribers
	positions   map[uint]int64         // next list position when redis is absent
	rdb         *redis.Client
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		subscribers: make(map[uint][]*subscriber),
		positions:   make(map[uint]int64),
		rdb:         rdb,
	}
}

func streamKey(channelID uint) string {
	return fmt.Sprintf("chat:stream:%d", channelID)
}

func (h *Hub) Subscribe(channelID uint) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &subscriber{ch: make(chan Event, 256)}
	h.subscribers[channelID] = append(h.subscribers[channelID], sub)

	unsub := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs := h.subscribers[channelID]
		for i, s := range subs {
			if s == sub {
				h.subscribers[channelID] = append(subs[:i], subs[i+1:]...)
				close(sub.ch)
				break
			}
		}
		if len(h.subscribers[channelID]) == 0 {
			delete(h.subscribers, channelID)
		}
	}
	return sub.ch, unsub
}

// Broadcast stamps the event with its replay-list position and fans it
// out. Live subscribers therefore see the same id a replay would give.
func (h *Hub) Broadcast(channelID uint, event Event) {
	if h == nil {
		return
	}
	if h.rdb != nil {
		ctx := context.Background()
		data, _ := json.Marshal(event)
		length, err := h.rdb.RPush(ctx, streamKey(channelID), string(data)).Result()
		if err == nil {
			event.ID = length - 1
		}
	} else {
		h.mu.Lock()
		event.ID = h.positions[channelID]
		h.positions[channelID] = event.ID + 1
		h.mu.Unlock()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers[channelID] {
		select {
		case sub.ch <- event:
		default:
			// drop if full
		}
	}
}

// ReplayFrom returns the events recorded at positions >= fromID.
func (h *Hub) ReplayFrom(channelID uint, fromID int64) ([]Event, error) {
	if h == nil || h.rdb == nil {
		return nil, nil
	}
	items, err := h.rdb.LRange(context.Background(), streamKey(channelID), fromID, -1).Result()
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(items))
	for i, item := range items {
		var ev Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		ev.ID = fromID + int64(i)
		events = append(events, ev)
	}
	return events, nil
}

func (h *Hub) SetExpire(channelID uint, ttl time.Duration) {
	if h == nil || h.rdb == nil {
		return
	}
	h.rdb.Expire(context.Background(), streamKey(channelID), ttl)
}

func (h *Hub) TotalEvents(channelID uint) int64 {
	if h == nil || h.rdb == nil {
		return 0
	}
	count, _ := h.rdb.LLen(context.Background(), streamKey(channelID)).Result()
	return count
}

// ParseLastEventID returns the last event id a client saw, or -1 when the
// header is absent or malformed. Resuming replays from the next position.
func ParseLastEventID(header string) int64 {
	if header == "" {
		return -1
	}
	id, err := strconv.ParseInt(header, 10, 64)
	if err != nil || id < 0 {
		return -1
	}
	return id
}
