package events

import (
	"sync"
	"time"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event is one row-level change on a tracked table.
type Event struct {
	Table    string    `json:"table"`
	Type     EventType `json:"type"`
	RecordID string    `json:"record_id"`
	At       time.Time `json:"at"`
}

// Subscription is a stream of change events. Close it when done; the channel
// is closed by the broker afterwards.
type Subscription struct {
	C      <-chan Event
	ch     chan Event
	broker *Broker
	once   sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.remove(s)
		close(s.ch)
	})
}

// Broker is an in-process replacement for the managed store's row-change
// channel. Writers publish after each mutation; readers subscribe per table.
// A subscriber that stops draining loses events instead of blocking writers.
type Broker struct {
	mu   sync.RWMutex
	subs map[*Subscription]map[string]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[*Subscription]map[string]struct{})}
}

// Subscribe registers interest in the given tables. With no tables, every
// event is delivered.
func (b *Broker) Subscribe(tables ...string) *Subscription {
	ch := make(chan Event, 32)
	sub := &Subscription{C: ch, ch: ch, broker: b}

	filter := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		filter[t] = struct{}{}
	}

	b.mu.Lock()
	b.subs[sub] = filter
	b.mu.Unlock()
	return sub
}

func (b *Broker) remove(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	b.mu.Unlock()
}

func (b *Broker) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub, filter := range b.subs {
		if len(filter) > 0 {
			if _, ok := filter[ev.Table]; !ok {
				continue
			}
		}
		select {
		case sub.ch <- ev:
		default: // slow subscriber, drop
		}
	}
}
