package services

import (
	"sync"

	"github.com/linskybing/reserve-go/models"
)

const (
	EventReservationCreated       = "created"
	EventReservationRescheduled   = "rescheduled"
	EventReservationCancelled     = "cancelled"
	EventReservationStatusChanged = "status_changed"
	EventReservationCascadeDelete = "cascade_deleted"
)

type ReservationEvent struct {
	Action      string             `json:"action"`
	Reservation models.Reservation `json:"reservation"`
}

// EventBus fans reservation lifecycle events out to websocket subscribers.
// Slow subscribers are skipped rather than blocking the publisher.
type EventBus struct {
	mu   sync.Mutex
	subs map[chan ReservationEvent]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[chan ReservationEvent]struct{})}
}

func (b *EventBus) Subscribe() chan ReservationEvent {
	ch := make(chan ReservationEvent, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *EventBus) Unsubscribe(ch chan ReservationEvent) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

func (b *EventBus) Publish(event ReservationEvent) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
	b.mu.Unlock()
}
