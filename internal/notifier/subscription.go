package notifier

import (
	"sync"

	"github.com/guttosm/waitlist-service/internal/domain/model"
)

type deliveryResult int

const (
	deliveryOK deliveryResult = iota
	deliveryMissed
	deliverySlow
	deliveryClosed
)

// Subscription is a handle on one subscriber's event stream.
type Subscription struct {
	id       string
	events   chan model.ChangeEvent
	done     chan struct{}
	notifier *Notifier

	// mu serializes sends with close so a send never hits a closed channel.
	mu     sync.Mutex
	closed bool
	missed int
}

func newSubscription(id string, buffer int, n *Notifier) *Subscription {
	return &Subscription{
		id:       id,
		events:   make(chan model.ChangeEvent, buffer),
		done:     make(chan struct{}),
		notifier: n,
	}
}

// ID returns the subscriber id.
func (s *Subscription) ID() string {
	return s.id
}

// Events returns the channel events are delivered on.
// It is closed when the subscription ends for any reason.
func (s *Subscription) Events() <-chan model.ChangeEvent {
	return s.events
}

// Done is closed when the subscription ends.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close ends the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.notifier.Unsubscribe(s)
}

func (s *Subscription) deliver(event model.ChangeEvent, maxMissed int) deliveryResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return deliveryClosed
	}
	select {
	case s.events <- event:
		s.missed = 0
		return deliveryOK
	default:
		s.missed++
		if s.missed >= maxMissed {
			return deliverySlow
		}
		return deliveryMissed
	}
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
	close(s.done)
}
