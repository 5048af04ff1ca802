// Package notifier fans queue change events out to real-time subscribers.
//
// There is a single topic. Every subscriber receives every event published
// after it subscribed, through its own bounded buffer. Publishing never blocks:
// a subscriber whose buffer is full misses the event, and one that keeps
// missing events is dropped.
package notifier

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/metrics"
)

var (
	// ErrSubscriberLimit is returned by Subscribe when MaxSubscribers are registered.
	ErrSubscriberLimit = errors.New("notifier: subscriber limit reached")
	// ErrClosed is returned by Subscribe after Close.
	ErrClosed = errors.New("notifier: closed")
)

// Prune reasons reported in logs and metrics.
const (
	reasonSlow   = "slow"
	reasonClosed = "closed"
)

// Config holds notifier limits.
type Config struct {
	// BufferSize is the per-subscriber event buffer.
	BufferSize int
	// MaxSubscribers caps concurrent subscriptions. Zero means unlimited.
	MaxSubscribers int
	// MaxMissed is how many consecutive events a subscriber may miss before it is pruned.
	MaxMissed int
}

// DefaultConfig returns the default notifier limits.
func DefaultConfig() Config {
	return Config{
		BufferSize:     64,
		MaxSubscribers: 1024,
		MaxMissed:      16,
	}
}

// Notifier is a single-topic publish/subscribe hub. The zero value is not usable; use New.
type Notifier struct {
	cfg Config

	mu     sync.RWMutex
	subs   map[string]*Subscription
	closed bool
}

// New creates a notifier. Non-positive BufferSize and MaxMissed fall back to defaults.
func New(cfg Config) *Notifier {
	def := DefaultConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.MaxMissed <= 0 {
		cfg.MaxMissed = def.MaxMissed
	}
	return &Notifier{
		cfg:  cfg,
		subs: make(map[string]*Subscription),
	}
}

// Subscribe registers a new subscriber. Only events published after this call are delivered.
func (n *Notifier) Subscribe() (*Subscription, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil, ErrClosed
	}
	if n.cfg.MaxSubscribers > 0 && len(n.subs) >= n.cfg.MaxSubscribers {
		return nil, ErrSubscriberLimit
	}

	sub := newSubscription(uuid.NewString(), n.cfg.BufferSize, n)
	n.subs[sub.id] = sub
	metrics.SetSubscribers(len(n.subs))

	log.Debug().Str("subscriber_id", sub.id).Int("subscribers", len(n.subs)).Msg("subscriber registered")
	return sub, nil
}

// Unsubscribe deregisters sub and closes its event channel. Calling it more than once,
// or for a subscription already pruned, is a no-op.
func (n *Notifier) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	n.mu.Lock()
	if current, ok := n.subs[sub.id]; ok && current == sub {
		delete(n.subs, sub.id)
		metrics.SetSubscribers(len(n.subs))
	}
	n.mu.Unlock()

	sub.close()
}

// Publish delivers event to every registered subscriber without blocking.
// Events published sequentially reach each subscriber in publish order.
func (n *Notifier) Publish(event model.ChangeEvent) {
	n.mu.RLock()
	if n.closed || len(n.subs) == 0 {
		n.mu.RUnlock()
		return
	}
	snapshot := make([]*Subscription, 0, len(n.subs))
	for _, sub := range n.subs {
		snapshot = append(snapshot, sub)
	}
	n.mu.RUnlock()

	delivered, dropped := 0, 0
	for _, sub := range snapshot {
		switch sub.deliver(event, n.cfg.MaxMissed) {
		case deliveryOK:
			delivered++
		case deliveryMissed:
			dropped++
		case deliverySlow:
			dropped++
			n.prune(sub, reasonSlow)
		case deliveryClosed:
			n.prune(sub, reasonClosed)
		}
	}

	metrics.RecordPublish(string(event.Event), delivered, dropped)
}

func (n *Notifier) prune(sub *Subscription, reason string) {
	n.mu.Lock()
	current, ok := n.subs[sub.id]
	if ok && current == sub {
		delete(n.subs, sub.id)
		metrics.SetSubscribers(len(n.subs))
	}
	n.mu.Unlock()

	sub.close()
	if !ok {
		return
	}

	metrics.RecordPrune(reason)
	ev := log.Debug()
	if reason == reasonSlow {
		ev = log.Warn()
	}
	ev.Str("subscriber_id", sub.id).Str("reason", reason).Msg("subscriber pruned")
}

// Close closes every subscription and rejects further Subscribe calls. Publish becomes a no-op.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	subs := n.subs
	n.subs = make(map[string]*Subscription)
	metrics.SetSubscribers(0)
	n.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
	log.Info().Int("subscribers", len(subs)).Msg("notifier closed")
}

// Len returns the number of registered subscribers.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
