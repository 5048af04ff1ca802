package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/logger"
)

const publishTimeout = 5 * time.Second

// Publisher sends a payload to a broker subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// NATSPublisher publishes to a NATS server.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	log := logger.Component("nats")
	conn, err := nats.Connect(url,
		nats.Name("waitlist-service"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

// Publish sends data on subject. NATS buffers outgoing messages, so this does not wait on the network.
func (p *NATSPublisher) Publish(_ context.Context, subject string, data []byte) error {
	return p.conn.Publish(subject, data)
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return err
	}
	return nil
}

// Relay forwards every change event to a broker subject. It is an ordinary
// subscriber of the notifier: when a stalled broker gets it pruned, it logs the
// gap and subscribes again. Events published in between are not forwarded.
type Relay struct {
	n       *Notifier
	pub     Publisher
	subject string
	done    chan struct{}
	log     zerolog.Logger

	mu      sync.Mutex
	sub     *Subscription
	stopped bool
}

// StartRelay subscribes to n and starts forwarding events to subject on pub.
func StartRelay(n *Notifier, pub Publisher, subject string) (*Relay, error) {
	sub, err := n.Subscribe()
	if err != nil {
		return nil, fmt.Errorf("relay subscribe: %w", err)
	}
	r := &Relay{
		n:       n,
		sub:     sub,
		pub:     pub,
		subject: subject,
		done:    make(chan struct{}),
		log:     logger.Component("relay"),
	}
	go r.run()
	r.log.Info().Str("subject", subject).Str("subscriber_id", sub.ID()).Msg("broker relay started")
	return r, nil
}

func (r *Relay) run() {
	defer close(r.done)

	for {
		for event := range r.current().Events() {
			r.forward(event)
		}
		if !r.resubscribe() {
			return
		}
	}
}

func (r *Relay) current() *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sub
}

func (r *Relay) forward(event model.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		r.log.Error().Err(err).Str("event", string(event.Event)).Msg("marshal event")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := r.pub.Publish(ctx, r.subject, data); err != nil {
		r.log.Warn().Err(err).Str("subject", r.subject).Str("event", string(event.Event)).Msg("publish failed")
	}
}

// resubscribe replaces a subscription the notifier ended. It reports false once
// the relay is stopped or the notifier is closed.
func (r *Relay) resubscribe() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return false
	}
	pruned := r.sub.ID()
	sub, err := r.n.Subscribe()
	switch {
	case errors.Is(err, ErrClosed):
		r.log.Info().Str("subject", r.subject).Msg("notifier closed, broker relay stopped")
		return false
	case err != nil:
		r.log.Error().Err(err).Str("subject", r.subject).Msg("relay could not resubscribe, forwarding stopped")
		return false
	}
	r.sub = sub
	r.log.Warn().
		Str("pruned_id", pruned).
		Str("subscriber_id", sub.ID()).
		Str("subject", r.subject).
		Msg("relay fell behind and was pruned, resubscribed; events in between were not forwarded")
	return true
}

// Done is closed once the relay has stopped forwarding.
func (r *Relay) Done() <-chan struct{} {
	return r.done
}

// Stop unsubscribes the relay and waits for in-flight forwarding to finish.
func (r *Relay) Stop() {
	r.mu.Lock()
	r.stopped = true
	sub := r.sub
	r.mu.Unlock()

	sub.Close()
	<-r.done
}
