package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/notifier"
)

// BrokerComponents holds the NATS connection and the relay feeding it.
type BrokerComponents struct {
	Publisher *notifier.NATSPublisher
	Relay     *notifier.Relay
}

// InitializeBroker starts relaying queue changes to NATS. When the broker cannot be
// reached the service runs without it, unless cfg.Required is set.
func InitializeBroker(cfg config.BrokerConfig, n *notifier.Notifier) (*BrokerComponents, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	pub, err := notifier.NewNATSPublisher(cfg.URL)
	if err != nil {
		return nil, brokerUnavailable(cfg, err)
	}

	relay, err := notifier.StartRelay(n, pub, cfg.Subject)
	if err != nil {
		_ = pub.Close()
		return nil, brokerUnavailable(cfg, err)
	}

	log.Info().Str("url", cfg.URL).Str("subject", cfg.Subject).Msg("Relaying queue changes to NATS")
	return &BrokerComponents{Publisher: pub, Relay: relay}, nil
}

func brokerUnavailable(cfg config.BrokerConfig, err error) error {
	if cfg.Required {
		return fmt.Errorf("broker required: %w", err)
	}
	log.Warn().Err(err).Str("url", cfg.URL).Msg("Broker unavailable - continuing without relay")
	return nil
}

// Close stops the relay and drains the connection.
func (b *BrokerComponents) Close() {
	b.Relay.Stop()
	if err := b.Publisher.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to drain NATS connection")
	}
}
