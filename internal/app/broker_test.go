//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/notifier"
)

const unreachableNATS = "nats://127.0.0.1:1"

func TestInitializeBroker(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.BrokerConfig
		wantErr bool
	}{
		{
			name: "disabled",
			cfg:  config.BrokerConfig{Enabled: false, URL: unreachableNATS},
		},
		{
			name: "unreachable and optional",
			cfg:  config.BrokerConfig{Enabled: true, URL: unreachableNATS, Subject: "waitlist.test"},
		},
		{
			name:    "unreachable and required",
			cfg:     config.BrokerConfig{Enabled: true, Required: true, URL: unreachableNATS, Subject: "waitlist.test"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := notifier.New(notifier.DefaultConfig())
			defer n.Close()

			broker, err := InitializeBroker(tt.cfg, n)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Nil(t, broker)
			assert.Zero(t, n.Len(), "no relay subscription may be left behind")
		})
	}
}
