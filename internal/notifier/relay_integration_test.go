//go:build integration

package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/testutil"
)

func TestRelay_PublishesToNATS(t *testing.T) {
	ctx := context.Background()
	container, err := testutil.SetupNATS(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Cleanup(context.Background()) })

	listener, err := nats.Connect(container.Endpoint)
	require.NoError(t, err)
	defer listener.Close()
	msgs := make(chan *nats.Msg, 4)
	_, err = listener.ChanSubscribe("waitlist.it", msgs)
	require.NoError(t, err)
	require.NoError(t, listener.Flush())

	pub, err := NewNATSPublisher(container.Endpoint)
	require.NoError(t, err)

	n := New(DefaultConfig())
	relay, err := StartRelay(n, pub, "waitlist.it")
	require.NoError(t, err)

	n.Publish(model.EntryDeleted(7))

	select {
	case msg := <-msgs:
		var event model.ChangeEvent
		require.NoError(t, json.Unmarshal(msg.Data, &event))
		assert.Equal(t, model.ChangeEvent{Event: model.EventDeleted, ID: 7}, event)
	case <-time.After(5 * time.Second):
		t.Fatal("event not received on NATS")
	}

	relay.Stop()
	assert.NoError(t, pub.Close())
	assert.Zero(t, n.Len())
}
