package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/internal/i18n"
	"github.com/guttosm/waitlist-service/internal/notifier"
)

const (
	// StreamEvent is the SSE event name carrying queue changes.
	StreamEvent = "queue-update"
	// DefaultStreamKeepalive is the interval between keepalive comments.
	DefaultStreamKeepalive = 30 * time.Second
	streamRetryMillis      = 2000
)

// Subscriber hands out notifier subscriptions.
type Subscriber interface {
	Subscribe() (*notifier.Subscription, error)
}

// StreamHandler serves queue change events over Server-Sent Events.
type StreamHandler struct {
	notifier  Subscriber
	keepalive time.Duration
}

// NewStreamHandler creates a new StreamHandler. A non-positive keepalive uses DefaultStreamKeepalive.
func NewStreamHandler(n Subscriber, keepalive time.Duration) *StreamHandler {
	if keepalive <= 0 {
		keepalive = DefaultStreamKeepalive
	}
	return &StreamHandler{
		notifier:  n,
		keepalive: keepalive,
	}
}

// Stream handles GET /api/queue/stream requests.
//
// @Summary      Stream queue changes
// @Description  Server-Sent Events stream. Each queue mutation is sent as a queue-update event whose data is the change event JSON. Keepalive comments are sent periodically.
// @Tags         Queue
// @Produce      text/event-stream
// @Success      200 {object} model.ChangeEvent "Event stream"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - too many subscribers"
// @Router       /api/queue/stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	sub, err := h.notifier.Subscribe()
	if err != nil {
		key := i18n.ErrKeyStreamUnavailable
		if !errors.Is(err, notifier.ErrSubscriberLimit) && !errors.Is(err, notifier.ErrClosed) {
			key = i18n.ErrKeyInternalError
		}
		NewResponseBuilder(c).Error(http.StatusServiceUnavailable, key, err)
		return
	}
	defer sub.Close()

	logger := log.With().Str("subscriber_id", sub.ID()).Logger()
	logger.Info().Msg("stream connected")

	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprintf(w, ": connected\n\nretry: %d\n\n", streamRetryMillis); err != nil {
		logger.Info().Err(err).Msg("stream handshake failed")
		return
	}
	w.Flush()

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logger.Info().Msg("stream client disconnected")
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				logger.Info().Err(err).Msg("stream write failed, closing")
				return
			}
			w.Flush()

		case event, ok := <-sub.Events():
			if !ok {
				logger.Info().Msg("stream closed by notifier")
				return
			}
			if err := sse.Encode(w, sse.Event{Event: StreamEvent, Data: event}); err != nil {
				logger.Info().Err(err).Str("event", string(event.Event)).Msg("stream write failed, closing")
				return
			}
			w.Flush()
		}
	}
}
