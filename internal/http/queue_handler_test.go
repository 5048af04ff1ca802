//go:build !integration

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/waitlist-service/internal/circuitbreaker"
	"github.com/guttosm/waitlist-service/internal/domain/dto"
	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/mocks"
	"github.com/guttosm/waitlist-service/internal/service"
)

func newQueueRouter(queue *mocks.MockQueueService, seating *mocks.MockSeatingService) *gin.Engine {
	cfg := DefaultRouterConfig()
	cfg.QueueService = queue
	cfg.SeatingService = seating
	return NewRouter(NewHealthHandler(), cfg)
}

func sampleEntry(id int64, status model.Status) *model.Entry {
	return &model.Entry{
		ID:        id,
		Name:      "Rivera",
		PartySize: 4,
		JoinedAt:  time.Date(2025, 1, 28, 19, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestQueueHandler_Join(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.MockQueueService)
		wantStatus int
		wantError  string
	}{
		{
			name: "party joins",
			body: `{"name": "  Rivera ", "party_size": 4, "phone_number": "555-0100"}`,
			setup: func(q *mocks.MockQueueService) {
				q.On("Join", mock.Anything, "Rivera", 4, mock.MatchedBy(func(p *string) bool {
					return p != nil && *p == "555-0100"
				})).Return(sampleEntry(7, model.StatusWaiting), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "blank phone is dropped",
			body: `{"name": "Rivera", "party_size": 2, "phone_number": "  "}`,
			setup: func(q *mocks.MockQueueService) {
				q.On("Join", mock.Anything, "Rivera", 2, (*string)(nil)).Return(sampleEntry(8, model.StatusWaiting), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"name": `,
			wantStatus: http.StatusBadRequest,
			wantError:  dto.ErrCodeInvalidRequest,
		},
		{
			name:       "zero party size",
			body:       `{"name": "Rivera", "party_size": 0}`,
			wantStatus: http.StatusBadRequest,
			wantError:  dto.ErrCodeInvalidRequest,
		},
		{
			name:       "blank name",
			body:       `{"name": "   ", "party_size": 2}`,
			wantStatus: http.StatusBadRequest,
			wantError:  dto.ErrCodeInvalidRequest,
		},
		{
			name: "store not configured",
			body: `{"name": "Rivera", "party_size": 2}`,
			setup: func(q *mocks.MockQueueService) {
				q.On("Join", mock.Anything, "Rivera", 2, (*string)(nil)).Return(nil, service.ErrRepositoryNotConfigured)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  dto.ErrCodeUnavailable,
		},
		{
			name: "circuit open",
			body: `{"name": "Rivera", "party_size": 2}`,
			setup: func(q *mocks.MockQueueService) {
				q.On("Join", mock.Anything, "Rivera", 2, (*string)(nil)).Return(nil, fmt.Errorf("create entry: %w", circuitbreaker.ErrCircuitOpen))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  dto.ErrCodeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := new(mocks.MockQueueService)
			if tt.setup != nil {
				tt.setup(queue)
			}
			router := newQueueRouter(queue, new(mocks.MockSeatingService))

			w := perform(router, http.MethodPost, "/api/queue", tt.body, nil)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, w).Error)
				return
			}
			entry := decodeData[model.Entry](t, w)
			assert.Equal(t, model.StatusWaiting, entry.Status)
			queue.AssertExpectations(t)
		})
	}
}

func TestQueueHandler_List(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		queue := new(mocks.MockQueueService)
		entries := []model.Entry{*sampleEntry(1, model.StatusWaiting), *sampleEntry(2, model.StatusWaiting)}
		entries[1].EstimatedWaitMinutes = 10
		queue.On("List", mock.Anything, model.EntryFilter{Status: model.StatusWaiting, Search: "riv"}).Return(entries, nil)

		w := perform(newQueueRouter(queue, nil), http.MethodGet, "/api/queue?status=waiting&search=riv", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeData[[]model.Entry](t, w)
		require.Len(t, got, 2)
		assert.Equal(t, 10, got[1].EstimatedWaitMinutes)
	})

	t.Run("unknown status", func(t *testing.T) {
		queue := new(mocks.MockQueueService)
		queue.On("List", mock.Anything, model.EntryFilter{Status: "eating"}).Return(nil, service.ErrInvalidStatus)

		w := perform(newQueueRouter(queue, nil), http.MethodGet, "/api/queue?status=eating", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		queue := new(mocks.MockQueueService)
		queue.On("List", mock.Anything, model.EntryFilter{}).Return(nil, errors.New("connection reset"))

		w := perform(newQueueRouter(queue, nil), http.MethodGet, "/api/queue", "", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestQueueHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*mocks.MockQueueService)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/queue/7",
			setup: func(q *mocks.MockQueueService) {
				q.On("Get", mock.Anything, int64(7)).Return(sampleEntry(7, model.StatusWaiting), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/queue/9",
			setup: func(q *mocks.MockQueueService) {
				q.On("Get", mock.Anything, int64(9)).Return(nil, fmt.Errorf("entry 9: %w", service.ErrEntryNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "non numeric id", path: "/api/queue/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/queue/0", wantStatus: http.StatusBadRequest},
		{name: "negative id", path: "/api/queue/-3", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := new(mocks.MockQueueService)
			if tt.setup != nil {
				tt.setup(queue)
			}

			w := perform(newQueueRouter(queue, nil), http.MethodGet, tt.path, "", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			queue.AssertExpectations(t)
		})
	}
}

func TestQueueHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.MockQueueService)
		wantStatus int
	}{
		{
			name: "seat party",
			body: `{"status": "seated"}`,
			setup: func(q *mocks.MockQueueService) {
				q.On("UpdateStatus", mock.Anything, int64(7), model.StatusSeated).Return(sampleEntry(7, model.StatusSeated), nil)
			},
			wantStatus: http.StatusOK,
		},
		{name: "unknown status", body: `{"status": "eating"}`, wantStatus: http.StatusBadRequest},
		{name: "missing status", body: `{}`, wantStatus: http.StatusBadRequest},
		{
			name: "entry gone",
			body: `{"status": "no_show"}`,
			setup: func(q *mocks.MockQueueService) {
				q.On("UpdateStatus", mock.Anything, int64(7), model.StatusNoShow).Return(nil, service.ErrEntryNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := new(mocks.MockQueueService)
			if tt.setup != nil {
				tt.setup(queue)
			}

			w := perform(newQueueRouter(queue, nil), http.MethodPatch, "/api/queue/7", tt.body, nil)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			queue.AssertExpectations(t)
		})
	}
}

func TestQueueHandler_Delete(t *testing.T) {
	t.Run("removes entry", func(t *testing.T) {
		queue := new(mocks.MockQueueService)
		queue.On("Delete", mock.Anything, int64(7)).Return(nil)

		w := perform(newQueueRouter(queue, nil), http.MethodDelete, "/api/queue/7", "", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown entry", func(t *testing.T) {
		queue := new(mocks.MockQueueService)
		queue.On("Delete", mock.Anything, int64(7)).Return(service.ErrEntryNotFound)

		w := perform(newQueueRouter(queue, nil), http.MethodDelete, "/api/queue/7", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
	})
}

func TestQueueHandler_Optimize(t *testing.T) {
	plan := model.EmptyPlan(service.DefaultTables())

	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(*mocks.MockSeatingService)
		wantStatus int
	}{
		{
			name: "empty body plans against configured tables",
			path: "/api/queue/optimize",
			setup: func(s *mocks.MockSeatingService) {
				s.On("Optimize", mock.Anything, []model.Table(nil), false).Return(plan, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "supplied tables without ids are numbered",
			path: "/api/queue/optimize",
			body: `{"tables": [{"capacity": 2}, {"id": 9, "capacity": 6}]}`,
			setup: func(s *mocks.MockSeatingService) {
				s.On("Optimize", mock.Anything, []model.Table{{ID: 1, Capacity: 2}, {ID: 9, Capacity: 6}}, false).Return(plan, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "apply seats the plan",
			path: "/api/queue/optimize?apply=true",
			body: `{}`,
			setup: func(s *mocks.MockSeatingService) {
				s.On("Optimize", mock.Anything, []model.Table(nil), true).Return(plan, nil)
			},
			wantStatus: http.StatusOK,
		},
		{name: "bad apply flag", path: "/api/queue/optimize?apply=maybe", wantStatus: http.StatusBadRequest},
		{
			name: "invalid tables",
			path: "/api/queue/optimize",
			body: `{"tables": [{"id": 1, "capacity": 0}]}`,
			setup: func(s *mocks.MockSeatingService) {
				s.On("Optimize", mock.Anything, mock.Anything, false).Return(model.PlanResult{},
					&service.PlanValidationError{Kind: "table", ID: 1, Value: 0, Msg: "capacity must be positive"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "deadline exceeded",
			path: "/api/queue/optimize",
			setup: func(s *mocks.MockSeatingService) {
				s.On("Optimize", mock.Anything, mock.Anything, false).Return(model.PlanResult{}, context.DeadlineExceeded)
			},
			wantStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seating := new(mocks.MockSeatingService)
			if tt.setup != nil {
				tt.setup(seating)
			}

			w := perform(newQueueRouter(new(mocks.MockQueueService), seating), http.MethodPost, tt.path, tt.body, nil)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			seating.AssertExpectations(t)
		})
	}
}

func TestQueueHandler_OptimizeValidationDetails(t *testing.T) {
	seating := new(mocks.MockSeatingService)
	seating.On("Optimize", mock.Anything, mock.Anything, false).Return(model.PlanResult{},
		&service.PlanValidationError{Kind: "table", ID: 2, Value: 2, Msg: "duplicate table id"})

	w := perform(newQueueRouter(new(mocks.MockQueueService), seating), http.MethodPost, "/api/queue/optimize",
		`{"tables": [{"id": 2, "capacity": 4}, {"id": 2, "capacity": 2}]}`, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Contains(t, resp.Details["reason"], "duplicate table id")
}

func TestQueueHandler_OptimizePartialApply(t *testing.T) {
	seating := new(mocks.MockSeatingService)
	seating.On("Optimize", mock.Anything, []model.Table(nil), true).Return(model.PlanResult{},
		&service.PlanApplyError{Seated: []int64{5}, Err: circuitbreaker.ErrCircuitOpen})

	w := perform(newQueueRouter(new(mocks.MockQueueService), seating), http.MethodPost, "/api/queue/optimize?apply=true", "", nil)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "5", decodeError(t, w).Details["seated_ids"])
}
