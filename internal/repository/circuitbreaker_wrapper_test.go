//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/waitlist-service/internal/circuitbreaker"
	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/mocks"
)

func newTestBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test-entries",
		IgnoredErrors:    []error{ErrNotFound},
	})
}

func TestEntryRepositoryWithCircuitBreaker_PassesThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockEntryRepository)
	wrapped := NewEntryRepositoryWithCircuitBreaker(repo, newTestBreaker())

	entry := &model.Entry{ID: 3, Name: "Lee", PartySize: 2, Status: model.StatusWaiting}
	joined := time.Now()

	repo.On("Create", ctx, entry).Return(nil)
	repo.On("FindByID", ctx, int64(3)).Return(entry, nil)
	repo.On("List", ctx, model.EntryFilter{Status: model.StatusWaiting}).Return([]model.Entry{*entry}, nil)
	repo.On("UpdateStatus", ctx, int64(3), model.StatusSeated).Return(entry, nil)
	repo.On("Delete", ctx, int64(3)).Return(nil)
	repo.On("CountWaitingBefore", ctx, joined).Return(int64(4), nil)

	require.NoError(t, wrapped.Create(ctx, entry))

	found, err := wrapped.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entry, found)

	list, err := wrapped.List(ctx, model.EntryFilter{Status: model.StatusWaiting})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	updated, err := wrapped.UpdateStatus(ctx, 3, model.StatusSeated)
	require.NoError(t, err)
	assert.Equal(t, entry, updated)

	require.NoError(t, wrapped.Delete(ctx, 3))

	count, err := wrapped.CountWaitingBefore(ctx, joined)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	repo.AssertExpectations(t)
}

func TestEntryRepositoryWithCircuitBreaker_OpensOnFailures(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockEntryRepository)
	cb := newTestBreaker()
	wrapped := NewEntryRepositoryWithCircuitBreaker(repo, cb)

	repo.On("FindByID", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Twice()

	for i := 0; i < 2; i++ {
		_, err := wrapped.FindByID(ctx, 1)
		assert.Error(t, err)
	}
	assert.True(t, wrapped.GetCircuitBreaker().IsOpen())

	_, err := wrapped.FindByID(ctx, 1)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	repo.AssertNumberOfCalls(t, "FindByID", 2)
}

func TestEntryRepositoryWithCircuitBreaker_NotFoundKeepsCircuitClosed(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockEntryRepository)
	wrapped := NewEntryRepositoryWithCircuitBreaker(repo, newTestBreaker())

	repo.On("Delete", ctx, int64(9)).Return(ErrNotFound)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, wrapped.Delete(ctx, 9), ErrNotFound)
	}
	assert.Equal(t, circuitbreaker.StateClosed, wrapped.GetCircuitBreaker().State())
}

func TestEntryQuery(t *testing.T) {
	assert.Empty(t, entryQuery(model.EntryFilter{}))

	q := entryQuery(model.EntryFilter{Status: model.StatusWaiting, Search: "a.b"})
	assert.Equal(t, model.StatusWaiting, q["status"])
	assert.Contains(t, q, "$or")
}
