// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"time"

	"github.com/guttosm/waitlist-service/internal/circuitbreaker"
	"github.com/guttosm/waitlist-service/internal/domain/model"
)

// EntryRepositoryWithCircuitBreaker wraps an entry repository with circuit breaker protection.
// While the circuit is open every call fails fast with circuitbreaker.ErrCircuitOpen.
type EntryRepositoryWithCircuitBreaker struct {
	repo           EntryRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewEntryRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewEntryRepositoryWithCircuitBreaker(repo EntryRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *EntryRepositoryWithCircuitBreaker {
	return &EntryRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores an entry with circuit breaker protection.
func (r *EntryRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.Entry) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
}

// FindByID loads an entry with circuit breaker protection.
func (r *EntryRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id int64) (*model.Entry, error) {
	var result *model.Entry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns entries with circuit breaker protection.
func (r *EntryRepositoryWithCircuitBreaker) List(ctx context.Context, filter model.EntryFilter) ([]model.Entry, error) {
	var result []model.Entry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, filter)
		return cbErr
	})
	return result, err
}

// UpdateStatus changes an entry status with circuit breaker protection.
func (r *EntryRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Entry, error) {
	var result *model.Entry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpdateStatus(ctx, id, status)
		return cbErr
	})
	return result, err
}

// Delete removes an entry with circuit breaker protection.
func (r *EntryRepositoryWithCircuitBreaker) Delete(ctx context.Context, id int64) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// CountWaitingBefore counts earlier waiting entries with circuit breaker protection.
func (r *EntryRepositoryWithCircuitBreaker) CountWaitingBefore(ctx context.Context, joinedAt time.Time) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.CountWaitingBefore(ctx, joinedAt)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *EntryRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
