// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/waitlist-service/internal/domain/model"
)

// ErrNotFound is returned when a lookup by id matches no document.
var ErrNotFound = errors.New("document not found")

// EntryRepositoryInterface defines the interface for queue entry persistence.
type EntryRepositoryInterface interface {
	// Create assigns the next sequential id and stores the entry.
	Create(ctx context.Context, entry *model.Entry) error
	FindByID(ctx context.Context, id int64) (*model.Entry, error)
	// List returns matching entries ordered by joined_at, then id.
	List(ctx context.Context, filter model.EntryFilter) ([]model.Entry, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Entry, error)
	Delete(ctx context.Context, id int64) error
	// CountWaitingBefore counts waiting entries that joined strictly before joinedAt.
	CountWaitingBefore(ctx context.Context, joinedAt time.Time) (int64, error)
}

// StaffRepositoryInterface defines the interface for staff account persistence.
type StaffRepositoryInterface interface {
	Create(ctx context.Context, staff *model.Staff) error
	// FindByEmail returns nil, nil when no account uses the email.
	FindByEmail(ctx context.Context, email string) (*model.Staff, error)
}
