package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/repository"
)

var (
	// ErrRepositoryNotConfigured is returned when no entry store is available.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrEntryNotFound is returned when a queue entry does not exist.
	ErrEntryNotFound = errors.New("queue entry not found")
	// ErrInvalidStatus is returned for a status outside waiting, seated, no_show, cancelled.
	ErrInvalidStatus = errors.New("invalid queue status")
	// ErrInvalidPartySize is returned when a party joins with a non-positive size.
	ErrInvalidPartySize = errors.New("party size must be positive")
)

// DefaultWaitMinutesPerParty is the wait added for each waiting party ahead.
const DefaultWaitMinutesPerParty = 10

// EventPublisher receives queue change events. Publish must not block.
type EventPublisher interface {
	Publish(event model.ChangeEvent)
}

type noopPublisher struct{}

func (noopPublisher) Publish(model.ChangeEvent) {}

// QueueService manages the restaurant waitlist.
type QueueService interface {
	Join(ctx context.Context, name string, partySize int, phone *string) (*model.Entry, error)
	List(ctx context.Context, filter model.EntryFilter) ([]model.Entry, error)
	Get(ctx context.Context, id int64) (*model.Entry, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Entry, error)
	Delete(ctx context.Context, id int64) error
	// WaitingParties returns waiting entries as planner input, largest first, then by arrival.
	WaitingParties(ctx context.Context) ([]model.Party, error)
	// ApplyPlan marks every assigned party as seated and returns the updated entries.
	ApplyPlan(ctx context.Context, plan model.PlanResult) ([]model.Entry, error)
}

// QueueOption configures a QueueServiceImpl.
type QueueOption func(*QueueServiceImpl)

// QueueServiceImpl implements QueueService. Change events are published only
// after the store accepted the mutation.
type QueueServiceImpl struct {
	repo         repository.EntryRepositoryInterface
	publisher    EventPublisher
	waitPerParty int
	now          func() time.Time
}

// NewQueueService creates a queue service. A nil repo makes every operation
// return ErrRepositoryNotConfigured.
func NewQueueService(repo repository.EntryRepositoryInterface, opts ...QueueOption) *QueueServiceImpl {
	s := &QueueServiceImpl{
		repo:         repo,
		publisher:    noopPublisher{},
		waitPerParty: DefaultWaitMinutesPerParty,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithPublisher sets where change events go.
func WithPublisher(p EventPublisher) QueueOption {
	return func(s *QueueServiceImpl) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithWaitMinutesPerParty sets the wait estimate per party ahead.
func WithWaitMinutesPerParty(minutes int) QueueOption {
	return func(s *QueueServiceImpl) {
		if minutes > 0 {
			s.waitPerParty = minutes
		}
	}
}

// WithClock overrides the time source used for joined_at.
func WithClock(now func() time.Time) QueueOption {
	return func(s *QueueServiceImpl) {
		s.now = now
	}
}

// Join adds a party to the end of the queue.
func (s *QueueServiceImpl) Join(ctx context.Context, name string, partySize int, phone *string) (*model.Entry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if partySize <= 0 {
		return nil, ErrInvalidPartySize
	}

	entry := &model.Entry{
		Name:        name,
		PartySize:   partySize,
		PhoneNumber: phone,
		// Stored at millisecond precision, so the estimate never counts the entry itself.
		JoinedAt:    s.now().Truncate(time.Millisecond),
		Status:      model.StatusWaiting,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.estimate(ctx, entry)
	s.publisher.Publish(model.EntryCreated(*entry))

	log.Info().Int64("entry_id", entry.ID).Int("party_size", entry.PartySize).Msg("party joined queue")
	return entry, nil
}

// List returns entries ordered by joined_at, each carrying its wait estimate.
func (s *QueueServiceImpl) List(ctx context.Context, filter model.EntryFilter) ([]model.Entry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	if !anyWaiting(entries) {
		return entries, nil
	}

	var waiting []model.Entry
	switch {
	case filter.Search == "" && filter.Status == model.StatusWaiting:
		waiting = entries
	case filter.Search == "" && filter.Status == "":
		waiting = onlyWaiting(entries)
	default:
		waiting, err = s.repo.List(ctx, model.EntryFilter{Status: model.StatusWaiting})
		if err != nil {
			return nil, fmt.Errorf("list waiting entries: %w", err)
		}
	}

	// waiting is ordered by joined_at, so the entries ahead of e are those before
	// the first one that joined at or after it.
	for i := range entries {
		e := &entries[i]
		if e.Status != model.StatusWaiting {
			continue
		}
		ahead := sort.Search(len(waiting), func(j int) bool {
			return !waiting[j].JoinedAt.Before(e.JoinedAt)
		})
		e.EstimatedWaitMinutes = ahead * s.waitPerParty
	}
	return entries, nil
}

func onlyWaiting(entries []model.Entry) []model.Entry {
	waiting := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Status == model.StatusWaiting {
			waiting = append(waiting, e)
		}
	}
	return waiting
}

func anyWaiting(entries []model.Entry) bool {
	for _, e := range entries {
		if e.Status == model.StatusWaiting {
			return true
		}
	}
	return false
}

// Get returns a single entry with its wait estimate.
func (s *QueueServiceImpl) Get(ctx context.Context, id int64) (*model.Entry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, entryErr(id, err)
	}
	s.estimate(ctx, entry)
	return entry, nil
}

// UpdateStatus moves an entry to a new status.
func (s *QueueServiceImpl) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Entry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	entry, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, entryErr(id, err)
	}

	s.estimate(ctx, entry)
	s.publisher.Publish(model.EntryUpdated(*entry))

	log.Info().Int64("entry_id", id).Str("status", string(status)).Msg("queue entry updated")
	return entry, nil
}

// Delete removes an entry from the queue.
func (s *QueueServiceImpl) Delete(ctx context.Context, id int64) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return entryErr(id, err)
	}

	s.publisher.Publish(model.EntryDeleted(id))

	log.Info().Int64("entry_id", id).Msg("queue entry deleted")
	return nil
}

// WaitingParties returns the waiting parties ordered by size descending, then joined_at.
func (s *QueueServiceImpl) WaitingParties(ctx context.Context) ([]model.Party, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	entries, err := s.repo.List(ctx, model.EntryFilter{Status: model.StatusWaiting})
	if err != nil {
		return nil, fmt.Errorf("list waiting entries: %w", err)
	}

	parties := make([]model.Party, len(entries))
	for i, e := range entries {
		parties[i] = e.Party()
	}
	sort.SliceStable(parties, func(i, j int) bool {
		return parties[i].Size > parties[j].Size
	})
	return parties, nil
}

// ApplyPlan seats every assigned party. Entries removed since the plan was
// computed are skipped; any other failure stops and returns what was applied.
func (s *QueueServiceImpl) ApplyPlan(ctx context.Context, plan model.PlanResult) ([]model.Entry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	seated := make([]model.Entry, 0, len(plan.Assignments))
	for _, a := range plan.Assignments {
		entry, err := s.UpdateStatus(ctx, a.Party.ID, model.StatusSeated)
		if errors.Is(err, ErrEntryNotFound) {
			log.Warn().Int64("entry_id", a.Party.ID).Int("table_id", a.TableID).Msg("planned party left the queue, skipping")
			continue
		}
		if err != nil {
			return seated, err
		}
		seated = append(seated, *entry)
	}
	return seated, nil
}

// estimate fills the wait estimate. A failed count leaves it at zero; the
// estimate is advisory and must not fail a mutation that already happened.
func (s *QueueServiceImpl) estimate(ctx context.Context, entry *model.Entry) {
	entry.EstimatedWaitMinutes = 0
	if entry.Status != model.StatusWaiting {
		return
	}
	ahead, err := s.repo.CountWaitingBefore(ctx, entry.JoinedAt)
	if err != nil {
		log.Warn().Err(err).Int64("entry_id", entry.ID).Msg("failed to estimate wait")
		return
	}
	entry.EstimatedWaitMinutes = int(ahead) * s.waitPerParty
}

func entryErr(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("entry %d: %w", id, ErrEntryNotFound)
	}
	return fmt.Errorf("entry %d: %w", id, err)
}
