package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/metrics"
)

// SeatingService plans seating over supplied or live waitlists.
type SeatingService interface {
	// Plan runs the planner on the given parties. Nil tables means the configured inventory.
	Plan(parties []model.Party, tables []model.Table) (model.PlanResult, error)
	// Optimize plans the current waitlist and, when apply is set, seats the assigned parties.
	Optimize(ctx context.Context, tables []model.Table, apply bool) (model.PlanResult, error)
	// Tables returns a copy of the configured inventory.
	Tables() []model.Table
}

// PlanApplyError reports a plan whose application stopped part way. Seated
// lists the parties already marked seated before Err occurred.
type PlanApplyError struct {
	Seated []int64
	Err    error
}

func (e *PlanApplyError) Error() string {
	return fmt.Sprintf("apply plan: seated %d before failure: %v", len(e.Seated), e.Err)
}

func (e *PlanApplyError) Unwrap() error {
	return e.Err
}

// SeatingServiceImpl ties the planner to the queue and records plan metrics.
type SeatingServiceImpl struct {
	planner SeatingPlanner
	queue   QueueService
	tables  []model.Table
}

// NewSeatingService creates a seating service. Empty tables means DefaultTables.
func NewSeatingService(planner SeatingPlanner, queue QueueService, tables []model.Table) *SeatingServiceImpl {
	if len(tables) == 0 {
		tables = DefaultTables()
	}
	return &SeatingServiceImpl{
		planner: planner,
		queue:   queue,
		tables:  tables,
	}
}

// Tables returns a copy of the configured inventory.
func (s *SeatingServiceImpl) Tables() []model.Table {
	out := make([]model.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

// Plan runs the planner and records metrics.
func (s *SeatingServiceImpl) Plan(parties []model.Party, tables []model.Table) (model.PlanResult, error) {
	if tables == nil {
		tables = s.tables
	}

	start := time.Now()
	result, err := s.planner.Plan(parties, tables)
	if err != nil {
		metrics.RecordSeatingPlan(time.Since(start), "invalid", 0)
		return model.PlanResult{}, err
	}
	metrics.RecordSeatingPlan(time.Since(start), "success", result.Summary.WastedSeats)

	log.Debug().
		Int("parties", result.Summary.TotalWaiting).
		Int("seated", result.Summary.SeatedNow).
		Int("wasted_seats", result.Summary.WastedSeats).
		Msg("seating plan computed")
	return result, nil
}

// Optimize plans the waiting parties against tables. If applying the plan
// fails part way, the plan is returned with a *PlanApplyError.
func (s *SeatingServiceImpl) Optimize(ctx context.Context, tables []model.Table, apply bool) (model.PlanResult, error) {
	parties, err := s.queue.WaitingParties(ctx)
	if err != nil {
		return model.PlanResult{}, err
	}

	result, err := s.Plan(parties, tables)
	if err != nil {
		return model.PlanResult{}, err
	}

	if apply && len(result.Assignments) > 0 {
		seated, err := s.queue.ApplyPlan(ctx, result)
		if err != nil {
			applyErr := &PlanApplyError{Seated: entryIDs(seated), Err: err}
			log.Error().Err(err).Ints64("seated_ids", applyErr.Seated).Msg("seating plan partially applied")
			return result, applyErr
		}
		log.Info().Int("seated", len(seated)).Msg("seating plan applied")
	}
	return result, nil
}

func entryIDs(entries []model.Entry) []int64 {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
