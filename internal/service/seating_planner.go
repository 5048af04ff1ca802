package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/domain/model"
)

// ErrInvalidPlanInput is matched by every PlanValidationError.
var ErrInvalidPlanInput = errors.New("invalid seating plan input")

// DefaultTableSpecs is the dining room used when no inventory is configured:
// 4 two-tops, 6 four-tops and 2 six-tops.
var DefaultTableSpecs = []config.TableSpec{
	{Capacity: 2, Count: 4},
	{Capacity: 4, Count: 6},
	{Capacity: 6, Count: 2},
}

// PlanValidationError reports the first party or table that made a plan impossible to compute.
type PlanValidationError struct {
	Kind  string // "party" or "table"
	ID    int64
	Value int
	Msg   string
}

func (e *PlanValidationError) Error() string {
	return fmt.Sprintf("%s %d: %s (got %d)", e.Kind, e.ID, e.Msg, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidPlanInput.
func (e *PlanValidationError) Unwrap() error {
	return ErrInvalidPlanInput
}

// SeatingPlanner assigns waiting parties to free tables.
type SeatingPlanner interface {
	Plan(parties []model.Party, tables []model.Table) (model.PlanResult, error)
}

// SeatingPlannerService implements SeatingPlanner with First-Fit-Decreasing:
// largest parties are placed first, each at the smallest free table that fits it.
// It holds no state and is safe for concurrent use.
type SeatingPlannerService struct{}

// NewSeatingPlanner creates a new SeatingPlannerService.
func NewSeatingPlanner() *SeatingPlannerService {
	return &SeatingPlannerService{}
}

// DefaultTables returns the default inventory with ids numbered from 1.
func DefaultTables() []model.Table {
	return TablesFromSpecs(DefaultTableSpecs)
}

// TablesFromSpecs expands capacity/count pairs into tables with sequential ids starting at 1.
// Falls back to DefaultTableSpecs when specs is empty.
func TablesFromSpecs(specs []config.TableSpec) []model.Table {
	if len(specs) == 0 {
		specs = DefaultTableSpecs
	}
	var tables []model.Table
	id := 1
	for _, spec := range specs {
		for i := 0; i < spec.Count; i++ {
			tables = append(tables, model.Table{ID: id, Capacity: spec.Capacity})
			id++
		}
	}
	return tables
}

// Plan computes a seating plan. Inputs are never mutated; the returned
// table states are a copy reflecting this run only.
func (s *SeatingPlannerService) Plan(parties []model.Party, tables []model.Table) (model.PlanResult, error) {
	if err := validatePlanInput(parties, tables); err != nil {
		return model.PlanResult{}, err
	}

	result := model.EmptyPlan(tables)
	result.Summary.TotalWaiting = len(parties)

	sorted := make([]model.Party, len(parties))
	copy(sorted, parties)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})
	result.SortedParties = sorted

	// Indexes into result.Tables ordered by capacity, input order on ties.
	byCapacity := make([]int, len(tables))
	for i := range byCapacity {
		byCapacity[i] = i
	}
	sort.SliceStable(byCapacity, func(i, j int) bool {
		return tables[byCapacity[i]].Capacity < tables[byCapacity[j]].Capacity
	})

	for _, party := range sorted {
		party := party
		candidates := make([]model.Candidate, 0)
		chosen := -1
		for _, idx := range byCapacity {
			st := result.Tables[idx]
			if st.Occupied || st.Capacity < party.Size {
				continue
			}
			if chosen < 0 {
				chosen = idx
			}
			candidates = append(candidates, model.Candidate{ID: st.ID, Capacity: st.Capacity})
		}

		step := model.TraceStep{Party: party, Candidates: candidates}
		if chosen < 0 {
			result.Unseated = append(result.Unseated, party)
			result.Trace = append(result.Trace, step)
			continue
		}

		table := &result.Tables[chosen]
		table.Occupied = true
		table.AssignedParty = &party

		tableID := table.ID
		waste := table.Capacity - party.Size
		step.ChosenTableID = &tableID
		step.Waste = &waste
		result.Trace = append(result.Trace, step)

		result.Assignments = append(result.Assignments, model.Assignment{
			TableID:       table.ID,
			TableCapacity: table.Capacity,
			Party:         party,
			Waste:         waste,
		})
		result.Summary.WastedSeats += waste
		result.Summary.TablesUsed++
	}

	result.Summary.SeatedNow = len(result.Assignments)
	return result, nil
}

func validatePlanInput(parties []model.Party, tables []model.Table) error {
	for _, p := range parties {
		if p.Size <= 0 {
			return &PlanValidationError{Kind: "party", ID: p.ID, Value: p.Size, Msg: "size must be positive"}
		}
	}
	seen := make(map[int]struct{}, len(tables))
	for _, t := range tables {
		if t.Capacity <= 0 {
			return &PlanValidationError{Kind: "table", ID: int64(t.ID), Value: t.Capacity, Msg: "capacity must be positive"}
		}
		if _, dup := seen[t.ID]; dup {
			return &PlanValidationError{Kind: "table", ID: int64(t.ID), Value: t.ID, Msg: "duplicate table id"}
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
