// Package model defines the core domain entities for the waitlist service.
package model

// Party is a waiting group handed to the seating planner.
//
// @Description Party waiting to be seated
// @Example {"id": 1, "name": "Rivera", "size": 4}
type Party struct {
	// ID is the queue entry id the party was derived from
	ID int64 `json:"id" example:"1"`
	// Name is the name the party joined under
	Name string `json:"name,omitempty" example:"Rivera"`
	// Size is the number of guests, always positive
	Size int `json:"size" example:"4"`
}

// Table is a table as supplied to a planning run.
//
// @Description Table available for seating
// @Example {"id": 3, "capacity": 4}
type Table struct {
	ID       int  `json:"id" example:"3"`
	Capacity int  `json:"capacity" example:"4"`
	Occupied bool `json:"occupied,omitempty"`
}

// TableState is the state of a table at the end of a planning run.
type TableState struct {
	Table
	// AssignedParty is the party seated at this table during the run, if any.
	AssignedParty *Party `json:"assigned_party,omitempty"`
}

// Assignment records a party seated at a table.
//
// @Description Seating assignment of a party to a table
// @Example {"table_id": 6, "table_capacity": 6, "party": {"id": 1, "size": 5}, "waste": 1}
type Assignment struct {
	TableID       int   `json:"table_id" example:"6"`
	TableCapacity int   `json:"table_capacity" example:"6"`
	Party         Party `json:"party"`
	// Waste is the number of unused seats, TableCapacity - Party.Size
	Waste int `json:"waste" example:"1"`
}

// Candidate is a table considered for a party.
type Candidate struct {
	ID       int `json:"id"`
	Capacity int `json:"capacity"`
}

// TraceStep explains the decision taken for one party.
// ChosenTableID and Waste are nil when the party stayed unseated.
type TraceStep struct {
	Party         Party       `json:"party"`
	Candidates    []Candidate `json:"candidates"`
	ChosenTableID *int        `json:"chosen_table_id"`
	Waste         *int        `json:"waste"`
}

// Seated reports whether the step ended with a table assignment.
func (s TraceStep) Seated() bool {
	return s.ChosenTableID != nil
}

// PlanSummary aggregates a planning run.
type PlanSummary struct {
	TablesUsed   int `json:"tables_used" example:"3"`
	TotalTables  int `json:"total_tables" example:"12"`
	WastedSeats  int `json:"wasted_seats" example:"3"`
	TotalWaiting int `json:"total_waiting" example:"3"`
	SeatedNow    int `json:"seated_now" example:"3"`
}

// PlanResult is the complete outcome of a planning run.
//
// @Description Seating plan with assignments, unseated parties, decision trace and final table state
type PlanResult struct {
	Assignments   []Assignment `json:"assignments"`
	Unseated      []Party      `json:"unseated"`
	SortedParties []Party      `json:"sorted_parties"`
	Trace         []TraceStep  `json:"trace"`
	Summary       PlanSummary  `json:"summary"`
	Tables        []TableState `json:"tables"`
}

// EmptyPlan returns a plan over the given tables in which nobody was seated.
func EmptyPlan(tables []Table) PlanResult {
	states := make([]TableState, len(tables))
	used := 0
	for i, t := range tables {
		states[i] = TableState{Table: t}
		if t.Occupied {
			used++
		}
	}
	return PlanResult{
		Assignments:   []Assignment{},
		Unseated:      []Party{},
		SortedParties: []Party{},
		Trace:         []TraceStep{},
		Summary:       PlanSummary{TablesUsed: used, TotalTables: len(tables)},
		Tables:        states,
	}
}
