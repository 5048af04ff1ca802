// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/guttosm/waitlist-service/internal/domain/model"
)

const maxNameLength = 100

// CreateEntryRequest represents the JSON request body for joining the queue.
//
// @Description Request to join the waitlist
// @Example {"name": "Rivera", "party_size": 4, "phone_number": "555-0100"}
type CreateEntryRequest struct {
	// Name is the name the party is called by.
	Name string `json:"name" binding:"required" example:"Rivera"`
	// PartySize is the number of guests. Must be greater than 0.
	PartySize int `json:"party_size" binding:"required,gt=0" example:"4" minimum:"1"`
	// PhoneNumber is optional, used to notify the party.
	PhoneNumber *string `json:"phone_number,omitempty" example:"555-0100"`
} // @name CreateEntryRequest

// UpdateStatusRequest represents the JSON request body for changing an entry status.
//
// @Description Request to change the status of a queue entry
// @Example {"status": "seated"}
type UpdateStatusRequest struct {
	Status model.Status `json:"status" binding:"required" example:"seated" enums:"waiting,seated,no_show,cancelled"`
} // @name UpdateStatusRequest

// TableInput describes a table in a planning request. ID is optional for
// optimize requests; missing ids are numbered from 1 in input order.
type TableInput struct {
	ID       *int `json:"id,omitempty" example:"3"`
	Capacity int  `json:"capacity" example:"4"`
	Occupied bool `json:"occupied,omitempty"`
} // @name TableInput

// OptimizeRequest is the optional body of the optimize endpoint.
// An empty body plans against the configured table inventory.
//
// @Description Tables to plan the current waitlist against
// @Example {"tables": [{"id": 1, "capacity": 2}, {"id": 2, "capacity": 4}]}
type OptimizeRequest struct {
	Tables []TableInput `json:"tables"`
} // @name OptimizeRequest

// PlanRequest represents a stateless planning request.
//
// @Description Parties and tables for a stateless seating plan
// @Example {"parties": [{"id": 1, "size": 5}, {"id": 2, "size": 2}], "tables": [{"id": 1, "capacity": 2}, {"id": 2, "capacity": 6}]}
type PlanRequest struct {
	Parties []model.Party `json:"parties" binding:"required"`
	Tables  []TableInput  `json:"tables"`
} // @name PlanRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidName is returned when the party name is blank or too long.
	ErrInvalidName = &ValidationError{
		Field:   "name",
		Message: "must be between 1 and 100 characters",
	}
	// ErrInvalidPartySize is returned when party_size is invalid.
	ErrInvalidPartySize = &ValidationError{
		Field:   "party_size",
		Message: "must be a positive integer",
	}
	// ErrInvalidStatus is returned when status is not a known queue status.
	ErrInvalidStatus = &ValidationError{
		Field:   "status",
		Message: "must be one of waiting, seated, no_show, cancelled",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Name is trimmed in place.
func (r *CreateEntryRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" || len(r.Name) > maxNameLength {
		return ErrInvalidName
	}
	if r.PartySize <= 0 {
		return ErrInvalidPartySize
	}
	if r.PhoneNumber != nil {
		phone := strings.TrimSpace(*r.PhoneNumber)
		if phone == "" {
			r.PhoneNumber = nil
		} else {
			r.PhoneNumber = &phone
		}
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *UpdateStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// ToTables converts the table inputs into planner tables.
// Tables without an id are numbered by their 1-based position.
func ToTables(inputs []TableInput) []model.Table {
	tables := make([]model.Table, len(inputs))
	for i, in := range inputs {
		id := i + 1
		if in.ID != nil {
			id = *in.ID
		}
		tables[i] = model.Table{ID: id, Capacity: in.Capacity, Occupied: in.Occupied}
	}
	return tables
}
