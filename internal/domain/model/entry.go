package model

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a queue entry.
type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusSeated    Status = "seated"
	StatusNoShow    Status = "no_show"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusSeated, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// Entry is a party waiting in the restaurant queue.
//
// @Description Queue entry
// @Example {"id": 7, "name": "Rivera", "party_size": 4, "phone_number": "555-0100", "joined_at": "2025-01-28T19:00:00Z", "status": "waiting", "estimated_wait_minutes": 20}
type Entry struct {
	ID          int64     `bson:"_id" json:"id" example:"7"`
	Name        string    `bson:"name" json:"name" example:"Rivera"`
	PartySize   int       `bson:"party_size" json:"party_size" example:"4"`
	PhoneNumber *string   `bson:"phone_number,omitempty" json:"phone_number" example:"555-0100"`
	JoinedAt    time.Time `bson:"joined_at" json:"joined_at"`
	Status      Status    `bson:"status" json:"status" example:"waiting"`
	// EstimatedWaitMinutes is computed on read and never stored.
	EstimatedWaitMinutes int `bson:"-" json:"estimated_wait_minutes" example:"20"`
}

// Party converts the entry into planner input.
func (e Entry) Party() Party {
	return Party{ID: e.ID, Name: e.Name, Size: e.PartySize}
}

// Matches reports whether the entry name or phone contains term, ignoring case.
func (e Entry) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(e.Name), term) {
		return true
	}
	return e.PhoneNumber != nil && strings.Contains(strings.ToLower(*e.PhoneNumber), term)
}

// EntryFilter narrows a queue listing.
type EntryFilter struct {
	Status Status
	Search string
}
