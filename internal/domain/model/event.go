package model

// EventKind names a queue mutation.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// ChangeEvent announces a queue mutation to real-time observers.
// Created and updated events carry the entry snapshot, deleted events only the id.
//
// @Description Queue change notification
// @Example {"event": "deleted", "id": 7}
type ChangeEvent struct {
	Event EventKind `json:"event" example:"updated"`
	Entry *Entry    `json:"entry,omitempty"`
	ID    int64     `json:"id,omitempty" example:"7"`
}

// EntryCreated builds the event published after an entry is stored.
func EntryCreated(e Entry) ChangeEvent {
	return ChangeEvent{Event: EventCreated, Entry: &e}
}

// EntryUpdated builds the event published after an entry changes.
func EntryUpdated(e Entry) ChangeEvent {
	return ChangeEvent{Event: EventUpdated, Entry: &e}
}

// EntryDeleted builds the event published after an entry is removed.
func EntryDeleted(id int64) ChangeEvent {
	return ChangeEvent{Event: EventDeleted, ID: id}
}
