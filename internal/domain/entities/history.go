package entities

import "time"

// Lifecycle replaces the free-text "soft_deleted" status of the portal records.
// A record is either active or soft deleted; both transitions leave a history entry.
type Lifecycle string

const (
	LifecycleActive      Lifecycle = "active"
	LifecycleSoftDeleted Lifecycle = "soft_deleted"
)

type HistoryAction string

const (
	HistoryActionCreated     HistoryAction = "created"
	HistoryActionUpdated     HistoryAction = "updated"
	HistoryActionSoftDeleted HistoryAction = "soft_deleted"
	HistoryActionRestored    HistoryAction = "restored"
	HistoryActionAccepted    HistoryAction = "accepted"
	HistoryActionRejected    HistoryAction = "rejected"
)

// EditHistoryEntry is appended on every mutation of a record and never removed.
type EditHistoryEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"user_id"`
	UserName  string         `json:"user_name"`
	Action    HistoryAction  `json:"action"`
	Changes   map[string]any `json:"changes,omitempty"`
}

// Actor identifies who performed a mutation. External parties acting through an
// acceptance link are recorded with the party id and role as the actor.
type Actor struct {
	UserID   string
	UserName string
}
