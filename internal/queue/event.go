// Package queue defines message payloads exchanged over the message broker.
package queue

// TaskChangedEvent is published after a create, update or delete against one
// of the task collections succeeds on the spreadsheet backend.  It carries
// enough information for downstream consumers to write an audit line without
// re-reading the sheet.
type TaskChangedEvent struct {
    Collection string `json:"collection"` // RepairTasks | WorkTasks | Users
    Action     string `json:"action"`     // create | update | delete
    EntityID   string `json:"entity_id"`
    Summary    string `json:"summary"` // short human-readable description
    Actor      string `json:"actor"`   // user id of the session that made the change
    OccurredAt string `json:"occurred_at"`
}
