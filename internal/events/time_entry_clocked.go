package events

import "time"

const TimeEntryClockedTopic = "time.entry.lifecycle.v1"

const (
	EventTypeClockIn  = "clock_in"
	EventTypeClockOut = "clock_out"
)

type TimeEntryClockedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EntryID      string    `json:"entry_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	OccurredAt   time.Time `json:"occurred_at"`
}
