package events

import "time"

const EmployeeChangedTopic = "hr.employee.events.v1"

// EmployeeChangedEvent announces that an employee event was appended.
// It carries metadata only; consumers replay the aggregate for values.
type EmployeeChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EmployeeID     string    `json:"employee_id"`
	SequenceNumber int64     `json:"sequence_number"`
	ChangeType     string    `json:"change_type"`
	ActorID        string    `json:"actor_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
