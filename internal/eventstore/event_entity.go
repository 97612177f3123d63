package eventstore

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated                  EventType = "Created"
	EventImported                 EventType = "Imported"
	EventInfoUpdated              EventType = "InfoUpdated"
	EventEmergencyContactsUpdated EventType = "EmergencyContactsUpdated"
	EventSensitiveInfoRequested   EventType = "SensitiveInfoRequested"
	EventSensitiveInfoApproved    EventType = "SensitiveInfoApproved"
	EventSensitiveInfoRejected    EventType = "SensitiveInfoRejected"
)

// CurrentPayloadVersion is written on every new event.
const CurrentPayloadVersion = 1

// Employee field names used in diffs and replay.
const (
	FieldFullName          = "full_name"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldAddress           = "address"
	FieldPersonalEmail     = "personal_email"
	FieldTaxID             = "tax_id"
	FieldBankAccountNumber = "bank_account_number"
	FieldAvatarURL         = "avatar_url"
)

// EmployeeEvent is one immutable row of employee_events.
type EmployeeEvent struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AggregateID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_employee_event_sequence,priority:1"`
	SequenceNumber int64     `gorm:"not null;uniqueIndex:uq_employee_event_sequence,priority:2"`
	EventType      EventType `gorm:"type:text;not null"`
	Payload        []byte    `gorm:"type:jsonb;not null"`
	PayloadVersion int       `gorm:"not null;default:1"`
	ActorID        string
	OccurredAt     time.Time `gorm:"not null"`
}

func (EmployeeEvent) TableName() string { return "employee_events" }

// AggregateSequence holds the last sequence handed out per aggregate.
type AggregateSequence struct {
	AggregateID  string `gorm:"type:uuid;primaryKey"`
	LastSequence int64  `gorm:"not null"`
	UpdatedAt    time.Time
}

func (AggregateSequence) TableName() string { return "aggregate_sequences" }

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// EmployeeSnapshot is the full employee shape carried by Created/Imported.
type EmployeeSnapshot struct {
	EmployeeID        string             `json:"employee_id"`
	FullName          string             `json:"full_name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Address           string             `json:"address"`
	PersonalEmail     string             `json:"personal_email"`
	TaxID             string             `json:"tax_id"`
	BankAccountNumber string             `json:"bank_account_number"`
	AvatarURL         string             `json:"avatar_url"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
}

func (s EmployeeSnapshot) clone() EmployeeSnapshot {
	out := s
	if s.EmergencyContacts != nil {
		out.EmergencyContacts = append([]EmergencyContact(nil), s.EmergencyContacts...)
	}
	return out
}

// EmployeeState is the result of replaying an aggregate.
type EmployeeState struct {
	EmployeeSnapshot
	LastSequence int64 `json:"last_sequence"`
	EventCount   int   `json:"event_count"`
}

// EventRecord is an event with its payload decoded, for audit listings.
type EventRecord struct {
	AggregateID    string    `json:"aggregate_id"`
	SequenceNumber int64     `json:"sequence_number"`
	EventType      EventType `json:"event_type"`
	PayloadVersion int       `json:"payload_version"`
	Payload        Payload   `json:"payload"`
	ActorID        string    `json:"actor_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
