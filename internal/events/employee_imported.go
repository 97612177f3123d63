package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const EmployeeImportedEventType = "employee_imported"

type ImportedEmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// EmployeeImportedEvent is published by the upstream HR directory when an
// employee record is loaded into this service.
type EmployeeImportedEvent struct {
	EventType         string                     `json:"event_type"`
	RequestID         string                     `json:"request_id,omitempty"`
	EmployeeID        string                     `json:"employee_id"`
	FullName          string                     `json:"full_name"`
	Email             string                     `json:"email"`
	Phone             string                     `json:"phone"`
	Address           string                     `json:"address"`
	PersonalEmail     string                     `json:"personal_email"`
	TaxID             string                     `json:"tax_id"`
	BankAccountNumber string                     `json:"bank_account_number"`
	AvatarURL         string                     `json:"avatar_url"`
	Roles             []string                   `json:"roles"`
	EmergencyContacts []ImportedEmergencyContact `json:"emergency_contacts"`
	OccurredAt        time.Time                  `json:"occurred_at"`
}
