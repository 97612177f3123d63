package sensitiverequest

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusAwaitingOtp      = "AWAITING_OTP"
	StatusAwaitingApproval = "AWAITING_APPROVAL"
	StatusApproved         = "APPROVED"
	StatusRejected         = "REJECTED"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// RequestGroup is one Submit call: the proposals in it are approved or
// rejected together.
type RequestGroup struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_sensitive_group_employee_requested,priority:1"`
	Status         string     `gorm:"type:varchar(32);not null;index"`
	RequestedAt    time.Time  `gorm:"not null;index:idx_sensitive_group_employee_requested,priority:2"`
	ApproverID     *uuid.UUID `gorm:"type:uuid"`
	DecidedAt      *time.Time
	DecisionReason string           `gorm:"type:text"`
	Proposals      []ChangeProposal `gorm:"foreignKey:GroupID"`
	Employee       *Person          `gorm:"foreignKey:EmployeeID"`
	Approver       *Person          `gorm:"foreignKey:ApproverID"`
}

func (RequestGroup) TableName() string { return "sensitive_request_groups" }

type ChangeProposal struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GroupID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_sensitive_proposal_employee_requested,priority:1"`
	FieldName   string     `gorm:"type:varchar(64);not null"`
	OldValue    string     `gorm:"type:text"`
	NewValue    string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(32);not null"`
	RequestedAt time.Time  `gorm:"not null;index:idx_sensitive_proposal_employee_requested,priority:2"`
	ApproverID  *uuid.UUID `gorm:"type:uuid"`
	DecidedAt   *time.Time
}

func (ChangeProposal) TableName() string { return "sensitive_change_proposals" }

// Person is the read-only view of an employee row used for names in
// listings.
type Person struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string
	Email    string
}

func (Person) TableName() string { return "employees" }

// DecisionStamp is written onto the group and its proposals by Decide.
type DecisionStamp struct {
	ApproverID uuid.UUID
	DecidedAt  time.Time
	Reason     string
}
