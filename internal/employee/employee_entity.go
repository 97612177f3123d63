package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName          string    `gorm:"not null"`
	Email             string    `gorm:"uniqueIndex:uq_employee_email;not null"`
	Phone             string
	Address           string
	PersonalEmail     string
	TaxID             string
	BankAccountNumber string
	AvatarURL         string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	EmergencyContacts []EmergencyContact `gorm:"foreignKey:EmployeeID"`
}

func (Employee) TableName() string { return "employees" }

type EmergencyContact struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string    `gorm:"not null"`
	Phone      string    `gorm:"not null"`
	Relation   string    `gorm:"not null"`
	Position   int       `gorm:"not null"`
}

func (EmergencyContact) TableName() string { return "employee_emergency_contacts" }
