package employee

import (
	"time"
)

type EmergencyContactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

type UpdateBasicInfoRequest struct {
	Phone             string                    `json:"phone"`
	Address           string                    `json:"address"`
	PersonalEmail     string                    `json:"personalEmail" binding:"omitempty,email"`
	EmergencyContacts []EmergencyContactRequest `json:"emergencyContacts"`
}

type CreateEmployeeRequest struct {
	FullName          string                    `json:"full_name" binding:"required"`
	Email             string                    `json:"email" binding:"required,email"`
	Phone             string                    `json:"phone"`
	Address           string                    `json:"address"`
	PersonalEmail     string                    `json:"personal_email" binding:"omitempty,email"`
	TaxID             string                    `json:"tax_id"`
	BankAccountNumber string                    `json:"bank_account_number"`
	AvatarURL         string                    `json:"avatar_url"`
	Roles             []string                  `json:"roles"`
	EmergencyContacts []EmergencyContactRequest `json:"emergency_contacts"`
}

type EmergencyContactResponse struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// PendingRequest is the employee's open sensitive change, if any.
type PendingRequest struct {
	RequestID string    `json:"requestId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type SensitiveInfoResponse struct {
	IDNumber       string          `json:"idNumber"`
	BankAccount    string          `json:"bankAccount"`
	PendingRequest *PendingRequest `json:"pendingRequest"`
}

type ProfileResponse struct {
	ID                string                     `json:"id"`
	FullName          string                     `json:"fullName"`
	Email             string                     `json:"email"`
	Phone             string                     `json:"phone"`
	Address           string                     `json:"address"`
	PersonalEmail     string                     `json:"personalEmail"`
	AvatarURL         string                     `json:"avatarUrl"`
	EmergencyContacts []EmergencyContactResponse `json:"emergencyContacts"`
	SensitiveInfo     SensitiveInfoResponse      `json:"sensitiveInfo"`
}

type UpdateResult struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updatedAt"`
}
