package employee

import (
	"go-hrm/internal/eventstore"
	"go-hrm/internal/shared/mask"
	"strings"
)

func mapToProfile(empl Employee) ProfileResponse {
	contacts := make([]EmergencyContactResponse, 0, len(empl.EmergencyContacts))
	for _, c := range empl.EmergencyContacts {
		contacts = append(contacts, EmergencyContactResponse{Name: c.Name, Phone: c.Phone, Relation: c.Relation})
	}
	return ProfileResponse{
		ID:                empl.ID.String(),
		FullName:          empl.FullName,
		Email:             empl.Email,
		Phone:             empl.Phone,
		Address:           empl.Address,
		PersonalEmail:     empl.PersonalEmail,
		AvatarURL:         empl.AvatarURL,
		EmergencyContacts: contacts,
		SensitiveInfo: SensitiveInfoResponse{
			IDNumber:    mask.Sensitive(empl.TaxID),
			BankAccount: mask.Sensitive(empl.BankAccountNumber),
		},
	}
}

func toContacts(in []EmergencyContactRequest) []EmergencyContact {
	out := make([]EmergencyContact, 0, len(in))
	for _, c := range in {
		out = append(out, EmergencyContact{
			Name:     strings.TrimSpace(c.Name),
			Phone:    strings.TrimSpace(c.Phone),
			Relation: strings.TrimSpace(c.Relation),
		})
	}
	return out
}

func snapshotContacts(in []EmergencyContact) []eventstore.EmergencyContact {
	out := make([]eventstore.EmergencyContact, 0, len(in))
	for _, c := range in {
		out = append(out, eventstore.EmergencyContact{Name: c.Name, Phone: c.Phone, Relation: c.Relation})
	}
	return out
}

func toSnapshot(empl *Employee) eventstore.EmployeeSnapshot {
	return eventstore.EmployeeSnapshot{
		EmployeeID:        empl.ID.String(),
		FullName:          empl.FullName,
		Email:             empl.Email,
		Phone:             empl.Phone,
		Address:           empl.Address,
		PersonalEmail:     empl.PersonalEmail,
		TaxID:             empl.TaxID,
		BankAccountNumber: empl.BankAccountNumber,
		AvatarURL:         empl.AvatarURL,
		EmergencyContacts: snapshotContacts(empl.EmergencyContacts),
	}
}
