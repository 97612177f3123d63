package eventstore

import "go-hrm/internal/shared/mask"

var maskedFields = map[string]bool{
	FieldTaxID:             true,
	FieldBankAccountNumber: true,
}

func maskSnapshot(s EmployeeSnapshot) EmployeeSnapshot {
	out := s.clone()
	out.TaxID = mask.Sensitive(s.TaxID)
	out.BankAccountNumber = mask.Sensitive(s.BankAccountNumber)
	return out
}

func maskChanges(in map[string]FieldDiff) map[string]FieldDiff {
	out := make(map[string]FieldDiff, len(in))
	for field, d := range in {
		if maskedFields[field] {
			d = FieldDiff{Old: mask.Sensitive(d.Old), New: mask.Sensitive(d.New)}
		}
		out[field] = d
	}
	return out
}

// MaskPayload returns a copy of p with tax id and bank account values
// starred out. Contact payloads pass through unchanged.
func MaskPayload(p Payload) Payload {
	switch v := p.(type) {
	case SnapshotPayload:
		return SnapshotPayload{Snapshot: maskSnapshot(v.Snapshot)}
	case FieldDiffPayload:
		return FieldDiffPayload{Changes: maskChanges(v.Changes)}
	case SensitiveRequestPayload:
		v.Changes = maskChanges(v.Changes)
		return v
	case SensitiveDecisionPayload:
		v.Changes = maskChanges(v.Changes)
		return v
	default:
		return p
	}
}

// MaskState hides sensitive values of a replayed state.
func MaskState(s EmployeeState) EmployeeState {
	s.EmployeeSnapshot = maskSnapshot(s.EmployeeSnapshot)
	return s
}
