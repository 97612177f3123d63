package eventstore

import (
	"go.uber.org/zap"
)

// Fold replays events in the order given, starting from an empty state.
// It never fails: events it cannot apply are logged and skipped. The
// boolean reports whether a snapshot event was seen.
func Fold(events []EmployeeEvent, logger *zap.Logger) (EmployeeState, bool) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		state       EmployeeState
		initialized bool
	)

	for _, ev := range events {
		state.LastSequence = ev.SequenceNumber
		state.EventCount++

		payload, err := Decode(ev.EventType, ev.PayloadVersion, ev.Payload)
		if err != nil {
			logger.Warn("replay skipped undecodable event",
				zap.String("aggregate_id", ev.AggregateID),
				zap.Int64("sequence_number", ev.SequenceNumber),
				zap.String("event_type", string(ev.EventType)),
				zap.Int("payload_version", ev.PayloadVersion),
				zap.Error(err),
			)
			continue
		}

		switch p := payload.(type) {
		case SnapshotPayload:
			state.EmployeeSnapshot = p.Snapshot.clone()
			initialized = true
		case FieldDiffPayload:
			if !initialized {
				logger.Warn("replay skipped field diff before snapshot",
					zap.String("aggregate_id", ev.AggregateID),
					zap.Int64("sequence_number", ev.SequenceNumber),
				)
				continue
			}
			for field, diff := range p.Changes {
				if !applyField(&state.EmployeeSnapshot, field, diff.New) {
					logger.Warn("replay skipped unknown field",
						zap.String("aggregate_id", ev.AggregateID),
						zap.Int64("sequence_number", ev.SequenceNumber),
						zap.String("field", field),
					)
				}
			}
		case ContactsReplacedPayload:
			if !initialized {
				logger.Warn("replay skipped contacts update before snapshot",
					zap.String("aggregate_id", ev.AggregateID),
					zap.Int64("sequence_number", ev.SequenceNumber),
				)
				continue
			}
			state.EmergencyContacts = append([]EmergencyContact{}, p.New...)
		case SensitiveRequestPayload, SensitiveDecisionPayload:
			// audit only
		}
	}

	return state, initialized
}

func applyField(s *EmployeeSnapshot, field, value string) bool {
	switch field {
	case FieldFullName:
		s.FullName = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldAddress:
		s.Address = value
	case FieldPersonalEmail:
		s.PersonalEmail = value
	case FieldTaxID:
		s.TaxID = value
	case FieldBankAccountNumber:
		s.BankAccountNumber = value
	case FieldAvatarURL:
		s.AvatarURL = value
	default:
		return false
	}
	return true
}

// IsKnownField reports whether field is an employee field that replay
// knows how to apply.
func IsKnownField(field string) bool {
	var s EmployeeSnapshot
	return applyField(&s, field, "")
}
