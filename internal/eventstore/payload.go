package eventstore

import (
	"encoding/json"
	"fmt"
	eventstoreerrors "go-hrm/internal/eventstore/errors"
	"time"

	"github.com/google/uuid"
)

// Payload is the tagged union of event bodies. Each concrete payload
// declares which event types it may be stored under.
type Payload interface {
	accepts(t EventType) bool
}

type FieldDiff struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// SnapshotPayload carries the full employee shape (Created, Imported).
type SnapshotPayload struct {
	Snapshot EmployeeSnapshot `json:"snapshot"`
}

// FieldDiffPayload carries changed simple fields (InfoUpdated).
type FieldDiffPayload struct {
	Changes map[string]FieldDiff `json:"changes"`
}

type ContactsReplacedPayload struct {
	Old []EmergencyContact `json:"old"`
	New []EmergencyContact `json:"new"`
}

// SensitiveRequestPayload is recorded once a request group passed OTP.
type SensitiveRequestPayload struct {
	GroupID     string               `json:"group_id"`
	Changes     map[string]FieldDiff `json:"changes"`
	RequestedAt time.Time            `json:"requested_at"`
}

// SensitiveDecisionPayload is the audit record of an approve/reject.
// Replay never applies it; approved values are written directly.
type SensitiveDecisionPayload struct {
	GroupID   string               `json:"group_id"`
	Changes   map[string]FieldDiff `json:"changes"`
	DecidedBy string               `json:"decided_by"`
	Reason    string               `json:"reason,omitempty"`
	DecidedAt time.Time            `json:"decided_at"`
}

func (SnapshotPayload) accepts(t EventType) bool {
	return t == EventCreated || t == EventImported
}

func (FieldDiffPayload) accepts(t EventType) bool {
	return t == EventInfoUpdated
}

func (ContactsReplacedPayload) accepts(t EventType) bool {
	return t == EventEmergencyContactsUpdated
}

func (SensitiveRequestPayload) accepts(t EventType) bool {
	return t == EventSensitiveInfoRequested
}

func (SensitiveDecisionPayload) accepts(t EventType) bool {
	return t == EventSensitiveInfoApproved || t == EventSensitiveInfoRejected
}

// Encode validates that payload belongs to eventType and serializes it
// at CurrentPayloadVersion.
func Encode(eventType EventType, payload Payload) ([]byte, int, error) {
	if payload == nil || !payload.accepts(eventType) {
		return nil, 0, eventstoreerrors.ErrPayloadMismatch
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return raw, CurrentPayloadVersion, nil
}

// Decode turns a stored body back into its concrete payload.
func Decode(eventType EventType, version int, raw []byte) (Payload, error) {
	if version != CurrentPayloadVersion {
		return nil, eventstoreerrors.ErrUnsupportedPayloadVersion
	}

	switch eventType {
	case EventCreated, EventImported:
		var p SnapshotPayload
		return decodeInto(eventType, raw, &p)
	case EventInfoUpdated:
		var p FieldDiffPayload
		return decodeInto(eventType, raw, &p)
	case EventEmergencyContactsUpdated:
		var p ContactsReplacedPayload
		return decodeInto(eventType, raw, &p)
	case EventSensitiveInfoRequested:
		var p SensitiveRequestPayload
		return decodeInto(eventType, raw, &p)
	case EventSensitiveInfoApproved, EventSensitiveInfoRejected:
		var p SensitiveDecisionPayload
		return decodeInto(eventType, raw, &p)
	default:
		return nil, eventstoreerrors.ErrUnknownEventType
	}
}

func decodeInto[T Payload](eventType EventType, raw []byte, dst *T) (Payload, error) {
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", eventType, err)
	}
	return *dst, nil
}

// NewEvent builds an unsaved event row for aggregateID.
func NewEvent(aggregateID string, sequence int64, eventType EventType, payload Payload, actorID string, now time.Time) (EmployeeEvent, error) {
	if _, err := uuid.Parse(aggregateID); err != nil {
		return EmployeeEvent{}, eventstoreerrors.ErrInvalidAggregateID
	}
	if sequence < 1 {
		return EmployeeEvent{}, eventstoreerrors.ErrInvalidSequence
	}
	raw, version, err := Encode(eventType, payload)
	if err != nil {
		return EmployeeEvent{}, err
	}
	return EmployeeEvent{
		ID:             uuid.New(),
		AggregateID:    aggregateID,
		SequenceNumber: sequence,
		EventType:      eventType,
		Payload:        raw,
		PayloadVersion: version,
		ActorID:        actorID,
		OccurredAt:     now.UTC(),
	}, nil
}
