package eventstore_test

import (
	"testing"
	"time"

	"go-hrm/internal/eventstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type eventBuilder struct {
	t           *testing.T
	aggregateID string
	seq         int64
	events      []eventstore.EmployeeEvent
}

func newEventBuilder(t *testing.T) *eventBuilder {
	return &eventBuilder{t: t, aggregateID: uuid.NewString()}
}

func (b *eventBuilder) add(eventType eventstore.EventType, payload eventstore.Payload) *eventBuilder {
	b.t.Helper()
	b.seq++
	ev, err := eventstore.NewEvent(b.aggregateID, b.seq, eventType, payload, "actor-1", time.Unix(b.seq, 0))
	require.NoError(b.t, err)
	b.events = append(b.events, ev)
	return b
}

func (b *eventBuilder) raw(eventType eventstore.EventType, version int, body string) *eventBuilder {
	b.seq++
	b.events = append(b.events, eventstore.EmployeeEvent{
		ID:             uuid.New(),
		AggregateID:    b.aggregateID,
		SequenceNumber: b.seq,
		EventType:      eventType,
		Payload:        []byte(body),
		PayloadVersion: version,
	})
	return b
}

func baseSnapshot() eventstore.EmployeeSnapshot {
	return eventstore.EmployeeSnapshot{
		EmployeeID:        "emp-42",
		FullName:          "Budi Santoso",
		Email:             "budi@corp.example",
		Phone:             "0811",
		Address:           "Jl. Merdeka 1",
		TaxID:             "TAX-001",
		BankAccountNumber: "BANK-001",
		EmergencyContacts: []eventstore.EmergencyContact{{Name: "Sari", Phone: "0812", Relation: "Spouse"}},
	}
}

func fullHistory(t *testing.T) *eventBuilder {
	return newEventBuilder(t).
		add(eventstore.EventCreated, eventstore.SnapshotPayload{Snapshot: baseSnapshot()}).
		add(eventstore.EventInfoUpdated, eventstore.FieldDiffPayload{Changes: map[string]eventstore.FieldDiff{
			eventstore.FieldPhone:   {Old: "0811", New: "0899"},
			eventstore.FieldAddress: {Old: "Jl. Merdeka 1", New: "Jl. Sudirman 5"},
		}}).
		add(eventstore.EventEmergencyContactsUpdated, eventstore.ContactsReplacedPayload{
			Old: baseSnapshot().EmergencyContacts,
			New: []eventstore.EmergencyContact{{Name: "Andi", Phone: "0813", Relation: "Brother"}},
		}).
		add(eventstore.EventSensitiveInfoRequested, eventstore.SensitiveRequestPayload{
			GroupID: "g-1",
			Changes: map[string]eventstore.FieldDiff{eventstore.FieldBankAccountNumber: {Old: "BANK-001", New: "VN001"}},
		}).
		add(eventstore.EventSensitiveInfoApproved, eventstore.SensitiveDecisionPayload{
			GroupID:   "g-1",
			Changes:   map[string]eventstore.FieldDiff{eventstore.FieldBankAccountNumber: {Old: "BANK-001", New: "VN001"}},
			DecidedBy: "hr-manager",
		}).
		add(eventstore.EventInfoUpdated, eventstore.FieldDiffPayload{Changes: map[string]eventstore.FieldDiff{
			eventstore.FieldPersonalEmail: {Old: "", New: "budi@mail.example"},
		}})
}

func TestFold_AppliesEventsInOrder(t *testing.T) {
	b := fullHistory(t)

	state, ok := eventstore.Fold(b.events, zap.NewNop())

	require.True(t, ok)
	assert.Equal(t, "0899", state.Phone)
	assert.Equal(t, "Jl. Sudirman 5", state.Address)
	assert.Equal(t, "budi@mail.example", state.PersonalEmail)
	assert.Equal(t, []eventstore.EmergencyContact{{Name: "Andi", Phone: "0813", Relation: "Brother"}}, state.EmergencyContacts)
	// decision events are audit only
	assert.Equal(t, "BANK-001", state.BankAccountNumber)
	assert.Equal(t, int64(6), state.LastSequence)
	assert.Equal(t, 6, state.EventCount)
}

func TestFold_IsDeterministic(t *testing.T) {
	b := fullHistory(t)

	first, _ := eventstore.Fold(b.events, nil)
	second, _ := eventstore.Fold(b.events, nil)

	assert.Equal(t, first, second)
}

func TestFold_PrefixMatchesTruncatedHistory(t *testing.T) {
	b := fullHistory(t)

	for n := 1; n < len(b.events); n++ {
		prefix := append([]eventstore.EmployeeEvent(nil), b.events[:n]...)
		fromPrefix, _ := eventstore.Fold(prefix, nil)
		fromSlice, _ := eventstore.Fold(b.events[:n], nil)
		assert.Equal(t, fromPrefix, fromSlice, "prefix %d", n)
		assert.Equal(t, int64(n), fromPrefix.LastSequence)
	}

	afterTwo, _ := eventstore.Fold(b.events[:2], nil)
	assert.Equal(t, "0899", afterTwo.Phone)
	assert.Equal(t, "Sari", afterTwo.EmergencyContacts[0].Name)
}

func TestFold_SkipsUnknownEventTypeWithWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	b := newEventBuilder(t).
		add(eventstore.EventCreated, eventstore.SnapshotPayload{Snapshot: baseSnapshot()}).
		raw("EmployeeArchived", 1, `{"reason":"x"}`).
		add(eventstore.EventInfoUpdated, eventstore.FieldDiffPayload{Changes: map[string]eventstore.FieldDiff{
			eventstore.FieldPhone: {Old: "0811", New: "0822"},
		}})

	state, ok := eventstore.Fold(b.events, zap.New(core))

	require.True(t, ok)
	assert.Equal(t, "0822", state.Phone)
	assert.Equal(t, 1, logs.FilterMessage("replay skipped undecodable event").Len())
}

func TestFold_SkipsUnknownFieldAndKeepsKnownOnes(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	b := newEventBuilder(t).
		add(eventstore.EventCreated, eventstore.SnapshotPayload{Snapshot: baseSnapshot()}).
		add(eventstore.EventInfoUpdated, eventstore.FieldDiffPayload{Changes: map[string]eventstore.FieldDiff{
			"shoe_size":           {Old: "41", New: "42"},
			eventstore.FieldEmail: {Old: "budi@corp.example", New: "b.santoso@corp.example"},
		}})

	state, _ := eventstore.Fold(b.events, zap.New(core))

	assert.Equal(t, "b.santoso@corp.example", state.Email)
	assert.Equal(t, 1, logs.FilterMessage("replay skipped unknown field").Len())
}

func TestFold_SkipsUnsupportedPayloadVersion(t *testing.T) {
	b := newEventBuilder(t).
		add(eventstore.EventCreated, eventstore.SnapshotPayload{Snapshot: baseSnapshot()}).
		raw(eventstore.EventInfoUpdated, 9, `{"changes":{"phone":{"old":"0811","new":"0000"}}}`)

	state, ok := eventstore.Fold(b.events, nil)

	require.True(t, ok)
	assert.Equal(t, "0811", state.Phone)
	assert.Equal(t, int64(2), state.LastSequence)
}

func TestFold_DiffBeforeSnapshotIsIgnored(t *testing.T) {
	b := newEventBuilder(t).
		add(eventstore.EventInfoUpdated, eventstore.FieldDiffPayload{Changes: map[string]eventstore.FieldDiff{
			eventstore.FieldPhone: {Old: "", New: "0800"},
		}})

	state, ok := eventstore.Fold(b.events, nil)

	assert.False(t, ok)
	assert.Empty(t, state.Phone)
}

func TestFold_ImportedReplacesStateWholesale(t *testing.T) {
	imported := baseSnapshot()
	imported.FullName = "Budi S."
	imported.EmergencyContacts = nil

	b := newEventBuilder(t).
		add(eventstore.EventCreated, eventstore.SnapshotPayload{Snapshot: baseSnapshot()}).
		add(eventstore.EventInfoUpdated, eventstore.FieldDiffPayload{Changes: map[string]eventstore.FieldDiff{
			eventstore.FieldPhone: {Old: "0811", New: "0899"},
		}}).
		add(eventstore.EventImported, eventstore.SnapshotPayload{Snapshot: imported})

	state, _ := eventstore.Fold(b.events, nil)

	assert.Equal(t, "Budi S.", state.FullName)
	assert.Equal(t, "0811", state.Phone)
	assert.Nil(t, state.EmergencyContacts)
}

func TestFold_ContactsAreNotShared(t *testing.T) {
	b := newEventBuilder(t).
		add(eventstore.EventCreated, eventstore.SnapshotPayload{Snapshot: baseSnapshot()})

	first, _ := eventstore.Fold(b.events, nil)
	first.EmergencyContacts[0].Name = "mutated"

	second, _ := eventstore.Fold(b.events, nil)
	assert.Equal(t, "Sari", second.EmergencyContacts[0].Name)
}

func TestIsKnownField(t *testing.T) {
	assert.True(t, eventstore.IsKnownField(eventstore.FieldTaxID))
	assert.True(t, eventstore.IsKnownField(eventstore.FieldBankAccountNumber))
	assert.False(t, eventstore.IsKnownField("salary"))
}
