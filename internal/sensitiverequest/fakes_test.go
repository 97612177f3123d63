package sensitiverequest_test

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"go-hrm/internal/employee"
	"go-hrm/internal/eventstore"
	"go-hrm/internal/sensitiverequest"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================
// Ledger
// =========================================

type memoryRepo struct {
	mu     sync.Mutex
	groups map[string]*sensitiverequest.RequestGroup
	people map[uuid.UUID]sensitiverequest.Person
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		groups: map[string]*sensitiverequest.RequestGroup{},
		people: map[uuid.UUID]sensitiverequest.Person{},
	}
}

func cloneGroup(g sensitiverequest.RequestGroup) sensitiverequest.RequestGroup {
	g.Proposals = append([]sensitiverequest.ChangeProposal(nil), g.Proposals...)
	return g
}

func (r *memoryRepo) withPeople(g sensitiverequest.RequestGroup) sensitiverequest.RequestGroup {
	if p, ok := r.people[g.EmployeeID]; ok {
		g.Employee = &p
	}
	if g.ApproverID != nil {
		if p, ok := r.people[*g.ApproverID]; ok {
			g.Approver = &p
		}
	}
	return g
}

func (r *memoryRepo) WithTx(*sql.Tx) sensitiverequest.Repository { return r }

func (r *memoryRepo) CreateGroup(_ context.Context, g *sensitiverequest.RequestGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneGroup(*g)
	r.groups[g.ID.String()] = &cp
	return nil
}

func (r *memoryRepo) DiscardAwaitingOtp(_ context.Context, employeeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, g := range r.groups {
		if g.EmployeeID.String() == employeeID && g.Status == sensitiverequest.StatusAwaitingOtp {
			delete(r.groups, id)
			n++
		}
	}
	return n, nil
}

func (r *memoryRepo) FindGroupByID(_ context.Context, id string) (*sensitiverequest.RequestGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.withPeople(cloneGroup(*g))
	return &cp, nil
}

func (r *memoryRepo) TransitionGroup(_ context.Context, id, from, to string, stamp *sensitiverequest.DecisionStamp) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[id]
	if !ok || g.Status != from {
		return false, nil
	}
	g.Status = to
	if stamp != nil {
		approver := stamp.ApproverID
		decided := stamp.DecidedAt
		g.ApproverID = &approver
		g.DecidedAt = &decided
		g.DecisionReason = stamp.Reason
	}
	return true, nil
}

func (r *memoryRepo) UpdateProposalsStatus(_ context.Context, groupID, from, to string, stamp *sensitiverequest.DecisionStamp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[groupID]
	if !ok {
		return nil
	}
	for i := range g.Proposals {
		if g.Proposals[i].Status != from {
			continue
		}
		g.Proposals[i].Status = to
		if stamp != nil {
			approver := stamp.ApproverID
			decided := stamp.DecidedAt
			g.Proposals[i].ApproverID = &approver
			g.Proposals[i].DecidedAt = &decided
		}
	}
	return nil
}

func (r *memoryRepo) ListGroups(_ context.Context, q sensitiverequest.ListQuery) ([]sensitiverequest.RequestGroup, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	term := strings.ToLower(q.Search)
	var matched []sensitiverequest.RequestGroup
	for _, g := range r.groups {
		if g.Status == sensitiverequest.StatusAwaitingOtp {
			continue
		}
		if q.Status != "" && g.Status != q.Status {
			continue
		}
		if term != "" {
			p := r.people[g.EmployeeID]
			if !strings.Contains(strings.ToLower(p.FullName), term) && !strings.Contains(g.EmployeeID.String(), term) {
				continue
			}
		}
		matched = append(matched, r.withPeople(cloneGroup(*g)))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].RequestedAt.After(matched[j].RequestedAt)
	})

	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return []sensitiverequest.RequestGroup{}, total, nil
	}
	end := q.Offset + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[q.Offset:end], total, nil
}

func (r *memoryRepo) CountByStatus(context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, g := range r.groups {
		if g.Status != sensitiverequest.StatusAwaitingOtp {
			counts[g.Status]++
		}
	}
	return counts, nil
}

func (r *memoryRepo) LatestGroupWithStatus(_ context.Context, employeeID, status string) (*sensitiverequest.RequestGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *sensitiverequest.RequestGroup
	for _, g := range r.groups {
		if g.EmployeeID.String() != employeeID || g.Status != status {
			continue
		}
		if latest == nil || g.RequestedAt.After(latest.RequestedAt) {
			latest = g
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := cloneGroup(*latest)
	return &cp, nil
}

func (r *memoryRepo) group(id string) sensitiverequest.RequestGroup {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneGroup(*r.groups[id])
}

func (r *memoryRepo) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.groups)
}

// =========================================
// Employee directory
// =========================================

type memoryEmployees struct {
	mu     sync.Mutex
	rows   map[string]*employee.Employee
	writes int
}

func newMemoryEmployees(list ...employee.Employee) *memoryEmployees {
	m := &memoryEmployees{rows: map[string]*employee.Employee{}}
	for i := range list {
		e := list[i]
		m.rows[e.ID.String()] = &e
	}
	return m
}

func (m *memoryEmployees) WithTx(*sql.Tx) employee.Repository { return m }

func (m *memoryEmployees) Create(context.Context, *employee.Employee) error { return nil }

func (m *memoryEmployees) Save(context.Context, *employee.Employee) error { return nil }

func (m *memoryEmployees) FindByID(_ context.Context, id string) (*employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memoryEmployees) UpdateBasicInfo(context.Context, string, string, string, string) error {
	return nil
}

func (m *memoryEmployees) ReplaceEmergencyContacts(context.Context, string, []employee.EmergencyContact) error {
	return nil
}

func (m *memoryEmployees) UpdateSensitiveFields(_ context.Context, id string, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for field, v := range values {
		switch field {
		case eventstore.FieldTaxID:
			e.TaxID = v
		case eventstore.FieldBankAccountNumber:
			e.BankAccountNumber = v
		}
	}
	m.writes++
	return nil
}

func (m *memoryEmployees) get(id string) employee.Employee {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.rows[id]
}

// =========================================
// Event store
// =========================================

type recordedEvent struct {
	AggregateID string
	Sequence    int64
	Type        eventstore.EventType
	Payload     eventstore.Payload
	ActorID     string
}

type recordingStore struct {
	mu     sync.Mutex
	last   map[string]int64
	events []recordedEvent
}

func newRecordingStore() *recordingStore {
	return &recordingStore{last: map[string]int64{}}
}

func (s *recordingStore) seed(aggregateID string, n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[aggregateID] = n
}

func (s *recordingStore) Append(ctx context.Context, aggregateID string, t eventstore.EventType, p eventstore.Payload, actorID string) (int64, error) {
	return s.AppendTx(ctx, nil, aggregateID, t, p, actorID)
}

func (s *recordingStore) AppendTx(_ context.Context, _ *sql.Tx, aggregateID string, t eventstore.EventType, p eventstore.Payload, actorID string) (int64, error) {
	if _, _, err := eventstore.Encode(t, p); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[aggregateID]++
	seq := s.last[aggregateID]
	s.events = append(s.events, recordedEvent{
		AggregateID: aggregateID,
		Sequence:    seq,
		Type:        t,
		Payload:     p,
		ActorID:     actorID,
	})
	return seq, nil
}

func (s *recordingStore) Replay(context.Context, string, *int64) (eventstore.EmployeeState, error) {
	return eventstore.EmployeeState{}, nil
}

func (s *recordingStore) History(context.Context, string) ([]eventstore.EventRecord, error) {
	return nil, nil
}

func (s *recordingStore) ofType(t eventstore.EventType) []recordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []recordedEvent
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (s *recordingStore) highest(aggregateID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last[aggregateID]
}

// =========================================
// OTP challenges
// =========================================

type memoryChallenges struct {
	mu       sync.Mutex
	items    map[string]sensitiverequest.Challenge
	issueErr error
}

func newMemoryChallenges() *memoryChallenges {
	return &memoryChallenges{items: map[string]sensitiverequest.Challenge{}}
}

func (m *memoryChallenges) Issue(_ context.Context, c sensitiverequest.Challenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.issueErr != nil {
		return m.issueErr
	}
	m.items[c.EmployeeID] = c
	return nil
}

func (m *memoryChallenges) Get(_ context.Context, employeeID string) (*sensitiverequest.Challenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[employeeID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memoryChallenges) Consume(_ context.Context, c sensitiverequest.Challenge) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.items[c.EmployeeID]
	if !ok || cur.GroupID != c.GroupID || cur.Code != c.Code {
		return false, nil
	}
	delete(m.items, c.EmployeeID)
	return true, nil
}

func (m *memoryChallenges) Discard(_ context.Context, employeeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, employeeID)
	return nil
}

// =========================================
// Roles, clock, random
// =========================================

type fakeRoles map[string][]string

func (f fakeRoles) RolesOf(_ context.Context, employeeID string) ([]string, error) {
	return f[employeeID], nil
}

func (f fakeRoles) FirstHolderName(context.Context, string, string) (string, error) {
	return "", nil
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// repeatReader yields the same bytes forever, so every generated code is
// identical.
type repeatReader []byte

func (r repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r[i%len(r)]
	}
	return len(p), nil
}
