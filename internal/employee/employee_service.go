package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/eventstore"
	"go-hrm/internal/shared/contextutil"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ProfileKeyPrefix = "employees:profile:"
	profileCacheTTL  = 10 * time.Minute

	ImportActorID = "system:import"
)

func ProfileCacheKey(employeeID string) string {
	return ProfileKeyPrefix + employeeID
}

// RoleAssigner replaces an employee's role assignments inside tx.
type RoleAssigner interface {
	AssignRolesTx(ctx context.Context, tx *sql.Tx, employeeID string, roles []string) error
}

// PendingRequestLookup reports the employee's open sensitive change.
type PendingRequestLookup interface {
	PendingRequest(ctx context.Context, employeeID string) (*PendingRequest, error)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateEmployeeRequest) (ProfileResponse, error)
	Import(ctx context.Context, ev events.EmployeeImportedEvent) error
	GetMyProfile(ctx context.Context, employeeID string) (ProfileResponse, error)
	UpdateBasicInfo(ctx context.Context, employeeID string, req UpdateBasicInfoRequest) (UpdateResult, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	store   eventstore.Store
	roles   RoleAssigner
	pending PendingRequestLookup
	rdb     *redis.Client
	sf      *singleflight.Group
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	store eventstore.Store,
	roles RoleAssigner,
	pending PendingRequestLookup,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		store:   store,
		roles:   roles,
		pending: pending,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateEmployeeRequest) (ProfileResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	empl := &Employee{
		ID:                uuid.New(),
		FullName:          strings.TrimSpace(req.FullName),
		Email:             strings.TrimSpace(req.Email),
		Phone:             req.Phone,
		Address:           req.Address,
		PersonalEmail:     req.PersonalEmail,
		TaxID:             req.TaxID,
		BankAccountNumber: req.BankAccountNumber,
		AvatarURL:         req.AvatarURL,
	}
	contacts := toContacts(req.EmergencyContacts)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return ProfileResponse{}, mapRepositoryError(err)
	}
	if err := qtx.ReplaceEmergencyContacts(ctx, empl.ID.String(), contacts); err != nil {
		s.logger.Error("create employee contacts persist failed", zap.Error(err))
		return ProfileResponse{}, mapRepositoryError(err)
	}
	empl.EmergencyContacts = contacts

	if s.roles != nil && len(req.Roles) > 0 {
		if err := s.roles.AssignRolesTx(ctx, tx, empl.ID.String(), req.Roles); err != nil {
			s.logger.Error("create employee assign roles failed", zap.Error(err))
			return ProfileResponse{}, err
		}
	}

	if _, err := s.store.AppendTx(ctx, tx, empl.ID.String(), eventstore.EventCreated,
		eventstore.SnapshotPayload{Snapshot: toSnapshot(empl)}, actorID); err != nil {
		s.logger.Error("create employee append event failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return ProfileResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToProfile(*empl), nil
}

// Import loads an employee published by the upstream directory. A
// repeated import overwrites the row and records another snapshot.
func (s *service) Import(ctx context.Context, ev events.EmployeeImportedEvent) error {
	id, err := uuid.Parse(ev.EmployeeID)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl := &Employee{
		ID:                id,
		FullName:          ev.FullName,
		Email:             ev.Email,
		Phone:             ev.Phone,
		Address:           ev.Address,
		PersonalEmail:     ev.PersonalEmail,
		TaxID:             ev.TaxID,
		BankAccountNumber: ev.BankAccountNumber,
		AvatarURL:         ev.AvatarURL,
	}

	existing, err := qtx.FindByID(ctx, ev.EmployeeID)
	switch mapped := mapRepositoryError(err); {
	case mapped == nil:
		empl.CreatedAt = existing.CreatedAt
		err = qtx.Save(ctx, empl)
	case errors.Is(mapped, employeeerrors.ErrEmployeeNotFound):
		err = qtx.Create(ctx, empl)
	default:
		return mapped
	}
	if err != nil {
		s.logger.Error("import employee persist failed", zap.String("employee_id", ev.EmployeeID), zap.Error(err))
		return mapRepositoryError(err)
	}

	contacts := make([]EmergencyContact, 0, len(ev.EmergencyContacts))
	for _, c := range ev.EmergencyContacts {
		contacts = append(contacts, EmergencyContact{Name: c.Name, Phone: c.Phone, Relation: c.Relation})
	}
	if err := qtx.ReplaceEmergencyContacts(ctx, ev.EmployeeID, contacts); err != nil {
		return mapRepositoryError(err)
	}
	empl.EmergencyContacts = contacts

	if s.roles != nil {
		if err := s.roles.AssignRolesTx(ctx, tx, ev.EmployeeID, ev.Roles); err != nil {
			return err
		}
	}

	if _, err := s.store.AppendTx(ctx, tx, ev.EmployeeID, eventstore.EventImported,
		eventstore.SnapshotPayload{Snapshot: toSnapshot(empl)}, ImportActorID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateProfile(ctx, ev.EmployeeID)
	s.logger.Info("import employee success",
		zap.String("request_id", ev.RequestID),
		zap.String("employee_id", ev.EmployeeID),
	)
	return nil
}

func (s *service) GetMyProfile(ctx context.Context, employeeID string) (ProfileResponse, error) {
	cacheKey := ProfileCacheKey(employeeID)

	profile, ok := s.cachedProfile(ctx, cacheKey)
	if !ok {
		v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
			empl, err := s.repo.FindByID(ctx, employeeID)
			if err != nil {
				return nil, mapRepositoryError(err)
			}
			resp := mapToProfile(*empl)

			if s.rdb != nil {
				if data, err := json.Marshal(resp); err == nil {
					s.rdb.Set(ctx, cacheKey, data, profileCacheTTL)
				}
			}
			return resp, nil
		})
		if err != nil {
			if !errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
				s.logger.Error("get profile failed", zap.String("employee_id", employeeID), zap.Error(err))
			}
			return ProfileResponse{}, err
		}
		profile = v.(ProfileResponse)
	}

	if s.pending != nil {
		pending, err := s.pending.PendingRequest(ctx, employeeID)
		if err != nil {
			s.logger.Error("get profile pending request failed", zap.String("employee_id", employeeID), zap.Error(err))
			return ProfileResponse{}, err
		}
		profile.SensitiveInfo.PendingRequest = pending
	}
	return profile, nil
}

func (s *service) cachedProfile(ctx context.Context, key string) (ProfileResponse, bool) {
	if s.rdb == nil {
		return ProfileResponse{}, false
	}
	cached, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return ProfileResponse{}, false
	}
	var resp ProfileResponse
	if json.Unmarshal([]byte(cached), &resp) != nil {
		return ProfileResponse{}, false
	}
	return resp, true
}

func (s *service) invalidateProfile(ctx context.Context, employeeID string) {
	if s.rdb == nil {
		return
	}
	key := ProfileCacheKey(employeeID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate profile cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) UpdateBasicInfo(ctx context.Context, employeeID string, req UpdateBasicInfoRequest) (UpdateResult, error) {
	rid := contextutil.GetRequestID(ctx)

	if err := validateBasicInfo(req); err != nil {
		return UpdateResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update basic info begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UpdateResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	current, err := qtx.FindByID(ctx, employeeID)
	if err != nil {
		return UpdateResult{}, mapRepositoryError(err)
	}

	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)
	personalEmail := strings.TrimSpace(req.PersonalEmail)

	changes := map[string]eventstore.FieldDiff{}
	diffField(changes, eventstore.FieldPhone, current.Phone, phone)
	diffField(changes, eventstore.FieldAddress, current.Address, address)
	diffField(changes, eventstore.FieldPersonalEmail, current.PersonalEmail, personalEmail)

	if len(changes) > 0 {
		if err := qtx.UpdateBasicInfo(ctx, employeeID, phone, address, personalEmail); err != nil {
			return UpdateResult{}, mapRepositoryError(err)
		}
		if _, err := s.store.AppendTx(ctx, tx, employeeID, eventstore.EventInfoUpdated,
			eventstore.FieldDiffPayload{Changes: changes}, employeeID); err != nil {
			s.logger.Error("update basic info append event failed", zap.Error(err))
			return UpdateResult{}, err
		}
	}

	newContacts := toContacts(req.EmergencyContacts)
	oldSnapshot := snapshotContacts(current.EmergencyContacts)
	newSnapshot := snapshotContacts(newContacts)
	contactsChanged := !sameContacts(oldSnapshot, newSnapshot)
	if contactsChanged {
		if err := qtx.ReplaceEmergencyContacts(ctx, employeeID, newContacts); err != nil {
			return UpdateResult{}, mapRepositoryError(err)
		}
		if _, err := s.store.AppendTx(ctx, tx, employeeID, eventstore.EventEmergencyContactsUpdated,
			eventstore.ContactsReplacedPayload{Old: oldSnapshot, New: newSnapshot}, employeeID); err != nil {
			s.logger.Error("update contacts append event failed", zap.Error(err))
			return UpdateResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return UpdateResult{}, err
	}

	s.invalidateProfile(ctx, employeeID)
	s.logger.Info("update basic info success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("changed_fields", len(changes)),
		zap.Bool("contacts_changed", contactsChanged),
	)

	return UpdateResult{
		Success:   true,
		Message:   "Profile updated successfully",
		UpdatedAt: s.now(),
	}, nil
}

func validateBasicInfo(req UpdateBasicInfoRequest) error {
	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Address) == "" {
		return employeeerrors.ErrPhoneAndAddressRequired
	}
	if len(req.EmergencyContacts) == 0 {
		return employeeerrors.ErrEmergencyContactRequired
	}
	for _, c := range req.EmergencyContacts {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Phone) == "" || strings.TrimSpace(c.Relation) == "" {
			return employeeerrors.ErrEmergencyContactIncomplete
		}
	}
	return nil
}

func diffField(changes map[string]eventstore.FieldDiff, field, before, after string) {
	if before != after {
		changes[field] = eventstore.FieldDiff{Old: before, New: after}
	}
}

func sameContacts(a, b []eventstore.EmergencyContact) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
