package sensitiverequest

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=sensitive_request_repo.go -destination=mock/sensitive_request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateGroup(ctx context.Context, g *RequestGroup) error
	DiscardAwaitingOtp(ctx context.Context, employeeID string) (int64, error)
	FindGroupByID(ctx context.Context, id string) (*RequestGroup, error)
	TransitionGroup(ctx context.Context, id, from, to string, stamp *DecisionStamp) (bool, error)
	UpdateProposalsStatus(ctx context.Context, groupID, from, to string, stamp *DecisionStamp) error
	ListGroups(ctx context.Context, q ListQuery) ([]RequestGroup, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	LatestGroupWithStatus(ctx context.Context, employeeID, status string) (*RequestGroup, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// CreateGroup inserts the group and its proposals.
func (r *repository) CreateGroup(ctx context.Context, g *RequestGroup) error {
	return r.conn(ctx).Omit("Employee", "Approver").Create(g).Error
}

// DiscardAwaitingOtp removes groups whose OTP was never verified.
func (r *repository) DiscardAwaitingOtp(ctx context.Context, employeeID string) (int64, error) {
	db := r.conn(ctx)
	stale := db.Model(&RequestGroup{}).
		Select("id").
		Where("employee_id = ? AND status = ?", employeeID, StatusAwaitingOtp)

	if err := db.Where("group_id IN (?)", stale).Delete(&ChangeProposal{}).Error; err != nil {
		return 0, err
	}
	res := r.conn(ctx).
		Where("employee_id = ? AND status = ?", employeeID, StatusAwaitingOtp).
		Delete(&RequestGroup{})
	return res.RowsAffected, res.Error
}

func (r *repository) FindGroupByID(ctx context.Context, id string) (*RequestGroup, error) {
	var g RequestGroup
	err := r.conn(ctx).
		Preload("Proposals", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_name ASC")
		}).
		Preload("Employee").
		Preload("Approver").
		First(&g, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// TransitionGroup moves the group only if it is still in from. The
// returned bool is false when another writer got there first.
func (r *repository) TransitionGroup(ctx context.Context, id, from, to string, stamp *DecisionStamp) (bool, error) {
	updates := map[string]any{"status": to}
	if stamp != nil {
		updates["approver_id"] = stamp.ApproverID
		updates["decided_at"] = stamp.DecidedAt
		updates["decision_reason"] = stamp.Reason
	}

	res := r.conn(ctx).
		Model(&RequestGroup{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) UpdateProposalsStatus(ctx context.Context, groupID, from, to string, stamp *DecisionStamp) error {
	updates := map[string]any{"status": to}
	if stamp != nil {
		updates["approver_id"] = stamp.ApproverID
		updates["decided_at"] = stamp.DecidedAt
	}

	return r.conn(ctx).
		Model(&ChangeProposal{}).
		Where("group_id = ? AND status = ?", groupID, from).
		Updates(updates).Error
}

// ListGroups never returns groups still waiting for their OTP.
func (r *repository) ListGroups(ctx context.Context, q ListQuery) ([]RequestGroup, int64, error) {
	base := r.conn(ctx).
		Model(&RequestGroup{}).
		Joins("JOIN employees ON employees.id = sensitive_request_groups.employee_id").
		Where("sensitive_request_groups.status <> ?", StatusAwaitingOtp)

	if q.Status != "" {
		base = base.Where("sensitive_request_groups.status = ?", q.Status)
	}
	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		like := "%" + term + "%"
		base = base.Where(
			"LOWER(employees.full_name) LIKE ? OR LOWER(employees.email) LIKE ? OR CAST(employees.id AS TEXT) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []RequestGroup
	err := base.Session(&gorm.Session{}).
		Select("sensitive_request_groups.*").
		Preload("Proposals", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_name ASC")
		}).
		Preload("Employee").
		Preload("Approver").
		Order("sensitive_request_groups.requested_at DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.conn(ctx).
		Model(&RequestGroup{}).
		Select("status, COUNT(*) AS total").
		Where("status <> ?", StatusAwaitingOtp).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *repository) LatestGroupWithStatus(ctx context.Context, employeeID, status string) (*RequestGroup, error) {
	var g RequestGroup
	err := r.conn(ctx).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Order("requested_at DESC").
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}
