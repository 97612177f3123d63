package rbac

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	RolesOf(ctx context.Context, employeeID string) ([]string, error)
	FirstHolderName(ctx context.Context, role string, excludeEmployeeID string) (string, error)
	AssignRolesTx(ctx context.Context, tx *sql.Tx, employeeID string, roles []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RolesOf(ctx context.Context, employeeID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Select("roles.name").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Where("employee_roles.employee_id = ?", employeeID).
		Order("roles.name").
		Scan(&names).Error
	return names, err
}

func (r *repository) FirstHolderName(ctx context.Context, role string, excludeEmployeeID string) (string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Select("employees.full_name").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Joins("JOIN employees ON employees.id = employee_roles.employee_id").
		Where("roles.name = ?", role).
		Where("employee_roles.employee_id <> ?", excludeEmployeeID).
		Order("employees.full_name").
		Limit(1).
		Scan(&names).Error
	if err != nil || len(names) == 0 {
		return "", err
	}
	return names[0], nil
}

// AssignRolesTx replaces the employee's roles, creating unknown role names.
func (r *repository) AssignRolesTx(ctx context.Context, tx *sql.Tx, employeeID string, roles []string) error {
	db := r.db.WithContext(ctx)
	if tx != nil {
		db.Statement.ConnPool = tx
	}

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}

	if err := db.Where("employee_id = ?", empID).Delete(&EmployeeRole{}).Error; err != nil {
		return err
	}
	if len(roles) == 0 {
		return nil
	}

	rows := make([]Role, 0, len(roles))
	for _, name := range roles {
		rows = append(rows, Role{ID: uuid.New(), Name: name})
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error; err != nil {
		return err
	}

	var stored []Role
	if err := db.Where("name IN ?", roles).Find(&stored).Error; err != nil {
		return err
	}

	links := make([]EmployeeRole, 0, len(stored))
	for _, role := range stored {
		links = append(links, EmployeeRole{EmployeeID: empID, RoleID: role.ID})
	}
	return db.Create(&links).Error
}
