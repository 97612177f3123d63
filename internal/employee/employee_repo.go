package employee

import (
	"context"
	"database/sql"
	"fmt"

	"go-hrm/internal/eventstore"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sensitiveColumns maps event field names to the columns an approved
// sensitive change may write.
var sensitiveColumns = map[string]string{
	eventstore.FieldTaxID:             "tax_id",
	eventstore.FieldBankAccountNumber: "bank_account_number",
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	Save(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	UpdateBasicInfo(ctx context.Context, id string, phone, address, personalEmail string) error
	ReplaceEmergencyContacts(ctx context.Context, id string, contacts []EmergencyContact) error
	UpdateSensitiveFields(ctx context.Context, id string, values map[string]string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

// Save overwrites the employee row; contacts are handled separately.
func (r *repository) Save(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Omit("EmergencyContacts").Save(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Preload("EmergencyContacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) UpdateBasicInfo(ctx context.Context, id string, phone, address, personalEmail string) error {
	res := r.conn(ctx).Model(&Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"phone":          phone,
			"address":        address,
			"personal_email": personalEmail,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ReplaceEmergencyContacts(ctx context.Context, id string, contacts []EmergencyContact) error {
	db := r.conn(ctx)
	if err := db.Where("employee_id = ?", id).Delete(&EmergencyContact{}).Error; err != nil {
		return err
	}
	if len(contacts) == 0 {
		return nil
	}

	employeeID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	rows := make([]EmergencyContact, len(contacts))
	for i, c := range contacts {
		c.ID = uuid.New()
		c.EmployeeID = employeeID
		c.Position = i
		rows[i] = c
	}
	return db.Create(&rows).Error
}

func (r *repository) UpdateSensitiveFields(ctx context.Context, id string, values map[string]string) error {
	updates := make(map[string]any, len(values))
	for field, v := range values {
		col, ok := sensitiveColumns[field]
		if !ok {
			return fmt.Errorf("field %q is not a sensitive column", field)
		}
		updates[col] = v
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.conn(ctx).Model(&Employee{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
