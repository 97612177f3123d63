package app

import (
	"go-hrm/internal/employee"
	"go-hrm/internal/eventstore"
	"go-hrm/internal/rbac"
	"go-hrm/internal/sensitiverequest"

	"gorm.io/gorm"
)

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_due ON outbox_events (status, next_retry_at, created_at);
`

// Migrate creates the tables this service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&employee.EmergencyContact{},
		&rbac.Role{},
		&rbac.EmployeeRole{},
		&eventstore.EmployeeEvent{},
		&eventstore.AggregateSequence{},
		&sensitiverequest.RequestGroup{},
		&sensitiverequest.ChangeProposal{},
	); err != nil {
		return err
	}
	return db.Exec(outboxDDL).Error
}
