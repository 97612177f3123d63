package eventstore

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=event_repo.go -destination=mock/event_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	NextSequence(ctx context.Context, aggregateID string) (int64, error)
	Insert(ctx context.Context, event *EmployeeEvent) error
	ListByAggregate(ctx context.Context, aggregateID string, upTo *int64) ([]EmployeeEvent, error)
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

// conn runs statements on the caller's transaction when one is attached.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// NextSequence reserves the next sequence number for aggregateID. The
// counter row stays locked until the surrounding transaction ends, so
// concurrent appenders for the same aggregate queue up behind it. A
// missing counter row is seeded from the highest stored event.
func (r *repository) NextSequence(ctx context.Context, aggregateID string) (int64, error) {
	var next int64
	err := r.conn(ctx).Raw(`
		INSERT INTO aggregate_sequences (aggregate_id, last_sequence, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(sequence_number), 0) + 1 FROM employee_events WHERE aggregate_id = ?), now())
		ON CONFLICT (aggregate_id) DO UPDATE
		SET last_sequence = aggregate_sequences.last_sequence + 1, updated_at = now()
		RETURNING last_sequence
	`, aggregateID, aggregateID).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *repository) Insert(ctx context.Context, event *EmployeeEvent) error {
	return mapRepositoryError(r.conn(ctx).Create(event).Error)
}

func (r *repository) ListByAggregate(ctx context.Context, aggregateID string, upTo *int64) ([]EmployeeEvent, error) {
	var events []EmployeeEvent
	q := r.conn(ctx).Where("aggregate_id = ?", aggregateID)
	if upTo != nil {
		q = q.Where("sequence_number <= ?", *upTo)
	}
	err := q.Order("sequence_number ASC").Find(&events).Error
	return events, err
}
