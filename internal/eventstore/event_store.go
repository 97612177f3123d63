package eventstore

import (
	"context"
	"database/sql"
	"errors"
	"go-hrm/internal/events"
	eventstoreerrors "go-hrm/internal/eventstore/errors"
	"go-hrm/internal/eventstore/metrics"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/contextutil"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxAppendAttempts = 3

//go:generate mockgen -source=event_store.go -destination=mock/event_store_mock.go -package=mock
type Store interface {
	Append(ctx context.Context, aggregateID string, eventType EventType, payload Payload, actorID string) (int64, error)
	AppendTx(ctx context.Context, tx *sql.Tx, aggregateID string, eventType EventType, payload Payload, actorID string) (int64, error)
	Replay(ctx context.Context, aggregateID string, upTo *int64) (EmployeeState, error)
	History(ctx context.Context, aggregateID string) ([]EventRecord, error)
}

type Option func(*store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *store) {
		if logger != nil {
			s.logger = logger.Named("eventstore.store")
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *store) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithOutbox queues an EmployeeChangedEvent for every append.
func WithOutbox(outbox kafka.OutboxRepository, topic string) Option {
	return func(s *store) {
		s.outbox = outbox
		if topic != "" {
			s.topic = topic
		}
	}
}

type store struct {
	db      *sql.DB
	repo    Repository
	outbox  kafka.OutboxRepository
	topic   string
	locks   *aggregateLocks
	metrics *metrics.Metrics
	now     func() time.Time
	logger  *zap.Logger
}

func NewStore(db *sql.DB, repo Repository, opts ...Option) Store {
	s := &store{
		db:     db,
		repo:   repo,
		topic:  events.EmployeeChangedTopic,
		locks:  newAggregateLocks(),
		now:    time.Now,
		logger: zap.L().Named("eventstore.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append writes one event in its own transaction. Appends for the same
// aggregate are serialized in process; a sequence clash with another
// process restarts the whole transaction.
func (s *store) Append(
	ctx context.Context,
	aggregateID string,
	eventType EventType,
	payload Payload,
	actorID string,
) (int64, error) {
	release := s.locks.Lock(aggregateID)
	defer release()

	var lastErr error
	for attempt := 1; attempt <= maxAppendAttempts; attempt++ {
		seq, err := s.appendOnce(ctx, aggregateID, eventType, payload, actorID)
		if err == nil {
			return seq, nil
		}
		if !errors.Is(err, eventstoreerrors.ErrSequenceConflict) {
			return 0, err
		}
		lastErr = err
		s.metrics.IncrementConflict()
		s.logger.Warn("append sequence conflict, retrying",
			zap.String("aggregate_id", aggregateID),
			zap.String("event_type", string(eventType)),
			zap.Int("attempt", attempt),
		)
	}
	return 0, lastErr
}

func (s *store) appendOnce(
	ctx context.Context,
	aggregateID string,
	eventType EventType,
	payload Payload,
	actorID string,
) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("append begin tx failed", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	seq, err := s.AppendTx(ctx, tx, aggregateID, eventType, payload, actorID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("append commit failed", zap.String("aggregate_id", aggregateID), zap.Error(err))
		return 0, err
	}
	return seq, nil
}

// AppendTx writes one event inside the caller's transaction. The caller
// owns commit and rollback.
func (s *store) AppendTx(
	ctx context.Context,
	tx *sql.Tx,
	aggregateID string,
	eventType EventType,
	payload Payload,
	actorID string,
) (int64, error) {
	rid := contextutil.GetRequestID(ctx)

	// validate before reserving a number
	if _, _, err := Encode(eventType, payload); err != nil {
		s.logger.Warn("append rejected payload",
			zap.String("request_id", rid),
			zap.String("event_type", string(eventType)),
			zap.Error(err),
		)
		return 0, err
	}
	if _, err := uuid.Parse(aggregateID); err != nil {
		return 0, eventstoreerrors.ErrInvalidAggregateID
	}

	qtx := s.repo.WithTx(tx)
	seq, err := qtx.NextSequence(ctx, aggregateID)
	if err != nil {
		s.logger.Error("append reserve sequence failed",
			zap.String("request_id", rid),
			zap.String("aggregate_id", aggregateID),
			zap.Error(err),
		)
		return 0, err
	}

	now := s.now()
	event, err := NewEvent(aggregateID, seq, eventType, payload, actorID, now)
	if err != nil {
		return 0, err
	}
	if err := qtx.Insert(ctx, &event); err != nil {
		if !errors.Is(err, eventstoreerrors.ErrSequenceConflict) {
			s.logger.Error("append persist failed",
				zap.String("request_id", rid),
				zap.String("aggregate_id", aggregateID),
				zap.Int64("sequence_number", seq),
				zap.Error(err),
			)
		}
		return 0, err
	}

	if s.outbox != nil {
		row, err := kafka.NewEmployeeChangedOutbox(s.topic, events.EmployeeChangedEvent{
			RequestID:      rid,
			EmployeeID:     aggregateID,
			SequenceNumber: seq,
			ChangeType:     string(eventType),
			ActorID:        actorID,
			OccurredAt:     event.OccurredAt,
		})
		if err != nil {
			return 0, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
			s.logger.Error("append outbox persist failed",
				zap.String("aggregate_id", aggregateID),
				zap.Error(err),
			)
			return 0, err
		}
	}

	s.metrics.IncrementAppend(string(eventType))
	s.logger.Debug("event appended",
		zap.String("request_id", rid),
		zap.String("aggregate_id", aggregateID),
		zap.String("event_type", string(eventType)),
		zap.Int64("sequence_number", seq),
	)
	return seq, nil
}

func (s *store) Replay(ctx context.Context, aggregateID string, upTo *int64) (EmployeeState, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveReplay(time.Since(start)) }()

	if upTo != nil && *upTo < 1 {
		return EmployeeState{}, eventstoreerrors.ErrInvalidSequence
	}
	// id bukan UUID tidak mungkin punya event
	if _, err := uuid.Parse(aggregateID); err != nil {
		return EmployeeState{}, eventstoreerrors.ErrAggregateNotFound
	}

	list, err := s.repo.ListByAggregate(ctx, aggregateID, upTo)
	if err != nil {
		s.logger.Error("replay load events failed", zap.String("aggregate_id", aggregateID), zap.Error(err))
		return EmployeeState{}, err
	}
	if len(list) == 0 {
		return EmployeeState{}, eventstoreerrors.ErrAggregateNotFound
	}

	state, ok := Fold(list, s.logger)
	if !ok {
		s.logger.Warn("replay found no snapshot event", zap.String("aggregate_id", aggregateID))
		return EmployeeState{}, eventstoreerrors.ErrAggregateNotFound
	}
	return state, nil
}

func (s *store) History(ctx context.Context, aggregateID string) ([]EventRecord, error) {
	if _, err := uuid.Parse(aggregateID); err != nil {
		return nil, eventstoreerrors.ErrAggregateNotFound
	}
	list, err := s.repo.ListByAggregate(ctx, aggregateID, nil)
	if err != nil {
		s.logger.Error("history load events failed", zap.String("aggregate_id", aggregateID), zap.Error(err))
		return nil, err
	}
	if len(list) == 0 {
		return nil, eventstoreerrors.ErrAggregateNotFound
	}

	out := make([]EventRecord, 0, len(list))
	for _, ev := range list {
		rec := EventRecord{
			AggregateID:    ev.AggregateID,
			SequenceNumber: ev.SequenceNumber,
			EventType:      ev.EventType,
			PayloadVersion: ev.PayloadVersion,
			ActorID:        ev.ActorID,
			OccurredAt:     ev.OccurredAt,
		}
		payload, err := Decode(ev.EventType, ev.PayloadVersion, ev.Payload)
		if err != nil {
			s.logger.Warn("history payload not decodable",
				zap.String("aggregate_id", ev.AggregateID),
				zap.Int64("sequence_number", ev.SequenceNumber),
				zap.Error(err),
			)
		} else {
			rec.Payload = payload
		}
		out = append(out, rec)
	}
	return out, nil
}
