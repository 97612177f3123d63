package consumer

import (
	"context"
	"encoding/json"
	"errors"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// EmployeeImporter is implemented by employee.Service.
type EmployeeImporter interface {
	Import(ctx context.Context, ev events.EmployeeImportedEvent) error
}

// ConsumeEmployeeLifecycle loads employees published on the lifecycle topic.
// Undecodable or invalid messages are committed and skipped; other import
// failures leave the offset uncommitted so the message is redelivered.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	importer EmployeeImporter,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if !HandleEmployeeImported(ctx, msg, importer, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// HandleEmployeeImported processes one message and reports whether its
// offset may be committed.
func HandleEmployeeImported(ctx context.Context, msg kafkago.Message, importer EmployeeImporter, log *zap.Logger) bool {
	var event events.EmployeeImportedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee_imported event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return true
	}

	if event.EventType != "" && event.EventType != events.EmployeeImportedEventType {
		log.Debug("skipping lifecycle event", zap.String("event_type", event.EventType))
		return true
	}

	if err := importer.Import(ctx, event); err != nil {
		if errors.Is(err, employeeerrors.ErrInvalidEmployeeID) {
			log.Warn("employee_imported event has invalid employee id, skipping",
				zap.String("employee_id", event.EmployeeID),
			)
			return true
		}

		log.Error("import employee failed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return false
	}

	log.Info("employee imported from lifecycle event",
		zap.String("employee_id", event.EmployeeID),
		zap.String("request_id", event.RequestID),
	)
	return true
}
