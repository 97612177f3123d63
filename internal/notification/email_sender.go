package notification

import (
	"context"
	"encoding/json"
	"time"

	"go-hrm/internal/events"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/mask"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=email_sender.go -destination=mock/email_sender_mock.go -package=mock
type EmailSender interface {
	// SendOtpEmail reports whether the message was handed off for delivery.
	SendOtpEmail(ctx context.Context, to, code string) (bool, error)
}

// MessageWriter is the subset of *kafkago.Writer used here.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type kafkaEmailSender struct {
	writer MessageWriter
	topic  string
	now    func() time.Time
	logger *zap.Logger
}

// NewKafkaEmailSender publishes otp_email_requested events; the mail
// gateway consuming the topic does the actual delivery.
func NewKafkaEmailSender(writer MessageWriter, topic string, logger ...*zap.Logger) EmailSender {
	l := zap.L().Named("notification.email")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.email")
	}
	if topic == "" {
		topic = events.NotificationEmailTopic
	}
	return &kafkaEmailSender{writer: writer, topic: topic, now: time.Now, logger: l}
}

func (s *kafkaEmailSender) SendOtpEmail(ctx context.Context, to, code string) (bool, error) {
	if to == "" {
		s.logger.Warn("otp email skipped, no recipient")
		return false, nil
	}

	ev := events.OtpEmailRequestedEvent{
		EventType:  events.OtpEmailRequestedEventType,
		RequestID:  contextutil.GetRequestID(ctx),
		To:         to,
		Code:       code,
		OccurredAt: s.now().UTC(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return false, err
	}

	msg := kafkago.Message{
		Topic: s.topic,
		Key:   []byte(uuid.NewString()),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(ev.EventType)},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		s.logger.Error("publish otp email failed",
			zap.String("to", mask.Sensitive(to)),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Info("otp email queued", zap.String("to", mask.Sensitive(to)))
	return true, nil
}

type logEmailSender struct {
	logger *zap.Logger
}

// NewLogEmailSender is used when no broker is configured (local dev).
func NewLogEmailSender(logger ...*zap.Logger) EmailSender {
	l := zap.L().Named("notification.email")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.email")
	}
	return &logEmailSender{logger: l}
}

func (s *logEmailSender) SendOtpEmail(_ context.Context, to, code string) (bool, error) {
	s.logger.Info("otp email (log only)", zap.String("to", to), zap.String("code", code))
	return true, nil
}
