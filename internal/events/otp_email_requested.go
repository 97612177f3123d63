package events

import "time"

const NotificationEmailTopic = "hr.notification.email.v1"

const OtpEmailRequestedEventType = "otp_email_requested"

type OtpEmailRequestedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	To         string    `json:"to"`
	Code       string    `json:"code"`
	OccurredAt time.Time `json:"occurred_at"`
}
