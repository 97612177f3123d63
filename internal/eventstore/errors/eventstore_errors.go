package eventstoreerrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrAggregateNotFound = apperror.New(
		apperror.CodeNotFound,
		"No events found for this employee",
		http.StatusNotFound,
	)
	ErrSequenceConflict = apperror.New(
		apperror.CodeConflict,
		"Event sequence number already taken",
		http.StatusConflict,
	)
	ErrPayloadMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Event payload does not match event type",
		http.StatusBadRequest,
	)
	ErrUnsupportedPayloadVersion = apperror.New(
		apperror.CodeInvalidState,
		"Unsupported event payload version",
		http.StatusConflict,
	)
	ErrUnknownEventType = apperror.New(
		apperror.CodeInvalidState,
		"Unknown event type",
		http.StatusConflict,
	)
	ErrInvalidAggregateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidSequence = apperror.New(
		apperror.CodeInvalidInput,
		"Sequence number must be positive",
		http.StatusBadRequest,
	)
)
