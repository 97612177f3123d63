package sensitiverequesterrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrNoFieldsSupplied = apperror.New(
		apperror.CodeInvalidInput,
		"At least one of idNumber or bankAccount is required",
		http.StatusBadRequest,
	)
	ErrNoChanges = apperror.New(
		apperror.CodeInvalidInput,
		"No changes detected needing approval.",
		http.StatusBadRequest,
	)
	ErrOtpNotFound = apperror.New(
		apperror.CodeInvalidOtp,
		"OTP not found or already used",
		http.StatusBadRequest,
	)
	ErrInvalidOtp = apperror.New(
		apperror.CodeInvalidOtp,
		"Invalid or expired OTP",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)
	ErrNotPermitted = apperror.New(
		apperror.CodeForbidden,
		"You don't have permission to process this request",
		http.StatusForbidden,
	)
	ErrAlreadyApproved = apperror.New(
		apperror.CodeConflict,
		"Request has already been approved",
		http.StatusConflict,
	)
	ErrAlreadyRejected = apperror.New(
		apperror.CodeConflict,
		"Request has already been rejected",
		http.StatusConflict,
	)
	ErrNotAwaitingApproval = apperror.New(
		apperror.CodeConflict,
		"Request is not awaiting approval",
		http.StatusConflict,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Rejection reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Action must be approve or reject",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown status filter",
		http.StatusBadRequest,
	)
)
