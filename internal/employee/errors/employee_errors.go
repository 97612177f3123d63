package employeeerrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrPhoneAndAddressRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Phone number and Address are required",
		http.StatusBadRequest,
	)
	ErrEmergencyContactRequired = apperror.New(
		apperror.CodeInvalidInput,
		"At least one emergency contact is required",
		http.StatusBadRequest,
	)
	ErrEmergencyContactIncomplete = apperror.New(
		apperror.CodeInvalidInput,
		"All emergency contact fields (Name, Phone, Relation) are required",
		http.StatusBadRequest,
	)
	ErrUnknownSensitiveField = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown sensitive field",
		http.StatusBadRequest,
	)
)
