package sensitiverequest

import (
	"errors"

	employeeerrors "go-hrm/internal/employee/errors"
	sensitiverequesterrors "go-hrm/internal/sensitiverequest/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sensitiverequesterrors.ErrRequestNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return sensitiverequesterrors.ErrRequestNotFound
	}

	return err
}

// mapEmployeeError is used for lookups against the employee directory.
func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

func conflictFor(status string) error {
	switch status {
	case StatusApproved:
		return sensitiverequesterrors.ErrAlreadyApproved
	case StatusRejected:
		return sensitiverequesterrors.ErrAlreadyRejected
	default:
		return sensitiverequesterrors.ErrNotAwaitingApproval
	}
}
