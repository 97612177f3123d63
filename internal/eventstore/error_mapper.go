package eventstore

import (
	"errors"
	eventstoreerrors "go-hrm/internal/eventstore/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "uq_employee_event_sequence":
			return eventstoreerrors.ErrSequenceConflict
		}
	}

	return err
}
