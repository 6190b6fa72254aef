package afp

import (
	"errors"

	afperrors "go-payroll/internal/afp/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return afperrors.ErrAFPNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return afperrors.ErrAFPAlreadyExists
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return afperrors.ErrAFPInUse
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return afperrors.ErrAFPAlreadyExists
		case "23503":
			return afperrors.ErrAFPInUse
		}
	}

	return err
}
