package healthplan

import (
	"errors"

	healthplanerrors "go-payroll/internal/healthplan/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return healthplanerrors.ErrHealthPlanNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return healthplanerrors.ErrHealthPlanAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return healthplanerrors.ErrHealthPlanInUse
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_health_plan_type_name" {
			return healthplanerrors.ErrHealthPlanAlreadyExists
		}
		if pgErr.Code == "23503" {
			return healthplanerrors.ErrHealthPlanInUse
		}
	}

	return err
}
