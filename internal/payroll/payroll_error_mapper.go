package payroll

import (
	"errors"
	"strings"

	payrollerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return payrollerrors.ErrDuplicatePeriod
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return payrollerrors.ErrDuplicatePeriod
	}

	return err
}
