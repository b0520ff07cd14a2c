package advance

import (
	"errors"

	advanceerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/advance/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return advanceerrors.ErrAdvanceNotFound
	}

	return err
}
