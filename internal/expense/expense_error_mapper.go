package expense

import (
	"errors"

	expenseerrors "github.com/Mosab-97/Dalal-Payroll-App/internal/expense/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrExpenseNotFound
	}

	return err
}
