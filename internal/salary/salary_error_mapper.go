package salary

import (
	"errors"

	salaryerrors "github.com/ipcode-cloud/epms/internal/salary/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrSalaryNotFound
	}

	return err
}
