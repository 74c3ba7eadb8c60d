package salaryerrors

import (
	"net/http"

	"github.com/ipcode-cloud/epms/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)

	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Gross salary and total deduction must not be negative",
		http.StatusBadRequest,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidReportPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Report period requires a month between 1 and 12 and a year",
		http.StatusBadRequest,
	)
)
