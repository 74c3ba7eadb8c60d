package departmenterrors

import (
	"net/http"

	"github.com/ipcode-cloud/epms/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	// Duplicate code dilaporkan sebagai 400 sesuai kontrak API lama,
	// bukan 409.
	ErrDepartmentCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department code already exists",
		http.StatusBadRequest,
	)

	ErrInvalidGrossSalaryScale = apperror.New(
		apperror.CodeInvalidInput,
		"Gross salary scale must not be negative",
		http.StatusBadRequest,
	)
)
