package employeeerrors

import (
	"net/http"

	"github.com/ipcode-cloud/epms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	// Kontrak API lama memakai 400 untuk duplicate unique key.
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusBadRequest,
	)

	ErrDepartmentNotResolved = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrInvalidHiredDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hired_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
