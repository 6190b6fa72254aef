package afperrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrAFPNotFound = apperror.New(
		apperror.CodeNotFound,
		"AFP not found",
		http.StatusNotFound,
	)
	ErrAFPAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"AFP with the same name already exists",
		http.StatusConflict,
	)
	ErrAFPInUse = apperror.New(
		apperror.CodeConflict,
		"AFP is still assigned to employees",
		http.StatusConflict,
	)
	ErrInvalidDiscount = apperror.New(
		apperror.CodeInvalidInput,
		"discount must be between 0 and 100",
		http.StatusBadRequest,
	)
)
