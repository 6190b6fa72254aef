package healthplanerrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrHealthPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Health plan not found",
		http.StatusNotFound,
	)
	ErrHealthPlanAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Health plan with the same type and name already exists",
		http.StatusConflict,
	)
	ErrHealthPlanInUse = apperror.New(
		apperror.CodeConflict,
		"Health plan is still assigned to employees",
		http.StatusConflict,
	)
	ErrInvalidDiscount = apperror.New(
		apperror.CodeInvalidInput,
		"discount must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"type must be FONASA or ISAPRE",
		http.StatusBadRequest,
	)
)
