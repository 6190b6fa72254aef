package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a positive four digit year",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be PENDING or PAID",
		http.StatusBadRequest,
	)
	ErrInvalidMoneyValue = apperror.New(
		apperror.CodeInvalidInput,
		"salary and deduction values cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"discount rate cannot be negative",
		http.StatusBadRequest,
	)
	ErrInconsistentAmounts = apperror.New(
		apperror.CodeInvalidInput,
		"total_deduction must equal the sum of deductions and net_salary must equal gross_salary minus total_deduction",
		http.StatusBadRequest,
	)
	ErrInvalidPaidAt = apperror.New(
		apperror.CodeInvalidInput,
		"paid_at can only be set on a PAID payroll",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrNoEmployeesInCompany = apperror.New(
		apperror.CodeNotFound,
		"no employees in this company",
		http.StatusNotFound,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for this employee and period",
		http.StatusConflict,
	)
	ErrDeletePaidPayroll = apperror.New(
		apperror.CodeConflict,
		"cannot delete a paid payroll",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"a paid payroll cannot return to PENDING",
		http.StatusConflict,
	)
	ErrPayslipOnlyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payslips are only available for PAID payrolls",
		http.StatusConflict,
	)
	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"payslip is not generated yet",
		http.StatusNotFound,
	)
)
