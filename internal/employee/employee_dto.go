package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required,max=100"`
	LastName     string  `json:"last_name" binding:"required,max=100"`
	Email        string  `json:"email" binding:"required,email"`
	JobTitle     string  `json:"job_title" binding:"max=120"`
	BaseSalary   int64   `json:"base_salary" binding:"min=0"`
	HireDate     string  `json:"hire_date" binding:"required"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	AFPID        *string `json:"afp_id" binding:"omitempty,uuid"`
	HealthPlanID *string `json:"health_plan_id" binding:"omitempty,uuid"`
}

type UpdateEmployeeRequest struct {
	FirstName    *string `json:"first_name" binding:"omitempty,max=100"`
	LastName     *string `json:"last_name" binding:"omitempty,max=100"`
	Email        *string `json:"email" binding:"omitempty,email"`
	JobTitle     *string `json:"job_title" binding:"omitempty,max=120"`
	BaseSalary   *int64  `json:"base_salary" binding:"omitempty,min=0"`
	HireDate     *string `json:"hire_date"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	AFPID        *string `json:"afp_id" binding:"omitempty,uuid"`
	HealthPlanID *string `json:"health_plan_id" binding:"omitempty,uuid"`
}

type EmployeePlanResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type,omitempty"`
	Discount decimal.Decimal `json:"discount"`
}

type EmployeeResponse struct {
	ID           string                `json:"id"`
	CompanyID    string                `json:"company_id"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	FullName     string                `json:"full_name"`
	Email        string                `json:"email"`
	JobTitle     string                `json:"job_title,omitempty"`
	BaseSalary   int64                 `json:"base_salary"`
	HireDate     string                `json:"hire_date"`
	DepartmentID string                `json:"department_id,omitempty"`
	AFP          *EmployeePlanResponse `json:"afp,omitempty"`
	HealthPlan   *EmployeePlanResponse `json:"health_plan,omitempty"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
