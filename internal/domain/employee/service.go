package employee

import (
	"context"
)

// EmployeeService defines business logic for employee administration.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetByID serves reads through the employee cache when one is
	// configured. A stale entry is never used after a mutation.
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	List(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateCompensation applies an HR pay edit and appends a salary
	// revision when the flat salary actually changed.
	UpdateCompensation(ctx context.Context, req UpdateCompensationRequest) (EmployeeResponse, error)

	SalaryHistory(ctx context.Context, employeeID string) ([]SalaryRevisionResponse, error)
}
