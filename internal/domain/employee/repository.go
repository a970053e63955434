package employee

import (
	"context"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	// List returns non-admin employees ordered by join date.
	List(ctx context.Context) ([]Employee, error)
	// ListIDs returns the IDs of every employee, admins included.
	// Used by the leave accrual job.
	ListIDs(ctx context.Context) ([]string, error)
	UpdateCompensation(ctx context.Context, req UpdateCompensationRequest) (Employee, error)
}

type SalaryRevisionRepository interface {
	// Append records a salary change. The revision log is append-only.
	Append(ctx context.Context, rev SalaryRevision) (SalaryRevision, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryRevision, error)
}
