package postgresql

import (
	"context"
	"fmt"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
)

type salaryRevisionRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRevisionRepository(db *database.DB) employee.SalaryRevisionRepository {
	return &salaryRevisionRepositoryImpl{db: db}
}

// Append implements employee.SalaryRevisionRepository.
func (r *salaryRevisionRepositoryImpl) Append(ctx context.Context, rev employee.SalaryRevision) (employee.SalaryRevision, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_revisions (id, employee_id, old_salary, new_salary, changed_by, change_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, old_salary, new_salary, changed_by, change_date
	`

	var created employee.SalaryRevision
	err := q.QueryRow(ctx, query,
		rev.ID, rev.EmployeeID, rev.OldSalary, rev.NewSalary, rev.ChangedBy, rev.ChangeDate,
	).Scan(
		&created.ID, &created.EmployeeID, &created.OldSalary, &created.NewSalary,
		&created.ChangedBy, &created.ChangeDate,
	)
	if err != nil {
		return employee.SalaryRevision{}, fmt.Errorf("failed to append salary revision: %w", err)
	}

	return created, nil
}

// ListByEmployee implements employee.SalaryRevisionRepository.
func (r *salaryRevisionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]employee.SalaryRevision, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, old_salary, new_salary, changed_by, change_date
		FROM salary_revisions
		WHERE employee_id = $1
		ORDER BY change_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revisions := make([]employee.SalaryRevision, 0)
	for rows.Next() {
		var rev employee.SalaryRevision
		if err := rows.Scan(
			&rev.ID, &rev.EmployeeID, &rev.OldSalary, &rev.NewSalary,
			&rev.ChangedBy, &rev.ChangeDate,
		); err != nil {
			return nil, err
		}
		revisions = append(revisions, rev)
	}

	return revisions, rows.Err()
}
