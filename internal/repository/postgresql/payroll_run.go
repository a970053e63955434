package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
)

type payrollRunRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) payroll.PayrollRunRepository {
	return &payrollRunRepositoryImpl{db: db}
}

const payrollRunColumns = `id, employee_id, pay_period_start, pay_period_end,
		gross_pay, total_deductions, tax_deducted, ewa_deductions, net_pay,
		bonus, manual_deductions,
		basic_pay, hra_pay, special_allowance_pay,
		pf_deduction, professional_tax, esi_deduction, income_tax,
		status, payment_date, created_at`

func scanPayrollRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	err := row.Scan(
		&run.ID, &run.EmployeeID, &run.PayPeriodStart, &run.PayPeriodEnd,
		&run.GrossPay, &run.TotalDeductions, &run.TaxDeducted, &run.EWADeductions, &run.NetPay,
		&run.Bonus, &run.ManualDeductions,
		&run.BasicPay, &run.HRAPay, &run.SpecialAllowancePay,
		&run.PFDeduction, &run.ProfessionalTaxDeduction, &run.ESIDeduction, &run.IncomeTaxDeduction,
		&run.Status, &run.PaymentDate, &run.CreatedAt,
	)
	return run, err
}

// Create implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) Create(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (id, employee_id, pay_period_start, pay_period_end,
			gross_pay, total_deductions, tax_deducted, ewa_deductions, net_pay,
			bonus, manual_deductions,
			basic_pay, hra_pay, special_allowance_pay,
			pf_deduction, professional_tax, esi_deduction, income_tax,
			status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + payrollRunColumns

	created, err := scanPayrollRun(q.QueryRow(ctx, query,
		run.ID, run.EmployeeID, run.PayPeriodStart, run.PayPeriodEnd,
		run.GrossPay, run.TotalDeductions, run.TaxDeducted, run.EWADeductions, run.NetPay,
		run.Bonus, run.ManualDeductions,
		run.BasicPay, run.HRAPay, run.SpecialAllowancePay,
		run.PFDeduction, run.ProfessionalTaxDeduction, run.ESIDeduction, run.IncomeTaxDeduction,
		run.Status,
	))
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

// GetByID implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRunColumns + ` FROM payroll_runs WHERE id = $1`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run %s: %w", id, err)
	}

	return run, nil
}

// MarkPaid implements payroll.PayrollRunRepository. The status predicate
// makes the transition one-way; a run already PAID matches no rows.
func (r *payrollRunRepositoryImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $2, payment_date = NOW()
		WHERE id = $1 AND status = $3
		RETURNING ` + payrollRunColumns

	run, err := scanPayrollRun(q.QueryRow(ctx, query, id, payroll.PayrollStatusPaid, payroll.PayrollStatusProcessed))
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return payroll.PayrollRun{}, fmt.Errorf("failed to mark payroll run %s paid: %w", id, err)
	}

	// No PROCESSED row matched. Distinguish missing from already paid.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return payroll.PayrollRun{}, getErr
	}
	return payroll.PayrollRun{}, payroll.ErrPayrollRunAlreadyPaid
}

// ListAll implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) ListAll(ctx context.Context) ([]payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollRunColumns + ` FROM payroll_runs ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayrollRuns(rows)
}

// ListByEmployee implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayrollRuns(rows)
}

// GetLatestByEmployee implements payroll.PayrollRunRepository.
func (r *payrollRunRepositoryImpl) GetLatestByEmployee(ctx context.Context, employeeID string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRun{}, payroll.ErrNoPayslipsFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get latest payroll run: %w", err)
	}

	return run, nil
}

func collectPayrollRuns(rows pgx.Rows) ([]payroll.PayrollRun, error) {
	runs := make([]payroll.PayrollRun, 0)
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
