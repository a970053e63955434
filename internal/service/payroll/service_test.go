package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/master/taxslab"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/payroll"
)

type fakeRunRepo struct {
	runs map[string]*payroll.PayrollRun
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[string]*payroll.PayrollRun)}
}

func (f *fakeRunRepo) Create(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	run.CreatedAt = time.Now()
	stored := run
	f.runs[run.ID] = &stored
	return stored, nil
}

func (f *fakeRunRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	if run, ok := f.runs[id]; ok {
		return *run, nil
	}
	return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
}

func (f *fakeRunRepo) MarkPaid(ctx context.Context, id string) (payroll.PayrollRun, error) {
	run, ok := f.runs[id]
	if !ok {
		return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
	}
	if run.Status != payroll.PayrollStatusProcessed {
		return payroll.PayrollRun{}, payroll.ErrPayrollRunAlreadyPaid
	}
	run.Status = payroll.PayrollStatusPaid
	now := time.Now()
	run.PaymentDate = &now
	return *run, nil
}

func (f *fakeRunRepo) ListAll(ctx context.Context) ([]payroll.PayrollRun, error) {
	var out []payroll.PayrollRun
	for _, run := range f.runs {
		out = append(out, *run)
	}
	return out, nil
}

func (f *fakeRunRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRun, error) {
	var out []payroll.PayrollRun
	for _, run := range f.runs {
		if run.EmployeeID == employeeID {
			out = append(out, *run)
		}
	}
	return out, nil
}

func (f *fakeRunRepo) GetLatestByEmployee(ctx context.Context, employeeID string) (payroll.PayrollRun, error) {
	var latest *payroll.PayrollRun
	for _, run := range f.runs {
		if run.EmployeeID != employeeID {
			continue
		}
		if latest == nil || run.CreatedAt.After(latest.CreatedAt) {
			latest = run
		}
	}
	if latest == nil {
		return payroll.PayrollRun{}, payroll.ErrNoPayslipsFound
	}
	return *latest, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeTaxSlabRepo struct {
	slabs map[string]taxslab.TaxSlab
}

func (f *fakeTaxSlabRepo) GetByID(ctx context.Context, id string) (taxslab.TaxSlab, error) {
	if slab, ok := f.slabs[id]; ok {
		return slab, nil
	}
	return taxslab.TaxSlab{}, taxslab.ErrTaxSlabNotFound
}

func (f *fakeTaxSlabRepo) List(ctx context.Context) ([]taxslab.TaxSlab, error) {
	var out []taxslab.TaxSlab
	for _, slab := range f.slabs {
		out = append(out, slab)
	}
	return out, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	lopDays decimal.Decimal
}

func (f *fakeLeaveRepo) SumApprovedLOPDays(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (decimal.Decimal, error) {
	return f.lopDays, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return f.records, nil
}

func newTestPayrollService(runs *fakeRunRepo, emp employee.Employee, slab taxslab.TaxSlab, lopDays decimal.Decimal, records []attendance.Attendance) payroll.PayrollService {
	return NewPayrollService(
		runs,
		&fakeEmployeeRepo{employees: map[string]employee.Employee{emp.ID: emp}},
		&fakeTaxSlabRepo{slabs: map[string]taxslab.TaxSlab{slab.ID: slab}},
		&fakeLeaveRepo{lopDays: lopDays},
		&fakeAttendanceRepo{records: records},
	)
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:               "emp-1",
		FirstName:        "Asha",
		LastName:         "Nair",
		Salary:           decimal.NewFromInt(50000),
		BasicSalary:      decimal.NewFromInt(25000),
		HRA:              decimal.NewFromInt(12500),
		SpecialAllowance: decimal.NewFromInt(12500),
		TaxSlabID:        "slab-1",
	}
}

func testSlab(rate float64) taxslab.TaxSlab {
	return taxslab.TaxSlab{
		ID:            "slab-1",
		TaxPercentage: decimal.NewFromFloat(rate),
	}
}

func TestRunPayroll_PersistsProcessedRun(t *testing.T) {
	runs := newFakeRunRepo()
	svc := newTestPayrollService(runs, testEmployee(), testSlab(5), decimal.Zero, nil)

	resp, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{
		EmployeeID:     "emp-1",
		PayPeriodStart: "2025-06-01",
		PayPeriodEnd:   "2025-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "PROCESSED", resp.Status)
	assert.Equal(t, "50000", resp.GrossPay.String())
	assert.Equal(t, "44460", resp.NetPay.String())
	assert.Equal(t, "2025-06-01", resp.PayPeriodStart)
	assert.Equal(t, "2025-06-30", resp.PayPeriodEnd)
	assert.Nil(t, resp.PaymentDate)

	require.Len(t, runs.runs, 1)
}

func TestRunPayroll_UnknownEmployee(t *testing.T) {
	runs := newFakeRunRepo()
	svc := newTestPayrollService(runs, testEmployee(), testSlab(5), decimal.Zero, nil)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{
		EmployeeID:     "missing",
		PayPeriodStart: "2025-06-01",
		PayPeriodEnd:   "2025-06-30",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, runs.runs)
}

func TestRunPayroll_MissingTaxSlab(t *testing.T) {
	runs := newFakeRunRepo()
	emp := testEmployee()
	emp.TaxSlabID = "missing"
	svc := newTestPayrollService(runs, emp, testSlab(5), decimal.Zero, nil)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{
		EmployeeID:     "emp-1",
		PayPeriodStart: "2025-06-01",
		PayPeriodEnd:   "2025-06-30",
	})
	assert.ErrorIs(t, err, taxslab.ErrTaxSlabNotFound)
}

func TestRunPayroll_InvertedPeriodRejected(t *testing.T) {
	runs := newFakeRunRepo()
	svc := newTestPayrollService(runs, testEmployee(), testSlab(5), decimal.Zero, nil)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{
		EmployeeID:     "emp-1",
		PayPeriodStart: "2025-06-30",
		PayPeriodEnd:   "2025-06-01",
	})
	assert.Error(t, err)
}

func TestMarkPaid_TransitionsOnce(t *testing.T) {
	runs := newFakeRunRepo()
	svc := newTestPayrollService(runs, testEmployee(), testSlab(5), decimal.Zero, nil)

	created, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{
		EmployeeID:     "emp-1",
		PayPeriodStart: "2025-06-01",
		PayPeriodEnd:   "2025-06-30",
	})
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "PAID", paid.Status)
	require.NotNil(t, paid.PaymentDate)

	_, err = svc.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRunAlreadyPaid)
}

func TestMarkPaid_UnknownRun(t *testing.T) {
	runs := newFakeRunRepo()
	svc := newTestPayrollService(runs, testEmployee(), testSlab(5), decimal.Zero, nil)

	_, err := svc.MarkPaid(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollRunNotFound)
}

func TestLatestPayslip_NoRuns(t *testing.T) {
	runs := newFakeRunRepo()
	svc := newTestPayrollService(runs, testEmployee(), testSlab(5), decimal.Zero, nil)

	_, err := svc.LatestPayslip(context.Background(), "emp-1")
	assert.ErrorIs(t, err, payroll.ErrNoPayslipsFound)
}
