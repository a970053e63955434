package payroll

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/master/taxslab"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRunRepository
	employeeRepo   employee.EmployeeRepository
	taxSlabRepo    taxslab.TaxSlabRepository
	leaveRepo      leave.LeaveRequestRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRunRepository,
	employeeRepo employee.EmployeeRepository,
	taxSlabRepo taxslab.TaxSlabRepository,
	leaveRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		taxSlabRepo:    taxSlabRepo,
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
	}
}

// RunPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.PayrollRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PayPeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PayPeriodEnd)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	slab, err := s.taxSlabRepo.GetByID(ctx, emp.TaxSlabID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	lopDays, err := s.leaveRepo.SumApprovedLOPDays(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	breakdown := Compute(EngineInput{
		Employee:        emp,
		Slab:            slab,
		LOPDays:         lopDays,
		Attendance:      records,
		Bonus:           req.Bonus,
		ManualDeduction: req.ManualDeduction,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
	})

	run := payroll.PayrollRun{
		ID:               uuid.NewString(),
		EmployeeID:       breakdown.EmployeeID,
		PayPeriodStart:   breakdown.PayPeriodStart,
		PayPeriodEnd:     breakdown.PayPeriodEnd,
		GrossPay:         breakdown.GrossPay,
		TotalDeductions:  breakdown.TotalDeductions,
		TaxDeducted:      breakdown.TaxDeducted,
		EWADeductions:    breakdown.EWADeductions,
		NetPay:           breakdown.NetPay,
		Bonus:            breakdown.Bonus,
		ManualDeductions: breakdown.ManualDeductions,

		BasicPay:                 breakdown.BasicPay,
		HRAPay:                   breakdown.HRAPay,
		SpecialAllowancePay:      breakdown.SpecialAllowancePay,
		PFDeduction:              breakdown.PFDeduction,
		ProfessionalTaxDeduction: breakdown.ProfessionalTaxDeduction,
		ESIDeduction:             breakdown.ESIDeduction,
		IncomeTaxDeduction:       breakdown.IncomeTaxDeduction,

		Status: payroll.PayrollStatusProcessed,
	}

	created, err := s.payrollRepo.Create(ctx, run)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	slog.Info("Payroll run processed",
		"employee_id", created.EmployeeID,
		"period_start", req.PayPeriodStart,
		"period_end", req.PayPeriodEnd,
		"net_pay", created.NetPay)

	return toRunResponse(created), nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	run, err := s.payrollRepo.MarkPaid(ctx, id)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	slog.Info("Payroll run marked paid", "run_id", run.ID, "employee_id", run.EmployeeID)

	return toRunResponse(run), nil
}

// History implements payroll.PayrollService.
func (s *PayrollServiceImpl) History(ctx context.Context) ([]payroll.PayrollRunResponse, error) {
	runs, err := s.payrollRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toRunResponses(runs), nil
}

// EmployeeHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) EmployeeHistory(ctx context.Context, employeeID string) ([]payroll.PayrollRunResponse, error) {
	runs, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toRunResponses(runs), nil
}

// LatestPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) LatestPayslip(ctx context.Context, employeeID string) (payroll.PayrollRunResponse, error) {
	run, err := s.payrollRepo.GetLatestByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	return toRunResponse(run), nil
}

func toRunResponse(run payroll.PayrollRun) payroll.PayrollRunResponse {
	resp := payroll.PayrollRunResponse{
		ID:               run.ID,
		EmployeeID:       run.EmployeeID,
		PayPeriodStart:   run.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:     run.PayPeriodEnd.Format("2006-01-02"),
		GrossPay:         run.GrossPay,
		Deductions:       run.TotalDeductions,
		TaxDeducted:      run.TaxDeducted,
		EWADeductions:    run.EWADeductions,
		NetPay:           run.NetPay,
		Bonus:            run.Bonus,
		ManualDeductions: run.ManualDeductions,

		BasicPay:                 run.BasicPay,
		HRAPay:                   run.HRAPay,
		SpecialAllowancePay:      run.SpecialAllowancePay,
		PFDeduction:              run.PFDeduction,
		ProfessionalTaxDeduction: run.ProfessionalTaxDeduction,
		ESIDeduction:             run.ESIDeduction,
		IncomeTaxDeduction:       run.IncomeTaxDeduction,

		Status:    string(run.Status),
		CreatedAt: run.CreatedAt.Format(time.RFC3339),
	}
	if run.PaymentDate != nil {
		paymentDate := run.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &paymentDate
	}
	return resp
}

func toRunResponses(runs []payroll.PayrollRun) []payroll.PayrollRunResponse {
	responses := make([]payroll.PayrollRunResponse, len(runs))
	for i, run := range runs {
		responses[i] = toRunResponse(run)
	}
	return responses
}
