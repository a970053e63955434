package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/master/taxslab"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/payroll"
)

// Standardized 30-day month, 8-hour work day.
const (
	daysInMonth = 30
	hoursPerDay = 8

	// 15 minutes grace before a check-in counts as late; every third
	// late event costs one day of pay.
	lateGraceMinutes     = 15
	latesPerDeductionDay = 3
)

var (
	overtimeMultiplier = decimal.NewFromFloat(1.5)

	// Provident fund: 12% of basic.
	pfRate = decimal.NewFromFloat(0.12)

	// Professional tax slabs on gross.
	ptUpperThreshold = decimal.NewFromInt(20000)
	ptUpperAmount    = decimal.NewFromInt(200)
	ptLowerThreshold = decimal.NewFromInt(15000)
	ptLowerAmount    = decimal.NewFromInt(150)

	// ESI: 0.75% of gross up to the eligibility ceiling.
	esiRate         = decimal.NewFromFloat(0.0075)
	esiGrossCeiling = decimal.NewFromInt(21000)

	hundred = decimal.NewFromInt(100)
)

// EngineInput carries everything Compute needs, pre-fetched by the service.
type EngineInput struct {
	Employee        employee.Employee
	Slab            taxslab.TaxSlab
	LOPDays         decimal.Decimal
	Attendance      []attendance.Attendance
	Bonus           decimal.Decimal
	ManualDeduction decimal.Decimal
	PeriodStart     time.Time
	PeriodEnd       time.Time
}

// Compute runs the payroll calculation for one employee and period. All
// intermediate arithmetic stays at full precision; monetary outputs are
// rounded to two decimals at the end.
func Compute(in EngineInput) payroll.Breakdown {
	comp := in.Employee.Compensation()

	perDayPay := comp.MonthlyFixedPay.Div(decimal.NewFromInt(daysInMonth))
	hourlyRate := perDayPay.Div(decimal.NewFromInt(hoursPerDay))

	var overtimeHours decimal.Decimal
	lateCount := 0
	for _, record := range in.Attendance {
		overtimeHours = overtimeHours.Add(decimal.NewFromFloat(record.OvertimeHours))
		if record.LateMinutes > lateGraceMinutes {
			lateCount++
		}
	}

	lateDeductionDays := int64(lateCount / latesPerDeductionDay)
	lateDeductionAmount := decimal.NewFromInt(lateDeductionDays).Mul(perDayPay)

	overtimePay := overtimeHours.Mul(hourlyRate).Mul(overtimeMultiplier)

	leaveDeduction := in.LOPDays.Mul(perDayPay)

	grossPay := comp.MonthlyFixedPay.Add(overtimePay).Add(in.Bonus)

	pfDeduction := comp.Basic.Mul(pfRate)

	ptDeduction := decimal.Zero
	if grossPay.GreaterThan(ptUpperThreshold) {
		ptDeduction = ptUpperAmount
	} else if grossPay.GreaterThan(ptLowerThreshold) {
		ptDeduction = ptLowerAmount
	}

	esiDeduction := decimal.Zero
	if grossPay.LessThanOrEqual(esiGrossCeiling) {
		esiDeduction = grossPay.Mul(esiRate)
	}

	preTaxDeductions := leaveDeduction.
		Add(lateDeductionAmount).
		Add(pfDeduction).
		Add(ptDeduction).
		Add(esiDeduction).
		Add(in.ManualDeduction)

	taxableIncome := grossPay.Sub(preTaxDeductions)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}
	taxAmount := taxableIncome.Mul(in.Slab.TaxPercentage.Div(hundred))

	// Earned wage access is not offered yet; the column is reserved.
	ewaDeduction := decimal.Zero

	totalDeductions := preTaxDeductions.Add(taxAmount).Add(ewaDeduction)
	netPay := grossPay.Sub(totalDeductions)

	return payroll.Breakdown{
		EmployeeID:       in.Employee.ID,
		PayPeriodStart:   in.PeriodStart,
		PayPeriodEnd:     in.PeriodEnd,
		GrossPay:         grossPay.Round(2),
		TotalDeductions:  totalDeductions.Round(2),
		TaxDeducted:      taxAmount.Round(2),
		EWADeductions:    ewaDeduction.Round(2),
		NetPay:           netPay.Round(2),
		Bonus:            in.Bonus.Round(2),
		ManualDeductions: in.ManualDeduction.Round(2),

		BasicPay:                 comp.Basic.Round(2),
		HRAPay:                   comp.HRA.Round(2),
		SpecialAllowancePay:      comp.SpecialAllowance.Round(2),
		PFDeduction:              pfDeduction.Round(2),
		ProfessionalTaxDeduction: ptDeduction.Round(2),
		ESIDeduction:             esiDeduction.Round(2),
		IncomeTaxDeduction:       taxAmount.Round(2),

		Details: payroll.BreakdownDetails{
			LOPDays:             in.LOPDays,
			LateDeductionDays:   lateDeductionDays,
			LeaveDeduction:      leaveDeduction.Round(2),
			LateDeductionAmount: lateDeductionAmount.Round(2),
			OvertimeHours:       overtimeHours,
			OvertimePay:         overtimePay.Round(2),
		},
	}
}
