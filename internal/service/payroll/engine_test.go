package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/master/taxslab"
)

func structuredEmployee(basic, hra, special int64) employee.Employee {
	return employee.Employee{
		ID:               "emp-1",
		BasicSalary:      decimal.NewFromInt(basic),
		HRA:              decimal.NewFromInt(hra),
		SpecialAllowance: decimal.NewFromInt(special),
	}
}

func slabWithRate(percentage float64) taxslab.TaxSlab {
	return taxslab.TaxSlab{
		ID:            "slab-1",
		TaxPercentage: decimal.NewFromFloat(percentage),
	}
}

func period() (time.Time, time.Time) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

func TestCompute_StructuredComponents(t *testing.T) {
	start, end := period()

	result := Compute(EngineInput{
		Employee:    structuredEmployee(25000, 12500, 12500),
		Slab:        slabWithRate(5),
		PeriodStart: start,
		PeriodEnd:   end,
	})

	assert.Equal(t, "50000", result.GrossPay.String())
	assert.Equal(t, "3000", result.PFDeduction.String())
	assert.Equal(t, "200", result.ProfessionalTaxDeduction.String())
	assert.True(t, result.ESIDeduction.IsZero(), "no ESI above the gross ceiling")
	assert.Equal(t, "2340", result.TaxDeducted.String())
	assert.Equal(t, "44460", result.NetPay.String())
	assert.Equal(t, "5540", result.TotalDeductions.String())
}

func TestCompute_LossOfPayDeduction(t *testing.T) {
	start, end := period()

	result := Compute(EngineInput{
		Employee:    structuredEmployee(30000, 15000, 15000),
		Slab:        slabWithRate(0),
		LOPDays:     decimal.NewFromInt(2),
		PeriodStart: start,
		PeriodEnd:   end,
	})

	assert.Equal(t, "60000", result.GrossPay.String())
	assert.Equal(t, "4000", result.Details.LeaveDeduction.String())
	assert.Equal(t, "3600", result.PFDeduction.String())
	assert.Equal(t, "200", result.ProfessionalTaxDeduction.String())
	assert.True(t, result.TaxDeducted.IsZero())
	assert.Equal(t, "52200", result.NetPay.String())
}

func TestCompute_LegacyFlatSalaryFallback(t *testing.T) {
	start, end := period()

	emp := employee.Employee{
		ID:     "emp-legacy",
		Salary: decimal.NewFromInt(18000),
	}

	result := Compute(EngineInput{
		Employee:    emp,
		Slab:        slabWithRate(0),
		PeriodStart: start,
		PeriodEnd:   end,
	})

	assert.Equal(t, "18000", result.GrossPay.String())
	// No basic component, so no provident fund.
	assert.True(t, result.PFDeduction.IsZero())
	assert.Equal(t, "150", result.ProfessionalTaxDeduction.String())
	// 0.75% of 18000, within the ESI ceiling.
	assert.Equal(t, "135", result.ESIDeduction.String())
	assert.Equal(t, "17715", result.NetPay.String())
}

func TestCompute_OvertimeAndBonusRaiseGross(t *testing.T) {
	start, end := period()

	records := []attendance.Attendance{
		{OvertimeHours: 2},
		{OvertimeHours: 2},
	}

	result := Compute(EngineInput{
		Employee:    structuredEmployee(25000, 12500, 12500),
		Slab:        slabWithRate(0),
		Attendance:  records,
		Bonus:       decimal.NewFromInt(1000),
		PeriodStart: start,
		PeriodEnd:   end,
	})

	// perDay 50000/30, hourly /8, 4h at 1.5x = 1250.
	assert.Equal(t, "1250", result.Details.OvertimePay.String())
	assert.Equal(t, "52250", result.GrossPay.String())
	assert.Equal(t, "4", result.Details.OvertimeHours.String())
}

func TestCompute_LateDeductionEveryThirdLate(t *testing.T) {
	start, end := period()

	// Five lates beyond the grace period, one within it.
	records := []attendance.Attendance{
		{LateMinutes: 20}, {LateMinutes: 45}, {LateMinutes: 16},
		{LateMinutes: 90}, {LateMinutes: 30}, {LateMinutes: 10},
	}

	result := Compute(EngineInput{
		Employee:    structuredEmployee(30000, 15000, 15000),
		Slab:        slabWithRate(0),
		Attendance:  records,
		PeriodStart: start,
		PeriodEnd:   end,
	})

	assert.Equal(t, int64(1), result.Details.LateDeductionDays)
	// One day at 60000/30.
	assert.Equal(t, "2000", result.Details.LateDeductionAmount.String())
}

func TestCompute_TaxableIncomeNeverNegative(t *testing.T) {
	start, end := period()

	result := Compute(EngineInput{
		Employee:        structuredEmployee(3000, 0, 0),
		Slab:            slabWithRate(10),
		ManualDeduction: decimal.NewFromInt(10000),
		PeriodStart:     start,
		PeriodEnd:       end,
	})

	assert.True(t, result.TaxDeducted.IsZero(), "tax applies only to positive taxable income")
}

func TestCompute_GrossEqualsFixedPlusOvertimePlusBonus(t *testing.T) {
	start, end := period()

	cases := []struct {
		name  string
		bonus int64
		hours float64
	}{
		{"no extras", 0, 0},
		{"bonus only", 5000, 0},
		{"overtime only", 0, 3},
		{"both", 2500, 1.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			emp := structuredEmployee(25000, 12500, 12500)
			result := Compute(EngineInput{
				Employee:    emp,
				Slab:        slabWithRate(5),
				Attendance:  []attendance.Attendance{{OvertimeHours: tc.hours}},
				Bonus:       decimal.NewFromInt(tc.bonus),
				PeriodStart: start,
				PeriodEnd:   end,
			})

			fixed := emp.Compensation().MonthlyFixedPay
			expected := fixed.Add(result.Details.OvertimePay).Add(decimal.NewFromInt(tc.bonus)).Round(2)
			assert.True(t, expected.Equal(result.GrossPay),
				"gross %s != fixed+overtime+bonus %s", result.GrossPay, expected)
		})
	}
}
