package taxslab

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxSlab is read-only reference data selected per employee via
// employees.tax_slab_id. Payroll computation fails when the lookup misses.
type TaxSlab struct {
	ID            string
	MinSalary     decimal.Decimal
	MaxSalary     decimal.Decimal
	TaxPercentage decimal.Decimal
	Region        string
	EffectiveDate time.Time
}
