package taxslab

import "github.com/shopspring/decimal"

type TaxSlabResponse struct {
	ID            string          `json:"id"`
	MinSalary     decimal.Decimal `json:"min_salary"`
	MaxSalary     decimal.Decimal `json:"max_salary"`
	TaxPercentage decimal.Decimal `json:"tax_percentage"`
	Region        string          `json:"region"`
	EffectiveDate string          `json:"effective_date"`
}
