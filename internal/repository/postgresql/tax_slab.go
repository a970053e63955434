package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/master/taxslab"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
)

type taxSlabRepositoryImpl struct {
	db *database.DB
}

func NewTaxSlabRepository(db *database.DB) taxslab.TaxSlabRepository {
	return &taxSlabRepositoryImpl{db: db}
}

// GetByID implements taxslab.TaxSlabRepository.
func (r *taxSlabRepositoryImpl) GetByID(ctx context.Context, id string) (taxslab.TaxSlab, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, min_salary, max_salary, tax_percentage, region, effective_date
		FROM tax_configuration
		WHERE id = $1
	`

	var slab taxslab.TaxSlab
	err := q.QueryRow(ctx, query, id).Scan(
		&slab.ID, &slab.MinSalary, &slab.MaxSalary, &slab.TaxPercentage,
		&slab.Region, &slab.EffectiveDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return taxslab.TaxSlab{}, taxslab.ErrTaxSlabNotFound
		}
		return taxslab.TaxSlab{}, fmt.Errorf("failed to get tax slab %s: %w", id, err)
	}

	return slab, nil
}

// List implements taxslab.TaxSlabRepository.
func (r *taxSlabRepositoryImpl) List(ctx context.Context) ([]taxslab.TaxSlab, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, min_salary, max_salary, tax_percentage, region, effective_date
		FROM tax_configuration
		ORDER BY min_salary
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slabs := make([]taxslab.TaxSlab, 0)
	for rows.Next() {
		var slab taxslab.TaxSlab
		if err := rows.Scan(
			&slab.ID, &slab.MinSalary, &slab.MaxSalary, &slab.TaxPercentage,
			&slab.Region, &slab.EffectiveDate,
		); err != nil {
			return nil, err
		}
		slabs = append(slabs, slab)
	}

	return slabs, rows.Err()
}
