package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
)

type accrualPeriodRepositoryImpl struct {
	db *database.DB
}

func NewAccrualPeriodRepository(db *database.DB) leave.AccrualPeriodRepository {
	return &accrualPeriodRepositoryImpl{db: db}
}

// Claim implements leave.AccrualPeriodRepository. The unique constraint on
// period makes the insert race-safe: only one caller per month observes a
// row count of one.
func (r *accrualPeriodRepositoryImpl) Claim(ctx context.Context, period string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accrual_periods (id, period)
		VALUES ($1, $2)
		ON CONFLICT (period) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, uuid.NewString(), period)
	if err != nil {
		return false, fmt.Errorf("failed to claim accrual period %s: %w", period, err)
	}

	return tag.RowsAffected() == 1, nil
}
