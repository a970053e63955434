package master

import (
	"context"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/master/taxslab"
)

// TaxSlabService exposes read-only tax configuration lookups.
type TaxSlabService interface {
	List(ctx context.Context) ([]taxslab.TaxSlabResponse, error)
	GetByID(ctx context.Context, id string) (taxslab.TaxSlabResponse, error)
}

type TaxSlabServiceImpl struct {
	taxSlabRepo taxslab.TaxSlabRepository
}

func NewTaxSlabService(taxSlabRepo taxslab.TaxSlabRepository) TaxSlabService {
	return &TaxSlabServiceImpl{taxSlabRepo: taxSlabRepo}
}

func (s *TaxSlabServiceImpl) List(ctx context.Context) ([]taxslab.TaxSlabResponse, error) {
	slabs, err := s.taxSlabRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]taxslab.TaxSlabResponse, len(slabs))
	for i, slab := range slabs {
		responses[i] = toResponse(slab)
	}
	return responses, nil
}

func (s *TaxSlabServiceImpl) GetByID(ctx context.Context, id string) (taxslab.TaxSlabResponse, error) {
	slab, err := s.taxSlabRepo.GetByID(ctx, id)
	if err != nil {
		return taxslab.TaxSlabResponse{}, err
	}
	return toResponse(slab), nil
}

func toResponse(slab taxslab.TaxSlab) taxslab.TaxSlabResponse {
	return taxslab.TaxSlabResponse{
		ID:            slab.ID,
		MinSalary:     slab.MinSalary,
		MaxSalary:     slab.MaxSalary,
		TaxPercentage: slab.TaxPercentage,
		Region:        slab.Region,
		EffectiveDate: slab.EffectiveDate.Format("2006-01-02"),
	}
}
