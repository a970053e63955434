package taxslab

import "context"

type TaxSlabRepository interface {
	GetByID(ctx context.Context, id string) (TaxSlab, error)
	List(ctx context.Context) ([]TaxSlab, error)
}
