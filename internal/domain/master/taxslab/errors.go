package taxslab

import "errors"

var ErrTaxSlabNotFound = errors.New("tax slab not found")
