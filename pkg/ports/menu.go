package ports

import (
	"context"

	"github.com/aretw0/orderbot/pkg/domain"
)

// MenuService is the external validation service.
type MenuService interface {
	// ListItems returns the currently valid items in service order.
	// Any failure must be reported as an error; an empty menu is not a failure.
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
}
