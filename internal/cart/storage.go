package cart

import (
	"context"

	"github.com/techvault/storefront/internal/models"
)

// Storage is the durable persistence port for the cart. Load reports
// found=false when no cart has ever been saved under the key. Clearing the
// cart persists an empty collection through Save rather than deleting the
// key.
type Storage interface {
	Load(ctx context.Context) (items []models.LineItem, found bool, err error)
	Save(ctx context.Context, items []models.LineItem) error
}
