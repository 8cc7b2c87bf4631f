package repository

import (
	"context"

	"github.com/nasaem/pos-api/internal/domain/entity"
)

// SaleRepository defines the interface for sale persistence. Two
// implementations exist behind it: the Postgres store and the embedded
// SQLite store; the driver is chosen at composition time.
type SaleRepository interface {
	// Create durably stores one sale header together with its line items.
	Create(ctx context.Context, sale *entity.Sale) error
	// FindAll returns every stored sale, items preloaded, newest-first by timestamp.
	FindAll(ctx context.Context) ([]entity.Sale, error)
	// Delete removes one sale and its items. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
	// DeleteAll removes every sale.
	DeleteAll(ctx context.Context) error
}
