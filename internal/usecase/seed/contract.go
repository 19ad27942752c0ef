package seed

import (
	"context"

	"github.com/kailas-cloud/propdex/internal/domain/firm"
)

// Repository defines the write contract used to bootstrap the catalog.
type Repository interface {
	EnsureIndex(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	InsertMany(ctx context.Context, firms []firm.Firm) error
}
