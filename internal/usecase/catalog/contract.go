package catalog

import (
	"context"

	"github.com/kailas-cloud/propdex/internal/domain/firm"
)

// Repository defines the read contract for the firm catalog.
type Repository interface {
	Get(ctx context.Context, id string) (firm.Firm, error)
	List(ctx context.Context, q firm.Query, limit int) ([]firm.Firm, error)
	All(ctx context.Context) ([]firm.Firm, error)
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}
