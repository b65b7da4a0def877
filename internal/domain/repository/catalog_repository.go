package repository

import (
	"context"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// CatalogRepository defines the interface for the external product catalog
// service. The pipeline never talks HTTP itself; it only consumes the
// fully materialized mapping this port returns.
type CatalogRepository interface {
	FetchCatalog(ctx context.Context, baseURL string) (entity.Catalog, error)
}
