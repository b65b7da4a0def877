package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
	"github.com/diillson/sales-analytics-go/internal/domain/repository"
	"github.com/diillson/sales-analytics-go/internal/shared/types"
)

// DefaultBaseURL is the public product catalog used when no other service is
// configured.
const DefaultBaseURL = "https://dummyjson.com"

const fetchLimit = 100

// CatalogRepositoryImpl implementa o CatalogRepository sobre a API HTTP do
// catálogo de produtos.
type CatalogRepositoryImpl struct {
	httpClient *http.Client
}

// NewCatalogRepository cria uma nova implementação do CatalogRepository.
func NewCatalogRepository() repository.CatalogRepository {
	return &CatalogRepositoryImpl{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type productsResponse struct {
	Products []struct {
		ID       int     `json:"id"`
		Title    string  `json:"title"`
		Category string  `json:"category"`
		Brand    string  `json:"brand"`
		Rating   float64 `json:"rating"`
	} `json:"products"`
	Total int `json:"total"`
}

// FetchCatalog retrieves the product list and materializes it as a mapping
// keyed by product identifier. Catalog IDs are numeric on the wire; the sales
// feed prefixes them with "P", so entries are keyed "P<id>". Any failure is
// reported as ErrCatalogUnavailable so the caller can degrade to an empty
// catalog instead of aborting the pipeline.
func (r *CatalogRepositoryImpl) FetchCatalog(ctx context.Context, baseURL string) (entity.Catalog, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	url := fmt.Sprintf("%s/products?limit=%d", baseURL, fetchLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", types.ErrCatalogUnavailable, resp.StatusCode)
	}

	var data productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", types.ErrCatalogUnavailable, err)
	}

	mapping := make(entity.Catalog, len(data.Products))
	for _, p := range data.Products {
		if p.ID == 0 {
			continue
		}
		productID := fmt.Sprintf("P%d", p.ID)
		mapping[productID] = entity.CatalogEntry{
			ProductID: productID,
			Title:     p.Title,
			Category:  p.Category,
			Brand:     p.Brand,
			Rating:    p.Rating,
		}
	}

	return mapping, nil
}
