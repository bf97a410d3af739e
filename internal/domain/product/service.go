// internal/domain/product/service.go
package product

import "context"

// Service handles catalog read operations
type Service struct {
	catalog Reader
}

// NewService creates a new product service
func NewService(catalog Reader) *Service {
	return &Service{catalog: catalog}
}

// GetProduct returns a single product by id
func (s *Service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.catalog.FindProduct(ctx, id)
}

// ListProducts returns the full catalog
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.catalog.ListProducts(ctx)
}
