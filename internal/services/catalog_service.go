package services

import (
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/storage"
)

// CatalogService handles business logic related to catalog products.
type CatalogService struct {
	repo  repositories.ProductRepository
	guard *Guard
	media MediaResolver
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository, guard *Guard, media MediaResolver) *CatalogService {
	return &CatalogService{
		repo:  repo,
		guard: guard,
		media: media,
	}
}

// ProductFilter narrows the public product listing. Both fields are
// optional.
type ProductFilter struct {
	Category string
	Search   string
}

// ListProducts is the public catalog listing. Only active products are
// visible. With a search term the result comes from the name search
// restricted to active products, with the category applied as a post-filter
// in memory; ordering is store-defined either way.
func (s *CatalogService) ListProducts(filter ProductFilter) ([]models.ProductView, error) {
	if filter.Search != "" {
		matches, err := s.repo.SearchActive(filter.Search)
		if err != nil {
			return nil, err
		}
		if filter.Category != "" {
			filtered := matches[:0]
			for _, p := range matches {
				if p.Category == filter.Category {
					filtered = append(filtered, p)
				}
			}
			matches = filtered
		}
		return s.annotate(matches), nil
	}

	if filter.Category != "" {
		products, err := s.repo.ListActiveByCategory(filter.Category)
		if err != nil {
			return nil, err
		}
		return s.annotate(products), nil
	}

	products, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return s.annotate(products), nil
}

// Categories returns the distinct categories of active products in
// lexicographic order.
func (s *CatalogService) Categories() ([]string, error) {
	return s.repo.ActiveCategories()
}

// CreateProduct creates a new product. Admin only.
func (s *CatalogService) CreateProduct(callerID string, product *models.Product) error {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return err
	}
	return s.repo.Create(product)
}

// UpdateProduct replaces the mutable fields of an existing product,
// including the active flag. Admin only.
func (s *CatalogService) UpdateProduct(callerID string, product *models.Product) error {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return err
	}
	return s.repo.Update(product)
}

// DeleteProduct hard-deletes a product, cascading to cart items that
// reference it. Admin only.
func (s *CatalogService) DeleteProduct(callerID string, id string) error {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ListAllProducts returns every product regardless of active flag. Admin
// only.
func (s *CatalogService) ListAllProducts(callerID string) ([]models.ProductView, error) {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return nil, err
	}
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.annotate(products), nil
}

// GenerateUploadTicket issues a short-lived image upload URL. Admin only.
func (s *CatalogService) GenerateUploadTicket(callerID string) (*storage.UploadTicket, error) {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return nil, err
	}
	return s.media.IssueTicket()
}

func (s *CatalogService) annotate(products []models.Product) []models.ProductView {
	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, models.ProductView{
			Product:  p,
			ImageURL: s.media.ResolveURL(p.ImageID),
		})
	}
	return views
}
