package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products  map[string]models.Product
	cartItems *MockCartRepository // optional, for delete cascade
	mu        sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// WithCartRepository wires the cart repository used for the delete cascade.
func (r *MockProductRepository) WithCartRepository(carts *MockCartRepository) *MockProductRepository {
	r.cartItems = carts
	return r
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// ListActive returns all active products.
func (r *MockProductRepository) ListActive() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var productList []models.Product
	for _, p := range r.products {
		if p.IsActive {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// ListActiveByCategory returns active products in the given category.
func (r *MockProductRepository) ListActiveByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var productList []models.Product
	for _, p := range r.products {
		if p.IsActive && p.Category == category {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// SearchActive returns active products whose name contains the given text,
// case-insensitively.
func (r *MockProductRepository) SearchActive(name string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(name)
	var productList []models.Product
	for _, p := range r.products {
		if p.IsActive && strings.Contains(strings.ToLower(p.Name), needle) {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// ActiveCategories returns the sorted distinct categories of active products.
func (r *MockProductRepository) ActiveCategories() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range r.products {
		if p.IsActive && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID, cascading to cart items when a cart
// repository was wired in.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	delete(r.products, id)
	if r.cartItems != nil {
		r.cartItems.deleteByProduct(id)
	}
	return nil
}
