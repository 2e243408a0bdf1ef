package repositories

import (
	"fmt"
	"sync"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockAdRepository is an in-memory implementation of AdRepository.
type MockAdRepository struct {
	ads map[string]models.Advertisement
	mu  sync.RWMutex
}

// NewMockAdRepository creates a new instance of MockAdRepository.
func NewMockAdRepository() *MockAdRepository {
	return &MockAdRepository{
		ads: make(map[string]models.Advertisement),
	}
}

// GetAll returns all advertisements.
func (r *MockAdRepository) GetAll() ([]models.Advertisement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adList := make([]models.Advertisement, 0, len(r.ads))
	for _, ad := range r.ads {
		adList = append(adList, ad)
	}
	return adList, nil
}

// GetByID returns an advertisement by its ID.
func (r *MockAdRepository) GetByID(id string) (*models.Advertisement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ad, ok := r.ads[id]
	if !ok {
		return nil, fmt.Errorf("advertisement with ID %s: %w", id, ErrNotFound)
	}
	return &ad, nil
}

// ListActive returns all active advertisements.
func (r *MockAdRepository) ListActive() ([]models.Advertisement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var adList []models.Advertisement
	for _, ad := range r.ads {
		if ad.IsActive {
			adList = append(adList, ad)
		}
	}
	return adList, nil
}

// Create adds a new advertisement.
func (r *MockAdRepository) Create(ad *models.Advertisement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ad.ID == "" {
		ad.ID = uuid.New().String()
	}
	r.ads[ad.ID] = *ad
	return nil
}

// Update modifies an existing advertisement.
func (r *MockAdRepository) Update(ad *models.Advertisement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.ads[ad.ID]
	if !ok {
		return fmt.Errorf("advertisement with ID %s not found for update", ad.ID)
	}
	r.ads[ad.ID] = *ad
	return nil
}

// Delete removes an advertisement by its ID.
func (r *MockAdRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.ads[id]
	if !ok {
		return fmt.Errorf("advertisement with ID %s not found for deletion", id)
	}
	delete(r.ads, id)
	return nil
}
