package services

import (
	"math/rand"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/storage"
)

// AdsService handles business logic related to advertisements.
type AdsService struct {
	repo  repositories.AdRepository
	guard *Guard
	media MediaResolver
}

// NewAdsService creates a new AdsService.
func NewAdsService(repo repositories.AdRepository, guard *Guard, media MediaResolver) *AdsService {
	return &AdsService{
		repo:  repo,
		guard: guard,
		media: media,
	}
}

// RandomActive picks one active advertisement uniformly at random for the
// popup rotation. An empty set yields (nil, nil), not an error.
func (s *AdsService) RandomActive() (*models.AdvertisementView, error) {
	ads, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, nil
	}
	ad := ads[rand.Intn(len(ads))]
	view := models.AdvertisementView{
		Advertisement: ad,
		ImageURL:      s.media.ResolveURL(ad.ImageID),
	}
	return &view, nil
}

// AllActive returns every active advertisement with resolved image URL, for
// client-side rotation. Public.
func (s *AdsService) AllActive() ([]models.AdvertisementView, error) {
	ads, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return s.annotate(ads), nil
}

// ListAllAds returns every advertisement regardless of active flag. Admin
// only.
func (s *AdsService) ListAllAds(callerID string) ([]models.AdvertisementView, error) {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return nil, err
	}
	ads, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.annotate(ads), nil
}

// CreateAd creates a new advertisement. Admin only.
func (s *AdsService) CreateAd(callerID string, ad *models.Advertisement) error {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return err
	}
	return s.repo.Create(ad)
}

// UpdateAd replaces the mutable fields of an existing advertisement. Admin
// only.
func (s *AdsService) UpdateAd(callerID string, ad *models.Advertisement) error {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return err
	}
	return s.repo.Update(ad)
}

// DeleteAd hard-deletes an advertisement. Admin only.
func (s *AdsService) DeleteAd(callerID string, id string) error {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// GenerateUploadTicket issues a short-lived image upload URL. Admin only.
func (s *AdsService) GenerateUploadTicket(callerID string) (*storage.UploadTicket, error) {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return nil, err
	}
	return s.media.IssueTicket()
}

func (s *AdsService) annotate(ads []models.Advertisement) []models.AdvertisementView {
	views := make([]models.AdvertisementView, 0, len(ads))
	for _, ad := range ads {
		views = append(views, models.AdvertisementView{
			Advertisement: ad,
			ImageURL:      s.media.ResolveURL(ad.ImageID),
		})
	}
	return views
}
