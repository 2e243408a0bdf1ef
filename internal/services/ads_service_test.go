package services_test

import (
	"testing"
	"time"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
)

func newAdsFixture(t *testing.T) (*services.AdsService, *repositories.MockAdRepository, *repositories.MockProfileRepository) {
	t.Helper()
	adRepo := repositories.NewMockAdRepository()
	profileRepo := repositories.NewMockProfileRepository()
	guard := services.NewGuard(profileRepo)
	service := services.NewAdsService(adRepo, guard, stubMedia{})
	return service, adRepo, profileRepo
}

func seedAd(t *testing.T, repo *repositories.MockAdRepository, title string, active bool) *models.Advertisement {
	t.Helper()
	ad := &models.Advertisement{
		Title:    title,
		IsActive: active,
	}
	assert.NoError(t, repo.Create(ad))
	return ad
}

func TestAdsService_RandomActive(t *testing.T) {
	service, adRepo, _ := newAdsFixture(t)

	// Empty set yields null, not an error
	ad, err := service.RandomActive()
	assert.NoError(t, err)
	assert.Nil(t, ad)

	seedAd(t, adRepo, "Summer Sale", true)
	seedAd(t, adRepo, "Old Promo", false)

	// Only the active ad can ever be picked
	for i := 0; i < 10; i++ {
		ad, err = service.RandomActive()
		assert.NoError(t, err)
		assert.NotNil(t, ad)
		assert.Equal(t, "Summer Sale", ad.Title)
	}
}

func TestAdsService_AllActive(t *testing.T) {
	service, adRepo, _ := newAdsFixture(t)

	imageID := "banner-1"
	withImage := &models.Advertisement{Title: "Summer Sale", IsActive: true, ImageID: &imageID}
	assert.NoError(t, adRepo.Create(withImage))
	seedAd(t, adRepo, "Old Promo", false)

	ads, err := service.AllActive()
	assert.NoError(t, err)
	assert.Len(t, ads, 1)
	assert.Equal(t, "Summer Sale", ads[0].Title)
	assert.NotNil(t, ads[0].ImageURL)
	assert.Equal(t, "https://media.test/banner-1", *ads[0].ImageURL)
}

func TestAdsService_AdminGating(t *testing.T) {
	service, adRepo, profileRepo := newAdsFixture(t)
	seedProfile(t, profileRepo, "client-1", models.RoleClient, time.Now())

	ad := &models.Advertisement{Title: "New Promo", IsActive: true}

	assert.ErrorIs(t, service.CreateAd("", ad), services.ErrNotAuthenticated)
	assert.ErrorIs(t, service.CreateAd("client-1", ad), services.ErrAdminRequired)
	_, err := service.ListAllAds("client-1")
	assert.ErrorIs(t, err, services.ErrAdminRequired)
	_, err = service.GenerateUploadTicket("client-1")
	assert.ErrorIs(t, err, services.ErrAdminRequired)

	all, _ := adRepo.GetAll()
	assert.Empty(t, all) // nothing written on rejected calls
}

func TestAdsService_AdminCRUD(t *testing.T) {
	service, _, profileRepo := newAdsFixture(t)
	seedProfile(t, profileRepo, "admin-1", models.RoleAdmin, time.Now())

	ad := &models.Advertisement{Title: "Winter Clearance", IsActive: false}
	assert.NoError(t, service.CreateAd("admin-1", ad))
	assert.NotEmpty(t, ad.ID)

	// Inactive ad is hidden publicly, visible to admins
	public, _ := service.AllActive()
	assert.Empty(t, public)
	all, err := service.ListAllAds("admin-1")
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	ad.IsActive = true
	assert.NoError(t, service.UpdateAd("admin-1", ad))
	public, _ = service.AllActive()
	assert.Len(t, public, 1)

	assert.NoError(t, service.DeleteAd("admin-1", ad.ID))
	all, _ = service.ListAllAds("admin-1")
	assert.Empty(t, all)
}
