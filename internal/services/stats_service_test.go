package services_test

import (
	"testing"
	"time"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
)

func newStatsFixture(t *testing.T) (*services.StatsService, *repositories.MockProductRepository, *repositories.MockAdRepository, *repositories.MockProfileRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	adRepo := repositories.NewMockAdRepository()
	profileRepo := repositories.NewMockProfileRepository()
	guard := services.NewGuard(profileRepo)
	service := services.NewStatsService(productRepo, adRepo, profileRepo, guard)
	return service, productRepo, adRepo, profileRepo
}

func touchLogin(t *testing.T, repo *repositories.MockProfileRepository, userID string, when time.Time) {
	t.Helper()
	profile, err := repo.GetByUserID(userID)
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.NoError(t, repo.TouchLogin(profile, when))
}

func TestStatsService_RequiresAdmin(t *testing.T) {
	service, _, _, profileRepo := newStatsFixture(t)
	seedProfile(t, profileRepo, "client-1", models.RoleClient, time.Now())

	_, err := service.GetStats("")
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
	_, err = service.GetStats("client-1")
	assert.ErrorIs(t, err, services.ErrAdminRequired)
	_, err = service.GetStats("ghost")
	assert.ErrorIs(t, err, services.ErrAdminRequired)
}

func TestStatsService_CatalogCounts(t *testing.T) {
	service, productRepo, adRepo, profileRepo := newStatsFixture(t)
	seedProfile(t, profileRepo, "admin-1", models.RoleAdmin, time.Now())

	seedProduct(t, productRepo, "Wooden Train", "toys", true)
	seedProduct(t, productRepo, "Tin Robot", "toys", false)
	seedProduct(t, productRepo, "Desk Lamp", "home", true)
	seedAd(t, adRepo, "Summer Sale", true)
	seedAd(t, adRepo, "Old Promo", false)

	stats, err := service.GetStats("admin-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.Equal(t, 2, stats.TotalAds)
	assert.Equal(t, 1, stats.ActiveAds)
}

func TestStatsService_LoginWindow(t *testing.T) {
	service, _, _, profileRepo := newStatsFixture(t)

	// 12 login records, one per minute. The two oldest belong to the client
	// and must fall outside the 10-record window.
	base := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	at := func(i int) time.Time { return base.Add(time.Duration(i) * time.Minute) }

	seedProfile(t, profileRepo, "client-1", models.RoleClient, at(0))
	for i := 1; i <= 7; i++ {
		touchLogin(t, profileRepo, "client-1", at(i))
	}
	seedProfile(t, profileRepo, "admin-1", models.RoleAdmin, at(8))
	for i := 9; i <= 11; i++ {
		touchLogin(t, profileRepo, "admin-1", at(i))
	}

	stats, err := service.GetStats("admin-1")
	assert.NoError(t, err)

	// Window caps at 10 even though 12 records exist, and the role mix is
	// folded over the window only: the 2 oldest client logins drop out.
	assert.Equal(t, 10, stats.RecentLogins)
	assert.Equal(t, map[string]int{"client": 6, "admin": 4}, stats.LoginsByRole)

	assert.Len(t, stats.LastLogins, 5)
	assert.Equal(t, services.LoginSummary{Role: "admin", Time: "2026-08-29 09:11:00"}, stats.LastLogins[0])
	assert.Equal(t, services.LoginSummary{Role: "admin", Time: "2026-08-29 09:10:00"}, stats.LastLogins[1])
	assert.Equal(t, services.LoginSummary{Role: "admin", Time: "2026-08-29 09:09:00"}, stats.LastLogins[2])
	assert.Equal(t, services.LoginSummary{Role: "admin", Time: "2026-08-29 09:08:00"}, stats.LastLogins[3])
	assert.Equal(t, services.LoginSummary{Role: "client", Time: "2026-08-29 09:07:00"}, stats.LastLogins[4])
}

func TestStatsService_FewLogins(t *testing.T) {
	service, _, _, profileRepo := newStatsFixture(t)
	seedProfile(t, profileRepo, "admin-1", models.RoleAdmin, time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))

	stats, err := service.GetStats("admin-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.RecentLogins)
	assert.Equal(t, map[string]int{"admin": 1}, stats.LoginsByRole)
	assert.Len(t, stats.LastLogins, 1)
	assert.Equal(t, "2026-08-29 10:00:00", stats.LastLogins[0].Time)
}
