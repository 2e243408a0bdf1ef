package services

import (
	"katalog/internal/repositories"
)

const (
	recentLoginWindow = 10
	lastLoginCount    = 5
)

const loginTimeLayout = "2006-01-02 15:04:05"

// LoginSummary is one row of the dashboard's last-logins list.
type LoginSummary struct {
	Role string `json:"role"`
	Time string `json:"time"`
}

// Stats is the admin dashboard aggregate. LoginsByRole is a recent-activity
// mix folded over the 10 most recent logins only, not a lifetime metric.
type Stats struct {
	TotalProducts  int            `json:"totalProducts"`
	ActiveProducts int            `json:"activeProducts"`
	TotalAds       int            `json:"totalAds"`
	ActiveAds      int            `json:"activeAds"`
	RecentLogins   int            `json:"recentLogins"`
	LoginsByRole   map[string]int `json:"loginsByRole"`
	LastLogins     []LoginSummary `json:"lastLogins"`
}

// StatsService computes the admin dashboard aggregates. Read-only.
type StatsService struct {
	products repositories.ProductRepository
	ads      repositories.AdRepository
	profiles repositories.ProfileRepository
	guard    *Guard
}

// NewStatsService creates a new StatsService.
func NewStatsService(products repositories.ProductRepository, ads repositories.AdRepository, profiles repositories.ProfileRepository, guard *Guard) *StatsService {
	return &StatsService{
		products: products,
		ads:      ads,
		profiles: profiles,
		guard:    guard,
	}
}

// GetStats returns catalog counts and the recent login mix. Admin only.
// The full-table scans are acceptable at the assumed catalog scale.
func (s *StatsService) GetStats(callerID string) (*Stats, error) {
	if _, err := s.guard.RequireAdmin(callerID); err != nil {
		return nil, err
	}

	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	ads, err := s.ads.GetAll()
	if err != nil {
		return nil, err
	}
	recent, err := s.profiles.RecentLogins(recentLoginWindow)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalProducts: len(products),
		TotalAds:      len(ads),
		RecentLogins:  len(recent),
		LoginsByRole:  make(map[string]int),
	}
	for _, p := range products {
		if p.IsActive {
			stats.ActiveProducts++
		}
	}
	for _, ad := range ads {
		if ad.IsActive {
			stats.ActiveAds++
		}
	}
	for _, login := range recent {
		stats.LoginsByRole[login.Role]++
	}

	last := recent
	if len(last) > lastLoginCount {
		last = last[:lastLoginCount]
	}
	stats.LastLogins = make([]LoginSummary, 0, len(last))
	for _, login := range last {
		stats.LastLogins = append(stats.LastLogins, LoginSummary{
			Role: login.Role,
			Time: login.LoginTime.Format(loginTimeLayout),
		})
	}

	return stats, nil
}
