package query

import "github.com/nabeelsyed11/Kimia-Reality/models"

// DashboardStats are the derived aggregates shown on the admin dashboard.
type DashboardStats struct {
	TotalProperties int `json:"totalProperties"`
	ActiveListings  int `json:"activeListings"`
	TotalBlogs      int `json:"totalBlogs"`
	TotalViews      int `json:"totalViews"`
}

// Stats reduces the unfiltered result sets into dashboard aggregates:
// collection totals, active listings (for-sale or for-rent), and the sum of
// all blog view counters.
func Stats(properties []models.Property, blogs []models.Blog) DashboardStats {
	s := DashboardStats{
		TotalProperties: len(properties),
		TotalBlogs:      len(blogs),
	}
	for _, p := range properties {
		if p.Active() {
			s.ActiveListings++
		}
	}
	for _, b := range blogs {
		s.TotalViews += b.Views
	}
	return s
}
