package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

func validProperty() Property {
	return Property{
		Title:        "Modern Family Home",
		Description:  "A lovely three bedroom house.",
		Price:        350000,
		Location:     Location{City: "Austin", State: "TX"},
		PropertyType: "house",
		Status:       StatusForSale,
		Bedrooms:     3,
		Bathrooms:    2.5,
		Area:         1800,
		MainImage:    "/uploads/main.jpg",
	}
}

func TestPropertySetDefaults(t *testing.T) {
	p := Property{}
	p.SetDefaults()

	assert.Equal(t, StatusForSale, p.Status)
	assert.Equal(t, "USA", p.Location.Country)

	p = Property{Status: StatusSold, Location: Location{Country: "Canada"}}
	p.SetDefaults()
	assert.Equal(t, StatusSold, p.Status)
	assert.Equal(t, "Canada", p.Location.Country)
}

func TestPropertyValidation(t *testing.T) {
	p := validProperty()
	require.NoError(t, validate.Struct(&p))

	tests := []struct {
		name   string
		mutate func(*Property)
	}{
		{"missing title", func(p *Property) { p.Title = "" }},
		{"missing description", func(p *Property) { p.Description = "" }},
		{"negative price", func(p *Property) { p.Price = -1 }},
		{"missing city", func(p *Property) { p.Location.City = "" }},
		{"missing state", func(p *Property) { p.Location.State = "" }},
		{"unknown property type", func(p *Property) { p.PropertyType = "castle" }},
		{"unknown status", func(p *Property) { p.Status = "pending" }},
		{"negative bedrooms", func(p *Property) { p.Bedrooms = -1 }},
		{"missing main image", func(p *Property) { p.MainImage = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProperty()
			tt.mutate(&p)
			assert.Error(t, validate.Struct(&p))
		})
	}
}

func TestPropertyHalfStepBathrooms(t *testing.T) {
	p := validProperty()
	p.Bathrooms = 1.5
	assert.NoError(t, validate.Struct(&p))
}

func TestPropertyActive(t *testing.T) {
	assert.True(t, (&Property{Status: StatusForSale}).Active())
	assert.True(t, (&Property{Status: StatusForRent}).Active())
	assert.False(t, (&Property{Status: StatusSold}).Active())
	assert.False(t, (&Property{Status: StatusRented}).Active())
}

func TestBlogSetDefaultsDerivesSlug(t *testing.T) {
	b := Blog{Title: "10 Tips for First-Time Home Buyers"}
	b.SetDefaults()

	assert.Equal(t, "10-tips-for-first-time-home-buyers", b.Slug)
	assert.Equal(t, PlaceholderImage, b.FeaturedImage)
}

func TestBlogSetDefaultsKeepsExplicitValues(t *testing.T) {
	b := Blog{Title: "Some Title", Slug: "custom-slug", FeaturedImage: "/uploads/cover.jpg"}
	b.SetDefaults()

	assert.Equal(t, "custom-slug", b.Slug)
	assert.Equal(t, "/uploads/cover.jpg", b.FeaturedImage)
}

func TestBlogValidation(t *testing.T) {
	b := Blog{
		Title:         "Market Update",
		Slug:          "market-update",
		Excerpt:       "What happened this quarter.",
		Content:       "Long form content.",
		Author:        Author{Name: "Jane Smith"},
		Category:      "Market Trends",
		FeaturedImage: PlaceholderImage,
	}
	require.NoError(t, validate.Struct(&b))

	b.Author.Name = ""
	assert.Error(t, validate.Struct(&b))
}

func TestUserSetDefaults(t *testing.T) {
	u := User{Email: "Admin@Example.COM"}
	u.SetDefaults()

	assert.Equal(t, "admin@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)

	u = User{Email: "a@b.com", Role: RoleAdmin}
	u.SetDefaults()
	assert.Equal(t, RoleAdmin, u.Role)
}

func TestUserSanitize(t *testing.T) {
	u := User{Password: "$2a$10$hash"}
	u.Sanitize()
	assert.Empty(t, u.Password)
}
