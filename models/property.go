package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property statuses accepted by the schema.
const (
	StatusForSale = "for-sale"
	StatusForRent = "for-rent"
	StatusSold    = "sold"
	StatusRented  = "rented"
)

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Location struct {
	Address     string       `bson:"address,omitempty" json:"address,omitempty"`
	City        string       `bson:"city" json:"city" validate:"required"`
	State       string       `bson:"state" json:"state" validate:"required"`
	ZipCode     string       `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Country     string       `bson:"country" json:"country"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type Property struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title" validate:"required,max=200"`
	Description    string             `bson:"description" json:"description" validate:"required"`
	Price          float64            `bson:"price" json:"price" validate:"gte=0"`
	Location       Location           `bson:"location" json:"location"`
	PropertyType   string             `bson:"propertyType" json:"propertyType" validate:"required,oneof=house apartment condo townhouse land commercial"`
	Status         string             `bson:"status" json:"status" validate:"oneof=for-sale for-rent sold rented"`
	Bedrooms       int                `bson:"bedrooms" json:"bedrooms" validate:"gte=0"`
	Bathrooms      float64            `bson:"bathrooms" json:"bathrooms" validate:"gte=0"`
	Area           int                `bson:"area" json:"area" validate:"gte=0"`
	YearBuilt      int                `bson:"yearBuilt,omitempty" json:"yearBuilt,omitempty"`
	Features       []string           `bson:"features" json:"features"`
	Amenities      []string           `bson:"amenities" json:"amenities"`
	Images         []string           `bson:"images" json:"images"`
	MainImage      string             `bson:"mainImage" json:"mainImage" validate:"required"`
	VirtualTourURL string             `bson:"virtualTourUrl,omitempty" json:"virtualTourUrl,omitempty"`
	Featured       bool               `bson:"featured" json:"featured"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetDefaults fills schema defaults on fields the client may omit.
func (p *Property) SetDefaults() {
	if p.Status == "" {
		p.Status = StatusForSale
	}
	if p.Location.Country == "" {
		p.Location.Country = "USA"
	}
}

// Active reports whether the property counts as an active listing.
func (p *Property) Active() bool {
	return p.Status == StatusForSale || p.Status == StatusForRent
}
