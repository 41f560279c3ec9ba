// Package query translates optional listing search criteria into MongoDB
// predicates. Filters are parsed permissively: a malformed numeric bound is
// dropped rather than rejected, so a bad query parameter can never fail a
// public search.
package query

import (
	"net/url"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PropertyFilter holds the optional criteria for a property search. A nil or
// zero field means "no constraint on this field".
type PropertyFilter struct {
	Status       string
	PropertyType string
	City         string
	MinBedrooms  *int
	Featured     *bool
	MinPrice     *float64
	MaxPrice     *float64
}

// ParsePropertyFilter extracts a PropertyFilter from listing query
// parameters. Numeric parameters that fail to parse are ignored; "featured"
// only constrains when it is the literal string "true".
func ParsePropertyFilter(values url.Values) PropertyFilter {
	f := PropertyFilter{
		Status:       values.Get("status"),
		PropertyType: values.Get("type"),
		City:         values.Get("city"),
	}
	if v := values.Get("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinBedrooms = &n
		}
	}
	if values.Get("featured") == "true" {
		t := true
		f.Featured = &t
	}
	if v := values.Get("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}

// Predicate compiles the filter into a MongoDB query document. Supplied
// constraints combine with AND semantics; an empty filter matches everything.
func (f PropertyFilter) Predicate() bson.M {
	q := bson.M{}

	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.PropertyType != "" {
		q["propertyType"] = f.PropertyType
	}
	if f.City != "" {
		// Case-insensitive substring match, unlike the exact-match fields.
		q["location.city"] = bson.M{"$regex": f.City, "$options": "i"}
	}
	if f.MinBedrooms != nil {
		q["bedrooms"] = bson.M{"$gte": *f.MinBedrooms}
	}
	if f.Featured != nil {
		q["featured"] = *f.Featured
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		q["price"] = price
	}
	return q
}

// BlogFilter holds the optional criteria for a blog listing. Omitting
// Published makes both published and unpublished posts eligible; this is
// the admin list view's path to draft content.
type BlogFilter struct {
	Category  string
	Published *bool
}

// ParseBlogFilter extracts a BlogFilter from listing query parameters.
// "published" only constrains when it is the literal string "true".
func ParseBlogFilter(values url.Values) BlogFilter {
	f := BlogFilter{Category: values.Get("category")}
	if values.Get("published") == "true" {
		t := true
		f.Published = &t
	}
	return f
}

// Predicate compiles the filter into a MongoDB query document.
func (f BlogFilter) Predicate() bson.M {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Published != nil {
		q["published"] = *f.Published
	}
	return q
}

// NewestFirst returns the find options every listing query uses: full
// documents sorted by creation time descending, no pagination.
func NewestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}
