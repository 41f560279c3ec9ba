package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParsePropertyFilterEmpty(t *testing.T) {
	f := ParsePropertyFilter(url.Values{})

	assert.Empty(t, f.Status)
	assert.Empty(t, f.PropertyType)
	assert.Empty(t, f.City)
	assert.Nil(t, f.MinBedrooms)
	assert.Nil(t, f.Featured)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Equal(t, bson.M{}, f.Predicate())
}

func TestParsePropertyFilterAllFields(t *testing.T) {
	values := url.Values{}
	values.Set("status", "for-sale")
	values.Set("type", "condo")
	values.Set("city", "Austin")
	values.Set("bedrooms", "3")
	values.Set("featured", "true")
	values.Set("minPrice", "100000")
	values.Set("maxPrice", "500000")

	f := ParsePropertyFilter(values)

	require.NotNil(t, f.MinBedrooms)
	require.NotNil(t, f.Featured)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, "for-sale", f.Status)
	assert.Equal(t, "condo", f.PropertyType)
	assert.Equal(t, "Austin", f.City)
	assert.Equal(t, 3, *f.MinBedrooms)
	assert.True(t, *f.Featured)
	assert.Equal(t, 100000.0, *f.MinPrice)
	assert.Equal(t, 500000.0, *f.MaxPrice)
}

func TestParsePropertyFilterMalformedNumbersIgnored(t *testing.T) {
	values := url.Values{}
	values.Set("status", "for-sale")
	values.Set("minPrice", "cheap")
	values.Set("maxPrice", "12e")
	values.Set("bedrooms", "three")

	f := ParsePropertyFilter(values)

	// Malformed bounds are dropped; the remaining constraint still applies.
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinBedrooms)
	assert.Equal(t, bson.M{"status": "for-sale"}, f.Predicate())
}

func TestParsePropertyFilterFeaturedRequiresTrue(t *testing.T) {
	for _, v := range []string{"false", "1", "yes", "TRUE", ""} {
		values := url.Values{}
		if v != "" {
			values.Set("featured", v)
		}
		f := ParsePropertyFilter(values)
		assert.Nilf(t, f.Featured, "featured=%q should not constrain", v)
	}

	values := url.Values{}
	values.Set("featured", "true")
	f := ParsePropertyFilter(values)
	require.NotNil(t, f.Featured)
	assert.True(t, *f.Featured)
}

func TestPropertyPredicateCityIsCaseInsensitiveContains(t *testing.T) {
	f := PropertyFilter{City: "aust"}

	assert.Equal(t, bson.M{
		"location.city": bson.M{"$regex": "aust", "$options": "i"},
	}, f.Predicate())
}

func TestPropertyPredicatePriceBounds(t *testing.T) {
	min := 300000.0
	max := 600000.0

	tests := []struct {
		name   string
		filter PropertyFilter
		want   bson.M
	}{
		{
			name:   "min only",
			filter: PropertyFilter{MinPrice: &min},
			want:   bson.M{"price": bson.M{"$gte": min}},
		},
		{
			name:   "max only",
			filter: PropertyFilter{MaxPrice: &max},
			want:   bson.M{"price": bson.M{"$lte": max}},
		},
		{
			name:   "both merged on one field",
			filter: PropertyFilter{MinPrice: &min, MaxPrice: &max},
			want:   bson.M{"price": bson.M{"$gte": min, "$lte": max}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Predicate())
		})
	}
}

// Out-of-order bounds are not validated by the builder; the predicate simply
// cannot match anything.
func TestPropertyPredicateInvertedRangeStillCompiles(t *testing.T) {
	min := 600000.0
	max := 300000.0
	f := PropertyFilter{MinPrice: &min, MaxPrice: &max}

	assert.Equal(t, bson.M{"price": bson.M{"$gte": min, "$lte": max}}, f.Predicate())
}

func TestPropertyPredicateBedroomsIsLowerBound(t *testing.T) {
	n := 2
	f := PropertyFilter{MinBedrooms: &n}

	assert.Equal(t, bson.M{"bedrooms": bson.M{"$gte": 2}}, f.Predicate())
}

func TestPropertyPredicateSearchExample(t *testing.T) {
	values := url.Values{}
	values.Set("status", "for-sale")
	values.Set("minPrice", "300000")
	values.Set("maxPrice", "600000")
	values.Set("city", "Austin")

	got := ParsePropertyFilter(values).Predicate()

	assert.Equal(t, bson.M{
		"status":        "for-sale",
		"location.city": bson.M{"$regex": "Austin", "$options": "i"},
		"price":         bson.M{"$gte": 300000.0, "$lte": 600000.0},
	}, got)
}

func TestParseBlogFilter(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		want      bson.M
		published bool
	}{
		{
			name:   "no filters matches everything",
			values: url.Values{},
			want:   bson.M{},
		},
		{
			name:   "category exact match",
			values: url.Values{"category": {"Market Trends"}},
			want:   bson.M{"category": "Market Trends"},
		},
		{
			name:      "published true restricts to published",
			values:    url.Values{"published": {"true"}},
			want:      bson.M{"published": true},
			published: true,
		},
		{
			// The admin list view omits the flag so drafts stay visible.
			name:   "published false leaves drafts eligible",
			values: url.Values{"published": {"false"}},
			want:   bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseBlogFilter(tt.values)
			assert.Equal(t, tt.want, f.Predicate())
			if tt.published {
				require.NotNil(t, f.Published)
				assert.True(t, *f.Published)
			}
		})
	}
}

func TestNewestFirstSortsByCreationDescending(t *testing.T) {
	opts := NewestFirst()

	require.NotNil(t, opts.Sort)
	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 1)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Nil(t, opts.Limit)
	assert.Nil(t, opts.Projection)
}
