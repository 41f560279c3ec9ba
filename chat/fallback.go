package chat

import (
	"context"
	"strings"
)

// keywordRule maps trigger substrings to a canned reply. Rules are checked
// in order; the first match wins.
type keywordRule struct {
	keywords []string
	reply    string
}

// KeywordResponder is the deterministic fallback. It produces a reply for
// every input and never returns an error.
type KeywordResponder struct {
	rules        []keywordRule
	defaultReply string
}

func NewKeywordResponder() *KeywordResponder {
	return &KeywordResponder{
		rules: []keywordRule{
			{
				keywords: []string{"buy", "purchase"},
				reply:    "I'd be happy to help you find a property! Browse our listings page to see available properties for sale. You can filter by price, location, and property type. If you need personalized assistance, please contact our agents.",
			},
			{
				keywords: []string{"rent", "rental"},
				reply:    "Looking for a rental? Check out our rental listings! We have a variety of apartments, houses, and condos available. Use our search filters to find the perfect place for you.",
			},
			{
				keywords: []string{"sell", "list"},
				reply:    "Interested in selling your property? Kimia Realty can help! Our experienced agents will guide you through the selling process. Contact us to schedule a property valuation and listing consultation.",
			},
			{
				keywords: []string{"price", "cost"},
				reply:    "Property prices vary based on location, size, and amenities. Browse our listings to see current market prices, or contact our agents for a detailed market analysis in your area of interest.",
			},
			{
				keywords: []string{"location", "area"},
				reply:    "We have properties in various locations! Use our search feature to filter properties by city or neighborhood. Each listing includes detailed location information and nearby amenities.",
			},
		},
		defaultReply: "Welcome to Kimia Realty! I'm here to help you with property searches, buying/selling guidance, and general real estate questions. How can I assist you today?",
	}
}

func (r *KeywordResponder) Respond(_ context.Context, message string) (string, error) {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply, nil
			}
		}
	}
	return r.defaultReply, nil
}
