package models

// HighlightPackage is a paid visibility tier. The catalog is code-defined
// and immutable at runtime; it is never persisted.
type HighlightPackage struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Price                 int      `json:"price"` // INR
	DurationDays          int      `json:"duration_days"`
	MinInstagramFollowers int      `json:"min_instagram_followers"`
	Features              []string `json:"features"`
	Color                 string   `json:"color"`
	Description           string   `json:"description"`
}

var HighlightPackages = []HighlightPackage{
	{
		ID:                    "silver",
		Name:                  "Silver Highlight",
		Price:                 1999,
		DurationDays:          365,
		MinInstagramFollowers: 20000,
		Features: []string{
			"Profile highlighting for 365 days",
			"Priority in search results",
			"Silver badge on profile",
			"Basic analytics",
		},
		Color:       "#C0C0C0",
		Description: "Get noticed with our Silver highlight package",
	},
	{
		ID:                    "gold",
		Name:                  "Gold Highlight",
		Price:                 4999,
		DurationDays:          365,
		MinInstagramFollowers: 100000,
		Features: []string{
			"Profile highlighting for 365 days",
			"Top priority in search results",
			"Gold badge on profile",
			"Advanced analytics",
			"Featured in weekly newsletter",
		},
		Color:       "#FFD700",
		Description: "Stand out with our premium Gold highlight package",
	},
	{
		ID:                    "platinum",
		Name:                  "Platinum Highlight",
		Price:                 9999,
		DurationDays:          365,
		MinInstagramFollowers: 500000,
		Features: []string{
			"Profile highlighting for 365 days",
			"Maximum priority in search results",
			"Platinum badge on profile",
			"Premium analytics dashboard",
			"Featured in weekly newsletter",
			"Direct collaboration opportunities",
		},
		Color:       "#E5E4E2",
		Description: "Ultimate visibility with our Platinum highlight package",
	},
}

// FindHighlightPackage looks a tier up by identifier.
func FindHighlightPackage(id string) (HighlightPackage, bool) {
	for _, pkg := range HighlightPackages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return HighlightPackage{}, false
}

// EligibleFor reports whether a creator meets the tier's follower gate.
// Eligibility is checked at upgrade time only; a later follower edit does
// not revoke a held package.
func (pkg HighlightPackage) EligibleFor(creator *Creator) bool {
	return creator.InstagramFollowers >= pkg.MinInstagramFollowers
}
