package matching

import (
	"sort"
	"strings"

	"github.com/infogrowkro/growkroweb/internal/models"
)

// Weights for ranking approved creators against a business's stated
// audience criteria. They sum to 100 so a perfect fit scores 100.
const (
	categoryWeight = 30
	followerWeight = 30
	locationWeight = 20
	verifiedWeight = 10
	packageWeight  = 10
)

// DefaultLimit caps the result set when the caller does not ask for one.
const DefaultLimit = 10

// RankedCreator is a creator annotated with its fit for one business.
type RankedCreator struct {
	models.Creator
	MatchScore     int `json:"match_score"`
	TotalFollowers int `json:"total_followers"`
}

// Score computes the weighted fit between a business's criteria and a
// single creator. Empty criteria count as a match.
func Score(owner *models.BusinessOwner, creator *models.Creator) int {
	score := 0

	if matchesText(creator.Category, owner.Industry) {
		score += categoryWeight
	}
	if matchesText(creator.Location, owner.Location) {
		score += locationWeight
	}
	if inFollowerRange(creator.InstagramFollowers, owner.MinFollowers, owner.MaxFollowers) {
		score += followerWeight
	}
	if creator.VerificationStatus {
		score += verifiedWeight
	}
	if creator.HighlightPackage != nil {
		score += packageWeight
	}

	return score
}

// Rank scores every candidate, orders them best-first, and truncates to
// limit. Ties keep the candidates' original order.
func Rank(owner *models.BusinessOwner, candidates []models.Creator, limit int) []RankedCreator {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]RankedCreator, 0, len(candidates))
	for i := range candidates {
		creator := candidates[i]
		ranked = append(ranked, RankedCreator{
			Creator:        creator,
			MatchScore:     Score(owner, &creator),
			TotalFollowers: creator.TotalFollowers(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func matchesText(value, criterion string) bool {
	if criterion == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(criterion))
}

func inFollowerRange(followers, min, max int) bool {
	if followers < min {
		return false
	}
	return max == 0 || followers <= max
}
