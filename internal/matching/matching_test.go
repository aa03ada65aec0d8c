package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infogrowkro/growkroweb/internal/models"
)

func TestScore(t *testing.T) {
	gold := "gold"

	tests := []struct {
		name    string
		owner   models.BusinessOwner
		creator models.Creator
		want    int
	}{
		{
			name:  "perfect fit",
			owner: models.BusinessOwner{Industry: "Fashion", Location: "Mumbai", MinFollowers: 10000, MaxFollowers: 100000},
			creator: models.Creator{
				Category: "Fashion", Location: "Mumbai", InstagramFollowers: 50000,
				VerificationStatus: true, HighlightPackage: &gold,
			},
			want: 100,
		},
		{
			name:    "empty criteria match everything",
			owner:   models.BusinessOwner{},
			creator: models.Creator{Category: "Tech", Location: "Bangalore"},
			want:    categoryWeight + locationWeight + followerWeight,
		},
		{
			name:    "substring category match",
			owner:   models.BusinessOwner{Industry: "fash"},
			creator: models.Creator{Category: "Fashion & Lifestyle"},
			want:    categoryWeight + locationWeight + followerWeight,
		},
		{
			name:    "below follower floor",
			owner:   models.BusinessOwner{MinFollowers: 10000},
			creator: models.Creator{InstagramFollowers: 9999},
			want:    categoryWeight + locationWeight,
		},
		{
			name:    "zero max means unbounded",
			owner:   models.BusinessOwner{MinFollowers: 10000, MaxFollowers: 0},
			creator: models.Creator{InstagramFollowers: 5000000},
			want:    categoryWeight + locationWeight + followerWeight,
		},
		{
			name:    "above follower ceiling",
			owner:   models.BusinessOwner{MaxFollowers: 100000},
			creator: models.Creator{InstagramFollowers: 100001},
			want:    categoryWeight + locationWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(&tt.owner, &tt.creator))
		})
	}
}

func TestRank(t *testing.T) {
	owner := models.BusinessOwner{Industry: "Fashion"}

	candidates := []models.Creator{
		{Name: "No Fit", Category: "Tech", Location: "x", InstagramFollowers: 0},
		{Name: "Good Fit", Category: "Fashion", VerificationStatus: true},
		{Name: "Okay Fit", Category: "Fashion"},
	}
	// Industry criterion set, location empty: "No Fit" misses only category.
	ranked := Rank(&owner, candidates, 10)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "Good Fit", ranked[0].Name)
	assert.Equal(t, "Okay Fit", ranked[1].Name)
	assert.Equal(t, "No Fit", ranked[2].Name)
	assert.Greater(t, ranked[0].MatchScore, ranked[1].MatchScore)
}

func TestRank_Truncation(t *testing.T) {
	owner := models.BusinessOwner{}
	candidates := make([]models.Creator, 15)

	assert.Len(t, Rank(&owner, candidates, 5), 5)
	// Non-positive limit falls back to the default.
	assert.Len(t, Rank(&owner, candidates, 0), DefaultLimit)
}

func TestRank_StableTies(t *testing.T) {
	owner := models.BusinessOwner{}
	candidates := []models.Creator{
		{Name: "First"},
		{Name: "Second"},
		{Name: "Third"},
	}

	ranked := Rank(&owner, candidates, 10)
	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, "Second", ranked[1].Name)
	assert.Equal(t, "Third", ranked[2].Name)
}

func TestTotalFollowersAnnotation(t *testing.T) {
	owner := models.BusinessOwner{}
	ranked := Rank(&owner, []models.Creator{{
		InstagramFollowers: 10000,
		YoutubeSubscribers: 20000,
		TwitterFollowers:   3000,
	}}, 1)

	assert.Equal(t, 33000, ranked[0].TotalFollowers)
}
