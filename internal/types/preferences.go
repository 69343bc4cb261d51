package types

// Influence is the dominant visual direction derived from liked swipes.
type Influence string

const (
	InfluenceCreative     Influence = "creative"
	InfluenceVibrant      Influence = "vibrant"
	InfluenceMinimal      Influence = "minimal"
	InfluenceProfessional Influence = "professional"
)

// PreferenceProfile is the ranked summary of a finished swipe session.
// Frequency lists are sorted descending by like-count, ties broken by
// first-liked order.
type PreferenceProfile struct {
	Styles        []string  `json:"styles"`
	Colors        []string  `json:"colors"`
	Layouts       []string  `json:"layouts"`
	Elements      []string  `json:"elements"`
	LikedItems    []ItemRef `json:"likedItems"`
	DislikedItems []ItemRef `json:"dislikedItems"`
	Influence     Influence `json:"templateInfluence"`
}
