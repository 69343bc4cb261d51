package types

// Decision is the outcome of a single swipe.
type Decision string

const (
	DecisionLike    Decision = "like"
	DecisionDislike Decision = "dislike"
)

// SwipeEvent is one like/dislike judgement over a catalog item. Events are
// append-only; the aggregator never mutates them after recording.
type SwipeEvent struct {
	ItemID    int      `json:"itemId"`
	Decision  Decision `json:"decision"`
	Timestamp int64    `json:"timestamp"`
	Style     string   `json:"style"`
	Colors    []string `json:"colors"`
	Layout    string   `json:"layout"`
	Elements  []string `json:"elements"`
}

// ItemRef identifies a catalog item inside a preference profile.
type ItemRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
