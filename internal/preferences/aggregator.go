package preferences

import (
	"sort"

	"github.com/yungbote/swipegen-backend/internal/types"
)

// counter tracks occurrence counts while remembering first-seen order so
// that Finalize can break ties deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if key == "" {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns keys sorted descending by count; ties keep first-seen order.
func (c *counter) ranked() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	sort.SliceStable(out, func(i, j int) bool {
		return c.counts[out[i]] > c.counts[out[j]]
	})
	return out
}

// Aggregator folds a swipe session into a preference profile. Record is
// O(1) amortized: per-category counters are updated incrementally, never by
// rescanning history. One aggregator serves one session; Reset starts the
// next.
type Aggregator struct {
	items map[int]types.ItemRef
	total int

	index   int
	history []types.SwipeEvent

	styles   *counter
	colors   *counter
	layouts  *counter
	elements *counter

	liked    []types.ItemRef
	disliked []types.ItemRef
}

// New builds an aggregator over a fixed item list; the session is complete
// once every item has been swiped.
func New(items []types.ItemRef) *Aggregator {
	byID := make(map[int]types.ItemRef, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	a := &Aggregator{items: byID, total: len(items)}
	a.reset()
	return a
}

func (a *Aggregator) reset() {
	a.index = 0
	a.history = nil
	a.styles = newCounter()
	a.colors = newCounter()
	a.layouts = newCounter()
	a.elements = newCounter()
	a.liked = nil
	a.disliked = nil
}

// Record appends one swipe event. Events past the end of the session are
// ignored. Only likes feed the frequency counters; dislikes only extend the
// disliked item list.
func (a *Aggregator) Record(e types.SwipeEvent) {
	if a.index >= a.total {
		return
	}
	a.history = append(a.history, e)
	a.index++

	ref, known := a.items[e.ItemID]
	if !known {
		ref = types.ItemRef{ID: e.ItemID}
	}

	if e.Decision != types.DecisionLike {
		a.disliked = append(a.disliked, ref)
		return
	}

	a.liked = append(a.liked, ref)
	a.styles.add(e.Style)
	for _, color := range e.Colors {
		a.colors.add(color)
	}
	a.layouts.add(e.Layout)
	for _, el := range e.Elements {
		a.elements.add(el)
	}
}

// Complete reports whether every item has been swiped.
func (a *Aggregator) Complete() bool {
	return a.index == a.total
}

// Finalize materializes the profile from the counters. It is idempotent:
// counters are left untouched, so repeated calls over the same event
// sequence return the same profile. With zero likes the frequency lists are
// empty and the influence falls back to minimal.
func (a *Aggregator) Finalize() types.PreferenceProfile {
	styles := a.styles.ranked()

	influence := types.InfluenceMinimal
	if len(styles) > 0 {
		influence = types.Influence(styles[0])
	}

	return types.PreferenceProfile{
		Styles:        styles,
		Colors:        a.colors.ranked(),
		Layouts:       a.layouts.ranked(),
		Elements:      a.elements.ranked(),
		LikedItems:    append([]types.ItemRef(nil), a.liked...),
		DislikedItems: append([]types.ItemRef(nil), a.disliked...),
		Influence:     influence,
	}
}

// History returns the recorded events in order.
func (a *Aggregator) History() []types.SwipeEvent {
	return append([]types.SwipeEvent(nil), a.history...)
}

// Reset clears counters and history for a new session.
func (a *Aggregator) Reset() {
	a.reset()
}
