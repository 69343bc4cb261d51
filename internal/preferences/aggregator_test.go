package preferences

import (
	"reflect"
	"testing"

	"github.com/yungbote/swipegen-backend/internal/catalog"
	"github.com/yungbote/swipegen-backend/internal/types"
)

func TestAggregatorRanksByFrequency(t *testing.T) {
	a := New(catalog.SiteRefs())

	// Like three professional sites and one creative one; dislike the rest.
	for _, s := range catalog.Sites {
		d := types.DecisionDislike
		if s.Influence == types.InfluenceProfessional || s.ID == 1 {
			d = types.DecisionLike
		}
		a.Record(s.Swipe(d))
	}

	if !a.Complete() {
		t.Fatalf("expected session complete after %d swipes", len(catalog.Sites))
	}

	p := a.Finalize()
	if len(p.Styles) == 0 || p.Styles[0] != "professional" {
		t.Fatalf("expected professional as top style, got %v", p.Styles)
	}
	if p.Influence != types.InfluenceProfessional {
		t.Fatalf("expected professional influence, got %q", p.Influence)
	}
	if len(p.LikedItems) != 4 {
		t.Fatalf("expected 4 liked items, got %d", len(p.LikedItems))
	}
	if len(p.DislikedItems) != 6 {
		t.Fatalf("expected 6 disliked items, got %d", len(p.DislikedItems))
	}
}

func TestAggregatorTiesKeepFirstSeenOrder(t *testing.T) {
	items := []types.ItemRef{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	a := New(items)

	a.Record(types.SwipeEvent{ItemID: 1, Decision: types.DecisionLike, Style: "creative", Layout: "one-page"})
	a.Record(types.SwipeEvent{ItemID: 2, Decision: types.DecisionLike, Style: "vibrant", Layout: "gallery-grid"})

	p := a.Finalize()
	want := []string{"creative", "vibrant"}
	if !reflect.DeepEqual(p.Styles, want) {
		t.Fatalf("tie order: got %v want %v", p.Styles, want)
	}
	if p.Influence != types.InfluenceCreative {
		t.Fatalf("expected creative influence on tie, got %q", p.Influence)
	}
}

func TestAggregatorAllDislikesDefaultsMinimal(t *testing.T) {
	items := []types.ItemRef{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	a := New(items)
	a.Record(types.SwipeEvent{ItemID: 1, Decision: types.DecisionDislike, Style: "creative"})
	a.Record(types.SwipeEvent{ItemID: 2, Decision: types.DecisionDislike, Style: "vibrant"})

	p := a.Finalize()
	if len(p.Styles) != 0 || len(p.Colors) != 0 || len(p.Layouts) != 0 || len(p.Elements) != 0 {
		t.Fatalf("dislikes must not feed counters: %+v", p)
	}
	if p.Influence != types.InfluenceMinimal {
		t.Fatalf("expected minimal influence with zero likes, got %q", p.Influence)
	}
	if len(p.DislikedItems) != 2 {
		t.Fatalf("expected 2 disliked items, got %d", len(p.DislikedItems))
	}
}

func TestAggregatorFinalizeIdempotent(t *testing.T) {
	a := New(catalog.SiteRefs())
	for _, s := range catalog.Sites {
		a.Record(s.Swipe(types.DecisionLike))
	}
	first := a.Finalize()
	second := a.Finalize()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("finalize not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAggregatorIgnoresExtraSwipes(t *testing.T) {
	items := []types.ItemRef{{ID: 1, Name: "a"}}
	a := New(items)
	a.Record(types.SwipeEvent{ItemID: 1, Decision: types.DecisionLike, Style: "creative"})
	a.Record(types.SwipeEvent{ItemID: 99, Decision: types.DecisionLike, Style: "vibrant"})

	p := a.Finalize()
	if len(p.Styles) != 1 || p.Styles[0] != "creative" {
		t.Fatalf("extra swipe must be ignored, got %v", p.Styles)
	}
	if got := len(a.History()); got != 1 {
		t.Fatalf("expected 1 recorded event, got %d", got)
	}
}

func TestAggregatorReset(t *testing.T) {
	a := New(catalog.SiteRefs())
	a.Record(catalog.Sites[0].Swipe(types.DecisionLike))
	a.Reset()

	if a.Complete() {
		t.Fatal("reset aggregator must not be complete")
	}
	p := a.Finalize()
	if len(p.LikedItems) != 0 || len(p.Styles) != 0 {
		t.Fatalf("reset must clear state, got %+v", p)
	}
}
