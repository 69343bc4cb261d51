package selector

import (
	"strings"

	"github.com/yungbote/swipegen-backend/internal/types"
)

// Scoring weights. Style overlap dominates, influence match comes second,
// layout hints add a little each.
const (
	styleWeight     = 40
	influenceWeight = 30
	layoutWeight    = 10
	maxConfidence   = 100
	topLayouts      = 3
)

// influenceAliases maps a profile influence to the template styles it also
// matches, beyond the literal string.
var influenceAliases = map[types.Influence][]types.Style{
	types.InfluenceProfessional: {types.StyleCorporate},
	types.InfluenceVibrant:      {types.StyleCreative},
}

// Selector scores a preference profile against a fixed template catalog.
type Selector struct {
	templates []types.Template
}

// New builds a selector over the given catalog. Order matters: ties and the
// zero-score fallback both resolve to the earliest template.
func New(templates []types.Template) *Selector {
	return &Selector{templates: templates}
}

// Select picks the highest scoring template for the profile and returns it
// with a confidence capped at 100. An empty catalog yields ok=false.
func (s *Selector) Select(p types.PreferenceProfile) (types.Template, int, bool) {
	if len(s.templates) == 0 {
		return types.Template{}, 0, false
	}

	best := s.templates[0]
	bestScore := score(best, p)
	for _, t := range s.templates[1:] {
		if sc := score(t, p); sc > bestScore {
			best = t
			bestScore = sc
		}
	}

	confidence := bestScore
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return best, confidence, true
}

func score(t types.Template, p types.PreferenceProfile) int {
	total := 0

	for _, style := range p.Styles {
		if style == string(t.Style) {
			total += styleWeight
			break
		}
	}

	if influenceMatches(p.Influence, t.Style) {
		total += influenceWeight
	}

	// Layout names use hyphens; template markup uses spaces.
	for i, layout := range p.Layouts {
		if i == topLayouts {
			break
		}
		needle := strings.ToLower(strings.ReplaceAll(layout, "-", " "))
		if needle != "" && strings.Contains(strings.ToLower(t.HTML), needle) {
			total += layoutWeight
		}
	}

	if t.Bonus != nil {
		total += t.Bonus(p)
	}
	return total
}

func influenceMatches(inf types.Influence, style types.Style) bool {
	if string(inf) == string(style) {
		return true
	}
	for _, alias := range influenceAliases[inf] {
		if alias == style {
			return true
		}
	}
	return false
}
