package types

// Style is the closed set of template styles.
type Style string

const (
	StyleMinimal   Style = "minimal"
	StyleCorporate Style = "corporate"
	StyleCreative  Style = "creative"
	StyleDeveloper Style = "developer"
	StyleEcommerce Style = "ecommerce"
	StylePremium   Style = "premium"
)

// Template is a static landing page skeleton with named {{variable}}
// placeholders in its HTML and CSS bodies. CSS is injected at the {{{css}}}
// anchor; JS, when present, at {{{js}}}. Loaded once at startup, immutable.
type Template struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Style     Style    `json:"style"`
	Variables []string `json:"variables"`
	HTML      string   `json:"-"`
	CSS       string   `json:"-"`
	JS        string   `json:"-"`

	// Bonus is an optional per-template scoring rule evaluated by the
	// selector on top of the shared scoring.
	Bonus func(p PreferenceProfile) int `json:"-"`
}
