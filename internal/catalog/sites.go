package catalog

import (
	"time"

	"github.com/yungbote/swipegen-backend/internal/types"
)

// SiteColors is the palette of a sample site.
type SiteColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent,omitempty"`
}

// Site is one swipeable sample design. The list is fixed reference data:
// the aggregator counts attributes from it and the UI swipes through it.
type Site struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"imageUrl"`
	Influence   types.Influence `json:"templateInfluence"`
	Colors      SiteColors      `json:"colors"`
	Layout      string          `json:"layout"`
	Industry    string          `json:"industry"`
	Elements    []string        `json:"elements"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
}

// Swipe builds the event recorded when this site is liked or disliked.
func (s Site) Swipe(d types.Decision) types.SwipeEvent {
	return types.SwipeEvent{
		ItemID:    s.ID,
		Decision:  d,
		Timestamp: time.Now().UnixMilli(),
		Style:     string(s.Influence),
		Colors:    []string{s.Colors.Primary, s.Colors.Secondary},
		Layout:    s.Layout,
		Elements:  s.Elements,
	}
}

// Ref returns the item reference used in preference profiles.
func (s Site) Ref() types.ItemRef {
	return types.ItemRef{ID: s.ID, Name: s.Name}
}

// SiteRefs returns the catalog as item references in swipe order.
func SiteRefs() []types.ItemRef {
	refs := make([]types.ItemRef, 0, len(Sites))
	for _, s := range Sites {
		refs = append(refs, s.Ref())
	}
	return refs
}

// Sites holds the ten sample designs shown during a swipe session.
var Sites = []Site{
	{
		ID:        1,
		Name:      "Creative Photography Portfolio",
		ImageURL:  "/sites/photographer.png",
		Influence: types.InfluenceCreative,
		Colors:    SiteColors{Primary: "#1a1a1a", Secondary: "#f5f5f5", Accent: "#ff6b6b"},
		Layout:    "gallery-grid",
		Industry:  "creative",
		Elements: []string{
			"masonry-gallery",
			"fullscreen-navigation",
			"minimal-typography",
			"image-hover-effects",
			"contact-form",
		},
		Description: "A stunning photography portfolio showcasing artistic vision through visual storytelling",
		Tags:        []string{"photography", "portfolio", "creative", "gallery", "minimal", "artistic"},
	},
	{
		ID:        2,
		Name:      "AI Technology Company",
		ImageURL:  "/sites/ai-company.png",
		Influence: types.InfluenceProfessional,
		Colors:    SiteColors{Primary: "#0066ff", Secondary: "#ffffff", Accent: "#00d4ff"},
		Layout:    "full-screen-hero",
		Industry:  "tech",
		Elements: []string{
			"animated-hero",
			"feature-cards",
			"tech-illustrations",
			"gradient-backgrounds",
			"cta-buttons",
		},
		Description: "Modern AI technology company showcasing innovation and cutting-edge solutions",
		Tags:        []string{"technology", "ai", "startup", "innovation", "modern", "professional"},
	},
	{
		ID:        3,
		Name:      "Personal Blog & Media",
		ImageURL:  "/sites/personal-blog.png",
		Influence: types.InfluenceMinimal,
		Colors:    SiteColors{Primary: "#2c3e50", Secondary: "#ecf0f1", Accent: "#e74c3c"},
		Layout:    "article-stack",
		Industry:  "blog",
		Elements: []string{
			"article-cards",
			"sidebar-navigation",
			"author-bio",
			"comment-section",
			"newsletter-signup",
		},
		Description: "Clean and focused personal blog for sharing thoughts and stories",
		Tags:        []string{"blog", "writing", "personal", "minimal", "content", "media"},
	},
	{
		ID:        4,
		Name:      "Coming Soon Landing",
		ImageURL:  "/sites/coming-soon.png",
		Influence: types.InfluenceVibrant,
		Colors:    SiteColors{Primary: "#ff00ff", Secondary: "#00ffff", Accent: "#ffff00"},
		Layout:    "one-page",
		Industry:  "pre-launch",
		Elements: []string{
			"countdown-timer",
			"email-capture",
			"animated-background",
			"social-links",
			"teaser-content",
		},
		Description: "Eye-catching coming soon page with vibrant design and countdown",
		Tags:        []string{"landing", "coming-soon", "vibrant", "animated", "pre-launch", "teaser"},
	},
	{
		ID:        5,
		Name:      "Creative CV Portfolio",
		ImageURL:  "/sites/creative-cv.png",
		Influence: types.InfluenceCreative,
		Colors:    SiteColors{Primary: "#6c5ce7", Secondary: "#ffffff", Accent: "#fd79a8"},
		Layout:    "vertical-scroll",
		Industry:  "portfolio",
		Elements: []string{
			"timeline-experience",
			"skill-bars",
			"project-showcase",
			"testimonials",
			"download-cv",
		},
		Description: "Creative digital CV and portfolio for designers and creatives",
		Tags:        []string{"cv", "portfolio", "creative", "resume", "designer", "personal-brand"},
	},
	{
		ID:        6,
		Name:      "Tech Company Corporate",
		ImageURL:  "/sites/tech-company.png",
		Influence: types.InfluenceProfessional,
		Colors:    SiteColors{Primary: "#1e3a8a", Secondary: "#f8fafc", Accent: "#3b82f6"},
		Layout:    "split-screen",
		Industry:  "corporate",
		Elements: []string{
			"hero-slider",
			"service-grid",
			"team-section",
			"client-logos",
			"contact-info",
		},
		Description: "Professional corporate website for established technology companies",
		Tags:        []string{"corporate", "technology", "professional", "business", "enterprise", "b2b"},
	},
	{
		ID:        7,
		Name:      "Fashion Accessories Store",
		ImageURL:  "/sites/accessories-store.png",
		Influence: types.InfluenceVibrant,
		Colors:    SiteColors{Primary: "#ff1493", Secondary: "#ffffff", Accent: "#ffd700"},
		Layout:    "product-grid",
		Industry:  "retail",
		Elements: []string{
			"product-carousel",
			"quick-view",
			"filter-sidebar",
			"shopping-cart",
			"instagram-feed",
		},
		Description: "Trendy fashion accessories e-commerce store with vibrant design",
		Tags:        []string{"ecommerce", "fashion", "retail", "accessories", "shopping", "trendy"},
	},
	{
		ID:        8,
		Name:      "Home Renovation Services",
		ImageURL:  "/sites/home-remodeling.png",
		Influence: types.InfluenceMinimal,
		Colors:    SiteColors{Primary: "#8b4513", Secondary: "#faf0e6", Accent: "#228b22"},
		Layout:    "service-showcase",
		Industry:  "construction",
		Elements: []string{
			"before-after-slider",
			"project-gallery",
			"service-packages",
			"testimonials",
			"quote-calculator",
		},
		Description: "Home renovation and remodeling services with clean, trustworthy design",
		Tags:        []string{"construction", "renovation", "home", "services", "remodeling", "interior"},
	},
	{
		ID:        9,
		Name:      "Business Consulting Firm",
		ImageURL:  "/sites/business-consulting.png",
		Influence: types.InfluenceProfessional,
		Colors:    SiteColors{Primary: "#2c3e50", Secondary: "#ecf0f1", Accent: "#27ae60"},
		Layout:    "content-focused",
		Industry:  "consulting",
		Elements: []string{
			"case-studies",
			"expertise-areas",
			"team-profiles",
			"blog-section",
			"consultation-booking",
		},
		Description: "Professional business consulting firm showcasing expertise and results",
		Tags:        []string{"consulting", "business", "professional", "corporate", "advisory", "strategy"},
	},
	{
		ID:        10,
		Name:      "Construction Company",
		ImageURL:  "/sites/construction-company.png",
		Influence: types.InfluenceMinimal,
		Colors:    SiteColors{Primary: "#ff6600", Secondary: "#f5f5f5", Accent: "#333333"},
		Layout:    "project-showcase",
		Industry:  "engineering",
		Elements: []string{
			"project-portfolio",
			"service-categories",
			"equipment-showcase",
			"safety-certifications",
			"contact-forms",
		},
		Description: "Industrial construction company with strong, reliable visual presence",
		Tags:        []string{"construction", "engineering", "industrial", "projects", "infrastructure", "building"},
	},
}
