package catalog

import (
	"github.com/yungbote/swipegen-backend/internal/types"
)

// Templates is the static template catalog in registration order. The
// premium template is first; the selector falls back to index zero when
// nothing scores.
var Templates = []types.Template{
	premiumAITemplate,
	minimalPortfolio,
	corporateProfessional,
	creativeVibrant,
	developerTech,
	ecommerceModern,
}

// ByID returns the template with the given id, if registered.
func ByID(id string) (types.Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return types.Template{}, false
}
