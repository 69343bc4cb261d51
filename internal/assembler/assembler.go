package assembler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yungbote/swipegen-backend/internal/types"
)

var (
	varToken = regexp.MustCompile(`\{\{(\w+)\}\}`)

	cssAnchor = "{{{css}}}"
	jsAnchor  = "{{{js}}}"
)

// Assemble renders a template into a standalone HTML document. CSS and JS
// are injected at their triple-brace anchors first, then every {{name}}
// token across the combined document is substituted in a single pass, so
// values containing token-like text are never re-expanded. Unknown tokens
// pass through untouched.
func Assemble(tmpl types.Template, vars map[string]string) (string, error) {
	doc := tmpl.HTML

	if tmpl.CSS != "" {
		if !strings.Contains(doc, cssAnchor) {
			return "", fmt.Errorf("template %s declares css but has no %s anchor", tmpl.ID, cssAnchor)
		}
		doc = strings.ReplaceAll(doc, cssAnchor, tmpl.CSS)
	}
	if tmpl.JS != "" {
		if !strings.Contains(doc, jsAnchor) {
			return "", fmt.Errorf("template %s declares js but has no %s anchor", tmpl.ID, jsAnchor)
		}
		doc = strings.ReplaceAll(doc, jsAnchor, tmpl.JS)
	}

	doc = varToken.ReplaceAllStringFunc(doc, func(token string) string {
		name := token[2 : len(token)-2]
		if v, ok := vars[name]; ok {
			return v
		}
		return token
	})

	return doc, nil
}
