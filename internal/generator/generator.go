package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/swipegen-backend/internal/logger"
	"github.com/yungbote/swipegen-backend/internal/types"
)

// JSONClient produces a JSON object from a system and user prompt. The
// OpenAI client in internal/services satisfies it.
type JSONClient interface {
	GenerateJSON(ctx context.Context, system, user string) (map[string]any, error)
}

const systemPrompt = "You are an expert copywriter and brand designer. " +
	"Generate landing page content as a JSON object. Respond only with valid JSON, " +
	"no markdown formatting. Every value must be a string."

// fallbackValues covers the variable names common across the catalog. Keys
// missing here render as bracketed markers so incomplete output is visible
// rather than silently blank.
var fallbackValues = map[string]string{
	"heroTitle":       "Welcome to Our Site",
	"heroSubtitle":    "Discover Amazing Solutions",
	"primaryColor":    "#6366F1",
	"backgroundColor": "#FFFFFF",
	"secondaryColor":  "#F3F4F6",
	"accentColor":     "#EC4899",
	"ctaButtonText":   "Get Started",
	"companyName":     "Your Company",
	"brandName":       "Your Brand",
	"appName":         "Your App",
	"storeName":       "Your Store",
	"contactEmail":    "hello@example.com",
	"contactPhone":    "+1 (555) 123-4567",
	"contactInfo":     "Contact us for more information",
}

// Generator fills template variables from a preference profile, asking the
// LLM first and degrading to static defaults when it cannot.
type Generator struct {
	client JSONClient
	log    *logger.Logger
}

// New builds a generator. A nil client is valid and means every job uses
// fallback content.
func New(client JSONClient, log *logger.Logger) *Generator {
	return &Generator{client: client, log: log.With("service", "Generator")}
}

// Variables produces one value per template variable, in the template's
// declared key set, never more and never fewer. It does not fail: any LLM
// error or malformed response degrades to the fallback table.
func (g *Generator) Variables(ctx context.Context, tmpl types.Template, p types.PreferenceProfile) map[string]string {
	if g.client == nil {
		g.log.Info("no llm client configured, using fallback variables", "template", tmpl.ID)
		return g.fallback(tmpl)
	}

	raw, err := g.client.GenerateJSON(ctx, systemPrompt, buildPrompt(tmpl, p))
	if err != nil {
		g.log.Warn("llm generation failed, using fallback variables", "template", tmpl.ID, "error", err)
		return g.fallback(tmpl)
	}

	out := make(map[string]string, len(tmpl.Variables))
	missing := 0
	for _, key := range tmpl.Variables {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				out[key] = s
				continue
			}
		}
		out[key] = fallbackFor(key)
		missing++
	}
	if missing > 0 {
		g.log.Warn("llm response missing variables, filled from fallback", "template", tmpl.ID, "missing", missing)
	}
	return out
}

func (g *Generator) fallback(tmpl types.Template) map[string]string {
	out := make(map[string]string, len(tmpl.Variables))
	for _, key := range tmpl.Variables {
		out[key] = fallbackFor(key)
	}
	return out
}

func fallbackFor(key string) string {
	if v, ok := fallbackValues[key]; ok {
		return v
	}
	return "[" + key + "]"
}

func buildPrompt(tmpl types.Template, p types.PreferenceProfile) string {
	var b strings.Builder

	b.WriteString("Generate landing page content for a user with these preferences:\n\n")

	if len(p.LikedItems) > 0 {
		names := make([]string, 0, len(p.LikedItems))
		for _, it := range p.LikedItems {
			names = append(names, it.Name)
		}
		fmt.Fprintf(&b, "Liked designs: %s\n", strings.Join(names, ", "))
	}
	if len(p.Styles) > 0 {
		fmt.Fprintf(&b, "Preferred styles: %s\n", strings.Join(top(p.Styles, 3), ", "))
	}
	if len(p.Colors) > 0 {
		fmt.Fprintf(&b, "Preferred colors: %s\n", strings.Join(top(p.Colors, 3), ", "))
	}
	fmt.Fprintf(&b, "Design influence: %s\n", p.Influence)
	fmt.Fprintf(&b, "\nSelected template: %s\n", tmpl.Name)

	b.WriteString("\nReturn a JSON object with exactly these keys, each mapped to a short string:\n")
	for _, key := range tmpl.Variables {
		fmt.Fprintf(&b, "- %s\n", key)
	}
	b.WriteString("\nColor values must be hex codes. Keep copy concise and on-brand.")

	return b.String()
}

func top(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
