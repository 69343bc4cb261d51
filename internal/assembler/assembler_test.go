package assembler

import (
	"strings"
	"testing"

	"github.com/yungbote/swipegen-backend/internal/catalog"
	"github.com/yungbote/swipegen-backend/internal/types"
)

func TestAssembleSubstitutesVariables(t *testing.T) {
	tmpl := types.Template{
		ID:   "t",
		HTML: `<html><head><style>{{{css}}}</style></head><body><h1>{{heroTitle}}</h1><p>{{heroTitle}}</p></body></html>`,
		CSS:  `h1 { color: {{primaryColor}}; }`,
	}
	out, err := Assemble(tmpl, map[string]string{
		"heroTitle":    "Hello",
		"primaryColor": "#123456",
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if strings.Count(out, "Hello") != 2 {
		t.Fatalf("every occurrence must be replaced:\n%s", out)
	}
	if !strings.Contains(out, "color: #123456") {
		t.Fatalf("css variables must be substituted:\n%s", out)
	}
	if strings.Contains(out, "{{heroTitle}}") {
		t.Fatalf("unsubstituted token left behind:\n%s", out)
	}
}

func TestAssembleNoRecursiveExpansion(t *testing.T) {
	tmpl := types.Template{
		ID:   "t",
		HTML: `<p>{{a}} {{b}}</p>`,
	}
	out, err := Assemble(tmpl, map[string]string{
		"a": "{{b}}",
		"b": "real",
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if out != "<p>{{b}} real</p>" {
		t.Fatalf("substituted values must not be re-expanded, got %q", out)
	}
}

func TestAssembleUnknownTokenPassesThrough(t *testing.T) {
	tmpl := types.Template{ID: "t", HTML: `<p>{{mystery}}</p>`}
	out, err := Assemble(tmpl, map[string]string{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if out != "<p>{{mystery}}</p>" {
		t.Fatalf("unknown tokens must pass through, got %q", out)
	}
}

func TestAssembleMissingCSSAnchor(t *testing.T) {
	tmpl := types.Template{ID: "t", HTML: `<p>hi</p>`, CSS: `p {}`}
	if _, err := Assemble(tmpl, nil); err == nil {
		t.Fatal("expected error when css has no anchor")
	}
}

func TestAssembleInjectsJS(t *testing.T) {
	tmpl := types.Template{
		ID:   "t",
		HTML: `<body><script>{{{js}}}</script></body>`,
		JS:   `console.log("ready");`,
	}
	out, err := Assemble(tmpl, nil)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(out, `console.log("ready");`) {
		t.Fatalf("js must be injected:\n%s", out)
	}
}

func TestAssembleCatalogTemplates(t *testing.T) {
	for _, tmpl := range catalog.Templates {
		vars := make(map[string]string, len(tmpl.Variables))
		for _, key := range tmpl.Variables {
			vars[key] = "x-" + key
		}
		out, err := Assemble(tmpl, vars)
		if err != nil {
			t.Fatalf("%s: assemble: %v", tmpl.ID, err)
		}
		for _, key := range tmpl.Variables {
			if strings.Contains(out, "{{"+key+"}}") {
				t.Fatalf("%s: token %q not substituted", tmpl.ID, key)
			}
		}
	}
}
