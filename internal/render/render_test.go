package render

import (
	"strings"
	"testing"

	"devcanvas/internal/normalize"
	"devcanvas/internal/portfolio"
)

func intPtr(v int) *int { return &v }

func samplePortfolio(templateID string) portfolio.PortfolioData {
	return portfolio.PortfolioData{
		Username: "octocat",
		Name:     "The Octocat",
		Title:    "Platform Engineer",
		Summary:  "Builds things.",
		Template: templateID,
		Skills: []normalize.Skill{
			{Name: "Go", Percentage: intPtr(95), Source: normalize.SourceGitHub},
			{Name: "React", Source: normalize.SourceResume},
		},
		Projects: []normalize.Repo{
			{Name: "hello", URL: "https://github.com/octocat/hello", Stars: 9, Language: "Go"},
		},
		Contact: portfolio.Contact{Email: "octo@example.com"},
	}
}

func TestRenderEachTemplate(t *testing.T) {
	renderer := MustNew()

	for _, meta := range portfolio.Templates() {
		page, err := renderer.Render(samplePortfolio(meta.ID))
		if err != nil {
			t.Fatalf("render %s: %v", meta.ID, err)
		}
		html := string(page)
		if !strings.Contains(html, "The Octocat") {
			t.Errorf("%s: name missing", meta.ID)
		}
		if !strings.Contains(html, "https://github.com/octocat/hello") {
			t.Errorf("%s: project link missing", meta.ID)
		}
		if !strings.Contains(html, "Go") {
			t.Errorf("%s: skills missing", meta.ID)
		}
	}
}

func TestEveryCatalogTemplateIsRenderable(t *testing.T) {
	renderer := MustNew()
	for _, meta := range portfolio.Templates() {
		if !renderer.Has(meta.ID) {
			t.Errorf("catalog template %s has no renderer", meta.ID)
		}
	}
}

func TestTemplatesRenderDistinctMarkup(t *testing.T) {
	renderer := MustNew()

	seen := map[string]string{}
	for _, meta := range portfolio.Templates() {
		page, err := renderer.Render(samplePortfolio(meta.ID))
		if err != nil {
			t.Fatalf("render %s: %v", meta.ID, err)
		}
		for prevID, prev := range seen {
			if prev == string(page) {
				t.Errorf("%s renders the same markup as %s", meta.ID, prevID)
			}
		}
		seen[meta.ID] = string(page)
	}
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	renderer := MustNew()

	page, err := renderer.Render(samplePortfolio("does-not-exist"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(page), "The Octocat") {
		t.Error("fallback render incomplete")
	}
}

func TestRenderEscapesUserContent(t *testing.T) {
	renderer := MustNew()
	data := samplePortfolio("github-default")
	data.Summary = `<script>alert("x")</script>`

	page, err := renderer.Render(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(page), "<script>alert") {
		t.Error("summary not escaped")
	}
}

func TestHas(t *testing.T) {
	renderer := MustNew()
	if !renderer.Has("modern-dev") {
		t.Error("modern-dev should exist")
	}
	if renderer.Has("nope") {
		t.Error("unknown id reported present")
	}
}
