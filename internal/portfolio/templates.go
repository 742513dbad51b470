package portfolio

// TemplateMeta describes a portfolio template for listing endpoints.
type TemplateMeta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Style       string `json:"style"`
	Recommended bool   `json:"recommended"`
}

// Templates returns the template catalog in display order.
func Templates() []TemplateMeta {
	return []TemplateMeta{
		{
			ID:          "github-default",
			Name:        "DevCanvas Minimal",
			Description: "A clean, verified portfolio instantly generated from your GitHub profile.",
			Style:       "Clean",
			Recommended: true,
		},
		{
			ID:          "minimal-pro",
			Name:        "Minimal Pro",
			Description: "Split-layout design for professionals. Features a prominent headshot and clean typography.",
			Style:       "Professional",
			Recommended: false,
		},
		{
			ID:          "modern-dev",
			Name:        "Modern Dev",
			Description: "Dark-themed, tech-focused design with floating cards and purple accents.",
			Style:       "Modern",
			Recommended: true,
		},
		{
			ID:          "resume-plus",
			Name:        "Resume+",
			Description: "Clean, sidebar-based layout optimized for displaying heavy information density.",
			Style:       "Functional",
			Recommended: false,
		},
		{
			ID:          "case-study",
			Name:        "Case Study",
			Description: "Grid-based, white-space heavy layout ideal for UX researchers and designers.",
			Style:       "Minimalist",
			Recommended: false,
		},
		{
			ID:          "creative-showcase",
			Name:        "Creative Showcase",
			Description: "High-contrast dark mode with neon green accents and bold brand identity.",
			Style:       "Creative",
			Recommended: false,
		},
	}
}

// IsKnownTemplate reports whether id names a template in the catalog.
func IsKnownTemplate(id string) bool {
	for _, t := range Templates() {
		if t.ID == id {
			return true
		}
	}
	return false
}
