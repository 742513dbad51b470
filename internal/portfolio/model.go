// Package portfolio merges GitHub-derived data with extracted resume data
// into a single renderable portfolio document.
package portfolio

import (
	"time"

	"devcanvas/internal/normalize"
	"devcanvas/internal/resume"
)

// DefaultTemplate is the template applied when none is chosen.
const DefaultTemplate = "modern-dev"

// Contact is the merged contact block. Website prefers the resume value and
// falls back to the GitHub blog URL; twitter comes from GitHub only.
type Contact struct {
	Email    string `json:"email"`
	Linkedin string `json:"linkedin"`
	Website  string `json:"website"`
	Twitter  string `json:"twitter"`
}

// PortfolioData is the complete merged portfolio document.
type PortfolioData struct {
	Username       string              `json:"username"`
	Name           string              `json:"name"`
	Title          string              `json:"title"`
	Bio            string              `json:"bio"`
	Summary        string              `json:"summary"`
	AvatarURL      string              `json:"avatarUrl"`
	Location       string              `json:"location"`
	Contact        Contact             `json:"contact"`
	Skills         []normalize.Skill   `json:"skills"`
	Projects       []normalize.Repo    `json:"projects"`
	Experience     []resume.Experience `json:"experience"`
	Education      []resume.Education  `json:"education"`
	Followers      int                 `json:"followers"`
	PublicRepos    int                 `json:"publicRepos"`
	CreatedAt      time.Time           `json:"createdAt"`
	Template       string              `json:"template"`
	ResumeUploaded bool                `json:"resumeUploaded"`
}

// Overrides carries user-supplied edits applied after the merge. Nil fields
// leave the merged value untouched.
type Overrides struct {
	Name       *string              `json:"name"`
	Bio        *string              `json:"bio"`
	Email      *string              `json:"email"`
	Experience *[]resume.Experience `json:"experience"`
}
