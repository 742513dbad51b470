// Package normalize converts raw GitHub API shapes into the internal model
// and derives ranked projects and weighted skills from repository metadata.
package normalize

import (
	"sort"
	"time"

	"devcanvas/internal/github"
)

// User is a normalized GitHub identity snapshot. Immutable once built;
// a refresh replaces the whole record.
type User struct {
	Name            string    `json:"name"`
	Username        string    `json:"username"`
	Bio             string    `json:"bio"`
	AvatarURL       string    `json:"avatarUrl"`
	Location        string    `json:"location"`
	Blog            string    `json:"blog"`
	Email           string    `json:"email"`
	TwitterUsername string    `json:"twitterUsername"`
	PublicRepos     int       `json:"publicRepos"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Repo is a normalized repository snapshot.
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"fullName"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Homepage    string    `json:"homepage"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Language    string    `json:"language"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PushedAt    time.Time `json:"pushedAt"`
	Topics      []string  `json:"topics"`
	IsForked    bool      `json:"isForked"`
}

// Skill is a derived, weighted skill entry. Percentage is nil for skills
// known only from a resume. Source is assigned during the portfolio merge.
type Skill struct {
	Name           string `json:"name"`
	Percentage     *int   `json:"percentage"`
	UsedInProjects bool   `json:"usedInProjects"`
	Source         string `json:"source,omitempty"`
}

// Skill source values.
const (
	SourceGitHub = "github"
	SourceResume = "resume"
	SourceBoth   = "both"
)

// DefaultTopRepoLimit bounds the curated project list.
const DefaultTopRepoLimit = 6

// NormalizeUser maps a raw GitHub user onto the internal model. Name falls
// back to the login; absent optional strings stay empty, never null.
func NormalizeUser(raw github.RawUser) User {
	name := raw.Name
	if name == "" {
		name = raw.Login
	}
	return User{
		Name:            name,
		Username:        raw.Login,
		Bio:             raw.Bio,
		AvatarURL:       raw.AvatarURL,
		Location:        raw.Location,
		Blog:            raw.Blog,
		Email:           raw.Email,
		TwitterUsername: raw.TwitterUsername,
		PublicRepos:     raw.PublicRepos,
		Followers:       raw.Followers,
		Following:       raw.Following,
		CreatedAt:       parseTime(raw.CreatedAt),
	}
}

// NormalizeRepo maps a raw GitHub repository onto the internal model.
func NormalizeRepo(raw github.RawRepo) Repo {
	topics := raw.Topics
	if topics == nil {
		topics = []string{}
	}
	return Repo{
		ID:          raw.ID,
		Name:        raw.Name,
		FullName:    raw.FullName,
		Description: raw.Description,
		URL:         raw.HTMLURL,
		Homepage:    raw.Homepage,
		Stars:       raw.StargazersCount,
		Forks:       raw.ForksCount,
		Language:    raw.Language,
		UpdatedAt:   parseTime(raw.UpdatedAt),
		PushedAt:    parseTime(raw.PushedAt),
		Topics:      topics,
		IsForked:    raw.Fork,
	}
}

// NormalizeRepos maps a raw repository list element-wise.
func NormalizeRepos(raw []github.RawRepo) []Repo {
	repos := make([]Repo, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, NormalizeRepo(r))
	}
	return repos
}

// RankRepos returns the curated project subset: forks excluded, sorted by
// stars descending then last-push descending, truncated to limit. The sort
// is stable so full ties keep insertion order.
func RankRepos(repos []Repo, limit int) []Repo {
	if limit <= 0 {
		limit = DefaultTopRepoLimit
	}

	ranked := make([]Repo, 0, len(repos))
	for _, r := range repos {
		if !r.IsForked {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Stars != ranked[j].Stars {
			return ranked[i].Stars > ranked[j].Stars
		}
		return ranked[i].PushedAt.After(ranked[j].PushedAt)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
