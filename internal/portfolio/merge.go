package portfolio

import (
	"sort"
	"strings"

	"devcanvas/internal/normalize"
	"devcanvas/internal/resume"
)

// Merge combines a GitHub identity, an optional resume record, the curated
// repo list, and the derived skill list into one portfolio document. Resume
// values win over GitHub values for identity and contact fields; projects
// come from GitHub alone.
func Merge(user normalize.User, res *resume.ResumeData, projects []normalize.Repo, githubSkills []normalize.Skill, templateID string) PortfolioData {
	if templateID == "" {
		templateID = DefaultTemplate
	}

	var rd resume.ResumeData
	hasResume := res != nil && !res.IsEmpty()
	if hasResume {
		rd = *res
	}

	if projects == nil {
		projects = []normalize.Repo{}
	}

	data := PortfolioData{
		Username:       user.Username,
		Name:           firstNonEmpty(rd.Name, user.Name),
		Title:          rd.Title,
		Bio:            user.Bio,
		Summary:        firstNonEmpty(rd.Summary, user.Bio),
		AvatarURL:      user.AvatarURL,
		Location:       user.Location,
		Contact:        mergeContact(rd.Contact, user),
		Skills:         MergeSkills(rd.Skills, githubSkills),
		Projects:       projects,
		Experience:     rd.Experience,
		Education:      rd.Education,
		Followers:      user.Followers,
		PublicRepos:    user.PublicRepos,
		CreatedAt:      user.CreatedAt,
		Template:       templateID,
		ResumeUploaded: hasResume,
	}
	if data.Experience == nil {
		data.Experience = []resume.Experience{}
	}
	if data.Education == nil {
		data.Education = []resume.Education{}
	}
	return data
}

// mergeContact resolves contact fields with resume priority. The GitHub blog
// URL backs the website field; twitter exists on the GitHub side only.
func mergeContact(rc resume.Contact, user normalize.User) Contact {
	return Contact{
		Email:    firstNonEmpty(rc.Email, user.Email),
		Linkedin: rc.Linkedin,
		Website:  firstNonEmpty(rc.Website, user.Blog),
		Twitter:  user.TwitterUsername,
	}
}

// MergeSkills folds resume skill names into the GitHub-derived list.
// Names collide case-insensitively: a collision upgrades the GitHub entry to
// source "both" and keeps its percentage; a new name becomes a resume-only
// entry with no percentage. Ordering: "both" first, then by percentage
// descending, entries without a percentage last, insertion order on ties.
func MergeSkills(resumeSkills []string, githubSkills []normalize.Skill) []normalize.Skill {
	merged := make([]normalize.Skill, 0, len(githubSkills)+len(resumeSkills))
	index := make(map[string]int, len(githubSkills))

	for _, s := range githubSkills {
		s.UsedInProjects = true
		s.Source = normalize.SourceGitHub
		index[strings.ToLower(s.Name)] = len(merged)
		merged = append(merged, s)
	}

	for _, name := range resumeSkills {
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			merged[i].Source = normalize.SourceBoth
			continue
		}
		index[key] = len(merged)
		merged = append(merged, normalize.Skill{
			Name:   name,
			Source: normalize.SourceResume,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if (a.Source == normalize.SourceBoth) != (b.Source == normalize.SourceBoth) {
			return a.Source == normalize.SourceBoth
		}
		switch {
		case a.Percentage != nil && b.Percentage == nil:
			return true
		case a.Percentage == nil:
			return false
		default:
			return *a.Percentage > *b.Percentage
		}
	})

	return merged
}

// ApplyOverrides layers user edits from a decoded share state onto the merged
// document. The underlying sources are never mutated; a nil overrides value
// is a no-op.
func ApplyOverrides(data PortfolioData, ov *Overrides) PortfolioData {
	if ov == nil {
		return data
	}
	if ov.Name != nil {
		data.Name = *ov.Name
	}
	if ov.Bio != nil {
		data.Bio = *ov.Bio
		data.Summary = *ov.Bio
	}
	if ov.Email != nil {
		data.Contact.Email = *ov.Email
	}
	if ov.Experience != nil {
		data.Experience = *ov.Experience
	}
	return data
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
