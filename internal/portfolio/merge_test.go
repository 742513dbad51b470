package portfolio

import (
	"testing"

	"devcanvas/internal/normalize"
	"devcanvas/internal/resume"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func testUser() normalize.User {
	return normalize.User{
		Name:            "The Octocat",
		Username:        "octocat",
		Bio:             "Building things",
		Email:           "octo@github.com",
		Blog:            "https://octo.blog",
		TwitterUsername: "octocat",
		PublicRepos:     8,
	}
}

func TestMergeIdentityPriority(t *testing.T) {
	res := &resume.ResumeData{Name: "Octo Cat", Title: "Platform Engineer", Summary: "Ten years of infra."}
	data := Merge(testUser(), res, nil, nil, "")

	if data.Name != "Octo Cat" {
		t.Errorf("name = %q, resume should win", data.Name)
	}
	if data.Title != "Platform Engineer" {
		t.Errorf("title = %q", data.Title)
	}
	if data.Summary != "Ten years of infra." {
		t.Errorf("summary = %q", data.Summary)
	}
	if !data.ResumeUploaded {
		t.Error("resumeUploaded should be true")
	}
}

func TestMergeWithoutResumeFallsBackToGitHub(t *testing.T) {
	data := Merge(testUser(), nil, nil, nil, "")

	if data.Name != "The Octocat" {
		t.Errorf("name = %q", data.Name)
	}
	if data.Title != "" {
		t.Errorf("title = %q, want empty without resume", data.Title)
	}
	if data.Summary != "Building things" {
		t.Errorf("summary = %q, want github bio", data.Summary)
	}
	if data.ResumeUploaded {
		t.Error("resumeUploaded should be false")
	}
	if data.Template != DefaultTemplate {
		t.Errorf("template = %q", data.Template)
	}
}

func TestMergeEmptyResumeCountsAsNoResume(t *testing.T) {
	data := Merge(testUser(), &resume.ResumeData{}, nil, nil, "")
	if data.ResumeUploaded {
		t.Error("empty resume should not count as uploaded")
	}
}

func TestMergeContact(t *testing.T) {
	res := &resume.ResumeData{
		Name: "Octo Cat",
		Contact: resume.Contact{
			Email:    "octo@resume.dev",
			Linkedin: "https://linkedin.com/in/octo",
		},
	}
	data := Merge(testUser(), res, nil, nil, "")

	if data.Contact.Email != "octo@resume.dev" {
		t.Errorf("email = %q, resume should win", data.Contact.Email)
	}
	if data.Contact.Linkedin != "https://linkedin.com/in/octo" {
		t.Errorf("linkedin = %q", data.Contact.Linkedin)
	}
	if data.Contact.Website != "https://octo.blog" {
		t.Errorf("website = %q, want github blog fallback", data.Contact.Website)
	}
	if data.Contact.Twitter != "octocat" {
		t.Errorf("twitter = %q, github only", data.Contact.Twitter)
	}
}

func TestMergeProjectsAreGitHubOnly(t *testing.T) {
	projects := []normalize.Repo{{Name: "second", Stars: 1}, {Name: "first", Stars: 9}}
	res := &resume.ResumeData{Name: "Octo Cat"}

	data := Merge(testUser(), res, projects, nil, "")
	if len(data.Projects) != 2 || data.Projects[0].Name != "second" || data.Projects[1].Name != "first" {
		t.Errorf("projects reordered or altered: %+v", data.Projects)
	}
}

func TestMergeSkillsSourcesAndOrder(t *testing.T) {
	githubSkills := []normalize.Skill{
		{Name: "Go", Percentage: intPtr(80)},
		{Name: "Python", Percentage: intPtr(40)},
		{Name: "Docker", Percentage: intPtr(90)},
	}
	merged := MergeSkills([]string{"go", "React"}, githubSkills)

	if len(merged) != 4 {
		t.Fatalf("len = %d: %+v", len(merged), merged)
	}

	// Go upgraded to both and promoted to the front, percentage retained.
	if merged[0].Name != "Go" || merged[0].Source != normalize.SourceBoth {
		t.Fatalf("head = %+v, want Go both", merged[0])
	}
	if *merged[0].Percentage != 80 {
		t.Errorf("both entry percentage = %d, want github value kept", *merged[0].Percentage)
	}
	if !merged[0].UsedInProjects {
		t.Error("github-backed skill should keep usedInProjects")
	}

	// Remaining github entries by percentage descending.
	if merged[1].Name != "Docker" || merged[2].Name != "Python" {
		t.Errorf("github order = %s, %s", merged[1].Name, merged[2].Name)
	}

	// Resume-only entry last, untyped percentage.
	last := merged[3]
	if last.Name != "React" || last.Source != normalize.SourceResume {
		t.Errorf("tail = %+v", last)
	}
	if last.Percentage != nil {
		t.Errorf("resume-only percentage = %v, want nil", *last.Percentage)
	}
	if last.UsedInProjects {
		t.Error("resume-only skill should not claim project usage")
	}
}

func TestMergeSkillsCaseInsensitiveDedup(t *testing.T) {
	merged := MergeSkills([]string{"GO", "gO"}, []normalize.Skill{{Name: "Go", Percentage: intPtr(50)}})
	if len(merged) != 1 {
		t.Fatalf("len = %d, case-insensitive dedup failed", len(merged))
	}
	if merged[0].Name != "Go" {
		t.Errorf("display name = %q, github spelling should win", merged[0].Name)
	}
}

func TestApplyOverrides(t *testing.T) {
	data := Merge(testUser(), nil, nil, nil, "")
	exp := []resume.Experience{{Role: "Founder", Company: "Octo Inc"}}

	out := ApplyOverrides(data, &Overrides{
		Name:       strPtr("Edited Name"),
		Bio:        strPtr("Edited bio"),
		Email:      strPtr("edited@example.com"),
		Experience: &exp,
	})

	if out.Name != "Edited Name" || out.Bio != "Edited bio" || out.Summary != "Edited bio" {
		t.Errorf("identity overrides not applied: %+v", out)
	}
	if out.Contact.Email != "edited@example.com" {
		t.Errorf("email = %q", out.Contact.Email)
	}
	if len(out.Experience) != 1 || out.Experience[0].Role != "Founder" {
		t.Errorf("experience = %+v", out.Experience)
	}

	// Source document untouched.
	if data.Name != "The Octocat" {
		t.Errorf("underlying data mutated: %q", data.Name)
	}
}

func TestApplyOverridesNilIsNoop(t *testing.T) {
	data := Merge(testUser(), nil, nil, nil, "")
	out := ApplyOverrides(data, nil)
	if out.Name != data.Name || out.Summary != data.Summary {
		t.Errorf("nil overrides changed data")
	}
}

func TestTemplatesCatalog(t *testing.T) {
	catalog := Templates()
	if len(catalog) != 6 {
		t.Fatalf("len = %d", len(catalog))
	}
	if !IsKnownTemplate(DefaultTemplate) {
		t.Errorf("default template %q missing from catalog", DefaultTemplate)
	}
	if IsKnownTemplate("made-up") {
		t.Error("unknown id accepted")
	}
}
