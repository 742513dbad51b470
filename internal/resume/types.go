// Package resume handles uploaded resume files: validation, text extraction,
// and structured-field extraction with a synthetic fallback when the language
// model is unavailable or returns garbage.
package resume

// Contact holds the contact details pulled from a resume.
type Contact struct {
	Email    string `json:"email"`
	Linkedin string `json:"linkedin"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
}

// Experience is a single work-history entry.
type Experience struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ResumeData is the structured result of resume extraction. All fields are
// optional; consumers must tolerate any subset being empty.
type ResumeData struct {
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Summary    string       `json:"summary"`
	Contact    Contact      `json:"contact"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
}

// IsEmpty reports whether no field carries data.
func (r ResumeData) IsEmpty() bool {
	return r.Name == "" && r.Title == "" && r.Summary == "" &&
		r.Contact == (Contact{}) &&
		len(r.Experience) == 0 && len(r.Education) == 0 && len(r.Skills) == 0
}
