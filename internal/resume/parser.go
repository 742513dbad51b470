package resume

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
)

const extractionPrompt = `You are a resume parsing engine. Extract structured data from the resume.
Return ONLY valid JSON with this exact structure:
{
    "name": "Full Name",
    "title": "Job Title",
    "summary": "Professional summary",
    "email": "email@example.com",
    "phone": "phone number",
    "linkedin": "linkedin URL",
    "website": "personal website URL",
    "experience": [{ "role": "Job Title", "company": "Company Name", "duration": "2020 - Present", "description": ["Achievement 1", "Achievement 2"] }],
    "education": [{ "degree": "Degree Name", "institution": "University Name", "year": "2020" }],
    "skills": ["Skill 1", "Skill 2"]
}`

// Parser turns uploaded resume files into structured data. It never fails:
// when the model is unconfigured, unreachable, or answers with garbage, it
// degrades to a synthetic record so the portfolio stays generatable.
type Parser struct {
	llm    *LLMClient
	logger *slog.Logger
}

// NewParser creates a parser. A nil llm puts it in fallback-only mode.
func NewParser(llm *LLMClient, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{llm: llm, logger: logger}
}

// Parse extracts structured data from the file. The second return value
// reports whether the synthetic fallback was used.
func (p *Parser) Parse(ctx context.Context, data []byte, fileName string) (ResumeData, bool) {
	if p.llm == nil {
		p.logger.Info("no extraction model configured, using fallback", "file", fileName)
		return FallbackData(fileName), true
	}

	raw, err := p.callModel(ctx, data, fileName)
	if err != nil {
		p.logger.Warn("resume extraction failed, using fallback", "file", fileName, "error", err)
		return FallbackData(fileName), true
	}

	parsed, ok := p.decodeModelOutput(raw)
	if !ok {
		p.logger.Warn("model output is not valid json, using fallback", "file", fileName)
		return FallbackData(fileName), true
	}
	return parsed, false
}

func (p *Parser) callModel(ctx context.Context, data []byte, fileName string) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return p.llm.GenerateFromPDF(ctx, extractionPrompt, data)
	default:
		text, err := ExtractDocxText(data)
		if err != nil {
			return "", err
		}
		return p.llm.GenerateFromText(ctx, extractionPrompt, text)
	}
}

// modelOutput accepts the flat contact shape the prompt asks for as well as
// a nested contact object, since models produce both.
type modelOutput struct {
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Summary    string       `json:"summary"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Linkedin   string       `json:"linkedin"`
	Website    string       `json:"website"`
	Contact    Contact      `json:"contact"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
}

func (p *Parser) decodeModelOutput(raw string) (ResumeData, bool) {
	var out modelOutput
	if err := json.Unmarshal([]byte(extractJSON(raw)), &out); err != nil {
		return ResumeData{}, false
	}

	rd := ResumeData{
		Name:    firstNonEmpty(out.Name, "Unknown"),
		Title:   firstNonEmpty(out.Title, "Developer"),
		Summary: out.Summary,
		Contact: Contact{
			Email:    firstNonEmpty(out.Email, out.Contact.Email),
			Linkedin: firstNonEmpty(out.Linkedin, out.Contact.Linkedin),
			Website:  firstNonEmpty(out.Website, out.Contact.Website),
			Phone:    firstNonEmpty(out.Phone, out.Contact.Phone),
		},
		Experience: out.Experience,
		Education:  out.Education,
		Skills:     out.Skills,
	}
	if rd.Experience == nil {
		rd.Experience = []Experience{}
	}
	if rd.Education == nil {
		rd.Education = []Education{}
	}
	if rd.Skills == nil {
		rd.Skills = []string{}
	}
	return rd, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
