package resume

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	fallbackExtPattern   = regexp.MustCompile(`(?i)\.(pdf|docx?)$`)
	fallbackNoisePattern = regexp.MustCompile(`(?i)resume|cv|_|-`)
)

// FallbackData fabricates a plausible resume record from nothing but the
// uploaded file name. Used whenever real extraction is unavailable or fails
// so a portfolio can always be generated.
func FallbackData(fileName string) ResumeData {
	nameGuess := "Your Name"
	if fileName != "" {
		cleaned := fallbackExtPattern.ReplaceAllString(fileName, "")
		cleaned = fallbackNoisePattern.ReplaceAllString(cleaned, " ")
		cleaned = strings.TrimSpace(cleaned)
		if len(cleaned) > 2 {
			nameGuess = titleCase(cleaned)
		}
	}

	return ResumeData{
		Name:       nameGuess,
		Title:      "Software Developer",
		Summary:    "Experienced developer passionate about building great software.",
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []string{"JavaScript", "React", "Node.js"},
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
