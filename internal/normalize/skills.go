package normalize

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// skillAliases maps raw languages, topics, and free-text keywords to canonical
// display names. The table is closed: topics and text matches that do not
// appear here never become skills.
var skillAliases = map[string]string{
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"python":     "Python",
	"py":         "Python",
	"golang":     "Go",
	"go":         "Go",
	"rust":       "Rust",
	"java":       "Java",
	"kotlin":     "Kotlin",
	"swift":      "Swift",
	"ruby":       "Ruby",
	"php":        "PHP",
	"c":          "C",
	"cpp":        "C++",
	"c++":        "C++",
	"csharp":     "C#",
	"c#":         "C#",
	"scala":      "Scala",
	"elixir":     "Elixir",
	"haskell":    "Haskell",
	"dart":       "Dart",
	"lua":        "Lua",

	"react":        "React",
	"reactjs":      "React",
	"next":         "Next.js",
	"nextjs":       "Next.js",
	"vue":          "Vue.js",
	"vuejs":        "Vue.js",
	"nuxt":         "Nuxt",
	"angular":      "Angular",
	"svelte":       "Svelte",
	"node":         "Node.js",
	"nodejs":       "Node.js",
	"express":      "Express",
	"django":       "Django",
	"flask":        "Flask",
	"fastapi":      "FastAPI",
	"rails":        "Ruby on Rails",
	"spring":       "Spring",
	"laravel":      "Laravel",
	"flutter":      "Flutter",
	"react-native": "React Native",
	"tailwind":     "Tailwind CSS",
	"tailwindcss":  "Tailwind CSS",
	"bootstrap":    "Bootstrap",
	"html":         "HTML",
	"css":          "CSS",
	"sass":         "Sass",

	"graphql":       "GraphQL",
	"grpc":          "gRPC",
	"docker":        "Docker",
	"kubernetes":    "Kubernetes",
	"k8s":           "Kubernetes",
	"terraform":     "Terraform",
	"ansible":       "Ansible",
	"aws":           "AWS",
	"gcp":           "Google Cloud",
	"azure":         "Azure",
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"mysql":         "MySQL",
	"mongodb":       "MongoDB",
	"redis":         "Redis",
	"sqlite":        "SQLite",
	"elasticsearch": "Elasticsearch",
	"kafka":         "Kafka",
	"rabbitmq":      "RabbitMQ",

	"machine-learning": "Machine Learning",
	"ml":               "Machine Learning",
	"deep-learning":    "Deep Learning",
	"tensorflow":       "TensorFlow",
	"pytorch":          "PyTorch",
	"opencv":           "OpenCV",
	"webpack":          "Webpack",
	"vite":             "Vite",
	"electron":         "Electron",
	"unity":            "Unity",
	"blockchain":       "Blockchain",
	"solidity":         "Solidity",
	"shell":            "Shell",
	"bash":             "Shell",
}

// heuristicStoplist holds alias keys too ambiguous for free-text scanning
// ("go" the verb, one-letter languages, common abbreviations). They still
// match as languages and topics.
var heuristicStoplist = map[string]struct{}{
	"go":   {},
	"c":    {},
	"js":   {},
	"ts":   {},
	"py":   {},
	"next": {},
}

// scanKeys is the sorted list of alias keys eligible for text scanning;
// sorting keeps match behavior independent of map iteration order.
var scanKeys = func() []string {
	keys := make([]string, 0, len(skillAliases))
	for key := range skillAliases {
		if _, stopped := heuristicStoplist[key]; stopped {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}()

var scanPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(scanKeys))
	for _, key := range scanKeys {
		patterns[key] = regexp.MustCompile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(key) + `(?:[^a-z0-9]|$)`)
	}
	return patterns
}()

// maxSkills bounds the derived skill list.
const maxSkills = 15

// maxSkillPercentage saturates the popularity score.
const maxSkillPercentage = 95

// DeriveSkills derives a weighted skill list from repository metadata.
// Each repo contributes at most once per canonical skill, via its primary
// language, alias-mapped topics, or a word-boundary scan of name+description.
// The percentage is a saturating popularity score, not a proportion:
// min(95, round(count / max(1, total/2.5) * 100)). Zero detected skills
// yields an empty slice.
func DeriveSkills(repos []Repo) []Skill {
	counts := make(map[string]int)

	for _, repo := range repos {
		seen := make(map[string]struct{})

		if repo.Language != "" {
			seen[CanonicalSkillName(repo.Language)] = struct{}{}
		}

		for _, topic := range repo.Topics {
			if canonical, ok := skillAliases[strings.ToLower(topic)]; ok {
				seen[canonical] = struct{}{}
			}
		}

		text := strings.ToLower(repo.Name + " " + repo.Description)
		for _, key := range scanKeys {
			if scanPatterns[key].MatchString(text) {
				seen[skillAliases[key]] = struct{}{}
			}
		}

		for name := range seen {
			counts[name]++
		}
	}

	total := 0
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return []Skill{}
	}

	divisor := float64(total) / 2.5
	if divisor < 1 {
		divisor = 1
	}

	skills := make([]Skill, 0, len(counts))
	for name, count := range counts {
		pct := int(math.Round(float64(count) / divisor * 100))
		if pct > maxSkillPercentage {
			pct = maxSkillPercentage
		}
		p := pct
		skills = append(skills, Skill{Name: name, Percentage: &p})
	}

	sort.Slice(skills, func(i, j int) bool {
		if *skills[i].Percentage != *skills[j].Percentage {
			return *skills[i].Percentage > *skills[j].Percentage
		}
		return skills[i].Name < skills[j].Name
	})

	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}

// CanonicalSkillName maps a raw language or keyword to its display form,
// falling back to the input unchanged.
func CanonicalSkillName(raw string) string {
	if canonical, ok := skillAliases[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}
