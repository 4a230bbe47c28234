package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxEducationEntries = 3
	maxProjectEntries   = 5
)

var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "university", "college", "institute",
}

// projectSectionPatterns capture the body of a projects section, up to the
// next section keyword or the end of the text. All of them are applied.
var projectSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)projects?:?\s*(.*?)(?:experience|education|skills|certifications?|awards?|$)`),
	regexp.MustCompile(`(?s)personal\s+projects?:?\s*(.*?)(?:experience|education|skills|$)`),
	regexp.MustCompile(`(?s)key\s+projects?:?\s*(.*?)(?:experience|education|skills|$)`),
}

var projectItemPattern = regexp.MustCompile(`[•\-\*\d+\.]\s*([^\n•\-\*]+)`)

var projectVerbs = []string{"developed", "built", "created", "designed", "implemented"}

// ExtractEducation returns up to three lines that mention a degree or an
// institution, in document order.
func ExtractEducation(text string) []string {
	education := make([]string, 0, maxEducationEntries)
	for _, line := range strings.Split(text, "\n") {
		if !containsAny(strings.ToLower(line), educationKeywords) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) > 10 {
			education = append(education, trimmed)
		}
		if len(education) == maxEducationEntries {
			break
		}
	}
	return education
}

// ExtractProjects returns up to five project descriptions. Bullet items under
// a projects heading are preferred; otherwise lines built around an action
// verb are used.
func ExtractProjects(text string) []string {
	projects := make([]string, 0, maxProjectEntries)
	lower := strings.ToLower(text)

	for _, re := range projectSectionPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		for _, item := range projectItemPattern.FindAllStringSubmatch(m[1], -1) {
			p := strings.TrimSpace(item[1])
			if utf8.RuneCountInString(p) > 10 {
				projects = append(projects, p)
			}
		}
	}

	if len(projects) == 0 {
		for _, line := range strings.Split(text, "\n") {
			if !containsAny(strings.ToLower(line), projectVerbs) {
				continue
			}
			trimmed := strings.TrimSpace(line)
			if utf8.RuneCountInString(trimmed) > 20 {
				projects = append(projects, trimmed)
			}
		}
	}

	if len(projects) > maxProjectEntries {
		projects = projects[:maxProjectEntries]
	}
	return projects
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
