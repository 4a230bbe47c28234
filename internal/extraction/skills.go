package extraction

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// SkillCategory groups taxonomy terms.
type SkillCategory string

// Taxonomy categories.
const (
	CategoryLanguages  SkillCategory = "languages"
	CategoryFrameworks SkillCategory = "frameworks"
	CategoryDatabases  SkillCategory = "databases"
	CategoryCloud      SkillCategory = "cloud"
	CategoryTools      SkillCategory = "tools"
)

// Taxonomy is the fixed set of known technical terms, matched on word
// boundaries against the lower-cased resume text.
var Taxonomy = map[SkillCategory][]string{
	CategoryLanguages:  {"python", "java", "javascript", "typescript", "php", "ruby", "go", "rust", "kotlin", "swift", "scala"},
	CategoryFrameworks: {"react", "angular", "vue", "django", "flask", "spring", "laravel", "rails", "express"},
	CategoryDatabases:  {"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "cassandra", "dynamodb"},
	CategoryCloud:      {"aws", "azure", "gcp", "docker", "kubernetes"},
	CategoryTools:      {"git", "jenkins", "jira", "postman", "webpack"},
}

var taxonomyPatterns = buildTaxonomyPatterns()

func buildTaxonomyPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, terms := range Taxonomy {
		for _, term := range terms {
			patterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
	return patterns
}

// morphologyPatterns run case-sensitively over the raw text. C++ and C# have
// no trailing word boundary because the symbol itself ends the token.
var morphologyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\w+\.js\b`),
	regexp.MustCompile(`\b\w+\.io\b`),
	regexp.MustCompile(`\b[A-Z]{2,5}\b`),
	regexp.MustCompile(`\b\w*SQL\b`),
	regexp.MustCompile(`\b\w*DB\b`),
	regexp.MustCompile(`\bC\+\+`),
	regexp.MustCompile(`\bC#`),
}

var (
	skillSectionPattern = regexp.MustCompile(`(?i)(?:skills?|technologies?|tools?)[:\s]*([^\n.]+)`)
	skillSeparator      = regexp.MustCompile(`[,;|•\-]`)
	hasLetter           = regexp.MustCompile(`[a-zA-Z]`)
	fourDigits          = regexp.MustCompile(`^\d{4}$`)
)

// techShapePatterns accept a term outright; they are case-insensitive and
// anchored at the start.
var techShapePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\w+\.js$`),
	regexp.MustCompile(`(?i)^\w+\.io$`),
	regexp.MustCompile(`(?i)^[A-Z]{2,5}$`),
	regexp.MustCompile(`(?i)^\w*sql$`),
	regexp.MustCompile(`(?i)^\w*db$`),
}

var commonWords = map[string]bool{
	"and": true, "the": true, "with": true, "for": true, "in": true, "on": true, "at": true,
	"to": true, "of": true, "is": true, "are": true, "was": true, "were": true, "have": true,
	"has": true, "had": true, "will": true, "would": true, "could": true, "should": true,
	"can": true, "may": true, "might": true, "this": true, "that": true, "these": true,
	"those": true, "my": true, "your": true, "his": true, "her": true, "our": true,
	"their": true, "me": true, "you": true, "him": true, "us": true, "them": true,
	"all": true, "any": true, "some": true, "many": true, "much": true, "years": true,
	"experience": true, "work": true, "job": true, "role": true, "team": true,
	"project": true, "company": true, "about": true, "also": true, "very": true,
	"well": true, "good": true, "great": true, "best": true, "high": true, "low": true,
	"fast": true,
}

// ExtractSkills returns the sorted, de-duplicated, lower-cased union of the
// morphology, taxonomy and skills-section passes.
func ExtractSkills(text string) []string {
	found := make(map[string]struct{})

	for _, re := range morphologyPatterns {
		for _, m := range re.FindAllString(text, -1) {
			clean := strings.TrimSpace(strings.ToLower(m))
			if IsValidTechSkill(clean) {
				found[clean] = struct{}{}
			}
		}
	}

	lower := strings.ToLower(text)
	for term, re := range taxonomyPatterns {
		if re.MatchString(lower) {
			found[term] = struct{}{}
		}
	}

	for _, m := range skillSectionPattern.FindAllStringSubmatch(text, -1) {
		for _, item := range skillSeparator.Split(m[1], -1) {
			clean := strings.ToLower(strings.TrimSpace(item))
			if IsValidTechSkill(clean) {
				found[clean] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// IsValidTechSkill filters candidate skill terms: 2 to 25 characters, not a
// common English word, containing a letter, and either tech-shaped or a
// single short token.
func IsValidTechSkill(skill string) bool {
	n := utf8.RuneCountInString(skill)
	if n < 2 || n > 25 {
		return false
	}
	if commonWords[skill] {
		return false
	}
	if !hasLetter.MatchString(skill) {
		return false
	}
	if isAllDigits(skill) || fourDigits.MatchString(skill) {
		return false
	}

	for _, re := range techShapePatterns {
		if re.MatchString(skill) {
			return true
		}
	}

	if strings.ContainsAny(skill, ".+#") {
		return true
	}

	return len(strings.Fields(skill)) == 1 && n <= 15
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
