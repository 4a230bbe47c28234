package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// nameStrategy returns a validated candidate name or "" when it finds none.
type nameStrategy func(text string, lines []string) string

// nameStrategies are tried in order; the first non-empty result wins.
var nameStrategies = []nameStrategy{
	nameFromLeadingLines,
	nameFromSplitLines,
	nameFromPhrases,
	nameFromIndicators,
}

var (
	nonLetterOrSpace = regexp.MustCompile(`[^a-zA-Z\s]`)
	nonLetter        = regexp.MustCompile(`[^a-zA-Z]`)

	namePhrasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Name[:\s]+([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		regexp.MustCompile(`(?im)([A-Z][a-z]+\s+[A-Z][a-z]+)\s*\n.*(?:Developer|Engineer|Manager|Analyst)`),
		regexp.MustCompile(`(?im)I am ([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		regexp.MustCompile(`(?im)My name is ([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	}

	nameIndicatorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)name[:\s]+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		regexp.MustCompile(`(?i)candidate[:\s]+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		regexp.MustCompile(`(?i)applicant[:\s]+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	}
)

// nameStopWords are resume boilerplate and technology words that never
// appear in a person's name.
var nameStopWords = map[string]bool{
	"About": true, "Profile": true, "Summary": true, "Resume": true, "Developer": true,
	"Engineer": true, "Manager": true, "Technical": true, "Skills": true, "Personal": true,
	"Professional": true, "Experience": true, "Education": true, "JavaScript": true,
	"Angular": true, "Node": true, "HTML": true, "CSS": true, "Communication": true,
	"Organization": true, "Senior": true, "Junior": true, "Lead": true, "Principal": true,
	"Staff": true, "Contact": true, "Information": true, "College": true, "University": true,
	"Bachelor": true, "Master": true, "Science": true, "Arts": true, "Commerce": true,
}

var techPairs = map[string]bool{
	"Node JS":         true,
	"Angular JS":      true,
	"HTML CSS":        true,
	"JavaScript HTML": true,
	"CSS JavaScript":  true,
}

var nameTechTerms = map[string]bool{
	"JavaScript": true, "HTML": true, "CSS": true, "Node": true,
	"Angular": true, "React": true, "Python": true, "Java": true,
}

// ExtractName runs the tiered name strategies and returns the sentinel
// types.NameNotFound when none of them yields a valid name.
func ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	for _, strategy := range nameStrategies {
		if name := strategy(text, lines); name != "" {
			return name
		}
	}
	return types.NameNotFound
}

// nameFromLeadingLines accepts the first of the top five lines that reads as a
// name once punctuation and digits are blanked out.
func nameFromLeadingLines(_ string, lines []string) string {
	limit := min(len(lines), 5)
	for _, line := range lines[:limit] {
		clean := nonLetterOrSpace.ReplaceAllString(strings.TrimSpace(line), " ")
		clean = strings.Join(strings.Fields(clean), " ")
		if clean != "" && IsValidName(clean) {
			return clean
		}
	}
	return ""
}

// nameFromSplitLines handles layouts that print FIRSTNAME and LASTNAME on
// consecutive lines.
func nameFromSplitLines(_ string, lines []string) string {
	for i := 0; i+1 < len(lines); i++ {
		first := nonLetter.ReplaceAllString(strings.TrimSpace(lines[i]), "")
		last := nonLetter.ReplaceAllString(strings.TrimSpace(lines[i+1]), "")
		if !isNameToken(first) || !isNameToken(last) {
			continue
		}
		full := first + " " + last
		if IsValidName(full) {
			return full
		}
	}
	return ""
}

func isNameToken(s string) bool {
	if len(s) < 3 || len(s) > 15 {
		return false
	}
	return s[0] >= 'A' && s[0] <= 'Z'
}

func nameFromPhrases(text string, _ []string) string {
	for _, re := range namePhrasePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if IsValidName(m[1]) {
				return strings.TrimSpace(m[1])
			}
		}
	}
	return ""
}

func nameFromIndicators(text string, _ []string) string {
	for _, re := range nameIndicatorPatterns {
		m := re.FindStringSubmatch(text)
		if m != nil && IsValidName(m[1]) {
			return m[1]
		}
	}
	return ""
}

// IsValidName reports whether s looks like a person's name: 2 to 4
// capitalized alphabetic words, 3 to 50 characters, none of them resume
// boilerplate or technology terms.
func IsValidName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 3 || n > 50 {
		return false
	}

	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return false
	}

	for _, word := range words {
		if !isCapitalizedWord(word) {
			return false
		}
	}

	for _, word := range words {
		if nameStopWords[word] {
			return false
		}
	}

	if strings.ContainsAny(s, "\n\u00a0") {
		return false
	}

	if techPairs[s] {
		return false
	}

	allTech := true
	for _, word := range words {
		if !nameTechTerms[word] {
			allTech = false
			break
		}
	}
	return !allTech
}

// isCapitalizedWord requires an upper-case first letter and only letters
// apart from dots.
func isCapitalizedWord(word string) bool {
	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) {
		return false
	}
	letters := strings.ReplaceAll(word, ".", "")
	if letters == "" {
		return false
	}
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
