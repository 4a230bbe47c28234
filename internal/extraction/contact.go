package extraction

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// genericEmailMarkers flag shared company inboxes rather than a candidate's
// own address.
var genericEmailMarkers = []string{
	"company", "corp", "inc", "ltd", "ongraph", "sales", "info", "contact",
}

// phonePatterns are tried in order: international grouped, domestic grouped,
// bare ten digits.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?\d{1,3}[\s\-]?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}`),
	regexp.MustCompile(`\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{4}`),
	regexp.MustCompile(`\d{10}`),
}

// ExtractEmail returns the first personal-looking email address in text,
// falling back to the first address of any kind, or "".
func ExtractEmail(text string) string {
	emails := emailPattern.FindAllString(text, -1)
	if len(emails) == 0 {
		return ""
	}
	for _, email := range emails {
		if !isGenericEmail(email) {
			return email
		}
	}
	return emails[0]
}

// isGenericEmail reports whether the domain of email carries a generic marker.
// The local part is ignored.
func isGenericEmail(email string) bool {
	domain := strings.ToLower(email[strings.LastIndex(email, "@")+1:])
	for _, marker := range genericEmailMarkers {
		if strings.Contains(domain, marker) {
			return true
		}
	}
	return false
}

// ExtractPhone returns the first match of the highest-priority phone pattern
// that matches anywhere in text, or "".
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}
