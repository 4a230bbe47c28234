package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

var yearRangePattern = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)

// experiencePhrasePatterns run against the lower-cased text when no year
// ranges add up to a positive duration.
var experiencePhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*years?\s*experience`),
	regexp.MustCompile(`experience.*?(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*of\s*experience`),
}

// ExtractExperience sums every YYYY-YYYY range in text. When the sum is not
// positive it falls back to "N years experience" style phrases, and finally
// to types.ExperienceNotSpecified.
func ExtractExperience(text string) string {
	if total := sumYearRanges(text); total > 0 {
		return fmt.Sprintf("%d years", total)
	}

	lower := strings.ToLower(text)
	for _, re := range experiencePhrasePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			return fmt.Sprintf("%s years", m[1])
		}
	}

	return types.ExperienceNotSpecified
}

func sumYearRanges(text string) int {
	total := 0
	for _, m := range yearRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		total += end - start
	}
	return total
}
