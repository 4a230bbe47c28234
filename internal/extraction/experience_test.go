package extraction

import (
	"testing"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"summed year ranges", "Acme 2018 - 2020\nGlobex 2021-2023", "4 years"},
		{"plus years of experience", "5+ years of experience building APIs", "5 years"},
		{"years experience", "3 years experience with Go", "3 years"},
		{"experience then years", "Experience: around 7 years in backend work", "7 years"},
		{"zero length range falls through", "Intern 2020-2020", types.ExperienceNotSpecified},
		{"nothing to find", "Go developer", types.ExperienceNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExperience(tt.text))
		})
	}
}
