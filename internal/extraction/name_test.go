package extraction

import (
	"testing"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"two capitalized words", "John Smith", true},
		{"initial with dot", "John A. Smith", true},
		{"technology stoplist", "JavaScript Angular", false},
		{"too short", "A", false},
		{"job title in stoplist", "John Smith Developer", false},
		{"single word", "John", false},
		{"five words", "Mary Jane Ann Lee Smith", false},
		{"lowercase word", "john smith", false},
		{"digits", "John Sm1th", false},
		{"non-breaking space", "John\u00a0Smith", false},
		{"technology pair", "Node JS", false},
		{"only technology terms", "React Python", false},
		{"too long", "Bartholomew Maximilianus Fitzgeraldington Worthingtonshire", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidName(tt.input))
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "name on first line",
			text: "John Smith\nSoftware Engineer\njohn@gmail.com",
			want: "John Smith",
		},
		{
			name: "name with punctuation on first line",
			text: "** Priya Raman **\nBackend developer",
			want: "Priya Raman",
		},
		{
			name: "first and last name on separate lines",
			text: "ELIANA\nSAUNDERS\nDeveloper",
			want: "ELIANA SAUNDERS",
		},
		{
			name: "my name is phrase",
			text: "Hello there, my name is Alice Walker, a backend developer.",
			want: "Alice Walker",
		},
		{
			name: "candidate indicator fallback",
			text: "curriculum vitae\nlorem ipsum dolor\nsit amet consectetur\nadipiscing elit sed\n" +
				"do eiusmod tempor\nincididunt ut labore\nCandidate: Maria Lopez\net dolore magna",
			want: "Maria Lopez",
		},
		{
			name: "no name anywhere",
			text: "experience in go and python\n2019 - 2021",
			want: types.NameNotFound,
		},
		{
			name: "empty text",
			text: "",
			want: types.NameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}
