// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to limit items under heading, followed by a count of
// the rest.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
	sb.WriteString("\n")
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:       %s\n", profile.DisplayName())
	fmt.Fprintf(&sb, "Email:      %s\n", orDash(profile.Email))
	fmt.Fprintf(&sb, "Phone:      %s\n", orDash(profile.Phone))
	fmt.Fprintf(&sb, "Experience: %s\n", profile.Experience)
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills (%d): %s\n\n", len(profile.Skills), strings.Join(profile.Skills, ", "))
	}
	writeList(&sb, "Education", profile.Education, 3)
	writeList(&sb, "Projects", profile.Projects, 3)

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestions outputs the seeded interview questions in order.
func (p *Printer) PrintQuestions(questions []types.GeneratedQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, q.Type, q.Question)
	}
	p.printBox(fmt.Sprintf("INTERVIEW QUESTIONS (%d)", len(questions)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the score given to one answer.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintScore(score types.ScoreResult) {
	fmt.Fprintf(p.out, "Score: %d/%d (%s)\n", score.Score, score.MaxScore, score.Source)
	if score.Feedback != "" {
		fmt.Fprintf(p.out, "Feedback: %s\n", score.Feedback)
	}
}

// PrintAnalysis outputs the final interview analysis.
func (p *Printer) PrintAnalysis(analysis *types.InterviewAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall: %.2f/10\n", analysis.OverallScore)
	fmt.Fprintf(&sb, "Rating:  %s\n", analysis.Rating)
	if analysis.Feedback != "" {
		sb.WriteString("\n" + analysis.Feedback + "\n")
	}
	p.printBox("INTERVIEW ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// ParseSummary is one line of a batch parse report.
type ParseSummary struct {
	Path   string
	Name   string
	Skills int
	Err    error
}

// PrintParseSummary outputs the outcome of a batch parse.
func (p *Printer) PrintParseSummary(results []ParseSummary) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for i, r := range results {
		if i == maxItemsToShow*2 {
			fmt.Fprintf(&sb, "... and %d more files\n", len(results)-i)
			break
		}
		if r.Err != nil {
			fmt.Fprintf(&sb, "✗ %s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Fprintf(&sb, "✓ %s: %s, %d skills\n", r.Path, r.Name, r.Skills)
	}
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	fmt.Fprintf(&sb, "\n%d parsed, %d failed", len(results)-failed, failed)

	p.printBox("BATCH PARSE", sb.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
