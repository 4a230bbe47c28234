package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/omkar-nanda-ditstek/AI/internal/ingestion"
	"github.com/omkar-nanda-ditstek/AI/internal/observability"
	"github.com/omkar-nanda-ditstek/AI/internal/service"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Extract candidate profiles from resume files",
	Long:  "Parse PDF, DOCX, DOC and TXT resumes concurrently and write the extracted profiles as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseWorkers int
	parseOutFile string
	parseVerbose bool
)

func init() {
	parseCmd.Flags().IntVarP(&parseWorkers, "workers", "w", 0, "Files parsed in parallel (default from config)")
	parseCmd.Flags().StringVarP(&parseOutFile, "out", "o", "", "Write JSON results to this file instead of stdout")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a readable summary of every profile")
	rootCmd.AddCommand(parseCmd)
}

// parseOutput is one entry of the JSON written by the parse command.
type parseOutput struct {
	service.ParseResult
	Error string `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workers := parseWorkers
	if workers <= 0 {
		workers = appConfig.Upload.Workers
	}

	results, err := service.ParseDocuments(ctx, ingestion.NewExtractor(appLogger), args, workers, appLogger)
	if err != nil {
		return fmt.Errorf("batch parse interrupted: %w", err)
	}

	if parseVerbose {
		printParseResults(observability.NewPrinter(cmd.ErrOrStderr()), results)
	}

	out := cmd.OutOrStdout()
	if parseOutFile != "" {
		f, err := os.Create(parseOutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	if err := writeParseResults(out, results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed == len(results) {
		return fmt.Errorf("all %d files failed to parse", failed)
	}
	return nil
}

func writeParseResults(w io.Writer, results []service.ParseResult) error {
	output := make([]parseOutput, len(results))
	for i, r := range results {
		output[i] = parseOutput{ParseResult: r}
		if r.Err != nil {
			output[i].Error = r.Err.Error()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func printParseResults(p *observability.Printer, results []service.ParseResult) {
	summary := make([]observability.ParseSummary, len(results))
	for i, r := range results {
		summary[i] = observability.ParseSummary{
			Path:   r.Path,
			Name:   r.Profile.DisplayName(),
			Skills: len(r.Profile.Skills),
			Err:    r.Err,
		}
		if r.Err == nil {
			p.PrintProfile(&r.Profile)
		}
	}
	p.PrintParseSummary(summary)
}
