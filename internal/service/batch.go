package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/omkar-nanda-ditstek/AI/internal/extraction"
	"github.com/omkar-nanda-ditstek/AI/internal/ingestion"
	"github.com/omkar-nanda-ditstek/AI/internal/schemas"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// ParseResult is the outcome of parsing one file in a batch. Err is set when
// the file could not be read or the profile does not match the candidate
// profile schema.
type ParseResult struct {
	Path     string                 `json:"path"`
	Profile  types.CandidateProfile `json:"profile"`
	Metadata *ingestion.Metadata    `json:"metadata,omitempty"`
	Err      error                  `json:"-"`
}

// ParseDocuments extracts profiles from files concurrently with at most
// workers in flight. Results keep the order of paths. A failing file does
// not stop the batch; only cancellation of ctx does.
func ParseDocuments(ctx context.Context, extractor *ingestion.Extractor, paths []string, workers int, log *zap.Logger) ([]ParseResult, error) {
	if extractor == nil {
		extractor = ingestion.NewExtractor(log)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]ParseResult, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = parseOne(extractor, path)
			if results[i].Err != nil {
				log.Warn("failed to parse document", zap.String("path", path), zap.Error(results[i].Err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// ParseDocuments runs a batch parse with the service's extractor and worker
// count.
func (s *Service) ParseDocuments(ctx context.Context, paths []string) ([]ParseResult, error) {
	return ParseDocuments(ctx, s.extractor, paths, s.opts.Workers, s.logger)
}

func parseOne(extractor *ingestion.Extractor, path string) ParseResult {
	doc, err := extractor.IngestFromFile(path)
	if err != nil {
		return ParseResult{Path: path, Err: err}
	}
	res := ParseResult{
		Path:     path,
		Profile:  extraction.ExtractProfile(doc.Text),
		Metadata: doc.Metadata,
	}
	encoded, err := json.Marshal(res.Profile)
	if err == nil {
		err = schemas.ValidateCandidateProfile(string(encoded))
	}
	if err != nil {
		res.Err = fmt.Errorf("invalid profile: %w", err)
	}
	return res
}
