package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/fetch"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/platform"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/probe"
)

// Scratch directory constants
const (
	ScratchDirPattern = "yt-to-mp3-*"
	RunIDPrefix       = "run-"
)

// Service orchestrates one download-validate-place invocation at a time.
// Each Run is independent; the only shared state is the placer's
// destination-directory critical section.
type Service struct {
	fetcher   fetch.Fetcher
	validator probe.Validator
	placer    *Placer
}

// NewService creates a pipeline over the given fetch and validation services.
func NewService(fetcher fetch.Fetcher, validator probe.Validator) *Service {
	return &Service{
		fetcher:   fetcher,
		validator: validator,
		placer:    NewPlacer(),
	}
}

// Run executes the pipeline for one request. It returns the accepted files
// plus per-candidate diagnostics; an empty accepted list with a nil error
// means nothing usable was produced. The scratch directory is removed on
// every exit path.
func (s *Service) Run(ctx context.Context, req model.SourceRequest) (model.Result, error) {
	result := model.Result{RunID: generateRunID()}

	// Input errors are rejected before any external call or side effect.
	if err := req.Validate(); err != nil {
		return result, err
	}
	if err := platform.EnsureWritableDir(req.DestinationDir); err != nil {
		return result, fmt.Errorf("destination directory is not usable: %w", err)
	}

	scratchDir, err := os.MkdirTemp("", ScratchDirPattern)
	if err != nil {
		return result, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			log.Printf("Failed to remove scratch directory %s: %v", scratchDir, err)
		}
	}()

	if err := s.fetcher.Fetch(ctx, req, scratchDir); err != nil {
		return result, err
	}

	candidates, err := listCandidates(scratchDir)
	if err != nil {
		return result, fmt.Errorf("failed to enumerate scratch directory: %w", err)
	}

	for _, candidate := range candidates {
		name := filepath.Base(candidate.Path)

		verdict := s.validator.Validate(ctx, candidate)
		if !verdict.Outcome.Accepted() {
			if err := os.Remove(candidate.Path); err != nil {
				log.Printf("Failed to delete rejected candidate %s: %v", name, err)
			}
			result.Diagnostics = append(result.Diagnostics, model.Diagnostic{
				Kind:          model.DiagnosticDiscarded,
				CandidateName: name,
				Reason:        discardReason(verdict),
			})
			continue
		}

		accepted, err := s.placer.Place(candidate, req.DestinationDir)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, model.Diagnostic{
				Kind:          model.DiagnosticPlacementFailed,
				CandidateName: name,
				Reason:        err.Error(),
			})
			continue
		}

		result.Accepted = append(result.Accepted, accepted)
		result.Diagnostics = append(result.Diagnostics, model.Diagnostic{
			Kind:          model.DiagnosticAccepted,
			CandidateName: name,
		})
	}

	return result, nil
}

// listCandidates enumerates target-format files in the scratch directory in
// lexicographic order, so collision-suffix assignment is reproducible for a
// given listing.
func listCandidates(scratchDir string) ([]model.ScratchCandidate, error) {
	entries, err := os.ReadDir(scratchDir)
	if err != nil {
		return nil, err
	}

	// os.ReadDir returns entries sorted by filename.
	var candidates []model.ScratchCandidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), model.TargetExtension) {
			continue
		}

		candidates = append(candidates, model.ScratchCandidate{
			Path:      filepath.Join(scratchDir, name),
			TitleStem: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}

	return candidates, nil
}

// discardReason phrases a non-accepted verdict for diagnostics, keeping the
// tool-trouble cases distinguishable from honest rejections.
func discardReason(verdict model.Verdict) string {
	switch verdict.Outcome {
	case model.OutcomeToolUnavailable:
		return "could not verify: " + verdict.Reason
	case model.OutcomeToolFailed:
		return "verification tooling failed: " + verdict.Reason
	default:
		return verdict.Reason
	}
}

// generateRunID returns a unique identifier for one invocation using UUID v7
// for natural time ordering.
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
