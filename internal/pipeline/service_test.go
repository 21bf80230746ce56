package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/fetch"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
)

// fakeFetcher writes canned files into the scratch directory, standing in
// for yt-dlp.
type fakeFetcher struct {
	files      map[string]string // filename -> content
	err        error
	scratchDir string // records where the pipeline pointed the fetch
	called     bool
}

func (f *fakeFetcher) SetProgressCallback(func(fetch.Progress)) {}

func (f *fakeFetcher) Fetch(ctx context.Context, req model.SourceRequest, scratchDir string) error {
	f.called = true
	f.scratchDir = scratchDir

	if f.err != nil {
		return &fetch.Error{URL: req.URL, Err: f.err}
	}

	for name, content := range f.files {
		if err := os.WriteFile(filepath.Join(scratchDir, name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// fakeValidator rejects candidates by filename and accepts the rest.
type fakeValidator struct {
	reject map[string]model.Outcome
}

func (v *fakeValidator) Validate(ctx context.Context, candidate model.ScratchCandidate) model.Verdict {
	name := filepath.Base(candidate.Path)
	if outcome, ok := v.reject[name]; ok {
		return model.Verdict{Candidate: candidate, Outcome: outcome, Reason: "probe rejected " + name}
	}
	return model.Verdict{Candidate: candidate, Outcome: model.OutcomeAccepted}
}

func validRequest(dest string) model.SourceRequest {
	return model.SourceRequest{
		URL:            "https://youtube.com/watch?v=test",
		BitrateKbps:    192,
		DestinationDir: dest,
	}
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read directory: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunSingleAcceptedFile(t *testing.T) {
	dest := t.TempDir()
	fetcher := &fakeFetcher{files: map[string]string{"My Song.mp3": "audio"}}
	svc := NewService(fetcher, &fakeValidator{})

	result, err := svc.Run(context.Background(), validRequest(dest))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Accepted) != 1 {
		t.Fatalf("Expected 1 accepted file, got %d", len(result.Accepted))
	}

	accepted := result.Accepted[0]
	if accepted.FinalPath != filepath.Join(dest, "My Song.mp3") {
		t.Errorf("Unexpected final path: %s", accepted.FinalPath)
	}

	if result.RunID == "" {
		t.Error("Result should carry a run ID")
	}

	// The scratch directory must not survive the run.
	if _, err := os.Stat(fetcher.scratchDir); !os.IsNotExist(err) {
		t.Errorf("Scratch directory still exists: %s", fetcher.scratchDir)
	}
}

func TestRunPlaylistWithOneRejection(t *testing.T) {
	dest := t.TempDir()
	fetcher := &fakeFetcher{files: map[string]string{
		"Track A.mp3": "a",
		"Track B.mp3": "broken",
		"Track C.mp3": "c",
	}}
	validator := &fakeValidator{reject: map[string]model.Outcome{
		"Track B.mp3": model.OutcomeRejected,
	}}
	svc := NewService(fetcher, validator)

	before := listNames(t, dest)

	result, err := svc.Run(context.Background(), validRequest(dest))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Accepted) != 2 {
		t.Errorf("Expected 2 accepted files, got %d", len(result.Accepted))
	}
	if result.DiscardCount() != 1 {
		t.Errorf("Expected 1 discard diagnostic, got %d", result.DiscardCount())
	}

	after := listNames(t, dest)
	if len(after) != len(before)+2 {
		t.Errorf("Destination should gain exactly 2 files, had %d now %d", len(before), len(after))
	}

	for _, d := range result.Diagnostics {
		if d.Kind == model.DiagnosticDiscarded && d.CandidateName != "Track B.mp3" {
			t.Errorf("Wrong candidate discarded: %s", d.CandidateName)
		}
	}
}

func TestRunFetchFailure(t *testing.T) {
	dest := t.TempDir()
	fetcher := &fakeFetcher{err: errors.New("simulated network failure")}
	svc := NewService(fetcher, &fakeValidator{})

	before := listNames(t, dest)

	_, err := svc.Run(context.Background(), validRequest(dest))
	if err == nil {
		t.Fatal("Expected fetch error")
	}

	var fetchErr *fetch.Error
	if !errors.As(err, &fetchErr) {
		t.Errorf("Expected *fetch.Error, got %T: %v", err, err)
	}

	// Destination untouched, scratch removed.
	after := listNames(t, dest)
	if len(after) != len(before) {
		t.Errorf("Destination changed on fetch failure: %v -> %v", before, after)
	}
	if _, err := os.Stat(fetcher.scratchDir); !os.IsNotExist(err) {
		t.Errorf("Scratch directory still exists after fetch failure: %s", fetcher.scratchDir)
	}
}

func TestRunInputErrorsHaveNoSideEffects(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := NewService(fetcher, &fakeValidator{})

	tests := []struct {
		name    string
		req     model.SourceRequest
		wantErr error
	}{
		{"missing URL", model.SourceRequest{BitrateKbps: 192, DestinationDir: t.TempDir()}, model.ErrEmptyURL},
		{"bad bitrate", model.SourceRequest{URL: "https://x", BitrateKbps: 100, DestinationDir: t.TempDir()}, model.ErrInvalidBitrate},
		{"missing destination", model.SourceRequest{URL: "https://x", BitrateKbps: 192}, model.ErrEmptyDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if fetcher.called {
				t.Error("Fetcher must not run for invalid input")
			}
		})
	}
}

func TestRunEmptyAcceptedListIsNotAnError(t *testing.T) {
	dest := t.TempDir()
	fetcher := &fakeFetcher{files: map[string]string{"bad.mp3": "x"}}
	validator := &fakeValidator{reject: map[string]model.Outcome{
		"bad.mp3": model.OutcomeRejected,
	}}
	svc := NewService(fetcher, validator)

	result, err := svc.Run(context.Background(), validRequest(dest))
	if err != nil {
		t.Fatalf("Run should not fail when everything is discarded: %v", err)
	}
	if len(result.Accepted) != 0 {
		t.Errorf("Expected empty accepted list, got %d", len(result.Accepted))
	}
	if result.DiscardCount() != 1 {
		t.Errorf("Expected 1 discard, got %d", result.DiscardCount())
	}
}

func TestRunIgnoresForeignExtensions(t *testing.T) {
	dest := t.TempDir()
	fetcher := &fakeFetcher{files: map[string]string{
		"song.mp3":      "audio",
		"song.webm":     "leftover source",
		"fragment.part": "partial",
	}}
	svc := NewService(fetcher, &fakeValidator{})

	result, err := svc.Run(context.Background(), validRequest(dest))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Accepted) != 1 {
		t.Fatalf("Expected 1 accepted file, got %d", len(result.Accepted))
	}

	names := listNames(t, dest)
	if len(names) != 1 || names[0] != "song.mp3" {
		t.Errorf("Only song.mp3 should reach the destination, got %v", names)
	}
}

func TestRunCreatesMissingDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "not", "yet", "created")
	fetcher := &fakeFetcher{files: map[string]string{"song.mp3": "audio"}}
	svc := NewService(fetcher, &fakeValidator{})

	result, err := svc.Run(context.Background(), validRequest(dest))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Accepted) != 1 {
		t.Errorf("Expected 1 accepted file, got %d", len(result.Accepted))
	}
}

func TestRunCollisionSuffixesAreDeterministic(t *testing.T) {
	dest := t.TempDir()

	// Two runs producing the same title must stack counters predictably.
	for i, want := range []string{"Song.mp3", "Song (1).mp3", "Song (2).mp3"} {
		fetcher := &fakeFetcher{files: map[string]string{"Song.mp3": "take"}}
		svc := NewService(fetcher, &fakeValidator{})

		result, err := svc.Run(context.Background(), validRequest(dest))
		if err != nil {
			t.Fatalf("Run %d failed: %v", i, err)
		}
		if len(result.Accepted) != 1 {
			t.Fatalf("Run %d: expected 1 accepted file, got %d", i, len(result.Accepted))
		}
		if got := filepath.Base(result.Accepted[0].FinalPath); got != want {
			t.Errorf("Run %d: expected %q, got %q", i, want, got)
		}
	}
}
