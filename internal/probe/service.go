package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/platform"
)

// FFprobe/FFmpeg constants for validation probes
const (
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=format_name"
	FFprobeOutputFormat = "default=noprint_wrappers=1:nokey=1"

	NullMuxer  = "null"
	NullOutput = "-"

	FormatProbeTimeout = 15 * time.Second
	DecodeProbeTimeout = 20 * time.Second
)

// commandRunner executes an external command and returns its combined output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Service validates candidate files against the target audio format.
type Service struct {
	lookPath func(string) (string, error)
	run      commandRunner
}

// NewService creates a validation service using real OS dependencies.
func NewService() *Service {
	return &Service{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}

// NewServiceForTests creates a service with injectable dependencies.
func NewServiceForTests(lookPath func(string) (string, error), run commandRunner) *Service {
	return &Service{lookPath: lookPath, run: run}
}

// Availability reports whether the inspection and decode tools are on PATH.
func (s *Service) Availability() (ffprobe, ffmpeg platform.Availability) {
	return platform.LookupTool(s.lookPath, platform.FFprobeCommand),
		platform.LookupTool(s.lookPath, platform.FFmpegCommand)
}

// Validate judges one candidate. The primary check asks ffprobe for the
// container format name and accepts on a case-insensitive target token
// match. Whenever the primary check does not accept (tool missing, tool
// failure, or a foreign format report), a full null-decode through ffmpeg
// decides. The candidate is never mutated.
func (s *Service) Validate(ctx context.Context, candidate model.ScratchCandidate) model.Verdict {
	verdict := model.Verdict{Candidate: candidate}

	accepted, primaryReason := s.formatProbe(ctx, candidate.Path)
	if accepted {
		verdict.Outcome = model.OutcomeAccepted
		return verdict
	}

	verdict.Outcome, verdict.Reason = s.decodeProbe(ctx, candidate.Path, primaryReason)
	return verdict
}

// formatProbe runs the ffprobe format-name check. The returned reason
// describes why the probe was inconclusive when accepted is false.
func (s *Service) formatProbe(ctx context.Context, path string) (accepted bool, reason string) {
	if _, err := s.lookPath(platform.FFprobeCommand); err != nil {
		return false, "ffprobe not found on PATH"
	}

	probeCtx, cancel := context.WithTimeout(ctx, FormatProbeTimeout)
	defer cancel()

	output, err := s.run(probeCtx, platform.FFprobeCommand,
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		path,
	)
	if err != nil {
		return false, fmt.Sprintf("ffprobe failed: %v", err)
	}

	if strings.Contains(strings.ToLower(string(output)), model.TargetFormat) {
		return true, ""
	}

	return false, fmt.Sprintf("ffprobe did not report %s (got %q)", model.TargetFormat, strings.TrimSpace(string(output)))
}

// decodeProbe decodes the whole file to a null sink. Exit status zero
// accepts the candidate; anything else rejects it.
func (s *Service) decodeProbe(ctx context.Context, path, primaryReason string) (model.Outcome, string) {
	if _, err := s.lookPath(platform.FFmpegCommand); err != nil {
		return model.OutcomeToolUnavailable, joinReasons(primaryReason, "ffmpeg not found on PATH")
	}

	probeCtx, cancel := context.WithTimeout(ctx, DecodeProbeTimeout)
	defer cancel()

	_, err := s.run(probeCtx, platform.FFmpegCommand,
		"-v", FFprobeLogLevel,
		"-i", path,
		"-f", NullMuxer,
		NullOutput,
	)
	if err == nil {
		return model.OutcomeAccepted, ""
	}

	if errors.Is(probeCtx.Err(), context.DeadlineExceeded) {
		return model.OutcomeToolFailed, joinReasons(primaryReason, "decode probe timed out")
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return model.OutcomeRejected, joinReasons(primaryReason, fmt.Sprintf("decode probe exited with status %d", exitErr.ExitCode()))
	}

	return model.OutcomeToolFailed, joinReasons(primaryReason, fmt.Sprintf("decode probe failed to run: %v", err))
}

// joinReasons combines primary and fallback probe notes into one message.
func joinReasons(primary, fallback string) string {
	if primary == "" {
		return fallback
	}
	return primary + "; " + fallback
}
