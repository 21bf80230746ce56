package probe

import (
	"context"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
)

// Validator defines the interface for the output validation service.
type Validator interface {
	// Validate judges one scratch candidate. It never returns an error;
	// tool problems are encoded in the verdict outcome.
	Validate(ctx context.Context, candidate model.ScratchCandidate) model.Verdict
}
