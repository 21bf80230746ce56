package pipeline

import (
	"context"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
)

// Runner defines the interface for the download-validate-place pipeline.
type Runner interface {
	Run(ctx context.Context, req model.SourceRequest) (model.Result, error)
}
