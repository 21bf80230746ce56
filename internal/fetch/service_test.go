package fetch

import (
	"errors"
	"testing"

	"github.com/lrstanley/go-ytdlp"
)

func TestAudioQuality(t *testing.T) {
	tests := []struct {
		kbps int
		want string
	}{
		{128, "128K"},
		{192, "192K"},
		{256, "256K"},
		{320, "320K"},
	}

	for _, tt := range tests {
		if got := audioQuality(tt.kbps); got != tt.want {
			t.Errorf("audioQuality(%d) = %q, want %q", tt.kbps, got, tt.want)
		}
	}
}

func TestPercentFor(t *testing.T) {
	if got := percentFor(50, 200); got != 25.0 {
		t.Errorf("Expected 25.0, got %f", got)
	}

	if got := percentFor(10, 0); got != -1 {
		t.Errorf("Expected -1 for unknown total, got %f", got)
	}

	// Post-processing can report more bytes than the estimate.
	if got := percentFor(250, 200); got != 100.0 {
		t.Errorf("Expected clamp to 100.0, got %f", got)
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("network unreachable")
	err := &Error{URL: "https://youtube.com/watch?v=test", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}

	var fetchErr *Error
	if !errors.As(error(err), &fetchErr) {
		t.Error("Expected errors.As to match *Error")
	}

	msg := err.Error()
	if msg == "" || fetchErr.URL != "https://youtube.com/watch?v=test" {
		t.Errorf("Unexpected error shape: %q", msg)
	}
}

func TestSetProgressCallback(t *testing.T) {
	svc := NewService()

	var got Progress
	svc.SetProgressCallback(func(p Progress) { got = p })

	if svc.onProgress == nil {
		t.Fatal("Progress callback was not registered")
	}

	svc.onProgress(Progress{Percent: 42.5, Title: "Test Video"})
	if got.Percent != 42.5 || got.Title != "Test Video" {
		t.Errorf("Callback did not receive the update: %+v", got)
	}
}

func TestNotifyProgressPhases(t *testing.T) {
	svc := NewService()

	var got Progress
	svc.SetProgressCallback(func(p Progress) { got = p })

	svc.notifyProgress(&ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 50,
		TotalBytes:      200,
	})
	if got.Phase != PhaseDownloading {
		t.Errorf("Expected downloading phase, got %q", got.Phase)
	}
	if got.Percent != 25.0 {
		t.Errorf("Expected 25.0%%, got %f", got.Percent)
	}

	// Post-processing and finished both mean the bytes are on disk and the
	// transcode to the target format is what remains.
	svc.notifyProgress(&ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusPostProcessing})
	if got.Phase != PhaseConverting {
		t.Errorf("Expected converting phase for post-processing, got %q", got.Phase)
	}

	svc.notifyProgress(&ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusFinished})
	if got.Phase != PhaseConverting {
		t.Errorf("Expected converting phase for finished, got %q", got.Phase)
	}
}
