package slideshow

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classifying generation failures. All pre-launch validation
// failures are synchronous and nothing is retried.
var (
	ErrInputNotFound     = errors.New("input not found")
	ErrNoImages          = errors.New("no images found")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrEngineMissing     = errors.New("ffmpeg not found, please install FFmpeg")
	ErrOutputMissing     = errors.New("output file was not created")
	ErrCancelled         = errors.New("generation cancelled")
)

// EngineError reports a non-zero ffmpeg exit, carrying the captured
// diagnostic output verbatim.
type EngineError struct {
	Err    error
	Stderr string
}

func (e *EngineError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("ffmpeg failed: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg failed: %s", msg)
}

func (e *EngineError) Unwrap() error { return e.Err }
