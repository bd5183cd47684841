// Package slideshow builds Ken Burns style slideshow videos by composing an
// ffmpeg filter graph from still images and driving ffmpeg as a subprocess.
package slideshow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/carnaverone/panzoom/internal/config"
	"github.com/carnaverone/panzoom/internal/media"
)

// ProgressFunc receives discrete milestone messages during generation.
type ProgressFunc func(msg string)

// ProgressBarFunc receives the structured snapshot on every parsed update.
type ProgressBarFunc func(p Progress)

// previewProfile is the fixed low-fidelity parameter set substituted for the
// duration of a preview run.
var previewProfile = struct {
	width, height, fps, crf int
	preset                  string
}{640, 360, 15, 35, "ultrafast"}

// Generator owns one slideshow configuration and the ffmpeg lifecycle.
// Concurrent Generate calls on the same Generator are not supported: the
// preview substitute/restore sequence mutates the shared config.
type Generator struct {
	cfg       *config.Video
	watermark *config.Watermark
	title     *config.Title
	exec      Executor
	rng       *rand.Rand
	log       *slog.Logger

	mu        sync.Mutex
	cancelRun context.CancelFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithExecutor injects a custom subprocess executor (primarily for tests).
func WithExecutor(e Executor) Option {
	return func(g *Generator) {
		if e != nil {
			g.exec = e
		}
	}
}

// WithRand injects the random source used by shuffle and the random
// zoom/pan/transition policies, making them deterministic in tests.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithLogger injects a structured logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New constructs a Generator. watermark and title may be nil.
func New(cfg *config.Video, watermark *config.Watermark, title *config.Title, opts ...Option) *Generator {
	g := &Generator{
		cfg:       cfg,
		watermark: watermark,
		title:     title,
		exec:      commandExecutor{},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// EstimateDuration returns the expected output length in seconds: crossfades
// overlap adjacent images, and an enabled title card adds its own duration.
func EstimateDuration(imageCount int, cfg *config.Video, title *config.Title) float64 {
	if imageCount == 0 {
		return 0
	}
	total := cfg.Duration*float64(imageCount) - cfg.Crossfade*float64(imageCount-1)
	if title != nil && title.Enabled {
		total += title.Duration
	}
	if total < 0 {
		return 0
	}
	return total
}

// Cancel requests cooperative cancellation of an in-flight Generate call.
// The ffmpeg child is terminated; the call returns ErrCancelled. The child
// may not have released its resources by the time Generate returns.
func (g *Generator) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancelRun != nil {
		g.cancelRun()
	}
}

// GeneratePreview renders a fast low-fidelity approximation of the output.
func (g *Generator) GeneratePreview(ctx context.Context, imagesPath, audioPath, outputPath string, onText ProgressFunc, onBar ProgressBarFunc) (string, error) {
	return g.Generate(ctx, imagesPath, audioPath, outputPath, onText, onBar, true)
}

// Generate renders the slideshow. It returns a human-readable success
// message, or an error classified per the package sentinels. Both callbacks
// are optional; their absence only suppresses reporting.
func (g *Generator) Generate(ctx context.Context, imagesPath, audioPath, outputPath string, onText ProgressFunc, onBar ProgressBarFunc, preview bool) (string, error) {
	if err := g.cfg.Validate(); err != nil {
		return "", err
	}

	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("%w: audio file %s", ErrInputNotFound, audioPath)
	}
	if !media.IsAudio(audioPath) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, audioPath)
	}

	imageFiles, err := media.FindImages(imagesPath)
	if err != nil {
		return "", fmt.Errorf("%w: images path %s", ErrInputNotFound, imagesPath)
	}
	if len(imageFiles) == 0 {
		return "", fmt.Errorf("%w in: %s", ErrNoImages, imagesPath)
	}

	images, err := ResolveEffects(imageFiles, g.cfg, g.rng)
	if err != nil {
		return "", err
	}

	if onText != nil {
		onText(fmt.Sprintf("Found %d images", len(images)))
	}

	// Preview substitutes low-fidelity parameters on the shared config; the
	// deferred restore must run on every exit path, including launch failure
	// and cancellation.
	if preview {
		orig := *g.cfg
		g.cfg.Width = previewProfile.width
		g.cfg.Height = previewProfile.height
		g.cfg.FPS = previewProfile.fps
		g.cfg.CRF = previewProfile.crf
		g.cfg.Preset = previewProfile.preset
		defer func() {
			g.cfg.Width = orig.Width
			g.cfg.Height = orig.Height
			g.cfg.FPS = orig.FPS
			g.cfg.CRF = orig.CRF
			g.cfg.Preset = orig.Preset
		}()
	}

	hasWatermark := g.watermark != nil && g.watermark.Enabled && fileExists(g.watermark.ImagePath)
	watermark := g.watermark
	if !hasWatermark {
		watermark = nil
	}

	filterComplex, err := BuildFilterComplex(images, g.cfg, watermark, nil)
	if err != nil {
		return "", err
	}

	layout := inputLayout{imageCount: len(images), hasWatermark: hasWatermark}

	args := []string{"-y", "-hide_banner", "-progress", "pipe:1", "-loglevel", "error"}
	for _, img := range images {
		args = append(args, "-loop", "1", "-t", strconv.FormatFloat(g.cfg.Duration, 'f', -1, 64), "-i", img.Path)
	}
	args = append(args, "-i", audioPath)
	if hasWatermark {
		args = append(args, "-i", g.watermark.ImagePath)
	}
	args = append(args,
		"-filter_complex", filterComplex,
		"-map", "["+outputLabel+"]",
		"-map", fmt.Sprintf("%d:a", layout.audio()),
		"-c:v", "libx264",
		"-crf", strconv.Itoa(g.cfg.CRF),
		"-preset", g.cfg.Preset,
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", g.cfg.AudioBitrate,
		"-shortest",
		outputPath,
	)

	if onText != nil {
		mode := "full quality"
		if preview {
			mode = "preview"
		}
		onText(fmt.Sprintf("Starting video generation (%s)...", mode))
	}

	// Fixed for the whole run; feeds the parser's percent and ETA math.
	totalDuration := EstimateDuration(len(images), g.cfg, g.title)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.mu.Lock()
	g.cancelRun = cancel
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		g.cancelRun = nil
		g.mu.Unlock()
	}()

	g.log.Debug("launching ffmpeg",
		slog.Int("images", len(images)),
		slog.Float64("estimated_duration", totalDuration),
		slog.Bool("preview", preview))

	snapshot := &Progress{}
	stderr, runErr := g.exec.Run(runCtx, "ffmpeg", args, func(line string) {
		snapshot.Update(line, totalDuration, g.cfg.FPS)
		if onBar != nil {
			onBar(*snapshot)
		}
	})

	if runCtx.Err() != nil {
		return "", ErrCancelled
	}
	if runErr != nil {
		if errors.Is(runErr, exec.ErrNotFound) {
			return "", ErrEngineMissing
		}
		return "", &EngineError{Err: runErr, Stderr: stderr}
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return "", ErrOutputMissing
	}
	return fmt.Sprintf("Video created: %s (%s)", outputPath, humanize.Bytes(uint64(info.Size()))), nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
