// Package album normalizes a folder of audio tracks into a mastered,
// consistently named album using ffmpeg's loudnorm filter.
package album

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/carnaverone/panzoom/internal/config"
	"github.com/carnaverone/panzoom/internal/media"
)

// Track records the processing state of one album track.
type Track struct {
	OriginalPath string
	TrackNumber  int
	CleanName    string
	OutputPath   string
	Success      bool
	Err          error
}

// Runner abstracts the per-track ffmpeg invocation for tests.
type Runner interface {
	Run(ctx context.Context, args []string) (output string, err error)
}

type commandRunner struct{}

func (commandRunner) Run(ctx context.Context, args []string) (string, error) {
	out, err := exec.CommandContext(ctx, "ffmpeg", args...).CombinedOutput()
	return string(out), err
}

// Processor normalizes audio tracks one ffmpeg invocation at a time.
type Processor struct {
	cfg     *config.Audio
	runner  Runner
	workers int
	log     *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithRunner injects a custom ffmpeg runner (primarily for tests).
func WithRunner(r Runner) Option {
	return func(p *Processor) {
		if r != nil {
			p.runner = r
		}
	}
}

// WithWorkers bounds the number of tracks processed concurrently.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLogger injects a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// New constructs a Processor.
func New(cfg *config.Audio, opts ...Option) *Processor {
	p := &Processor{
		cfg:     cfg,
		runner:  commandRunner{},
		workers: 2,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var multiSpace = regexp.MustCompile(`\s+`)

// CleanName turns a filename into a display-friendly track title.
func CleanName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.ReplaceAll(name, "_", " ")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// PrepareTracks assigns track numbers and normalized output names.
func PrepareTracks(audioFiles []string, outputDir string) []Track {
	tracks := make([]Track, 0, len(audioFiles))
	for i, path := range audioFiles {
		number := i + 1
		clean := CleanName(path)
		tracks = append(tracks, Track{
			OriginalPath: path,
			TrackNumber:  number,
			CleanName:    clean,
			OutputPath:   filepath.Join(outputDir, fmt.Sprintf("%02d - %s.wav", number, clean)),
		})
	}
	return tracks
}

// BuildAudioFilter assembles the loudnorm (and optional silenceremove)
// filter string for one track.
func (p *Processor) BuildAudioFilter() string {
	filters := []string{
		fmt.Sprintf("loudnorm=I=%g:LRA=%g:TP=%g", p.cfg.Loudness, p.cfg.LRA, p.cfg.TruePeak),
	}
	if p.cfg.RemoveSilence {
		filters = append(filters, fmt.Sprintf(
			"silenceremove=start_periods=1:start_duration=0.2:start_threshold=%s:"+
				"stop_periods=1:stop_duration=0.2:stop_threshold=%s",
			p.cfg.SilenceThreshold, p.cfg.SilenceThreshold,
		))
	}
	return strings.Join(filters, ",")
}

func (p *Processor) processTrack(ctx context.Context, track *Track) {
	args := []string{
		"-y", "-hide_banner", "-loglevel", "warning",
		"-i", track.OriginalPath,
		"-af", p.BuildAudioFilter(),
		"-ar", fmt.Sprintf("%d", p.cfg.SampleRate),
		"-ac", fmt.Sprintf("%d", p.cfg.Channels),
		track.OutputPath,
	}

	out, err := p.runner.Run(ctx, args)
	if err != nil {
		track.Err = fmt.Errorf("normalize %s: %s", track.CleanName, firstNonEmpty(strings.TrimSpace(out), err.Error()))
		return
	}
	if _, err := os.Stat(track.OutputPath); err != nil {
		track.Err = fmt.Errorf("normalize %s: no output produced", track.CleanName)
		return
	}
	track.Success = true
}

// ProcessAlbum discovers, prepares and normalizes every audio file under
// inputPath into outputDir. It returns the success and error counts together
// with the per-track results; an empty track list means nothing was found.
func (p *Processor) ProcessAlbum(ctx context.Context, inputPath, outputDir string, onProgress func(string)) (int, int, []Track, error) {
	audioFiles, err := media.FindAudio(inputPath)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("discover audio: %w", err)
	}
	if len(audioFiles) == 0 {
		return 0, 0, nil, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, 0, nil, fmt.Errorf("create output dir: %w", err)
	}

	tracks := PrepareTracks(audioFiles, outputDir)
	if onProgress != nil {
		onProgress(fmt.Sprintf("Found %d audio files", len(tracks)))
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.workers)
	for i := range tracks {
		track := &tracks[i]
		group.Go(func() error {
			if onProgress != nil {
				onProgress(fmt.Sprintf("Processing: %s", track.CleanName))
			}
			p.processTrack(groupCtx, track)
			if track.Err != nil {
				p.log.Warn("track failed", slog.String("track", track.CleanName), slog.Any("error", track.Err))
			}
			return nil
		})
	}
	_ = group.Wait()

	success, failed := 0, 0
	for _, track := range tracks {
		if track.Success {
			success++
		} else {
			failed++
		}
	}
	return success, failed, tracks, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
