package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/carnaverone/panzoom/internal/config"
	"github.com/carnaverone/panzoom/internal/media"
	"github.com/carnaverone/panzoom/internal/slideshow"
	"github.com/carnaverone/panzoom/internal/system"
)

type videoFlags struct {
	images  string
	audio   string
	output  string
	preset  string
	export  string
	preview bool

	duration  float64
	crossfade float64
	fps       int
	width     int
	height    int
	zoom      float64
	pan       float64
	zoomDir   string
	panDir    string

	transition string
	shuffle    bool
	reverse    bool
	quality    int

	watermark        string
	watermarkPos     string
	watermarkOpacity float64
	watermarkScale   float64

	title    string
	subtitle string
}

func newVideoCommand(appCtx *appContext) *cobra.Command {
	var flags videoFlags

	cmd := &cobra.Command{
		Use:   "video",
		Short: "Generate a Ken Burns slideshow video",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVideo(cmd, appCtx, &flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.images, "images", "i", ".", "Images directory or single image")
	fs.StringVarP(&flags.audio, "audio", "a", "", "Audio file")
	fs.StringVarP(&flags.output, "output", "o", "slideshow.mp4", "Output file")
	fs.StringVar(&flags.preset, "preset", "", "Style preset (see `panzoom presets`)")
	fs.StringVar(&flags.export, "export", "", "Export profile (see `panzoom exports`)")
	fs.BoolVar(&flags.preview, "preview", false, "Generate a quick low quality preview")

	fs.Float64VarP(&flags.duration, "duration", "d", 0, "Duration per image (seconds)")
	fs.Float64VarP(&flags.crossfade, "crossfade", "x", 0, "Crossfade duration (seconds)")
	fs.IntVarP(&flags.fps, "fps", "f", 0, "Frames per second")
	fs.IntVarP(&flags.width, "width", "w", 0, "Video width")
	fs.IntVarP(&flags.height, "height", "g", 0, "Video height")
	fs.Float64Var(&flags.zoom, "zoom", 0, "Zoom intensity (0.0-0.2)")
	fs.Float64Var(&flags.pan, "pan", 0, "Pan intensity (0.0-1.0)")
	fs.StringVar(&flags.zoomDir, "zoom-dir", "", "Zoom direction: in, out, alternate, random")
	fs.StringVar(&flags.panDir, "pan-dir", "", "Pan direction: left, right, alternate, random")

	fs.StringVar(&flags.transition, "transition", "", "Transition type, or \"random\"")
	fs.BoolVar(&flags.shuffle, "shuffle", false, "Randomize image order")
	fs.BoolVar(&flags.reverse, "reverse", false, "Reverse image order")
	fs.IntVarP(&flags.quality, "quality", "q", 0, "Quality CRF (0-51, lower is better)")

	fs.StringVar(&flags.watermark, "watermark", "", "Watermark image file")
	fs.StringVar(&flags.watermarkPos, "watermark-pos", "", "Watermark position")
	fs.Float64Var(&flags.watermarkOpacity, "watermark-opacity", 0, "Watermark opacity (0.0-1.0)")
	fs.Float64Var(&flags.watermarkScale, "watermark-scale", 0, "Watermark size relative to video width")

	fs.StringVar(&flags.title, "title", "", "Add an intro title card with this text")
	fs.StringVar(&flags.subtitle, "subtitle", "", "Subtitle for the title card")

	_ = cmd.MarkFlagRequired("audio")

	return cmd
}

func runVideo(cmd *cobra.Command, appCtx *appContext, flags *videoFlags) error {
	u := appCtx.term
	u.Banner()

	if !system.CheckFFmpeg() {
		u.Errorf("FFmpeg not found. Please install FFmpeg first.")
		return errors.New("ffmpeg missing")
	}

	// ffmpeg keeps every image input open for the whole encode.
	system.InitResourceLimits(appCtx.log)

	cfg, err := appCtx.loadConfig()
	if err != nil {
		u.Errorf("%v", err)
		return err
	}

	if flags.export != "" {
		if err := config.ApplyExportProfile(&cfg.Video, flags.export); err != nil {
			u.Errorf("%v", err)
			return err
		}
		u.Infof("Using export profile: %s", config.ExportProfiles[flags.export].Name)
	}
	// Presets apply after the export profile so they can override it.
	if flags.preset != "" {
		if err := config.ApplyPreset(&cfg.Video, flags.preset); err != nil {
			u.Errorf("%v", err)
			return err
		}
		u.Infof("Using preset: %s", flags.preset)
	}

	applyVideoOverrides(cmd, &cfg.Video, flags)

	watermark := cfg.Watermark
	if flags.watermark != "" {
		if _, err := os.Stat(flags.watermark); err != nil {
			u.Warningf("Watermark file not found: %s", flags.watermark)
		} else {
			watermark.Enabled = true
			watermark.ImagePath = flags.watermark
			if flags.watermarkPos != "" {
				watermark.Position = flags.watermarkPos
			}
			if cmd.Flags().Changed("watermark-opacity") {
				watermark.Opacity = flags.watermarkOpacity
			}
			if cmd.Flags().Changed("watermark-scale") {
				watermark.Scale = flags.watermarkScale
			}
		}
	}

	title := cfg.Title
	if flags.title != "" {
		title.Enabled = true
		title.Text = flags.title
		if flags.subtitle != "" {
			title.Subtitle = flags.subtitle
		}
	}

	if _, err := os.Stat(flags.images); err != nil {
		u.Errorf("Images path not found: %s", flags.images)
		return err
	}
	if _, err := os.Stat(flags.audio); err != nil {
		u.Errorf("Audio file not found: %s", flags.audio)
		return err
	}

	imageFiles, err := media.FindImages(flags.images)
	if err != nil {
		u.Errorf("%v", err)
		return err
	}
	if len(imageFiles) == 0 {
		u.Errorf("No images found in: %s", flags.images)
		return errors.New("no images found")
	}

	var watermarkPtr *config.Watermark
	if watermark.Enabled {
		watermarkPtr = &watermark
	}
	var titlePtr *config.Title
	if title.Enabled {
		titlePtr = &title
	}

	printVideoSummary(u, cfg, flags, len(imageFiles), watermarkPtr, titlePtr)

	if audioDur, err := system.AudioDuration(flags.audio); err == nil {
		estimate := slideshow.EstimateDuration(len(imageFiles), &cfg.Video, titlePtr)
		if estimate > audioDur {
			u.Warningf("Audio (%s) is shorter than the slideshow (%s); the video ends with the audio",
				formatTime(audioDur), formatTime(estimate))
		}
	}

	generator := slideshow.New(&cfg.Video, watermarkPtr, titlePtr, slideshow.WithLogger(appCtx.log))

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(u.out),
		progressbar.OptionSetDescription("Encoding"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(200*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	onText := func(msg string) { u.Infof("%s", msg) }
	onBar := func(p slideshow.Progress) {
		_ = bar.Set(int(p.Percent))
		if p.ETASeconds > 0 && p.Speed > 0 {
			bar.Describe(fmt.Sprintf("Encoding (ETA %s @ %.1fx)", formatTime(p.ETASeconds), p.Speed))
		}
	}

	message, err := generator.Generate(cmd.Context(), flags.images, flags.audio, flags.output, onText, onBar, flags.preview)
	_ = bar.Clear()

	switch {
	case errors.Is(err, slideshow.ErrCancelled):
		u.Warningf("Generation cancelled")
		return err
	case err != nil:
		u.Errorf("%v", err)
		return err
	}

	u.Successf("%s", message)
	return nil
}

// applyVideoOverrides copies only the flags the user actually set onto the
// configuration, so file and preset values survive.
func applyVideoOverrides(cmd *cobra.Command, v *config.Video, flags *videoFlags) {
	changed := cmd.Flags().Changed
	if changed("duration") {
		v.Duration = flags.duration
	}
	if changed("crossfade") {
		v.Crossfade = flags.crossfade
	}
	if changed("fps") {
		v.FPS = flags.fps
	}
	if changed("width") {
		v.Width = flags.width
	}
	if changed("height") {
		v.Height = flags.height
	}
	if changed("zoom") {
		v.ZoomIntensity = flags.zoom
	}
	if changed("pan") {
		v.PanIntensity = flags.pan
	}
	if changed("zoom-dir") {
		v.ZoomDirection = flags.zoomDir
	}
	if changed("pan-dir") {
		v.PanDirection = flags.panDir
	}
	if changed("transition") {
		v.Transition = flags.transition
	}
	if flags.shuffle {
		v.Shuffle = true
	}
	if flags.reverse {
		v.Reverse = true
	}
	if changed("quality") {
		v.CRF = flags.quality
	}
}

func printVideoSummary(u *ui, cfg *config.Project, flags *videoFlags, imageCount int, watermark *config.Watermark, title *config.Title) {
	v := cfg.Video
	estimate := slideshow.EstimateDuration(imageCount, &v, title)

	u.Printf("%s\n", u.white.Sprint("Configuration:"))
	u.Printf("  Images:      %d files\n", imageCount)
	u.Printf("  Audio:       %s\n", flags.audio)
	u.Printf("  Output:      %s\n", flags.output)
	u.Printf("  Duration:    %gs per image\n", v.Duration)
	u.Printf("  Resolution:  %dx%d @ %dfps\n", v.Width, v.Height, v.FPS)
	u.Printf("  Zoom:        %.0f%% (%s)\n", v.ZoomIntensity*100, v.ZoomDirection)
	u.Printf("  Pan:         %.0f%% (%s)\n", v.PanIntensity*100, v.PanDirection)
	u.Printf("  Transition:  %s\n", v.Transition)
	u.Printf("  Shuffle:     %v\n", v.Shuffle)
	if watermark != nil {
		u.Printf("  Watermark:   %s (%.0f%%)\n", watermark.Position, watermark.Opacity*100)
	}
	if title != nil {
		u.Printf("  Title:       %s\n", title.Text)
	}
	u.Printf("  Est. length: %s\n", formatTime(estimate))
	if flags.preview {
		u.Printf("  %s\n", u.yellow.Sprint("Mode:        PREVIEW (low quality)"))
	}
	u.Printf("\n")
}
