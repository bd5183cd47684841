package slideshow

import (
	"fmt"
	"strings"

	"github.com/carnaverone/panzoom/internal/config"
)

// outputLabel is the well-known tag of the final video stage. The driver maps
// it to the output file, so the last filter clause must always produce it.
const outputLabel = "v"

// inputLayout computes every ffmpeg input index from the image count and the
// presence of the optional inputs. The title, when present, occupies slot 0
// and shifts every image; the watermark is always the last input, after the
// audio slot.
type inputLayout struct {
	imageCount   int
	hasTitle     bool
	hasWatermark bool
}

func (l inputLayout) titleOffset() int {
	if l.hasTitle {
		return 1
	}
	return 0
}

func (l inputLayout) image(i int) int { return i + l.titleOffset() }

func (l inputLayout) audio() int { return l.imageCount + l.titleOffset() }

func (l inputLayout) watermark() int { return l.audio() + 1 }

// BuildFilterComplex synthesizes the full filter_complex expression: one
// scale+zoompan stage per image, the chained xfade sequence, and the optional
// watermark overlay. The final clause is always labeled [v].
func BuildFilterComplex(images []ImageEffect, cfg *config.Video, watermark *config.Watermark, title *config.Title) (string, error) {
	if len(images) == 0 {
		return "", ErrNoImages
	}

	layout := inputLayout{
		imageCount:   len(images),
		hasTitle:     title != nil && title.Enabled,
		hasWatermark: watermark != nil && watermark.Enabled,
	}

	numFrames := int(cfg.Duration*float64(cfg.FPS) + 0.5)
	if numFrames < 2 {
		numFrames = 2
	}
	frac := fmt.Sprintf("(on/%d)", numFrames-1)

	var clauses []string

	for _, img := range images {
		// Zoom in and out share the same endpoints so both directions
		// traverse the identical 1 .. 1+intensity range.
		var zoomExpr string
		if img.ZoomIn {
			zoomExpr = fmt.Sprintf("(1+%g*%s)", cfg.ZoomIntensity, frac)
		} else {
			zoomExpr = fmt.Sprintf("(%g-%g*%s)", 1+cfg.ZoomIntensity, cfg.ZoomIntensity, frac)
		}

		var xExpr string
		if img.PanLeftToRight {
			xExpr = fmt.Sprintf("(iw-ow)*(%g*%s)", cfg.PanIntensity, frac)
		} else {
			xExpr = fmt.Sprintf("(iw-ow)*(%g*(1-%s))", cfg.PanIntensity, frac)
		}

		yExpr := fmt.Sprintf("(ih-oh)*%g", cfg.VerticalPosition)

		clauses = append(clauses, fmt.Sprintf(
			"[%d:v]scale=%d:%d:force_original_aspect_ratio=increase,"+
				"zoompan=z='%s':x='%s':y='%s':d=%d:s=%dx%d:fps=%d,"+
				"format=yuv420p[v%d]",
			layout.image(img.Index),
			cfg.Width*2, cfg.Height*2,
			zoomExpr, xExpr, yExpr,
			numFrames, cfg.Width, cfg.Height, cfg.FPS,
			img.Index,
		))
	}

	// Chain the per-image stages with xfade. Each cross-fade starts one
	// image interval after the previous one, so the running offset is
	// N*(duration-crossfade).
	mainLabel := "[v0]"
	if len(images) > 1 {
		offset := cfg.Duration - cfg.Crossfade
		for i := 1; i < len(images); i++ {
			transition := images[i].Transition
			if !config.IsTransition(transition) {
				transition = "fade"
			}
			clauses = append(clauses, fmt.Sprintf(
				"%s[v%d]xfade=transition=%s:duration=%g:offset=%g[x%d]",
				mainLabel, i, transition, cfg.Crossfade, offset, i,
			))
			mainLabel = fmt.Sprintf("[x%d]", i)
			offset += cfg.Duration - cfg.Crossfade
		}
	}

	finalLabel := outputLabel
	if layout.hasWatermark {
		finalLabel = "vmain"
	}
	clauses = append(clauses, fmt.Sprintf("%sformat=yuv420p[%s]", mainLabel, finalLabel))

	if layout.hasWatermark {
		clauses = append(clauses,
			fmt.Sprintf("[%d:v]scale=iw*%g:-1,format=rgba,colorchannelmixer=aa=%g[wm]",
				layout.watermark(), watermark.Scale, watermark.Opacity),
			fmt.Sprintf("[%s][wm]overlay=%s[%s]",
				finalLabel, watermarkPosition(watermark), outputLabel),
		)
	}

	return strings.Join(clauses, ";"), nil
}

func watermarkPosition(wm *config.Watermark) string {
	switch wm.Position {
	case "top-left":
		return fmt.Sprintf("x=%d:y=%d", wm.Margin, wm.Margin)
	case "top-right":
		return fmt.Sprintf("x=W-w-%d:y=%d", wm.Margin, wm.Margin)
	case "bottom-left":
		return fmt.Sprintf("x=%d:y=H-h-%d", wm.Margin, wm.Margin)
	case "center":
		return "x=(W-w)/2:y=(H-h)/2"
	default: // bottom-right
		return fmt.Sprintf("x=W-w-%d:y=H-h-%d", wm.Margin, wm.Margin)
	}
}

// BuildTitleFilter produces the filter for an intro title card: a solid
// background clip with centered title and optional subtitle text, faded in
// and out. The card is built as an independent clip and is not yet
// concatenated into the main chain.
func BuildTitleFilter(title *config.Title, cfg *config.Video) string {
	if title == nil || !title.Enabled {
		return ""
	}

	var clauses []string

	clauses = append(clauses, fmt.Sprintf(
		"color=c=%s:s=%dx%d:d=%g:r=%d[bg]",
		title.BackgroundColor, cfg.Width, cfg.Height, title.Duration, cfg.FPS,
	))

	titleY := "(h-text_h)/2"
	if title.Subtitle != "" {
		titleY = fmt.Sprintf("(h-text_h)/2-%d", title.SubtitleSize)
	}
	clauses = append(clauses, fmt.Sprintf(
		"[bg]drawtext=text='%s':fontsize=%d:fontcolor=%s:x=(w-text_w)/2:y=%s[titled]",
		title.Text, title.FontSize, title.FontColor, titleY,
	))

	final := "titled"
	if title.Subtitle != "" {
		clauses = append(clauses, fmt.Sprintf(
			"[titled]drawtext=text='%s':fontsize=%d:fontcolor=%s:x=(w-text_w)/2:y=(h-text_h)/2+%d[titlesub]",
			title.Subtitle, title.SubtitleSize, title.FontColor, title.FontSize/2,
		))
		final = "titlesub"
	}

	clauses = append(clauses, fmt.Sprintf(
		"[%s]fade=t=in:st=0:d=%g,fade=t=out:st=%g:d=%g[title]",
		final, title.FadeIn, title.Duration-title.FadeOut, title.FadeOut,
	))

	return strings.Join(clauses, ";")
}
