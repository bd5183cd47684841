package config

import "fmt"

// Video holds the slideshow rendering settings.
type Video struct {
	Duration  float64 `yaml:"duration"`  // seconds per image
	Crossfade float64 `yaml:"crossfade"` // seconds per transition
	FPS       int     `yaml:"fps"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`

	ZoomIntensity    float64 `yaml:"zoom_intensity"`    // 0.0 - 0.2
	PanIntensity     float64 `yaml:"pan_intensity"`     // 0.0 - 1.0
	ZoomDirection    string  `yaml:"zoom_direction"`    // in, out, alternate, random
	PanDirection     string  `yaml:"pan_direction"`     // left, right, alternate, random
	VerticalPosition float64 `yaml:"vertical_position"` // 0=top, 0.5=center, 1=bottom

	Transition string `yaml:"transition"` // xfade transition name, or "random"

	Shuffle bool `yaml:"shuffle"`
	Reverse bool `yaml:"reverse"`

	CRF          int    `yaml:"crf"` // 0-51, lower is better
	Preset       string `yaml:"preset"`
	AudioBitrate string `yaml:"audio_bitrate"`
}

// Audio holds the album normalization settings.
type Audio struct {
	Loudness         float64 `yaml:"loudness"` // target LUFS
	LRA              float64 `yaml:"lra"`      // loudness range
	TruePeak         float64 `yaml:"true_peak"`
	SampleRate       int     `yaml:"sample_rate"`
	Channels         int     `yaml:"channels"`
	RemoveSilence    bool    `yaml:"remove_silence"`
	SilenceThreshold string  `yaml:"silence_threshold"`
}

// Watermark describes an overlaid logo image.
type Watermark struct {
	Enabled   bool    `yaml:"enabled"`
	ImagePath string  `yaml:"image_path"`
	Position  string  `yaml:"position"` // top-left, top-right, bottom-left, bottom-right, center
	Opacity   float64 `yaml:"opacity"`  // 0.0 - 1.0
	Scale     float64 `yaml:"scale"`    // fraction of video width
	Margin    int     `yaml:"margin"`   // pixels
}

// Title describes an intro title card.
type Title struct {
	Enabled         bool    `yaml:"enabled"`
	Text            string  `yaml:"text"`
	Subtitle        string  `yaml:"subtitle"`
	Duration        float64 `yaml:"duration"`
	FontSize        int     `yaml:"font_size"`
	SubtitleSize    int     `yaml:"subtitle_size"`
	FontColor       string  `yaml:"font_color"`
	BackgroundColor string  `yaml:"background_color"`
	FadeIn          float64 `yaml:"fade_in"`
	FadeOut         float64 `yaml:"fade_out"`
}

// Project is the top-level configuration, mirroring panzoom.yaml.
type Project struct {
	Video     Video     `yaml:"video"`
	Audio     Audio     `yaml:"audio"`
	Watermark Watermark `yaml:"watermark"`
	Title     Title     `yaml:"title"`

	Artist    string `yaml:"artist"`
	Genre     string `yaml:"genre"`
	OutputDir string `yaml:"output_dir"`
}

// Default returns a Project populated with the stock settings.
func Default() *Project {
	return &Project{
		Video: Video{
			Duration:         10.0,
			Crossfade:        2.0,
			FPS:              60,
			Width:            1920,
			Height:           1080,
			ZoomIntensity:    0.08,
			PanIntensity:     0.25,
			ZoomDirection:    "alternate",
			PanDirection:     "alternate",
			VerticalPosition: 0.3,
			Transition:       "fade",
			CRF:              18,
			Preset:           "slow",
			AudioBitrate:     "320k",
		},
		Audio: Audio{
			Loudness:         -14.0,
			LRA:              7.0,
			TruePeak:         -1.5,
			SampleRate:       44100,
			Channels:         2,
			RemoveSilence:    true,
			SilenceThreshold: "-50dB",
		},
		Watermark: Watermark{
			Position: "bottom-right",
			Opacity:  0.7,
			Scale:    0.15,
			Margin:   20,
		},
		Title: Title{
			Duration:        4.0,
			FontSize:        72,
			SubtitleSize:    36,
			FontColor:       "white",
			BackgroundColor: "black",
			FadeIn:          1.0,
			FadeOut:         1.0,
		},
		Artist:    "Carnaverone Studio",
		Genre:     "Instrumental",
		OutputDir: "output",
	}
}

// Validate rejects settings that would produce a degenerate filter graph.
func (v *Video) Validate() error {
	if v.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", v.Duration)
	}
	if v.Crossfade < 0 {
		return fmt.Errorf("crossfade must not be negative, got %g", v.Crossfade)
	}
	if v.Crossfade >= v.Duration {
		return fmt.Errorf("crossfade (%gs) must be shorter than duration per image (%gs)", v.Crossfade, v.Duration)
	}
	if v.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", v.FPS)
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", v.Width, v.Height)
	}
	return nil
}
