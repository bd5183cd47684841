package slideshow

import (
	"fmt"
	"strings"
	"testing"

	"github.com/carnaverone/panzoom/internal/config"
)

func testImages(n int) []ImageEffect {
	images := make([]ImageEffect, n)
	for i := range images {
		images[i] = ImageEffect{
			Path:           fmt.Sprintf("img%d.jpg", i),
			Index:          i,
			ZoomIn:         i%2 == 0,
			PanLeftToRight: i%2 == 0,
			Transition:     "fade",
		}
	}
	return images
}

func TestBuildFilterComplexSingleImage(t *testing.T) {
	cfg := testVideoConfig()
	filter, err := BuildFilterComplex(testImages(1), cfg, nil, nil)
	if err != nil {
		t.Fatalf("BuildFilterComplex failed: %v", err)
	}

	if !strings.Contains(filter, "zoompan") {
		t.Error("Filter should contain 'zoompan'")
	}
	if strings.Contains(filter, "xfade") {
		t.Error("Single image must not produce an xfade stage")
	}
	if !strings.HasSuffix(filter, "[v]") {
		t.Errorf("Final stage must be labeled [v], got tail %q", filter[len(filter)-20:])
	}
	// Oversampled scale feeding zoompan, then the output frame size.
	if !strings.Contains(filter, fmt.Sprintf("scale=%d:%d", cfg.Width*2, cfg.Height*2)) {
		t.Error("Filter should scale to twice the output resolution")
	}
	if !strings.Contains(filter, fmt.Sprintf("s=%dx%d", cfg.Width, cfg.Height)) {
		t.Error("zoompan should emit the configured resolution")
	}
}

func TestBuildFilterComplexXfadeOffsets(t *testing.T) {
	cfg := testVideoConfig()
	cfg.Duration = 10.0
	cfg.Crossfade = 2.0

	filter, err := BuildFilterComplex(testImages(3), cfg, nil, nil)
	if err != nil {
		t.Fatalf("BuildFilterComplex failed: %v", err)
	}

	// Offsets accumulate at duration-crossfade intervals: 8, 16.
	if !strings.Contains(filter, "xfade=transition=fade:duration=2:offset=8[x1]") {
		t.Errorf("First xfade offset wrong:\n%s", filter)
	}
	if !strings.Contains(filter, "xfade=transition=fade:duration=2:offset=16[x2]") {
		t.Errorf("Second xfade offset wrong:\n%s", filter)
	}
	if strings.Count(filter, "xfade") != 2 {
		t.Errorf("Expected 2 xfade stages, got %d", strings.Count(filter, "xfade"))
	}
}

func TestBuildFilterComplexUnknownTransition(t *testing.T) {
	cfg := testVideoConfig()
	images := testImages(2)
	images[1].Transition = "definitely-not-real"

	filter, err := BuildFilterComplex(images, cfg, nil, nil)
	if err != nil {
		t.Fatalf("BuildFilterComplex failed: %v", err)
	}
	if !strings.Contains(filter, "xfade=transition=fade") {
		t.Errorf("Unknown transition should fall back to fade:\n%s", filter)
	}
	if strings.Contains(filter, "definitely-not-real") {
		t.Error("Unknown transition leaked into the filter")
	}
}

func TestBuildFilterComplexZoomDirections(t *testing.T) {
	cfg := testVideoConfig()
	cfg.ZoomIntensity = 0.08

	images := testImages(2) // image 0 zooms in, image 1 zooms out
	filter, err := BuildFilterComplex(images, cfg, nil, nil)
	if err != nil {
		t.Fatalf("BuildFilterComplex failed: %v", err)
	}

	if !strings.Contains(filter, "z='(1+0.08*") {
		t.Errorf("Zoom-in expression missing:\n%s", filter)
	}
	if !strings.Contains(filter, "z='(1.08-0.08*") {
		t.Errorf("Zoom-out expression missing:\n%s", filter)
	}
}

func TestBuildFilterComplexWatermark(t *testing.T) {
	cfg := testVideoConfig()
	wm := &config.Watermark{
		Enabled:   true,
		ImagePath: "logo.png",
		Position:  "bottom-right",
		Opacity:   0.7,
		Scale:     0.15,
		Margin:    20,
	}

	filter, err := BuildFilterComplex(testImages(2), cfg, wm, nil)
	if err != nil {
		t.Fatalf("BuildFilterComplex failed: %v", err)
	}

	// Watermark input sits after the 2 images and the audio slot.
	if !strings.Contains(filter, "[3:v]scale=iw*0.15:-1") {
		t.Errorf("Watermark input index or scale wrong:\n%s", filter)
	}
	if !strings.Contains(filter, "colorchannelmixer=aa=0.7") {
		t.Error("Watermark opacity missing")
	}
	if !strings.Contains(filter, "overlay=x=W-w-20:y=H-h-20[v]") {
		t.Errorf("Watermark overlay must produce the final [v]:\n%s", filter)
	}
	if !strings.Contains(filter, "[vmain]") {
		t.Error("Main chain should end in [vmain] before the overlay")
	}
}

func TestWatermarkPositions(t *testing.T) {
	tests := []struct {
		position string
		want     string
	}{
		{"top-left", "x=20:y=20"},
		{"top-right", "x=W-w-20:y=20"},
		{"bottom-left", "x=20:y=H-h-20"},
		{"bottom-right", "x=W-w-20:y=H-h-20"},
		{"center", "x=(W-w)/2:y=(H-h)/2"},
		{"unknown", "x=W-w-20:y=H-h-20"},
	}

	for _, tt := range tests {
		wm := &config.Watermark{Position: tt.position, Margin: 20}
		if got := watermarkPosition(wm); got != tt.want {
			t.Errorf("Position %s: expected %s, got %s", tt.position, tt.want, got)
		}
	}
}

func TestInputLayout(t *testing.T) {
	tests := []struct {
		imageCount    int
		hasTitle      bool
		hasWatermark  bool
		wantImage0    int
		wantAudio     int
		wantWatermark int
	}{
		{3, false, false, 0, 3, 4},
		{3, false, true, 0, 3, 4},
		{3, true, false, 1, 4, 5},
		{1, true, true, 1, 2, 3},
	}

	for _, tt := range tests {
		l := inputLayout{imageCount: tt.imageCount, hasTitle: tt.hasTitle, hasWatermark: tt.hasWatermark}
		if got := l.image(0); got != tt.wantImage0 {
			t.Errorf("layout %+v image(0): expected %d, got %d", tt, tt.wantImage0, got)
		}
		if got := l.audio(); got != tt.wantAudio {
			t.Errorf("layout %+v audio(): expected %d, got %d", tt, tt.wantAudio, got)
		}
		if got := l.watermark(); got != tt.wantWatermark {
			t.Errorf("layout %+v watermark(): expected %d, got %d", tt, tt.wantWatermark, got)
		}
	}
}

func TestBuildTitleFilter(t *testing.T) {
	cfg := testVideoConfig()
	title := &config.Title{
		Enabled:         true,
		Text:            "My Album",
		Subtitle:        "Carnaverone Studio",
		Duration:        4.0,
		FontSize:        72,
		SubtitleSize:    36,
		FontColor:       "white",
		BackgroundColor: "black",
		FadeIn:          1.0,
		FadeOut:         1.0,
	}

	filter := BuildTitleFilter(title, cfg)
	if filter == "" {
		t.Fatal("Expected non-empty title filter")
	}
	if !strings.Contains(filter, "color=c=black") {
		t.Error("Title background missing")
	}
	if !strings.Contains(filter, "drawtext=text='My Album'") {
		t.Error("Title text missing")
	}
	if !strings.Contains(filter, "drawtext=text='Carnaverone Studio'") {
		t.Error("Subtitle text missing")
	}
	if !strings.Contains(filter, "fade=t=out:st=3:d=1") {
		t.Errorf("Fade-out should start at duration-fadeout:\n%s", filter)
	}
	if !strings.HasSuffix(filter, "[title]") {
		t.Error("Title filter must end with the [title] label")
	}

	if got := BuildTitleFilter(&config.Title{}, cfg); got != "" {
		t.Errorf("Disabled title should produce no filter, got %q", got)
	}
	if got := BuildTitleFilter(nil, cfg); got != "" {
		t.Errorf("Nil title should produce no filter, got %q", got)
	}
}
