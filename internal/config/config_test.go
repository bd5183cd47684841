package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVideoValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Video)
		wantErr string
	}{
		{"defaults", func(v *Video) {}, ""},
		{"zero duration", func(v *Video) { v.Duration = 0 }, "duration"},
		{"negative crossfade", func(v *Video) { v.Crossfade = -1 }, "crossfade"},
		{"crossfade equals duration", func(v *Video) { v.Duration = 5; v.Crossfade = 5 }, "crossfade"},
		{"zero fps", func(v *Video) { v.FPS = 0 }, "fps"},
		{"zero width", func(v *Video) { v.Width = 0 }, "resolution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Default().Video
			tt.mutate(&v)

			err := v.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panzoom.yaml")
	partial := "video:\n  duration: 15\n  fps: 24\nartist: Test Artist\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Video.Duration != 15 {
		t.Errorf("Expected duration 15, got %g", cfg.Video.Duration)
	}
	if cfg.Video.FPS != 24 {
		t.Errorf("Expected fps 24, got %d", cfg.Video.FPS)
	}
	if cfg.Artist != "Test Artist" {
		t.Errorf("Expected overridden artist, got %q", cfg.Artist)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Video.Width != 1920 {
		t.Errorf("Expected default width 1920, got %d", cfg.Video.Width)
	}
	if cfg.Audio.Loudness != -14.0 {
		t.Errorf("Expected default loudness -14, got %g", cfg.Audio.Loudness)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panzoom.yaml")

	cfg := Default()
	cfg.Video.Duration = 12.5
	cfg.Video.Transition = "dissolve"
	cfg.Watermark.Enabled = true
	cfg.Watermark.ImagePath = "logo.png"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Video.Duration != 12.5 {
		t.Errorf("Expected duration 12.5, got %g", loaded.Video.Duration)
	}
	if loaded.Video.Transition != "dissolve" {
		t.Errorf("Expected transition dissolve, got %q", loaded.Video.Transition)
	}
	if !loaded.Watermark.Enabled || loaded.Watermark.ImagePath != "logo.png" {
		t.Errorf("Watermark settings lost: %+v", loaded.Watermark)
	}
}

func TestApplyPreset(t *testing.T) {
	v := Default().Video
	if err := ApplyPreset(&v, "cinematic"); err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}
	if v.Duration != 12.0 || v.FPS != 60 || v.CRF != 16 {
		t.Errorf("Cinematic preset not applied: %+v", v)
	}
	// Resolution is not a preset concern.
	if v.Width != 1920 || v.Height != 1080 {
		t.Errorf("Preset must not touch resolution: %dx%d", v.Width, v.Height)
	}

	if err := ApplyPreset(&v, "nope"); err == nil {
		t.Error("Expected an error for an unknown preset")
	}
}

func TestApplyExportProfile(t *testing.T) {
	v := Default().Video
	if err := ApplyExportProfile(&v, "instagram_reels"); err != nil {
		t.Fatalf("ApplyExportProfile failed: %v", err)
	}
	if v.Width != 1080 || v.Height != 1920 {
		t.Errorf("Expected 1080x1920, got %dx%d", v.Width, v.Height)
	}
	if v.AudioBitrate != "256k" {
		t.Errorf("Expected 256k audio, got %s", v.AudioBitrate)
	}

	if err := ApplyExportProfile(&v, "myspace"); err == nil {
		t.Error("Expected an error for an unknown profile")
	}
}

func TestTransitions(t *testing.T) {
	names := TransitionNames()
	if len(names) != len(Transitions) {
		t.Errorf("Expected %d names, got %d", len(Transitions), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names not sorted: %s before %s", names[i-1], names[i])
		}
	}

	if !IsTransition("fade") {
		t.Error("fade should be a known transition")
	}
	if IsTransition("random") {
		t.Error("random is a policy, not a transition")
	}
}
