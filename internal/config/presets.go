package config

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a named bundle of motion and quality settings.
type Preset struct {
	Duration      float64
	Crossfade     float64
	FPS           int
	ZoomIntensity float64
	PanIntensity  float64
	Preset        string
	CRF           int
}

// Presets are the built-in style presets.
var Presets = map[string]Preset{
	"fast": {
		Duration: 6.0, Crossfade: 1.0, FPS: 30,
		ZoomIntensity: 0.04, PanIntensity: 0.15,
		Preset: "fast", CRF: 23,
	},
	"cinematic": {
		Duration: 12.0, Crossfade: 3.0, FPS: 60,
		ZoomIntensity: 0.06, PanIntensity: 0.20,
		Preset: "slow", CRF: 16,
	},
	"slow": {
		Duration: 15.0, Crossfade: 4.0, FPS: 60,
		ZoomIntensity: 0.04, PanIntensity: 0.15,
		Preset: "slow", CRF: 18,
	},
	"dynamic": {
		Duration: 8.0, Crossfade: 1.5, FPS: 60,
		ZoomIntensity: 0.12, PanIntensity: 0.35,
		Preset: "medium", CRF: 20,
	},
	"minimal": {
		Duration: 10.0, Crossfade: 2.0, FPS: 30,
		ZoomIntensity: 0.02, PanIntensity: 0.10,
		Preset: "medium", CRF: 22,
	},
}

// ExportProfile carries the encode parameters tuned for one platform.
type ExportProfile struct {
	Name         string
	Width        int
	Height       int
	FPS          int
	CRF          int
	Preset       string
	AudioBitrate string
	Description  string
}

// ExportProfiles are the built-in platform targets.
var ExportProfiles = map[string]ExportProfile{
	"youtube": {
		Name: "YouTube HD", Width: 1920, Height: 1080, FPS: 60,
		CRF: 18, Preset: "slow", AudioBitrate: "320k",
		Description: "YouTube 1080p60",
	},
	"youtube4k": {
		Name: "YouTube 4K", Width: 3840, Height: 2160, FPS: 60,
		CRF: 18, Preset: "slow", AudioBitrate: "320k",
		Description: "YouTube 4K UHD",
	},
	"instagram_feed": {
		Name: "Instagram Feed", Width: 1080, Height: 1080, FPS: 30,
		CRF: 20, Preset: "medium", AudioBitrate: "256k",
		Description: "Instagram square (1:1)",
	},
	"instagram_portrait": {
		Name: "Instagram Portrait", Width: 1080, Height: 1350, FPS: 30,
		CRF: 20, Preset: "medium", AudioBitrate: "256k",
		Description: "Instagram portrait (4:5)",
	},
	"instagram_reels": {
		Name: "Instagram Reels", Width: 1080, Height: 1920, FPS: 30,
		CRF: 20, Preset: "medium", AudioBitrate: "256k",
		Description: "Instagram/TikTok vertical (9:16)",
	},
	"tiktok": {
		Name: "TikTok", Width: 1080, Height: 1920, FPS: 30,
		CRF: 20, Preset: "medium", AudioBitrate: "256k",
		Description: "TikTok vertical (9:16)",
	},
	"facebook": {
		Name: "Facebook", Width: 1280, Height: 720, FPS: 30,
		CRF: 22, Preset: "medium", AudioBitrate: "192k",
		Description: "Facebook 720p",
	},
	"twitter": {
		Name: "Twitter/X", Width: 1280, Height: 720, FPS: 30,
		CRF: 22, Preset: "medium", AudioBitrate: "192k",
		Description: "Twitter/X 720p",
	},
	"preview": {
		Name: "Preview", Width: 640, Height: 360, FPS: 15,
		CRF: 35, Preset: "ultrafast", AudioBitrate: "96k",
		Description: "Fast low quality preview",
	},
}

// ApplyPreset overwrites the motion and quality fields of v with the named
// style preset.
func ApplyPreset(v *Video, name string) error {
	p, ok := Presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	v.Duration = p.Duration
	v.Crossfade = p.Crossfade
	v.FPS = p.FPS
	v.ZoomIntensity = p.ZoomIntensity
	v.PanIntensity = p.PanIntensity
	v.Preset = p.Preset
	v.CRF = p.CRF
	return nil
}

// ApplyExportProfile overwrites the encode parameters of v with the named
// platform profile.
func ApplyExportProfile(v *Video, name string) error {
	p, ok := ExportProfiles[name]
	if !ok {
		return fmt.Errorf("unknown export profile %q (available: %s)", name, strings.Join(ExportProfileNames(), ", "))
	}
	v.Width = p.Width
	v.Height = p.Height
	v.FPS = p.FPS
	v.CRF = p.CRF
	v.Preset = p.Preset
	v.AudioBitrate = p.AudioBitrate
	return nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExportProfileNames returns the profile names in sorted order.
func ExportProfileNames() []string {
	names := make([]string, 0, len(ExportProfiles))
	for name := range ExportProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
