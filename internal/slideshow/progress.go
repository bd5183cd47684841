package slideshow

import (
	"regexp"
	"strconv"
)

// Progress is the running snapshot of the encode. ffmpeg emits its fields
// across a burst of lines, so each Update only overwrites the fields present
// on that line and leaves the rest untouched.
type Progress struct {
	Frame       int
	FPS         float64
	TimeEncoded float64 // seconds of output media produced
	Speed       float64 // realtime multiplier
	Percent     float64 // 0-100, clamped
	ETASeconds  float64
}

var (
	frameRe = regexp.MustCompile(`frame=\s*(\d+)`)
	fpsRe   = regexp.MustCompile(`fps=\s*([\d.]+)`)
	timeRe  = regexp.MustCompile(`time=\s*(\d+):(\d+):(\d+\.?\d*)`)
	speedRe = regexp.MustCompile(`speed=\s*([\d.]+)x`)
)

// Update parses one line of the ffmpeg progress stream into the snapshot.
// totalDuration is the estimated output length used for the percent and ETA
// math; targetFPS is the configured output frame rate. Unrecognized lines
// are ignored.
func (p *Progress) Update(line string, totalDuration float64, targetFPS int) {
	if m := frameRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			p.Frame = v
		}
	}

	if m := fpsRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			p.FPS = v
		}
	}

	if m := timeRe.FindStringSubmatch(line); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.ParseFloat(m[3], 64)
		p.TimeEncoded = float64(hours)*3600 + float64(minutes)*60 + seconds

		if totalDuration > 0 {
			p.Percent = p.TimeEncoded / totalDuration * 100
			if p.Percent > 100 {
				p.Percent = 100
			}
			if p.FPS > 0 && targetFPS > 0 {
				remaining := totalDuration - p.TimeEncoded
				if remaining < 0 {
					remaining = 0
				}
				p.ETASeconds = remaining / (p.FPS / float64(targetFPS))
			}
		}
	}

	if m := speedRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			p.Speed = v
		}
	}
}
