package slideshow

import (
	"math/rand"

	"github.com/carnaverone/panzoom/internal/config"
)

// ImageEffect carries the per-image motion parameters. Index is the dense
// 0-based position after any shuffle or reverse has been applied; it is used
// both for filter stage labels and for the alternate-policy parity.
type ImageEffect struct {
	Path           string
	Index          int
	ZoomIn         bool
	PanLeftToRight bool
	Transition     string
}

// ResolveEffects orders the image paths per the configured policy and assigns
// zoom, pan and transition parameters to each. The random source is injected
// so tests can pin down the "random" and "shuffle" policies.
func ResolveEffects(paths []string, cfg *config.Video, rng *rand.Rand) ([]ImageEffect, error) {
	if len(paths) == 0 {
		return nil, ErrNoImages
	}

	ordered := append([]string(nil), paths...)
	switch {
	case cfg.Shuffle:
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	case cfg.Reverse:
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	transitionNames := config.TransitionNames()

	images := make([]ImageEffect, len(ordered))
	for i, path := range ordered {
		var zoomIn bool
		switch cfg.ZoomDirection {
		case "in":
			zoomIn = true
		case "out":
			zoomIn = false
		case "random":
			zoomIn = rng.Intn(2) == 0
		default: // alternate
			zoomIn = i%2 == 0
		}

		var panLR bool
		switch cfg.PanDirection {
		case "left":
			panLR = true
		case "right":
			panLR = false
		case "random":
			panLR = rng.Intn(2) == 0
		default: // alternate
			panLR = i%2 == 0
		}

		// Index 0 never fades in from a prior image but still carries a
		// valid transition to keep the model uniform.
		transition := cfg.Transition
		if cfg.Transition == "random" {
			transition = transitionNames[rng.Intn(len(transitionNames))]
		}

		images[i] = ImageEffect{
			Path:           path,
			Index:          i,
			ZoomIn:         zoomIn,
			PanLeftToRight: panLR,
			Transition:     transition,
		}
	}
	return images, nil
}
