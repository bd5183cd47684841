package config

import "sort"

// Transitions maps every supported xfade transition name to a short
// description. The slideshow builder falls back to "fade" for anything
// outside this set.
var Transitions = map[string]string{
	"fade":        "Classic crossfade",
	"fadeblack":   "Fade through black",
	"fadewhite":   "Fade through white",
	"wipeleft":    "Wipe to the left",
	"wiperight":   "Wipe to the right",
	"wipeup":      "Wipe upward",
	"wipedown":    "Wipe downward",
	"slideleft":   "Slide to the left",
	"slideright":  "Slide to the right",
	"slideup":     "Slide upward",
	"slidedown":   "Slide downward",
	"smoothleft":  "Smooth slide left",
	"smoothright": "Smooth slide right",
	"circlecrop":  "Circle crop",
	"circleclose": "Closing circle",
	"circleopen":  "Opening circle",
	"dissolve":    "Dissolve",
	"pixelize":    "Pixelize",
	"radial":      "Radial sweep",
	"hblur":       "Horizontal blur",
	"hlslice":     "Horizontal slices",
	"vlslice":     "Vertical slices",
	"zoomin":      "Zoom in",
	"squeezeh":    "Horizontal squeeze",
	"squeezev":    "Vertical squeeze",
}

// TransitionNames returns the supported transition names in sorted order.
func TransitionNames() []string {
	names := make([]string, 0, len(Transitions))
	for name := range Transitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsTransition reports whether name is a supported xfade transition.
func IsTransition(name string) bool {
	_, ok := Transitions[name]
	return ok
}
