package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ui bundles the output writer with its color printers. It is passed through
// to every command instead of toggling package-level color state.
type ui struct {
	out io.Writer

	green   *color.Color
	red     *color.Color
	yellow  *color.Color
	blue    *color.Color
	cyan    *color.Color
	white   *color.Color
	magenta *color.Color
	dim     *color.Color
}

func newUI(out io.Writer, noColor bool) *ui {
	enabled := !noColor
	if f, ok := out.(*os.File); ok && enabled {
		enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}

	return &ui{
		out:     out,
		green:   mk(color.FgGreen),
		red:     mk(color.FgRed),
		yellow:  mk(color.FgHiYellow),
		blue:    mk(color.FgBlue),
		cyan:    mk(color.FgCyan),
		white:   mk(color.FgHiWhite),
		magenta: mk(color.FgMagenta),
		dim:     mk(color.Faint),
	}
}

func (u *ui) Banner() {
	fmt.Fprintf(u.out, "\n%s\n%s  %s\n%s\n\n",
		u.cyan.Sprint("╔═══════════════════════════════════════════════╗"),
		u.cyan.Sprintf("║  %s", u.white.Sprint("PanZoom  -  Ken Burns Video Generator")),
		u.yellow.Sprintf("v%s  %s", version, u.cyan.Sprint("║")),
		u.cyan.Sprint("╚═══════════════════════════════════════════════╝"),
	)
}

func (u *ui) Successf(format string, args ...any) {
	fmt.Fprintf(u.out, "%s %s\n", u.green.Sprint("✓"), fmt.Sprintf(format, args...))
}

func (u *ui) Errorf(format string, args ...any) {
	fmt.Fprintf(u.out, "%s %s\n", u.red.Sprint("✗"), fmt.Sprintf(format, args...))
}

func (u *ui) Infof(format string, args ...any) {
	fmt.Fprintf(u.out, "%s %s\n", u.blue.Sprint("ℹ"), fmt.Sprintf(format, args...))
}

func (u *ui) Warningf(format string, args ...any) {
	fmt.Fprintf(u.out, "%s %s\n", u.yellow.Sprint("⚠"), fmt.Sprintf(format, args...))
}

func (u *ui) Printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// formatTime renders seconds as M:SS, or H:MM:SS for runs over an hour.
func formatTime(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
