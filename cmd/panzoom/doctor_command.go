package main

import (
	"errors"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/carnaverone/panzoom/internal/system"
)

func newDoctorCommand(appCtx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment for slideshow generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := appCtx.term
			u.Banner()

			ok := true
			if system.CheckFFmpeg() {
				if ver, err := system.FFmpegVersion(); err == nil {
					u.Successf("%s", ver)
				} else {
					u.Successf("ffmpeg found on PATH")
				}
			} else {
				ok = false
				u.Errorf("ffmpeg not found on PATH")
			}

			host := system.Host()
			u.Printf("\n%s\n", u.white.Sprint("Host:"))
			u.Printf("  OS:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
			if host.CPUModel != "" {
				u.Printf("  CPU:     %s (%d cores)\n", host.CPUModel, host.CPUCores)
			} else if host.CPUCores > 0 {
				u.Printf("  CPU:     %d cores\n", host.CPUCores)
			}
			if host.TotalMemory > 0 {
				u.Printf("  Memory:  %s total, %s free\n",
					humanize.IBytes(host.TotalMemory), humanize.IBytes(host.FreeMemory))
			}
			u.Printf("\n")

			if !ok {
				u.Warningf("Install FFmpeg before running video or album commands.")
				return errors.New("environment check failed")
			}
			u.Successf("Environment looks good")
			return nil
		},
	}
}
