package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carnaverone/panzoom/internal/config"
)

func newPresetsCommand(appCtx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in style presets",
		Run: func(cmd *cobra.Command, args []string) {
			rows := make([][]string, 0, len(config.Presets))
			for _, name := range config.PresetNames() {
				p := config.Presets[name]
				rows = append(rows, []string{
					name,
					fmt.Sprintf("%gs", p.Duration),
					fmt.Sprintf("%gs", p.Crossfade),
					strconv.Itoa(p.FPS),
					fmt.Sprintf("%g", p.ZoomIntensity),
					strconv.Itoa(p.CRF),
				})
			}
			appCtx.term.Printf("%s\n", renderTable(
				[]string{"Preset", "Duration", "Crossfade", "FPS", "Zoom", "CRF"}, rows))
		},
	}
}

func newTransitionsCommand(appCtx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "transitions",
		Short: "List the available crossfade transitions",
		Run: func(cmd *cobra.Command, args []string) {
			rows := make([][]string, 0, len(config.Transitions))
			for _, name := range config.TransitionNames() {
				rows = append(rows, []string{name, config.Transitions[name]})
			}
			appCtx.term.Printf("%s\n", renderTable([]string{"Transition", "Description"}, rows))
			appCtx.term.Printf("Use \"random\" to draw a different transition for every image.\n")
		},
	}
}

func newExportsCommand(appCtx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exports",
		Short: "List the platform export profiles",
		Run: func(cmd *cobra.Command, args []string) {
			rows := make([][]string, 0, len(config.ExportProfiles))
			for _, key := range config.ExportProfileNames() {
				p := config.ExportProfiles[key]
				rows = append(rows, []string{
					key,
					fmt.Sprintf("%dx%d", p.Width, p.Height),
					strconv.Itoa(p.FPS),
					strconv.Itoa(p.CRF),
					p.AudioBitrate,
					p.Description,
				})
			}
			appCtx.term.Printf("%s\n", renderTable(
				[]string{"Profile", "Resolution", "FPS", "CRF", "Audio", "Target"}, rows))
		},
	}
}
