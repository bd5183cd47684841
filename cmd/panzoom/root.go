package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/carnaverone/panzoom/internal/config"
)

const version = "1.2.0"

// appContext carries the flag values and lazily built collaborators shared by
// every command. Color and logging state live here rather than in globals so
// commands (and tests) cannot cross-talk.
type appContext struct {
	configFlag string
	noColor    bool
	verbose    bool

	term *ui
	log  *slog.Logger
}

func (c *appContext) init() {
	c.term = newUI(os.Stdout, c.noColor)

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	c.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig returns the file-backed configuration, or the defaults when no
// config file was given.
func (c *appContext) loadConfig() (*config.Project, error) {
	if c.configFlag == "" {
		return config.Default(), nil
	}
	return config.Load(c.configFlag)
}

func newRootCommand() *cobra.Command {
	ctx := &appContext{}

	rootCmd := &cobra.Command{
		Use:           "panzoom",
		Short:         "Ken Burns slideshow and audio album generator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&ctx.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&ctx.verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(newVideoCommand(ctx))
	rootCmd.AddCommand(newAlbumCommand(ctx))
	rootCmd.AddCommand(newInitCommand(ctx))
	rootCmd.AddCommand(newPresetsCommand(ctx))
	rootCmd.AddCommand(newTransitionsCommand(ctx))
	rootCmd.AddCommand(newExportsCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
