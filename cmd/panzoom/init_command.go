package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carnaverone/panzoom/internal/config"
)

func newInitCommand(appCtx *appContext) *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := appCtx.term

			if _, err := os.Stat(output); err == nil && !force {
				u.Errorf("%s already exists (use --force to overwrite)", output)
				return fmt.Errorf("config file %s already exists", output)
			}

			if err := config.Save(config.Default(), output); err != nil {
				u.Errorf("%v", err)
				return err
			}

			u.Successf("Wrote %s", output)
			u.Printf("  Edit it, then run: panzoom video -c %s -a music.wav\n", output)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&output, "output", "o", "panzoom.yaml", "Destination file")
	fs.BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
