package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carnaverone/panzoom/internal/album"
	"github.com/carnaverone/panzoom/internal/system"
)

func newAlbumCommand(appCtx *appContext) *cobra.Command {
	var (
		input            string
		output           string
		artist           string
		genre            string
		loudness         float64
		sampleRate       int
		noSilenceRemoval bool
		workers          int
	)

	cmd := &cobra.Command{
		Use:   "album",
		Short: "Normalize an audio album to a mastered export",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := appCtx.term
			u.Banner()

			if !system.CheckFFmpeg() {
				u.Errorf("FFmpeg not found. Please install FFmpeg first.")
				return errors.New("ffmpeg missing")
			}

			cfg, err := appCtx.loadConfig()
			if err != nil {
				u.Errorf("%v", err)
				return err
			}

			changed := cmd.Flags().Changed
			if changed("loudness") {
				cfg.Audio.Loudness = loudness
			}
			if changed("sample-rate") {
				cfg.Audio.SampleRate = sampleRate
			}
			if changed("artist") {
				cfg.Artist = artist
			}
			if changed("genre") {
				cfg.Genre = genre
			}
			if noSilenceRemoval {
				cfg.Audio.RemoveSilence = false
			}

			if _, err := os.Stat(input); err != nil {
				u.Errorf("Input path not found: %s", input)
				return err
			}

			u.Printf("%s\n", u.white.Sprint("Configuration:"))
			u.Printf("  Input:       %s\n", input)
			u.Printf("  Output:      %s\n", output)
			u.Printf("  Loudness:    %g LUFS\n", cfg.Audio.Loudness)
			u.Printf("  Sample rate: %d Hz\n", cfg.Audio.SampleRate)
			u.Printf("  Artist:      %s\n", cfg.Artist)
			u.Printf("  Genre:       %s\n", cfg.Genre)
			u.Printf("\n")

			processor := album.New(&cfg.Audio,
				album.WithWorkers(workers),
				album.WithLogger(appCtx.log))

			succeeded, failed, tracks, err := processor.ProcessAlbum(cmd.Context(), input, output, func(msg string) {
				u.Infof("%s", msg)
			})
			if err != nil {
				u.Errorf("%v", err)
				return err
			}
			if len(tracks) == 0 {
				u.Errorf("No audio files found")
				return errors.New("no audio files found")
			}

			albumName := "Album"
			if fi, err := os.Stat(input); err == nil && fi.IsDir() {
				albumName = filepath.Base(input)
			}
			if _, err := album.WriteMetadata(tracks, output, albumName, cfg.Artist, cfg.Genre); err != nil {
				u.Warningf("%v", err)
			}
			if _, err := album.WriteCueSheet(tracks, output, albumName, cfg.Artist); err != nil {
				u.Warningf("%v", err)
			}

			u.Printf("\n%s\n", u.white.Sprint("Results:"))
			for _, track := range tracks {
				if track.Success {
					u.Successf("%02d. %s", track.TrackNumber, track.CleanName)
				} else {
					u.Errorf("%02d. %s: %v", track.TrackNumber, track.CleanName, track.Err)
				}
			}

			u.Printf("\n")
			if failed == 0 {
				u.Successf("Album ready in %s/ (%d tracks)", output, succeeded)
				return nil
			}
			u.Warningf("Completed with %d error(s)", failed)
			return errors.New("album completed with errors")
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&input, "input", "i", ".", "Input directory")
	fs.StringVarP(&output, "output", "o", "export_ready", "Output directory")
	fs.StringVar(&artist, "artist", "", "Artist name")
	fs.StringVar(&genre, "genre", "", "Music genre")
	fs.Float64VarP(&loudness, "loudness", "l", 0, "Target loudness (LUFS)")
	fs.IntVarP(&sampleRate, "sample-rate", "r", 0, "Sample rate (Hz)")
	fs.BoolVar(&noSilenceRemoval, "no-silence-removal", false, "Keep leading and trailing silence")
	fs.IntVar(&workers, "workers", 2, "Tracks processed in parallel")

	return cmd
}
