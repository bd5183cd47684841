package album

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteMetadata writes a plain-text album summary with the successful
// tracklist and returns its path.
func WriteMetadata(tracks []Track, outputDir, albumName, artist, genre string) (string, error) {
	lines := []string{
		"ALBUM=" + albumName,
		"ARTIST=" + artist,
		fmt.Sprintf("YEAR=%d", time.Now().Year()),
		"GENRE=" + genre,
		"",
		"TRACKLIST:",
	}
	for _, track := range tracks {
		if track.Success {
			lines = append(lines, fmt.Sprintf("  %02d. %s", track.TrackNumber, track.CleanName))
		}
	}

	path := filepath.Join(outputDir, "metadata.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	return path, nil
}

// WriteCueSheet writes a CUE sheet referencing the normalized track files and
// returns its path.
func WriteCueSheet(tracks []Track, outputDir, albumName, artist string) (string, error) {
	lines := []string{
		fmt.Sprintf("PERFORMER %q", artist),
		fmt.Sprintf("TITLE %q", albumName),
		"",
	}
	for _, track := range tracks {
		if !track.Success {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("FILE %q WAVE", filepath.Base(track.OutputPath)),
			fmt.Sprintf("  TRACK %02d AUDIO", track.TrackNumber),
			fmt.Sprintf("    TITLE %q", track.CleanName),
			fmt.Sprintf("    PERFORMER %q", artist),
			"    INDEX 01 00:00:00",
			"",
		)
	}

	path := filepath.Join(outputDir, albumName+".cue")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("write cue sheet: %w", err)
	}
	return path, nil
}
