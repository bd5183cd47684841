// Package media implements the filesystem discovery boundary: locating
// supported image and audio files for the slideshow and album pipelines.
package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var imageExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".webp": {}, ".bmp": {}, ".tiff": {},
}

var audioExtensions = map[string]struct{}{
	".wav": {}, ".mp3": {}, ".aac": {}, ".flac": {}, ".ogg": {}, ".m4a": {},
}

// IsImage reports whether path has a supported image extension.
func IsImage(path string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// IsAudio reports whether path has a supported audio extension.
func IsAudio(path string) bool {
	_, ok := audioExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// FindImages returns the supported images under path, sorted and
// de-duplicated. A single matching file yields a one-element list; a
// non-matching file yields an empty list.
func FindImages(path string) ([]string, error) {
	return find(path, IsImage)
}

// FindAudio returns the supported audio files under path, sorted and
// de-duplicated.
func FindAudio(path string) ([]string, error) {
	return find(path, IsAudio)
}

func find(path string, match func(string) bool) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !fi.IsDir() {
		if match(path) {
			return []string{path}, nil
		}
		return nil, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		full := filepath.Join(path, entry.Name())
		if !match(full) {
			continue
		}
		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}
		files = append(files, full)
	}
	sort.Strings(files)
	return files, nil
}
