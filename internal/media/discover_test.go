package media

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPG", true},
		{"cover.jpeg", true},
		{"art.png", true},
		{"scan.webp", true},
		{"scan.tiff", true},
		{"clip.mp4", false},
		{"music.wav", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsImage(tt.path); got != tt.want {
			t.Errorf("IsImage(%q): expected %v, got %v", tt.path, tt.want, got)
		}
	}
}

func TestIsAudio(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"music.wav", true},
		{"music.WAV", true},
		{"song.mp3", true},
		{"song.flac", true},
		{"song.m4a", true},
		{"photo.jpg", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		if got := IsAudio(tt.path); got != tt.want {
			t.Errorf("IsAudio(%q): expected %v, got %v", tt.path, tt.want, got)
		}
	}
}

func TestFindImagesDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.png", "c.txt", "z.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := FindImages(dir)
	if err != nil {
		t.Fatalf("FindImages failed: %v", err)
	}

	want := []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.jpg")}
	if len(files) != len(want) {
		t.Fatalf("Expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("File %d: expected %s, got %s", i, want[i], files[i])
		}
	}
}

func TestFindImagesSingleFile(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "only.jpg")
	if err := os.WriteFile(img, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := FindImages(img)
	if err != nil {
		t.Fatalf("FindImages failed: %v", err)
	}
	if len(files) != 1 || files[0] != img {
		t.Errorf("Expected [%s], got %v", img, files)
	}
}

func TestFindImagesNonMatchingFile(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := FindImages(txt)
	if err != nil {
		t.Fatalf("FindImages failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no files for a non-image path, got %v", files)
	}
}

func TestFindImagesMissingPath(t *testing.T) {
	if _, err := FindImages(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected an error for a missing path")
	}
}

func TestFindAudio(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"02_track.wav", "01_track.wav", "cover.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := FindAudio(dir)
	if err != nil {
		t.Fatalf("FindAudio failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 audio files, got %v", files)
	}
	if filepath.Base(files[0]) != "01_track.wav" {
		t.Errorf("Expected sorted order, got %v", files)
	}
}
