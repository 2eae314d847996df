package watcher

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arielfikru/NekkoSub/internal/logger"
)

func TestNew_MissingDirectory(t *testing.T) {
	noop := func(ctx context.Context, path string) error { return nil }
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := New(dir, noop, logger.New("error"), 1)
	if err == nil {
		t.Fatal("New() on a missing directory succeeded; want error")
	}
}

func TestNew_ValidDirectory(t *testing.T) {
	noop := func(ctx context.Context, path string) error { return nil }
	w, err := New(t.TempDir(), noop, logger.New("error"), 0)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() unexpected error: %v", err)
	}
}

func TestIsSubtitleFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"show.ass", true},
		{"SHOW.ASS", true},
		{"show.srt", false},
		{"show.json", false},
		{"show", false},
	}
	for _, tt := range tests {
		if got := isSubtitleFile(tt.path); got != tt.want {
			t.Errorf("isSubtitleFile(%q) = %v; want %v", tt.path, got, tt.want)
		}
	}
}
