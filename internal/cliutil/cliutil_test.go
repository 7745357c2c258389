package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"run1", "run2"} {
		if err := os.Mkdir(filepath.Join(dir, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "run*")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionalsPassThrough(t *testing.T) {
	got, err := ExpandPositionals([]string{"/data/bams"})
	if err != nil || len(got) != 1 || got[0] != "/data/bams" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.none")}); err == nil {
		t.Fatal("expected error for empty glob")
	}
}
