package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/wordheat/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// Point HOME at an empty dir so no real config file is picked up.
	t.Setenv("HOME", t.TempDir())

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.InputFile != "declaration.txt" {
		t.Errorf("input_file = %q, want declaration.txt", c.InputFile)
	}
	if c.MaxLines != 15 {
		t.Errorf("max_lines = %d, want 15", c.MaxLines)
	}
	if c.Color != "auto" {
		t.Errorf("color = %q, want auto", c.Color)
	}
	if c.TopWords != 20 {
		t.Errorf("top_words = %d, want 20", c.TopWords)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &config.Global{InputFile: "other.txt", MaxLines: 7, Color: "never", TopWords: 5}
	if err := config.Save(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat config: %v", err)
	}
	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.InputFile != "other.txt" || c.MaxLines != 7 || c.Color != "never" || c.TopWords != 5 {
		t.Fatalf("loaded config = %+v, want %+v", c, in)
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("color: rainbow\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid color mode, got nil")
	}
}
