package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", cfg.Display.FPS)
	}
	if !cfg.Display.Color {
		t.Error("Color should default to true")
	}
	if cfg.Storage.DBPath == "" {
		t.Error("DBPath should have a default")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	// The embedded file must agree with the hardcoded fallback
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte("display:\n  fps: 30\n  color: false\nstorage:\n  db_path: /tmp/test.db\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Display.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.Display.FPS)
	}
	if cfg.Display.Color {
		t.Error("Color = true, expected false")
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, expected /tmp/test.db", cfg.Storage.DBPath)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("display: [not a map"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}
