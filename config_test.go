package gpxalign_test

import (
	"os"
	"path/filepath"
	"testing"

	lib "github.com/theoremus-urban-solutions/gpx-align"
)

func chdirWithConfig(t *testing.T, content string) {
	t.Helper()
	origConfig := lib.Config
	origDir, _ := os.Getwd()
	t.Cleanup(func() {
		lib.Config = origConfig
		_ = os.Chdir(origDir)
	})

	tmpDir := t.TempDir()
	if content != "" {
		if err := os.WriteFile(filepath.Join(tmpDir, "config.yml"), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to create temp config: %v", err)
		}
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
}

func TestLoadAppConfig(t *testing.T) {
	chdirWithConfig(t, `
server:
  port: 9090
align:
  target:
    latitude: 59.9139
    longitude: 10.7522
    radiusMeters: 150
  inputDir: ./tracks
  outputDir: ./tracks_out
`)

	if err := lib.LoadAppConfig(); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if lib.Config.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", lib.Config.Server.Port)
	}
	if lib.Config.Align.Target.Latitude != 59.9139 {
		t.Errorf("expected latitude 59.9139, got %v", lib.Config.Align.Target.Latitude)
	}
	if lib.Config.Align.Target.RadiusMeters != 150 {
		t.Errorf("expected radius 150, got %v", lib.Config.Align.Target.RadiusMeters)
	}
	if lib.Config.Align.InputDir != "./tracks" {
		t.Errorf("expected inputDir './tracks', got %q", lib.Config.Align.InputDir)
	}
	t.Logf("✓ loaded config with port %d", lib.Config.Server.Port)
}

func TestLoadAppConfig_DefaultPort(t *testing.T) {
	chdirWithConfig(t, `
align:
  target:
    latitude: 1
    longitude: 2
    radiusMeters: 3
`)

	if err := lib.LoadAppConfig(); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if lib.Config.Server.Port != 16181 {
		t.Errorf("expected default port 16181, got %d", lib.Config.Server.Port)
	}
}

func TestLoadAppConfig_MissingFile(t *testing.T) {
	chdirWithConfig(t, "")

	if err := lib.LoadAppConfig(); err == nil {
		t.Error("loading a non-existent config should return an error")
	}
}

func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	chdirWithConfig(t, "invalid: yaml: content: [[[")

	if err := lib.LoadAppConfig(); err == nil {
		t.Error("loading invalid YAML should return an error")
	}
}
