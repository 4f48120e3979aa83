package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Create temp config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
source:
  path: "assets/logo.png"
  min_width: 1200
  min_height: 630

output:
  dir: "public"

watch: true
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	// Load config
	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Validate fields
	if cfg.Source.Path != "assets/logo.png" {
		t.Errorf("Expected source path 'assets/logo.png', got '%s'", cfg.Source.Path)
	}

	if cfg.Output.Dir != "public" {
		t.Errorf("Expected output dir 'public', got '%s'", cfg.Output.Dir)
	}

	if cfg.Source.MinWidth != 1200 {
		t.Errorf("Expected min_width 1200, got %d", cfg.Source.MinWidth)
	}

	if cfg.Source.MinHeight != 630 {
		t.Errorf("Expected min_height 630, got %d", cfg.Source.MinHeight)
	}

	if !cfg.Watch {
		t.Error("Expected watch to be true")
	}
}

func TestEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
source:
  path: "assets/logo.png"
output:
  dir: "public"
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	t.Setenv("FAVICONGEN_SOURCE", "/tmp/other-logo.png")
	t.Setenv("FAVICONGEN_OUTPUT_DIR", "/tmp/site")

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Source.Path != "/tmp/other-logo.png" {
		t.Errorf("Expected env-overridden source path, got '%s'", cfg.Source.Path)
	}

	if cfg.Output.Dir != "/tmp/site" {
		t.Errorf("Expected env-overridden output dir, got '%s'", cfg.Output.Dir)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Source: SourceConfig{Path: "logo.png"},
				Output: OutputConfig{Dir: "public"},
			},
			wantErr: false,
		},
		{
			name: "missing source path",
			config: Config{
				Output: OutputConfig{Dir: "public"},
			},
			wantErr: true,
		},
		{
			name: "missing output dir",
			config: Config{
				Source: SourceConfig{Path: "logo.png"},
			},
			wantErr: true,
		},
		{
			name: "negative minimum size",
			config: Config{
				Source: SourceConfig{Path: "logo.png", MinWidth: -1},
				Output: OutputConfig{Dir: "public"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
