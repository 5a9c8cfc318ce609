package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultLandingConfig_Valid(t *testing.T) {
	cfg := DefaultLandingConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultLandingConfig().Validate() error: %v", err)
	}

	if cfg.Globe.PointCount != 4000 {
		t.Errorf("PointCount: got %d, want 4000", cfg.Globe.PointCount)
	}
	if cfg.Globe.RotationSpeed != 0.1 {
		t.Errorf("RotationSpeed: got %v, want 0.1", cfg.Globe.RotationSpeed)
	}
	if cfg.Drift.Interval != 3.0 || cfg.Drift.Bound != 1.0 {
		t.Errorf("Drift: got interval %v bound %v, want 3 / 1", cfg.Drift.Interval, cfg.Drift.Bound)
	}
	s := cfg.Drift.Spring
	if s.Mass != 1 || s.Tension != 280 || s.Friction != 60 {
		t.Errorf("Spring: got %+v, want 1/280/60", s)
	}
}

// 内嵌的 data/landing.yaml 必须与代码中的默认值一致
func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile("../../data/landing.yaml")
	if err != nil {
		t.Fatalf("Failed to read data/landing.yaml: %v", err)
	}

	// 以零值为基础解析，确保 YAML 自身是完整的
	parsed, err := ParseLandingConfig(data, &LandingConfig{})
	if err != nil {
		t.Fatalf("ParseLandingConfig() error: %v", err)
	}

	if want := DefaultLandingConfig(); !reflect.DeepEqual(parsed, want) {
		t.Errorf("data/landing.yaml differs from DefaultLandingConfig()\n got: %+v\nwant: %+v", parsed, want)
	}
}

func TestParseLandingConfig_OverlayKeepsDefaults(t *testing.T) {
	yamlContent := `
globe:
  pointCount: 500
drift:
  interval: 1.5
`
	cfg, err := ParseLandingConfig([]byte(yamlContent), nil)
	if err != nil {
		t.Fatalf("ParseLandingConfig() error: %v", err)
	}

	if cfg.Globe.PointCount != 500 {
		t.Errorf("PointCount: got %d, want 500", cfg.Globe.PointCount)
	}
	if cfg.Drift.Interval != 1.5 {
		t.Errorf("Interval: got %v, want 1.5", cfg.Drift.Interval)
	}

	// 未覆盖的字段保持默认
	if cfg.Globe.RotationSpeed != 0.1 {
		t.Errorf("RotationSpeed: got %v, want default 0.1", cfg.Globe.RotationSpeed)
	}
	if cfg.Drift.Spring.Tension != 280 {
		t.Errorf("Tension: got %v, want default 280", cfg.Drift.Spring.Tension)
	}
	if len(cfg.Nav.Links) != 2 {
		t.Errorf("Nav.Links: got %d, want default 2", len(cfg.Nav.Links))
	}
}

func TestParseLandingConfig_DoesNotMutateBase(t *testing.T) {
	base := DefaultLandingConfig()
	yamlContent := `
nav:
  links:
    - label: Tokyo
      url: https://app.web3events.xyz/tokyo
      variant: link
`
	cfg, err := ParseLandingConfig([]byte(yamlContent), base)
	if err != nil {
		t.Fatalf("ParseLandingConfig() error: %v", err)
	}

	if len(cfg.Nav.Links) != 1 || cfg.Nav.Links[0].Label != "Tokyo" {
		t.Errorf("Nav.Links: got %+v, want only Tokyo", cfg.Nav.Links)
	}
	if len(base.Nav.Links) != 2 || base.Nav.Links[0].Label != "Singapore" {
		t.Errorf("base was mutated: %+v", base.Nav.Links)
	}
}

func TestParseLandingConfig_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{"bad yaml", "globe: [", "failed to parse"},
		{"negative points", "globe:\n  pointCount: -1\n", "pointCount"},
		{"zero interval", "drift:\n  interval: 0\n", "interval"},
		{"zero tension", "drift:\n  spring:\n    tension: 0\n", "tension"},
		{"bad color", "globe:\n  sphere:\n    color: \"purple\"\n", "invalid color"},
		{"bad fov", "camera:\n  fov: 180\n", "fov"},
		{"bad variant", "hero:\n  buttons:\n    - label: X\n      url: https://x\n      variant: outline\n", "unknown variant"},
		{"empty label", "footer:\n  links:\n    - url: https://x\n      variant: link\n", "empty label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLandingConfig([]byte(tt.yamlContent), nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestLoadLandingConfig_File(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "landing.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: Test\n"), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := LoadLandingConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadLandingConfig() error: %v", err)
	}
	if cfg.Window.Title != "Test" {
		t.Errorf("Title: got %q, want Test", cfg.Window.Title)
	}

	if _, err := LoadLandingConfig(filepath.Join(tempDir, "missing.yaml"), nil); err == nil {
		t.Error("LoadLandingConfig() should fail for a missing file")
	}
}

func TestParseColor(t *testing.T) {
	c := ParseColor("#675275")
	if c.R != 0x67 || c.G != 0x52 || c.B != 0x75 || c.A != 255 {
		t.Errorf("ParseColor(#675275) = %+v", c)
	}

	if c := ParseColor("nope"); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("ParseColor(invalid) = %+v, want white", c)
	}
}
