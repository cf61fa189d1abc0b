package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
window:
  title: "Test"
  width: 800
  height: 600
  margin: 10
hud:
  displayIntervalMs: 250
sprites:
  - name: red
    width: 30
    height: 30
    color: "#ff0000"
  - name: blue
    width: 20
    height: 24
    color: "#00f"
terminal:
  cellWidth: 10
  cellHeight: 20
  frameIntervalMs: 33
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Errorf("expected window 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.HUD.DisplayIntervalMs != 250 {
					t.Errorf("expected displayIntervalMs = 250, got %f", cfg.HUD.DisplayIntervalMs)
				}
				if len(cfg.Sprites) != 2 {
					t.Fatalf("expected 2 sprites, got %d", len(cfg.Sprites))
				}
				if cfg.Sprites[1].Height != 24 {
					t.Errorf("expected blue height = 24, got %f", cfg.Sprites[1].Height)
				}
				if cfg.Terminal.FrameIntervalMs != 33 {
					t.Errorf("expected frameIntervalMs = 33, got %f", cfg.Terminal.FrameIntervalMs)
				}
			},
		},
		{
			name: "partial config keeps defaults",
			yamlContent: `
window:
  title: "Partial"
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				def := DefaultGameConfig()
				if cfg.Window.Title != "Partial" {
					t.Errorf("expected title Partial, got %s", cfg.Window.Title)
				}
				if cfg.Window.Width != def.Window.Width {
					t.Errorf("expected default width %d, got %d", def.Window.Width, cfg.Window.Width)
				}
				if !reflect.DeepEqual(cfg.Sprites, def.Sprites) {
					t.Errorf("expected default sprites, got %+v", cfg.Sprites)
				}
			},
		},
		{
			name: "duplicate sprite name",
			yamlContent: `
sprites:
  - name: a
    width: 10
    height: 10
  - name: a
    width: 12
    height: 12
`,
			wantErr:     true,
			errContains: "duplicate sprite name",
		},
		{
			name: "non-positive sprite size",
			yamlContent: `
sprites:
  - name: a
    width: 0
    height: 10
`,
			wantErr:     true,
			errContains: "size must be positive",
		},
		{
			name: "bad color",
			yamlContent: `
sprites:
  - name: a
    width: 10
    height: 10
    color: "#zzzzzz"
`,
			wantErr:     true,
			errContains: "invalid color",
		},
		{
			name: "margin too large",
			yamlContent: `
window:
  width: 100
  height: 100
  margin: 50
`,
			wantErr:     true,
			errContains: "window margin",
		},
		{
			name: "invalid terminal cell",
			yamlContent: `
terminal:
  cellWidth: 0
`,
			wantErr:     true,
			errContains: "terminal cell size",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ballstorm.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

// TestLoadGameConfig_MissingFile 文件不存在时返回错误
func TestLoadGameConfig_MissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}
}

// TestShippedConfigMatchesDefault 仓库自带的配置文件与内置默认值一致
func TestShippedConfigMatchesDefault(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("failed to load shipped config: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("shipped config differs from DefaultGameConfig():\n got  %+v\n want %+v", cfg, DefaultGameConfig())
	}
}

// TestDefaultGameConfigValid 默认配置能通过验证
func TestDefaultGameConfigValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
