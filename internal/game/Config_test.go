package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Mshel/junction/internal/entity"
	"github.com/Mshel/junction/internal/geometry"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "junction.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[world]
width = 800
height = 600
tick_rate = "250ms"

[player]
radius = 20
color = "blue"

[[scenery]]
kind = "tree"
x = 300
y = 300
base_width = 10
base_height = 40
top_radius = 15

[[scenery]]
kind = "tree"
x = 500
y = 200
base_width = 20
base_height = 60
top_radius = 25
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.World.Width != 800 || cfg.World.Height != 600 || cfg.World.SpawnMargin != SceneryInsetMargin {
		t.Fatalf("world = %+v", cfg.World)
	}
	if cfg.World.TickRate != 250*time.Millisecond {
		t.Fatalf("tick rate = %v", cfg.World.TickRate)
	}

	player, err := cfg.PlayerEntity()
	if err != nil {
		t.Fatalf("PlayerEntity: %v", err)
	}
	if player.Shape != entity.Circle(20) || player.Color != entity.Blue || player.Size != (entity.Size{W: 50, H: 50}) {
		t.Fatalf("player = %+v", player)
	}

	scenery, err := cfg.InitialScenery()
	if err != nil {
		t.Fatalf("InitialScenery: %v", err)
	}
	if len(scenery) != 2 || scenery[1].Location != (geometry.Point{X: 500, Y: 200}) || scenery[1].Type != entity.Tree(20, 60, 25) {
		t.Fatalf("scenery = %+v", scenery)
	}
}

func TestLoadConfigKeepsDefaultSceneryWhenUnset(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "[logging]\nlevel = \"debug\"\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
	if len(cfg.Scenery) != 1 || cfg.Scenery[0] != defaultScenery()[0] {
		t.Fatalf("scenery = %+v", cfg.Scenery)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing explicit path")
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", "[world\n", "parse config"},
		{"zero step", "[player]\nstep_width = 0\n", "step size"},
		{"unknown shape", "[player]\nshape = \"hexagon\"\n", "unknown player shape"},
		{"unknown color", "[player]\ncolor = \"mauve\"\n", "unknown player color"},
		{"unknown scenery", "[[scenery]]\nkind = \"rock\"\n", "unknown kind"},
		{"margin too wide", "[world]\nspawn_margin = 450\n", "spawn margin"},
		{"radius too large", "[player]\nradius = 500\n", "does not fit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigPathEnv(t *testing.T) {
	t.Setenv(ConfigPathEnv, "/tmp/elsewhere.toml")
	if got := ConfigPath(); got != "/tmp/elsewhere.toml" {
		t.Fatalf("ConfigPath = %q", got)
	}
	t.Setenv(ConfigPathEnv, "")
	if got := ConfigPath(); got != DefaultConfigPath {
		t.Fatalf("ConfigPath = %q", got)
	}
}
