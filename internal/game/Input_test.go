package game

import "testing"

func TestMapKeyToIntentArrows(t *testing.T) {
	tests := []struct {
		key  string
		want Delta
	}{
		{"right", Delta{Dx: 1}},
		{"left", Delta{Dx: -1}},
		{"up", Delta{Dy: -1}},
		{"down", Delta{Dy: 1}},
	}

	for _, tt := range tests {
		got := MapKeyToIntent(tt.key)
		if got.Kind != IntentMove {
			t.Fatalf("%s: kind = %v, want move", tt.key, got.Kind)
		}
		if got.Delta != tt.want {
			t.Fatalf("%s: delta = %+v, want %+v", tt.key, got.Delta, tt.want)
		}
		if got.Delta.Dx != 0 && got.Delta.Dy != 0 {
			t.Fatalf("%s: diagonal delta %+v", tt.key, got.Delta)
		}
	}
}

func TestMapKeyToIntentPlant(t *testing.T) {
	for _, key := range []string{"t", "T"} {
		got := MapKeyToIntent(key)
		if got.Kind != IntentSpawnScenery {
			t.Fatalf("%s: kind = %v, want spawn", key, got.Kind)
		}
		if got.Scenery != DefaultTree {
			t.Fatalf("%s: scenery = %+v", key, got.Scenery)
		}
	}
}

func TestMapKeyToIntentIgnoresOtherKeys(t *testing.T) {
	keys := []string{"w", "a", "s", "d", "q", "z", "enter", "esc", " ", "ctrl+c", "shift+up", ""}
	for c := 'a'; c <= 'z'; c++ {
		if c != 't' {
			keys = append(keys, string(c))
		}
	}

	for _, key := range keys {
		if got := MapKeyToIntent(key); got.Kind != IntentNone {
			t.Fatalf("%q mapped to %+v, want none", key, got)
		}
	}
}
