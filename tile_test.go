package dotille

import "testing"

func TestTileDotBits(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   uint8
	}{
		{"dot 1", 0, 0, 0x01},
		{"dot 2", 0, 1, 0x02},
		{"dot 3", 0, 2, 0x04},
		{"dot 7", 0, 3, 0x40},
		{"dot 4", 1, 0, 0x08},
		{"dot 5", 1, 1, 0x10},
		{"dot 6", 1, 2, 0x20},
		{"dot 8", 1, 3, 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tile Tile
			tile.Set(tt.dx, tt.dy)
			if got := tile.Mask(); got != tt.want {
				t.Errorf("Set(%d, %d) mask = %#02x, want %#02x", tt.dx, tt.dy, got, tt.want)
			}
			if !tile.Dot(tt.dx, tt.dy) {
				t.Errorf("Dot(%d, %d) = false after Set", tt.dx, tt.dy)
			}
		})
	}
}

func TestTileRune(t *testing.T) {
	var tile Tile
	if got := tile.Rune(); got != ' ' {
		t.Errorf("empty tile Rune() = %q, want space", got)
	}
	tile.Set(0, 0)
	if got := tile.Rune(); got != '⠁' {
		t.Errorf("Rune() = %q, want ⠁", got)
	}
	for dy := 0; dy < 4; dy++ {
		tile.Set(0, dy)
		tile.Set(1, dy)
	}
	if got := tile.Rune(); got != '⣿' {
		t.Errorf("full tile Rune() = %q, want ⣿", got)
	}
}

func TestTileUnsetToggle(t *testing.T) {
	var tile Tile
	tile.Set(1, 2)
	tile.Unset(1, 2)
	if !tile.Empty() {
		t.Errorf("mask = %#02x after Set+Unset, want empty", tile.Mask())
	}

	// Toggle twice restores the original state.
	tile.Set(0, 1)
	before := tile.Mask()
	tile.Toggle(0, 1)
	tile.Toggle(0, 1)
	if tile.Mask() != before {
		t.Errorf("mask = %#02x after double Toggle, want %#02x", tile.Mask(), before)
	}

	// Unsetting a clear dot leaves other dots alone.
	tile.Unset(1, 3)
	if tile.Mask() != before {
		t.Errorf("mask = %#02x after Unset of clear dot, want %#02x", tile.Mask(), before)
	}
}
