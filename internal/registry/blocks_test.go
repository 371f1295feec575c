package registry

import (
	"testing"

	"vox-slice/internal/terrain"
)

func TestCellAssignments(t *testing.T) {
	InitRegistry()

	if got := CellFor(terrain.BlockDirt); got != 0 {
		t.Fatalf("dirt cell: got %d, want 0", got)
	}
	if got := CellFor(terrain.BlockStone); got != 1 {
		t.Fatalf("stone cell: got %d, want 1", got)
	}

	// Unregistered blocks resolve to the missing definition, not an error.
	def := DefinitionFor(terrain.BlockEmpty)
	if def.Name != "missing" {
		t.Fatalf("empty block definition: got %q, want missing", def.Name)
	}
}

func TestColorForCell(t *testing.T) {
	InitRegistry()

	c := ColorForCell(0)
	if c.R != 255 || c.G != 144 || c.B != 100 {
		t.Fatalf("dirt cell color: got %v", c)
	}
	c = ColorForCell(1)
	if c.R != 124 || c.G != 124 || c.B != 124 {
		t.Fatalf("stone cell color: got %v", c)
	}
	// Unassigned cells get the neutral filler color.
	c = ColorForCell(9)
	if c.R != 48 || c.G != 48 || c.B != 48 {
		t.Fatalf("unassigned cell color: got %v", c)
	}
}
