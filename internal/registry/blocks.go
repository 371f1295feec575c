package registry

import (
	"image/color"

	"vox-slice/internal/terrain"
)

// BlockDefinition ties a terrain block to its atlas cell and the flat proxy
// color used when no atlas image asset is available.
type BlockDefinition struct {
	Block terrain.Block
	Name  string
	Cell  uint8
	Color color.RGBA
}

var (
	definitions = make(map[terrain.Block]*BlockDefinition)

	// fallback for blocks nobody registered; magenta makes it obvious
	missing = BlockDefinition{Name: "missing", Cell: 0, Color: color.RGBA{R: 255, B: 255, A: 255}}
)

func register(def *BlockDefinition) {
	definitions[def.Block] = def
}

// InitRegistry registers the built-in block set. Cells are assigned
// row-major from the top-left of the atlas grid.
func InitRegistry() {
	register(&BlockDefinition{
		Block: terrain.BlockDirt,
		Name:  "dirt",
		Cell:  0,
		Color: color.RGBA{R: 255, G: 144, B: 100, A: 255},
	})
	register(&BlockDefinition{
		Block: terrain.BlockStone,
		Name:  "stone",
		Cell:  1,
		Color: color.RGBA{R: 124, G: 124, B: 124, A: 255},
	})
}

// DefinitionFor returns the definition for a block, falling back to the
// missing-block definition rather than failing.
func DefinitionFor(b terrain.Block) *BlockDefinition {
	if def, ok := definitions[b]; ok {
		return def
	}
	return &missing
}

// CellFor returns the atlas cell index packed into vertex descriptors.
func CellFor(b terrain.Block) uint8 {
	return DefinitionFor(b).Cell
}

// ColorForCell returns the proxy color for an atlas cell, or a neutral
// gray for cells without a block.
func ColorForCell(cell uint8) color.RGBA {
	for _, def := range definitions {
		if def.Cell == cell {
			return def.Color
		}
	}
	return color.RGBA{R: 48, G: 48, B: 48, A: 255}
}
