package terrain

import (
	"fmt"
	"io"
)

// Map dimensions in blocks. The volume is a single fixed-size region; there
// is no chunk streaming here.
const (
	SizeX = 16
	SizeZ = 16
	SizeY = 32

	BlockSize = 1.0
)

// Generation layer boundaries: stone below StoneTopY, dirt up to DirtTopY.
const (
	StoneTopY = 16
	DirtTopY  = 24
)

// Terrain is the voxel store plus the currently selected horizontal slice.
// Mutations bump a revision counter; renderables compare revisions instead
// of subscribing to change events.
type Terrain struct {
	blocks   [SizeX][SizeZ][SizeY]Block
	slice    int
	revision uint64
}

func New() *Terrain {
	t := &Terrain{}
	for x := range t.blocks {
		for z := range t.blocks[x] {
			for y := range t.blocks[x][z] {
				t.blocks[x][z][y] = BlockEmpty
			}
		}
	}
	return t
}

// Get returns the block at (x,y,z), or BlockOob outside the map.
func (t *Terrain) Get(x, y, z int) Block {
	if t.IsPosOOB(x, y, z) {
		return BlockOob
	}
	return t.blocks[x][z][y]
}

// Set writes a block and bumps the revision. Out-of-bounds writes are
// silently dropped, mirroring the Oob read sentinel.
func (t *Terrain) Set(x, y, z int, b Block) {
	if t.IsPosOOB(x, y, z) {
		return
	}
	t.blocks[x][z][y] = b
	t.revision++
}

func (t *Terrain) IsPosOOB(x, y, z int) bool {
	return x < 0 || y < 0 || z < 0 || x >= SizeX || y >= SizeY || z >= SizeZ
}

// GetNeighbors returns the 26 blocks surrounding (x,y,z), center excluded,
// ordered x-major, then z, then y.
func (t *Terrain) GetNeighbors(x, y, z int) [26]Block {
	var n [26]Block
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n[i] = t.Get(x+dx, y+dy, z+dz)
				i++
			}
		}
	}
	return n
}

// Generate fills the map with a stone base and a dirt cap, leaving the rest
// empty.
func (t *Terrain) Generate() {
	for x := 0; x < SizeX; x++ {
		for z := 0; z < SizeZ; z++ {
			for y := 0; y < DirtTopY; y++ {
				if y < StoneTopY {
					t.blocks[x][z][y] = BlockStone
				} else {
					t.blocks[x][z][y] = BlockDirt
				}
			}
		}
	}
	t.revision++
}

// Slice returns the currently highlighted horizontal layer.
func (t *Terrain) Slice() int {
	return t.slice
}

// SetSlice selects the highlighted layer, clamped to [0, SizeY-1].
func (t *Terrain) SetSlice(v int) {
	if v < 0 {
		v = 0
	}
	if v > SizeY-1 {
		v = SizeY - 1
	}
	if v == t.slice {
		return
	}
	t.slice = v
	t.revision++
}

// ScrollSlice moves the highlighted layer by delta scroll steps.
func (t *Terrain) ScrollSlice(delta int) {
	t.SetSlice(t.slice + delta)
}

// Revision increases monotonically with every mutation, including slice
// changes.
func (t *Terrain) Revision() uint64 {
	return t.revision
}

// Dump writes a z-major layer printout, one character per block.
func (t *Terrain) Dump(w io.Writer) {
	for z := 0; z < SizeZ; z++ {
		fmt.Fprintf(w, "z=%d\n", z)
		for y := 0; y < SizeY; y++ {
			line := make([]byte, SizeX)
			for x := 0; x < SizeX; x++ {
				line[x] = t.Get(x, y, z).rune()
			}
			fmt.Fprintf(w, "%s\n", line)
		}
	}
}
