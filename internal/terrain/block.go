package terrain

// Block is a voxel cell value. BlockOob is the sentinel returned for
// out-of-bounds reads so callers can treat the map edge like empty space
// without bounds-checking themselves.
type Block uint8

const (
	BlockOob Block = iota
	BlockEmpty
	BlockDirt
	BlockStone
)

// IsFilled reports whether the block occupies space and produces faces.
func (b Block) IsFilled() bool {
	switch b {
	case BlockDirt, BlockStone:
		return true
	default:
		return false
	}
}

func (b Block) String() string {
	switch b {
	case BlockOob:
		return "Oob"
	case BlockEmpty:
		return "Empty"
	case BlockDirt:
		return "Dirt"
	case BlockStone:
		return "Stone"
	default:
		return "Unknown"
	}
}

// rune returns the single-character form used by Dump.
func (b Block) rune() byte {
	switch b {
	case BlockEmpty:
		return '.'
	case BlockDirt:
		return 'd'
	case BlockStone:
		return 's'
	default:
		return '#'
	}
}
