// Package atlas resolves voxel cube faces to texture atlas coordinates.
//
// Meshing packs a block's atlas cell and face orientation into a single
// uint32 vertex attribute; the fragment stage decodes it and derives the
// atlas UV plus a per-face shade factor. The same algorithm runs in Go
// (for meshing-side packing and tests) and in the generated GLSL.
package atlas

// Bit layout of a packed descriptor, low bits first:
//
//	bits 0-3  atlas cell index (0-15)
//	bits 4-6  face id (0-5 meaningful)
//	bits 7-31 reserved, ignored on decode
const (
	cellBits = 4
	cellMask = 1<<cellBits - 1
	faceMask = 1<<faceBits - 1
	faceBits = 3
)

// PackedBlock is the per-vertex descriptor carried as a uint32 attribute.
type PackedBlock uint32

// Pack builds a descriptor from an atlas cell index and a face.
// Only the low 4 bits of cell and low 3 bits of face are kept.
func Pack(cell uint8, face Face) PackedBlock {
	return PackedBlock(uint32(cell)&cellMask | (uint32(face)&faceMask)<<cellBits)
}

// Decode splits a descriptor back into cell and face. It is total over all
// 32-bit values: reserved high bits are discarded, never validated.
func (p PackedBlock) Decode() (cell uint8, face Face) {
	return uint8(p & cellMask), Face((p >> cellBits) & faceMask)
}
