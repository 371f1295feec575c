package atlas

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Params is the read-only per-draw-call configuration threaded into Map.
// TextureCount is the atlas grid dimension (N columns x N rows) and must be
// >= 1; Map does not validate it, the caller guarantees the precondition.
// SliceY selects the horizontal block layer rendered as the unindexed,
// unshaded inspection surface.
type Params struct {
	TextureCount uint32
	SliceY       uint32
}

// Map converts a decoded face plus the fragment's local position into a
// normalized atlas UV and a shade factor. The cell's origin in the grid is
// (cell mod N, cell div N), laid out row-major from the top-left.
//
// For +Y faces on the highlighted slice the cell origin and normalization
// are skipped entirely: the fragment addresses the whole texture as one
// implicit full-size cell, so the selected layer reads as a full-resolution
// overlay regardless of block type.
func Map(cell uint8, face Face, pos mgl32.Vec3, p Params) (mgl32.Vec2, float32) {
	var u, v float32
	switch face {
	case FacePosX, FaceNegX:
		u, v = fract(pos.Y()), fract(pos.Z())
	case FacePosY:
		u, v = fract(pos.X()), fract(pos.Z())
		if blockLayer(pos.Y()) == int64(p.SliceY) {
			return mgl32.Vec2{u, v}, ShadeFor(face)
		}
	case FaceNegY:
		u, v = fract(pos.X()), fract(pos.Z())
	case FacePosZ:
		u, v = fract(pos.X()), fract(pos.Y())
	default: // FaceNegZ and any unknown face id
		u, v = fract(pos.X()), fract(pos.Y())
	}

	n := float32(p.TextureCount)
	col := float32(uint32(cell) % p.TextureCount)
	row := float32(uint32(cell) / p.TextureCount)
	return mgl32.Vec2{(u + col) / n, (v + row) / n}, ShadeFor(face)
}

// fract returns p - floor(p), always in [0,1).
func fract(p float32) float32 {
	return p - float32(math.Floor(float64(p)))
}

// blockLayer returns the whole-unit block layer containing a y coordinate.
func blockLayer(y float32) int64 {
	return int64(math.Floor(float64(y)))
}
