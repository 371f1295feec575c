package atlas

import "github.com/go-gl/mathgl/mgl32"

// Fixed per-face shade factors, an artistic stand-in for directional light:
// tops are brightest, bottoms darkest. Final color is (1-shade)*sampled.
const (
	ShadePosX float32 = 0.1
	ShadeNegX float32 = 0.4
	ShadePosY float32 = 0.0
	ShadeNegY float32 = 0.8
	ShadePosZ float32 = 0.2
	ShadeNegZ float32 = 0.5
)

// ShadeFor returns the shade factor for a face. Unknown face ids share the
// -Z factor.
func ShadeFor(face Face) float32 {
	switch face {
	case FacePosX:
		return ShadePosX
	case FaceNegX:
		return ShadeNegX
	case FacePosY:
		return ShadePosY
	case FaceNegY:
		return ShadeNegY
	case FacePosZ:
		return ShadePosZ
	case FaceNegZ:
		return ShadeNegZ
	default:
		return ShadeNegZ
	}
}

// ApplyShade darkens the RGB channels by (1-shade), leaving alpha alone.
// shade = 1.0 legitimately yields black; no face in the table reaches it.
func ApplyShade(c mgl32.Vec4, shade float32) mgl32.Vec4 {
	k := 1.0 - shade
	return mgl32.Vec4{c[0] * k, c[1] * k, c[2] * k, c[3]}
}
