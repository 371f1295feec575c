package atlas

// Face identifies one of the six axis-aligned cube face orientations.
// Decoded values outside 0-5 behave like FaceNegZ everywhere; an unknown
// face is a safe default, not an error.
type Face uint8

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// FaceCount is the number of meaningful face ids.
const FaceCount = 6

func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FaceNegX:
		return "-X"
	case FacePosY:
		return "+Y"
	case FaceNegY:
		return "-Y"
	case FacePosZ:
		return "+Z"
	case FaceNegZ:
		return "-Z"
	default:
		return "-Z"
	}
}
