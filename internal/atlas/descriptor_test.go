package atlas

import "testing"

func TestPackDecodeRoundTrip(t *testing.T) {
	for cell := uint8(0); cell < 16; cell++ {
		for face := Face(0); face < FaceCount; face++ {
			gotCell, gotFace := Pack(cell, face).Decode()
			if gotCell != cell || gotFace != face {
				t.Fatalf("round trip cell=%d face=%v: got (%d, %v)", cell, face, gotCell, gotFace)
			}
		}
	}
}

func TestDecodeIgnoresReservedBits(t *testing.T) {
	base := Pack(9, FaceNegY)
	dirty := base | 0xFFFFFF80 // every reserved bit set
	gotCell, gotFace := dirty.Decode()
	if gotCell != 9 || gotFace != FaceNegY {
		t.Fatalf("reserved bits leaked into decode: got (%d, %v), want (9, -Y)", gotCell, gotFace)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	// Any 32-bit value decodes; no validation, no panic.
	cell, face := PackedBlock(0xFFFFFFFF).Decode()
	if cell != 0xF {
		t.Fatalf("cell: got %d, want 15", cell)
	}
	if face != Face(7) {
		t.Fatalf("face: got %d, want 7", face)
	}
}

func TestPackMasksInputs(t *testing.T) {
	// Oversized inputs are truncated to their bit ranges, not rejected.
	cell, face := Pack(0x1F, Face(0xF)).Decode()
	if cell != 0xF {
		t.Fatalf("cell: got %d, want 15", cell)
	}
	if face != Face(7) {
		t.Fatalf("face: got %d, want 7", face)
	}
}
