package atlas

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const uvEps = 1e-5

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) <= uvEps
}

func TestMapCellOrigin(t *testing.T) {
	// With a zero-fraction position the returned UV is exactly the
	// normalized cell origin for every face (PosY tested off-slice).
	p := Params{TextureCount: 4, SliceY: 99}
	pos := mgl32.Vec3{0, 0, 0}
	for cell := uint8(0); cell < 16; cell++ {
		wantU := float32(cell%4) / 4
		wantV := float32(cell/4) / 4
		for face := Face(0); face < FaceCount; face++ {
			uv, _ := Map(cell, face, pos, p)
			if !approxEq(uv.X(), wantU) || !approxEq(uv.Y(), wantV) {
				t.Fatalf("cell %d face %v: got uv (%v, %v), want (%v, %v)",
					cell, face, uv.X(), uv.Y(), wantU, wantV)
			}
		}
	}
}

func TestMapShadePerFace(t *testing.T) {
	cases := []struct {
		face Face
		want float32
	}{
		{FacePosX, 0.1},
		{FaceNegX, 0.4},
		{FacePosY, 0.0},
		{FaceNegY, 0.8},
		{FacePosZ, 0.2},
		{FaceNegZ, 0.5},
		{Face(6), 0.5}, // unknown faces fall back to -Z
		{Face(7), 0.5},
	}
	p := Params{TextureCount: 4, SliceY: 99}
	pos := mgl32.Vec3{1.3, 2.7, 3.1}
	for _, c := range cases {
		_, shade := Map(3, c.face, pos, p)
		if shade != c.want {
			t.Fatalf("face %v: got shade %v, want %v", c.face, shade, c.want)
		}
	}
}

func TestMapIdempotent(t *testing.T) {
	p := Params{TextureCount: 8, SliceY: 3}
	pos := mgl32.Vec3{4.25, 3.0, -1.75}
	uv1, s1 := Map(11, FacePosY, pos, p)
	uv2, s2 := Map(11, FacePosY, pos, p)
	if uv1 != uv2 || s1 != s2 {
		t.Fatalf("repeat call diverged: (%v, %v) vs (%v, %v)", uv1, s1, uv2, s2)
	}
}

func TestFractWrap(t *testing.T) {
	// Local UV components equal p - floor(p), in [0,1) for any sign.
	values := []float32{-2.25, -0.5, -0.0001, 0, 0.3, 0.9999, 1, 17.75}
	for _, v := range values {
		got := fract(v)
		want := v - float32(math.Floor(float64(v)))
		if got != want {
			t.Fatalf("fract(%v): got %v, want %v", v, got, want)
		}
		if got < 0 || got >= 1 {
			t.Fatalf("fract(%v) = %v out of [0,1)", v, got)
		}
	}
}

func TestSliceHighlightMatch(t *testing.T) {
	// block_type=1, face=+Y, N=4, pos y lands on the highlighted layer:
	// raw fractional xz, no cell offset, no normalization, shade 0.
	p := Params{TextureCount: 4, SliceY: 2}
	uv, shade := Map(1, FacePosY, mgl32.Vec3{0.3, 2.0, 0.7}, p)
	if !approxEq(uv.X(), 0.3) || !approxEq(uv.Y(), 0.7) {
		t.Fatalf("highlight uv: got (%v, %v), want (0.3, 0.7)", uv.X(), uv.Y())
	}
	if shade != 0 {
		t.Fatalf("highlight shade: got %v, want 0", shade)
	}
}

func TestSliceHighlightMiss(t *testing.T) {
	// Same fragment with a different slice selected behaves like the
	// general case: cell offset applied, then normalized by N.
	p := Params{TextureCount: 4, SliceY: 5}
	uv, shade := Map(1, FacePosY, mgl32.Vec3{0.3, 2.0, 0.7}, p)
	if !approxEq(uv.X(), (1+0.3)/4) || !approxEq(uv.Y(), (0+0.7)/4) {
		t.Fatalf("off-slice uv: got (%v, %v), want (0.325, 0.175)", uv.X(), uv.Y())
	}
	if shade != 0 {
		t.Fatalf("off-slice +Y shade: got %v, want 0", shade)
	}
}

func TestSliceHighlightOnlyAffectsPosY(t *testing.T) {
	p := Params{TextureCount: 4, SliceY: 2}
	pos := mgl32.Vec3{0.3, 2.5, 0.7}
	uv, shade := Map(1, FacePosX, pos, p)
	wantU := (fract(pos.Y()) + 1) / 4
	wantV := (fract(pos.Z()) + 0) / 4
	if !approxEq(uv.X(), wantU) || !approxEq(uv.Y(), wantV) {
		t.Fatalf("+X on slice layer: got (%v, %v), want (%v, %v)", uv.X(), uv.Y(), wantU, wantV)
	}
	if shade != ShadePosX {
		t.Fatalf("+X on slice layer: got shade %v, want %v", shade, ShadePosX)
	}
}

func TestScenarioPosZ(t *testing.T) {
	// block_type=5, face=+Z, N=4, pos=(1.25, 3.6, 0): cell origin (1,1),
	// local (0.25, 0.6), uv = (1.25/4, 1.6/4).
	p := Params{TextureCount: 4, SliceY: 0}
	uv, shade := Map(5, FacePosZ, mgl32.Vec3{1.25, 3.6, 0.0}, p)
	if !approxEq(uv.X(), 0.3125) || !approxEq(uv.Y(), 0.4) {
		t.Fatalf("uv: got (%v, %v), want (0.3125, 0.4)", uv.X(), uv.Y())
	}
	if shade != ShadePosZ {
		t.Fatalf("shade: got %v, want %v", shade, ShadePosZ)
	}
}

func TestSingleCellAtlas(t *testing.T) {
	// N=1 collapses the grid: every cell maps to origin (0,0) before the
	// fractional offset.
	p := Params{TextureCount: 1, SliceY: 99}
	for cell := uint8(0); cell < 16; cell++ {
		uv, _ := Map(cell, FaceNegZ, mgl32.Vec3{2, 3, 4}, p)
		if !approxEq(uv.X(), 0) || !approxEq(uv.Y(), 0) {
			t.Fatalf("cell %d with N=1: got uv (%v, %v), want (0, 0)", cell, uv.X(), uv.Y())
		}
	}
}

func TestMapUVInRange(t *testing.T) {
	p := Params{TextureCount: 4, SliceY: 1}
	positions := []mgl32.Vec3{
		{0, 0, 0}, {-3.7, 1.2, 8.9}, {15.99, 31.99, 15.99}, {0.5, -0.5, 0.5},
	}
	for cell := uint8(0); cell < 16; cell++ {
		for face := Face(0); face < 8; face++ {
			for _, pos := range positions {
				uv, _ := Map(cell, face, pos, p)
				if uv.X() < 0 || uv.X() > 1 || uv.Y() < 0 || uv.Y() > 1 {
					t.Fatalf("cell %d face %v pos %v: uv %v outside [0,1]", cell, face, pos, uv)
				}
			}
		}
	}
}

func BenchmarkMap(b *testing.B) {
	p := Params{TextureCount: 4, SliceY: 12}
	pos := mgl32.Vec3{7.25, 12.5, 3.75}
	for i := 0; i < b.N; i++ {
		_, _ = Map(uint8(i&0xF), Face(i%FaceCount), pos, p)
	}
}
