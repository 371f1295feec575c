package atlas

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestApplyShade(t *testing.T) {
	c := mgl32.Vec4{0.8, 0.4, 0.2, 1.0}

	got := ApplyShade(c, 0.5)
	want := mgl32.Vec4{0.4, 0.2, 0.1, 1.0}
	for i := 0; i < 4; i++ {
		if !approxEq(got[i], want[i]) {
			t.Fatalf("component %d: got %v, want %v", i, got[i], want[i])
		}
	}

	// shade 0 keeps the sample untouched
	if got := ApplyShade(c, 0); got != c {
		t.Fatalf("shade 0: got %v, want %v", got, c)
	}

	// shade 1 fully blackens RGB without special casing; alpha survives
	got = ApplyShade(c, 1)
	if got[0] != 0 || got[1] != 0 || got[2] != 0 || got[3] != 1 {
		t.Fatalf("shade 1: got %v, want (0, 0, 0, 1)", got)
	}
}

func TestShadeForUnknownFace(t *testing.T) {
	for f := Face(FaceCount); f < 10; f++ {
		if got := ShadeFor(f); got != ShadeNegZ {
			t.Fatalf("face %d: got %v, want -Z fallback %v", f, got, ShadeNegZ)
		}
	}
}

func TestFragmentSourceCarriesShadeTable(t *testing.T) {
	src := FragmentSource()
	for _, lit := range []string{"0.1", "0.4", "0.0", "0.8", "0.2", "0.5"} {
		if !strings.Contains(src, "shade = "+lit) {
			t.Fatalf("generated fragment shader missing shade literal %s", lit)
		}
	}
	if !strings.Contains(src, "vPacked & 0xfu") {
		t.Fatalf("generated fragment shader missing cell mask:\n%s", src)
	}
	if !strings.Contains(src, "(vPacked >> 4u) & 0x7u") {
		t.Fatalf("generated fragment shader missing face extraction:\n%s", src)
	}
}
