package voxels

import (
	"math"
	"testing"

	"vox-slice/internal/atlas"
	"vox-slice/internal/registry"
	"vox-slice/internal/terrain"
)

func init() {
	registry.InitRegistry()
}

func TestSingleBlockMesh(t *testing.T) {
	tr := terrain.New()
	tr.Set(4, 4, 4, terrain.BlockStone)
	verts := BuildTerrainMesh(tr)
	// 6 faces * 2 triangles * 3 verts * 4 words
	if want := 6 * 6 * VertexWords; len(verts) != want {
		t.Fatalf("single block: got %d words, want %d", len(verts), want)
	}
}

func TestTouchingBlocksCullSharedFaces(t *testing.T) {
	tr := terrain.New()
	tr.Set(4, 4, 4, terrain.BlockStone)
	tr.Set(5, 4, 4, terrain.BlockStone)
	verts := BuildTerrainMesh(tr)
	// Two blocks expose 5 faces each; the shared pair is culled.
	if want := 2 * 5 * 6 * VertexWords; len(verts) != want {
		t.Fatalf("touching blocks: got %d words, want %d", len(verts), want)
	}
}

func TestBuriedBlockCulled(t *testing.T) {
	tr := terrain.New()
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				tr.Set(8+dx, 8+dy, 8+dz, terrain.BlockStone)
			}
		}
	}
	verts := BuildTerrainMesh(tr)
	// 3x3x3 cluster: only the 9 faces per side of the hull remain.
	if want := 6 * 9 * 6 * VertexWords; len(verts) != want {
		t.Fatalf("cluster: got %d words, want %d", len(verts), want)
	}
}

func TestMapEdgeFacesEmitted(t *testing.T) {
	// Oob neighbors read as unfilled, so faces at the map boundary stay.
	tr := terrain.New()
	tr.Set(0, 0, 0, terrain.BlockDirt)
	verts := BuildTerrainMesh(tr)
	if want := 6 * 6 * VertexWords; len(verts) != want {
		t.Fatalf("corner block: got %d words, want %d", len(verts), want)
	}
}

func TestTopFaceDescriptorAndHeight(t *testing.T) {
	tr := terrain.New()
	tr.Generate()
	verts := BuildTerrainMesh(tr)

	// The generated terrain is capped with dirt at layer DirtTopY-1; its +Y
	// faces carry the dirt cell with FacePosY and sit at layer+0.5 so the
	// shader's floor(pos.y) recovers the block layer.
	wantPacked := uint32(atlas.Pack(registry.CellFor(terrain.BlockDirt), atlas.FacePosY))
	wantY := math.Float32bits(float32(terrain.DirtTopY-1) + 0.5)

	found := false
	for i := 0; i+VertexWords <= len(verts); i += VertexWords {
		if verts[i+3] != wantPacked {
			continue
		}
		found = true
		if verts[i+1] != wantY {
			t.Fatalf("top face vertex y: got %v, want %v",
				math.Float32frombits(verts[i+1]), math.Float32frombits(wantY))
		}
	}
	if !found {
		t.Fatalf("no +Y dirt faces in generated terrain mesh")
	}
}

func TestNoInteriorFacesInGeneratedTerrain(t *testing.T) {
	tr := terrain.New()
	tr.Generate()
	verts := BuildTerrainMesh(tr)

	// The stone/dirt boundary is filled on both sides; no +Y face may
	// appear at the top of the stone layer.
	stoneTopY := math.Float32bits(float32(terrain.StoneTopY-1) + 0.5)
	for i := 0; i+VertexWords <= len(verts); i += VertexWords {
		_, face := atlas.PackedBlock(verts[i+3]).Decode()
		if face == atlas.FacePosY && verts[i+1] == stoneTopY {
			t.Fatalf("interior +Y face at stone/dirt boundary")
		}
	}
}

func BenchmarkBuildTerrainMesh(b *testing.B) {
	tr := terrain.New()
	tr.Generate()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildTerrainMesh(tr)
	}
}
