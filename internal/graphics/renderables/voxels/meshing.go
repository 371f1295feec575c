package voxels

import (
	"math"

	"vox-slice/internal/atlas"
	"vox-slice/internal/registry"
	"vox-slice/internal/terrain"
)

// VertexWords is the number of uint32 words per vertex: three float32
// position components (as raw bits) plus the packed block descriptor.
const VertexWords = 4

// Block centers sit on integer coordinates, so cube corners are at +-0.5.
// This keeps floor(pos.y) on a +Y face equal to the block's layer, which is
// what the slice-highlight compare in the fragment shader keys on.
var faceVertices = [atlas.FaceCount][18]float32{
	atlas.FacePosX: {
		0.5, -0.5, 0.5,
		0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,
		0.5, 0.5, -0.5,
		0.5, 0.5, 0.5,
		0.5, -0.5, 0.5,
	},
	atlas.FaceNegX: {
		-0.5, -0.5, -0.5,
		-0.5, -0.5, 0.5,
		-0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
		-0.5, 0.5, -0.5,
		-0.5, -0.5, -0.5,
	},
	atlas.FacePosY: {
		-0.5, 0.5, 0.5,
		0.5, 0.5, 0.5,
		0.5, 0.5, -0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
		-0.5, 0.5, 0.5,
	},
	atlas.FaceNegY: {
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		-0.5, -0.5, 0.5,
		-0.5, -0.5, -0.5,
	},
	atlas.FacePosZ: {
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
		-0.5, -0.5, 0.5,
	},
	atlas.FaceNegZ: {
		0.5, -0.5, -0.5,
		-0.5, -0.5, -0.5,
		-0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
		0.5, 0.5, -0.5,
		0.5, -0.5, -0.5,
	},
}

// Neighbor offset along each face normal, used for face culling.
var faceNeighbor = [atlas.FaceCount][3]int{
	atlas.FacePosX: {1, 0, 0},
	atlas.FaceNegX: {-1, 0, 0},
	atlas.FacePosY: {0, 1, 0},
	atlas.FaceNegY: {0, -1, 0},
	atlas.FacePosZ: {0, 0, 1},
	atlas.FaceNegZ: {0, 0, -1},
}

// BuildTerrainMesh emits the visible faces of every filled block as a flat
// triangle list. Each vertex is packed into VertexWords uint32 words; faces
// against filled neighbors are culled, faces against Empty or Oob are kept.
func BuildTerrainMesh(t *terrain.Terrain) []uint32 {
	verts := make([]uint32, 0, 4096)

	for x := 0; x < terrain.SizeX; x++ {
		for z := 0; z < terrain.SizeZ; z++ {
			for y := 0; y < terrain.SizeY; y++ {
				b := t.Get(x, y, z)
				if !b.IsFilled() {
					continue
				}
				cell := registry.CellFor(b)

				for face := atlas.Face(0); face < atlas.FaceCount; face++ {
					d := faceNeighbor[face]
					if t.Get(x+d[0], y+d[1], z+d[2]).IsFilled() {
						continue
					}

					packed := uint32(atlas.Pack(cell, face))
					fv := &faceVertices[face]
					for i := 0; i < 6; i++ {
						px := float32(x) + fv[i*3]
						py := float32(y) + fv[i*3+1]
						pz := float32(z) + fv[i*3+2]
						verts = append(verts,
							math.Float32bits(px),
							math.Float32bits(py),
							math.Float32bits(pz),
							packed,
						)
					}
				}
			}
		}
	}

	return verts
}
