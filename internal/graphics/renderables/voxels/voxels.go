package voxels

import (
	"log"

	"vox-slice/internal/atlas"
	"vox-slice/internal/graphics"
	renderer "vox-slice/internal/graphics/renderer"
	"vox-slice/internal/profiling"
	"vox-slice/internal/registry"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Voxels renders the terrain volume through the atlas face-mapping shader.
type Voxels struct {
	shader  *graphics.Shader
	texture *TextureAtlas

	vao         uint32
	vbo         uint32
	vertexCount int32

	// revision of the terrain the current VBO contents were built from
	lastRevision uint64
	meshBuilt    bool

	wireframe bool
}

// NewVoxels creates a new voxels renderable
func NewVoxels() *Voxels {
	return &Voxels{}
}

// Init compiles the generated atlas shader and uploads the atlas texture
func (v *Voxels) Init() error {
	registry.InitRegistry()

	var err error
	v.shader, err = graphics.NewShaderFromSource(atlas.VertexSource(), atlas.FragmentSource())
	if err != nil {
		return err
	}

	v.texture, err = InitTextureAtlas()
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &v.vao)
	gl.GenBuffers(1, &v.vbo)
	gl.BindVertexArray(v.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)

	stride := int32(VertexWords * 4)
	gl.EnableVertexAttribArray(0)
	// Position: 3 floats, offset 0
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	// Packed block descriptor: 1 uint, offset 12 (integer attribute)
	gl.VertexAttribIPointer(1, 1, gl.UNSIGNED_INT, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	v.shader.Use()
	v.shader.SetInt("atlasTexture", 0)
	v.shader.SetUint("textureCount", v.texture.Count)

	return nil
}

// Render draws the terrain, rebuilding the mesh when the terrain changed
func (v *Voxels) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.voxels")()

	if !v.meshBuilt || ctx.Terrain.Revision() != v.lastRevision {
		v.rebuildMesh(ctx)
	}
	if v.vertexCount == 0 {
		return
	}

	if v.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	v.shader.Use()
	v.shader.SetMatrix4("proj", &ctx.Proj[0])
	v.shader.SetMatrix4("view", &ctx.View[0])
	v.shader.SetUint("terrainSliceY", uint32(ctx.Terrain.Slice()))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, v.texture.TextureID)

	gl.BindVertexArray(v.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, v.vertexCount)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (v *Voxels) Dispose() {
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
	}
	if v.vbo != 0 {
		gl.DeleteBuffers(1, &v.vbo)
	}
	if v.texture != nil {
		v.texture.Dispose()
	}
	if v.shader != nil {
		v.shader.Delete()
	}
}

// SetViewport is a no-op; the shared camera handles aspect changes
func (v *Voxels) SetViewport(width, height int) {}

// ToggleWireframe flips line-polygon rendering for the terrain
func (v *Voxels) ToggleWireframe() {
	v.wireframe = !v.wireframe
}

func (v *Voxels) rebuildMesh(ctx renderer.RenderContext) {
	defer profiling.Track("voxels.BuildTerrainMesh")()

	verts := BuildTerrainMesh(ctx.Terrain)
	v.vertexCount = int32(len(verts) / VertexWords)
	v.lastRevision = ctx.Terrain.Revision()
	v.meshBuilt = true

	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	if len(verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	log.Printf("terrain mesh rebuilt: %d vertices (revision %d)", v.vertexCount, v.lastRevision)
}
