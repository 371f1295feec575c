package axes

import (
	"vox-slice/internal/graphics"
	renderer "vox-slice/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// AxisLength is how far each world-axis guide line extends from the origin.
const AxisLength = 100.0

// Interleaved position + color, one line per axis: X red, Y green, Z blue.
var axisVertices = []float32{
	0, 0, 0, 1, 0, 0,
	AxisLength, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 1, 0,
	0, AxisLength, 0, 0, 1, 0,
	0, 0, 0, 0, 0, 1,
	0, 0, AxisLength, 0, 0, 1,
}

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;

uniform mat4 proj;
uniform mat4 view;

out vec3 lineColor;

void main() {
	gl_Position = proj * view * vec4(position, 1.0);
	lineColor = color;
}
`

const fragmentShaderSource = `#version 410 core
in vec3 lineColor;
out vec4 fragColor;

void main() {
	fragColor = vec4(lineColor, 1.0);
}
`

// Axes renders world-axis guide lines at the origin
type Axes struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewAxes creates a new axes renderable
func NewAxes() *Axes {
	return &Axes{}
}

// Init compiles the line shader and uploads the axis geometry
func (a *Axes) Init() error {
	var err error
	a.shader, err = graphics.NewShaderFromSource(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)

	gl.GenBuffers(1, &a.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(axisVertices)*4, gl.Ptr(axisVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return nil
}

// Render draws the three axis lines
func (a *Axes) Render(ctx renderer.RenderContext) {
	a.shader.Use()
	a.shader.SetMatrix4("proj", &ctx.Proj[0])
	a.shader.SetMatrix4("view", &ctx.View[0])

	gl.BindVertexArray(a.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 6)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (a *Axes) Dispose() {
	if a.vao != 0 {
		gl.DeleteVertexArrays(1, &a.vao)
	}
	if a.vbo != 0 {
		gl.DeleteBuffers(1, &a.vbo)
	}
	if a.shader != nil {
		a.shader.Delete()
	}
}

// SetViewport is a no-op for world-space lines
func (a *Axes) SetViewport(width, height int) {}
