package renderer

import (
	"vox-slice/internal/camera"
	"vox-slice/internal/graphics"
	"vox-slice/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	renderer := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render executes one frame over all renderables
func (r *Renderer) Render(t *terrain.Terrain, cam *camera.FlyCamera, dt float64) {
	// Clear the screen
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:  r.camera,
		Terrain: t,
		Cam:     cam,
		DT:      dt,
		View:    cam.GetViewMatrix(),
		Proj:    r.camera.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera's aspect ratio and notifies renderables
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
