package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"vox-slice/internal/camera"
	"vox-slice/internal/graphics/renderables/axes"
	"vox-slice/internal/graphics/renderables/hud"
	"vox-slice/internal/graphics/renderables/voxels"
	renderer "vox-slice/internal/graphics/renderer"
	"vox-slice/internal/profiling"
	"vox-slice/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

const (
	winWidth  = 900
	winHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	closer.Bind(glfw.Terminate)
	defer closer.Close()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	// Build and dump the terrain volume
	t := terrain.New()
	t.Generate()
	t.Dump(os.Stdout)

	// Renderable features
	voxelsRenderer := voxels.NewVoxels()
	axesRenderer := axes.NewAxes()
	hudRenderer := hud.NewHUD(winWidth, winHeight)

	r, err := renderer.NewRenderer(
		winWidth, winHeight,
		voxelsRenderer,
		axesRenderer,
		hudRenderer,
	)
	if err != nil {
		log.Fatalf("renderer setup: %v", err)
	}
	closer.Bind(r.Dispose)

	// Fly camera overlooking the terrain, facing the volume's center
	cam := camera.New(mgl32.Vec3{-10, 34, -10}, 45, -35)

	paused := false
	setupInputHandlers(window, r, t, cam, voxelsRenderer, &paused)

	runLoop(window, r, t, cam, &paused)
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winWidth, winHeight, "vox-slice", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(1)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func setupInputHandlers(window *glfw.Window, r *renderer.Renderer, t *terrain.Terrain, cam *camera.FlyCamera, voxelsRenderer *voxels.Voxels, paused *bool) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !*paused {
			cam.HandleMouseMovement(xpos, ypos)
		}
	})

	// Mouse wheel scrolls the highlighted slice layer
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if *paused || yoff == 0 {
			return
		}
		t.ScrollSlice(int(yoff))
		log.Printf("slice layer: %d", t.Slice())
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyF && action == glfw.Press {
			voxelsRenderer.ToggleWireframe()
		}
		if key == glfw.KeyEscape && action == glfw.Press {
			*paused = !*paused
			if *paused {
				w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			} else {
				w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				cam.FirstMouse = true
			}
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if width == 0 || height == 0 {
			return
		}
		gl.Viewport(0, 0, int32(width), int32(height))
		r.UpdateViewport(width, height)
	})
}

func runLoop(window *glfw.Window, r *renderer.Renderer, t *terrain.Terrain, cam *camera.FlyCamera, paused *bool) {
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if !*paused {
			func() { defer profiling.Track("camera.Update")(); cam.Update(dt, window) }()
		}

		r.Render(t, cam, dt)
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			fmt.Println("FPS: ", frames)
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		// Flag frames missing a 30 FPS floor along with the slowest buckets
		if frameDur := time.Since(now); frameDur > 33*time.Millisecond {
			log.Printf("slow frame: %.2fms [%s]",
				float64(frameDur.Nanoseconds())/1e6, profiling.TopN(3))
		}
	}
}
