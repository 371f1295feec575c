// Package hud draws the screen-space overlay showing the highlighted
// slice layer.
package hud

import (
	"fmt"
	"log"

	"vox-slice/internal/graphics"
	renderer "vox-slice/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	FontPath   = "assets/fonts/mono.otf"
	fontPixels = 24
)

// HUD renders the slice overlay text. When the font asset is missing the
// overlay is disabled and the rest of the scene renders normally.
type HUD struct {
	font   *graphics.FontRenderer
	width  int
	height int
}

// NewHUD creates the overlay for the given initial viewport size
func NewHUD(width, height int) *HUD {
	return &HUD{width: width, height: height}
}

// Init bakes the font atlas; a missing font disables the overlay
func (h *HUD) Init() error {
	atlasInfo, err := graphics.BuildFontAtlas(FontPath, fontPixels)
	if err != nil {
		log.Printf("hud disabled: %v", err)
		return nil
	}
	h.font, err = graphics.NewFontRenderer(atlasInfo, h.width, h.height)
	if err != nil {
		return fmt.Errorf("font renderer: %w", err)
	}
	return nil
}

// Render draws the current slice layer in the top-left corner
func (h *HUD) Render(ctx renderer.RenderContext) {
	if h.font == nil {
		return
	}
	text := fmt.Sprintf("slice: %d", ctx.Terrain.Slice())
	h.font.Render(text, 12, 30, 1, mgl32.Vec3{1, 1, 1})
}

// Dispose cleans up the font resources
func (h *HUD) Dispose() {
	if h.font != nil {
		h.font.Dispose()
	}
}

// SetViewport updates the overlay's orthographic projection
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.font != nil {
		h.font.SetViewport(width, height)
	}
}
