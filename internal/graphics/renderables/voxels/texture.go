package voxels

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"log"
	"os"

	"vox-slice/internal/registry"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
)

const (
	// TextureCount is the atlas grid dimension; 4x4 gives 16 cells which
	// matches the 4-bit cell field of the packed descriptor.
	TextureCount = 4

	// cellPixels is the edge length of one cell in the uploaded texture.
	cellPixels = 16

	AtlasPath = "assets/textures/atlas.png"
)

// TextureAtlas holds the bound atlas texture and its grid dimension.
type TextureAtlas struct {
	TextureID uint32
	Count     uint32
}

// InitTextureAtlas uploads the block atlas. An atlas.png asset takes
// priority; without one a procedural atlas is built from the registry's
// proxy colors.
func InitTextureAtlas() (*TextureAtlas, error) {
	img, err := loadAtlasImage()
	if err != nil {
		return nil, err
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	bounds := img.Bounds()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	return &TextureAtlas{TextureID: texture, Count: TextureCount}, nil
}

// Dispose releases the texture object.
func (t *TextureAtlas) Dispose() {
	if t.TextureID != 0 {
		gl.DeleteTextures(1, &t.TextureID)
		t.TextureID = 0
	}
}

func loadAtlasImage() (*image.RGBA, error) {
	f, err := os.Open(AtlasPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to open atlas texture: %v", err)
		}
		log.Printf("no atlas image at %s, using procedural block colors", AtlasPath)
		return BuildProceduralAtlas(), nil
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas texture: %v", err)
	}

	size := TextureCount * cellPixels
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	if decoded.Bounds().Dx() == size && decoded.Bounds().Dy() == size {
		draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	} else {
		// Resample non-native atlas images onto the expected grid.
		xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), decoded, decoded.Bounds(), xdraw.Src, nil)
	}
	return rgba, nil
}

// BuildProceduralAtlas renders one flat-colored pixel per cell and scales it
// up with nearest-neighbor so every cell is a solid cellPixels square.
func BuildProceduralAtlas() *image.RGBA {
	base := image.NewRGBA(image.Rect(0, 0, TextureCount, TextureCount))
	for cell := 0; cell < TextureCount*TextureCount; cell++ {
		col := cell % TextureCount
		row := cell / TextureCount
		base.SetRGBA(col, row, registry.ColorForCell(uint8(cell)))
	}

	size := TextureCount * cellPixels
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return out
}
