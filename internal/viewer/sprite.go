package viewer

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/fox.svg
var foxAsset embed.FS

// FoxSprite rasterizes the fox icon once at construction, at
// renderScale times the requested display size for crisp downscaling,
// the same two-step pipeline internal/ui/sprites.go uses for piece
// icons.
type FoxSprite struct {
	image       *ebiten.Image
	size        int
	renderScale float64
}

// NewFoxSprite loads and rasterizes the fox icon at the given display
// size in pixels.
func NewFoxSprite(size int) *FoxSprite {
	fs := &FoxSprite{size: size, renderScale: 3.0}
	fs.load()
	return fs
}

func (fs *FoxSprite) load() {
	data, err := foxAsset.ReadFile("assets/fox.svg")
	if err != nil {
		log.Printf("viewer: failed to read fox asset: %v", err)
		return
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		log.Printf("viewer: failed to parse fox svg: %v", err)
		return
	}

	renderSize := int(float64(fs.size) * fs.renderScale)
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	fs.image = ebiten.NewImageFromImage(rgba)
}

// DrawAt draws the fox centered at (cx, cy) in pixels.
func (fs *FoxSprite) DrawAt(screen *ebiten.Image, cx, cy int) {
	if fs.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / fs.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-float64(fs.size)/2, float64(cy)-float64(fs.size)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(fs.image, op)
}
