package sim

import (
	"image"
	"image/color"
	"math/rand"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// Window lattice geometry, in raster pixels.
const (
	windowInset  = 10
	windowStride = 40
	windowW      = 15
	windowH      = 20
)

// DefaultCarveRadius is the blast radius of a building hit.
const DefaultCarveRadius = 32

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

var transparent = color.NRGBA{}

// Render paints a fresh facade: one base color and a lattice of lit or
// unlit windows. Any previous damage is discarded.
func Render(b *Building, rng *rand.Rand) {
	img := b.raster
	xdraw.Draw(img, img.Bounds(), image.NewUniform(pickBase(rng)), image.Point{}, xdraw.Src)

	for row := windowInset; row < b.Height-windowInset; row += windowStride {
		for col := windowInset; col < b.Width-windowInset; col += windowStride {
			r := image.Rect(col, row, col+windowW, row+windowH)
			xdraw.Draw(img, r, image.NewUniform(pickWindow(rng)), image.Point{}, xdraw.Src)
		}
	}
	b.shape = shapeFromRaster(img)
}

// Carve clears a disc of the given radius centered at a local raster
// point and recomputes the building's shape. Damage accumulates across
// calls; repeating an identical carve changes nothing.
func Carve(b *Building, local core.Vec2, radius float64) {
	img := b.raster
	bounds := img.Bounds()

	mask := image.NewAlpha(bounds)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = xdraw.Src
	circlePath(z, float32(local.X), float32(local.Y), float32(radius))
	z.Draw(mask, bounds, image.Opaque, image.Point{})

	// Only the disc's bounding box can change.
	box := image.Rect(
		int(local.X-radius)-1, int(local.Y-radius)-1,
		int(local.X+radius)+2, int(local.Y+radius)+2,
	).Intersect(bounds)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if mask.AlphaAt(x, y).A >= opaqueThreshold {
				img.SetNRGBA(x, y, transparent)
			}
		}
	}
	b.shape = shapeFromRaster(img)
}

func circlePath(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// SceneToLocal converts a scene point (y up, relative to the field) into
// the building's raster space (origin top-left, y down).
func SceneToLocal(b *Building, scene core.Vec2) core.Vec2 {
	rel := scene.Sub(b.Center)
	return core.V(rel.X+float64(b.Width)/2, float64(b.Height)/2-rel.Y)
}

// LocalToScene is the inverse of SceneToLocal.
func LocalToScene(b *Building, local core.Vec2) core.Vec2 {
	rel := core.V(local.X-float64(b.Width)/2, float64(b.Height)/2-local.Y)
	return b.Center.Add(rel)
}
