package sim

import (
	"image"
	"math/rand"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// MinBuildings is the smallest field that can host both players with a
// building between them.
const MinBuildings = 3

// FieldParams controls the skyline generator.
type FieldParams struct {
	FieldWidth  int // Width of the playable field in scene units
	FieldHeight int // Height of the playable field in scene units
	WindowPitch int // W: building widths and window lattice are multiples of it
	MinUnits    int // Narrowest building, in units of W
	MaxUnits    int // Widest building, in units of W
	MinHeight   int
	MaxHeight   int
	Gap         int // Horizontal space between neighbours
	StartX      int // Left edge of the first building
}

// DefaultFieldParams returns the classic 1024x768 skyline.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		FieldWidth:  1024,
		FieldHeight: 768,
		WindowPitch: 40,
		MinUnits:    2,
		MaxUnits:    4,
		MinHeight:   300,
		MaxHeight:   600,
		Gap:         2,
		StartX:      -15,
	}
}

// Validate reports the first parameter that makes generation impossible.
func (p FieldParams) Validate() error {
	switch {
	case p.WindowPitch <= 0:
		return configErrorf("window_pitch", "must be positive, got %d", p.WindowPitch)
	case p.MinUnits <= 0 || p.MaxUnits < p.MinUnits:
		return configErrorf("units", "empty width range [%d, %d]", p.MinUnits, p.MaxUnits)
	case p.MinHeight <= 0 || p.MaxHeight < p.MinHeight:
		return configErrorf("height", "empty height range [%d, %d]", p.MinHeight, p.MaxHeight)
	case p.Gap < 0:
		return configErrorf("gap", "must not be negative, got %d", p.Gap)
	case p.FieldWidth <= 0:
		return configErrorf("field_width", "must be positive, got %d", p.FieldWidth)
	case p.FieldHeight <= 0:
		return configErrorf("field_height", "must be positive, got %d", p.FieldHeight)
	case p.FieldWidth < MinBuildings*p.MinUnits*p.WindowPitch:
		return configErrorf("field_width", "%d is too narrow for %d buildings of width %d",
			p.FieldWidth, MinBuildings, p.MinUnits*p.WindowPitch)
	}
	return nil
}

// Building is one tower of the skyline.
// Its position is the scene-space center (y up, origin at the field's
// bottom-left); its raster uses local coordinates (origin top-left, y down).
type Building struct {
	Index  int
	Center core.Vec2
	Width  int
	Height int

	raster *image.NRGBA
	shape  *Shape
}

func newBuilding(index, left, width, height int) *Building {
	return &Building{
		Index:  index,
		Center: core.V(float64(left)+float64(width)/2, float64(height)/2),
		Width:  width,
		Height: height,
		raster: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Left returns the scene x of the building's left edge.
func (b *Building) Left() float64 {
	return b.Center.X - float64(b.Width)/2
}

// Right returns the scene x of the building's right edge.
func (b *Building) Right() float64 {
	return b.Center.X + float64(b.Width)/2
}

// Top returns the scene y of the roof.
func (b *Building) Top() float64 {
	return b.Center.Y + float64(b.Height)/2
}

// Raster exposes the opacity buffer for drawing. Callers must not mutate it.
func (b *Building) Raster() *image.NRGBA {
	return b.raster
}

// Shape returns the collision silhouette derived from the raster.
func (b *Building) Shape() *Shape {
	return b.shape
}

// Covers reports whether the scene point lies within the building's box.
func (b *Building) Covers(p core.Vec2) bool {
	return p.X >= b.Left() && p.X < b.Right() && p.Y >= 0 && p.Y < b.Top()
}

// GenerateField lays out a skyline from StartX until the field width is
// covered, continuing past it if needed so that at least MinBuildings
// exist. Buildings are returned unrendered.
func GenerateField(rng *rand.Rand, p FieldParams) ([]*Building, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var buildings []*Building
	cursor := p.StartX
	for cursor < p.FieldWidth || len(buildings) < MinBuildings {
		units := p.MinUnits + rng.Intn(p.MaxUnits-p.MinUnits+1)
		width := units * p.WindowPitch
		height := p.MinHeight + rng.Intn(p.MaxHeight-p.MinHeight+1)

		left := cursor
		if len(buildings) > 0 {
			left += p.Gap
		}
		buildings = append(buildings, newBuilding(len(buildings), left, width, height))
		cursor = left + width
	}
	return buildings, nil
}
