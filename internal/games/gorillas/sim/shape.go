package sim

import "image"

// opaqueThreshold is the alpha at or above which a pixel is solid.
const opaqueThreshold = 0x80

// Shape is the collision silhouette of a building raster: one bit per
// pixel, set where the pixel is opaque.
type Shape struct {
	w, h   int
	solid  []bool
	tops   []int
	opaque int
}

// shapeFromRaster recomputes the silhouette of img.
func shapeFromRaster(img *image.NRGBA) *Shape {
	b := img.Bounds()
	s := &Shape{
		w:     b.Dx(),
		h:     b.Dy(),
		solid: make([]bool, b.Dx()*b.Dy()),
		tops:  make([]int, b.Dx()),
	}
	for x := range s.tops {
		s.tops[x] = -1
	}

	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			a := img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
			if a < opaqueThreshold {
				continue
			}
			s.solid[y*s.w+x] = true
			s.opaque++
			if s.tops[x] < 0 {
				s.tops[x] = y
			}
		}
	}
	return s
}

// Contains reports whether the local pixel (x, y) is solid.
// Points outside the raster are never solid.
func (s *Shape) Contains(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.solid[y*s.w+x]
}

// OpaqueCount returns the number of solid pixels.
func (s *Shape) OpaqueCount() int {
	return s.opaque
}

// ColumnTop returns the first solid row of column x, or -1 if the column
// has been carved away entirely.
func (s *Shape) ColumnTop(x int) int {
	if x < 0 || x >= s.w {
		return -1
	}
	return s.tops[x]
}
