package sim

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hsb builds an opaque color from hue, saturation and brightness in [0, 1].
func hsb(h, s, b float64) color.NRGBA {
	r, g, bl := colorful.Hsv(h*360, s, b).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 0xff}
}

// Palette entries used by Render. Exported for the renderer and tests.
var (
	BaseColors = [3]color.NRGBA{
		hsb(0.502, 0.98, 0.67), // teal
		hsb(0.999, 0.99, 0.67), // red
		hsb(0, 0, 0.67),        // grey
	}
	LitWindow   = hsb(0.190, 0.67, 0.99)
	UnlitWindow = hsb(0, 0, 0.34)
	SkyColor    = hsb(0.669, 0.99, 0.67)
)

func pickBase(rng *rand.Rand) color.NRGBA {
	return BaseColors[rng.Intn(len(BaseColors))]
}

func pickWindow(rng *rand.Rand) color.NRGBA {
	if rng.Intn(2) == 0 {
		return LitWindow
	}
	return UnlitWindow
}
