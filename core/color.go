package core

import "github.com/lucasb-eyer/go-colorful"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{0xff, 0xff, 0xff}
)

// Colorful converts to a go-colorful color for perceptual operations
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns the #rrggbb form
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Contrast returns black or white, whichever reads better on top of c
// Decision uses CIE L*, midpoint 0.5
func (c RGB) Contrast() RGB {
	l, _, _ := c.Colorful().Lab()
	if l > 0.5 {
		return RGBBlack
	}
	return RGBWhite
}

func (c RGB) String() string {
	return c.Hex()
}
