package world

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{0xFF, 0xFF, 0xFF}
	RGBRed   = RGB{0xFF, 0, 0}
	RGBGreen = RGB{0, 0xFF, 0}
	RGBBlue  = RGB{0, 0, 0xFF}
	RGBGray  = RGB{0x77, 0x77, 0x77}
)

// Blend performs alpha blending: result = src*alpha + c*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}
