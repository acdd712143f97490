package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBGreen = RGB{0, 200, 0}
)

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

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

// Slice returns the channels as an [r, g, b] int triple for config encoding
func (c RGB) Slice() []int {
	return []int{int(c.R), int(c.G), int(c.B)}
}

// RGBFromSlice builds a color from an [r, g, b] triple, clamping each channel
// Returns false when the slice is not exactly three values long
func RGBFromSlice(v []int) (RGB, bool) {
	if len(v) != 3 {
		return RGB{}, false
	}
	return RGB{R: clampChannel(v[0]), G: clampChannel(v[1]), B: clampChannel(v[2])}, true
}

func clampChannel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
