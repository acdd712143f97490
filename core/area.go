package core

// Area is the wrap extent of the playfield in position units
// A non-positive dimension disables wrapping on that axis
type Area struct {
	Width, Height int
}

// Wrap folds p into [0, Width) x [0, Height)
func (a Area) Wrap(p Point) Point {
	return Point{X: wrapAxis(p.X, a.Width), Y: wrapAxis(p.Y, a.Height)}
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < a.Width && p.Y < a.Height
}

func wrapAxis(v, extent int) int {
	if extent <= 0 {
		return v
	}
	v %= extent
	if v < 0 {
		v += extent
	}
	return v
}
