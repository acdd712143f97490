package core

// Point represents a 2D integer coordinate or displacement
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and other
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Reverse returns the negation of p
func (p Point) Reverse() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Scale multiplies both components by k
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// IsZero reports whether p is the origin
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}
