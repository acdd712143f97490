package core

// Actor is a single glyph on the grid with its own position, velocity and color
// Used as one body segment of a cycle
type Actor struct {
	position Point
	velocity Point
	glyph    rune
	color    RGB
}

// NewActor creates an actor at rest at the origin with a space glyph
func NewActor() *Actor {
	return &Actor{glyph: ' '}
}

func (a *Actor) Position() Point     { return a.position }
func (a *Actor) SetPosition(p Point) { a.position = p }
func (a *Actor) Velocity() Point     { return a.velocity }
func (a *Actor) SetVelocity(v Point) { a.velocity = v }
func (a *Actor) Glyph() rune         { return a.glyph }
func (a *Actor) SetGlyph(r rune)     { a.glyph = r }
func (a *Actor) Color() RGB          { return a.color }
func (a *Actor) SetColor(c RGB)      { a.color = c }

// MoveNext advances position by velocity, wrapping across the bounds edges
func (a *Actor) MoveNext(bounds Area) {
	a.position = bounds.Wrap(a.position.Add(a.velocity))
}
