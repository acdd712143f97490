package game

// Events is a bitmask of what happened during one Step
type Events uint8

const (
	EventMoved Events = 1 << iota
	EventGrew
	EventDied
)

// Has reports whether all bits of e are set
func (ev Events) Has(e Events) bool {
	return ev&e == e
}
