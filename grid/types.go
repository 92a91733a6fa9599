package grid

// Cell classifies a single dockyard cell.
type Cell int

const (
	// Open is free space a path may cross.
	Open Cell = iota
	// Building is impassable.
	Building
	// Crane is passable and counts once toward a path's score.
	Crane
)

// String returns a short lowercase name for c.
func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Building:
		return "building"
	case Crane:
		return "crane"
	default:
		return "unknown"
	}
}

// valid reports whether c is one of the three known kinds.
func (c Cell) valid() bool {
	return c == Open || c == Building || c == Crane
}

// Step is a single unit move. Paths only ever move South or East.
type Step int

const (
	// South moves one row down (row+1).
	South Step = iota
	// East moves one column right (column+1).
	East
)

// String returns "south" or "east".
func (s Step) String() string {
	if s == East {
		return "east"
	}

	return "south"
}

// Delta returns the (row, column) offset applied by s.
func (s Step) Delta() (dr, dc int) {
	if s == East {
		return 0, 1
	}

	return 1, 0
}
