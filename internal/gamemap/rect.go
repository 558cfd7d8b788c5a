package gamemap

// Rect is an axis-aligned rectangle used for rooms.
// X2 and Y2 are the far edges; NewRect guarantees X1 < X2 and Y1 < Y2
// for positive sizes.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds the rectangle with origin (x, y) and size w×h.
// No bounds checking against any grid is performed.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps or touches other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
