package render

// Camera translates between world coordinates and screen coordinates.
// Tiles are one terminal column wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int
	ViewHeight int
}

// NewCamera creates a camera for a viewport of viewW×viewH cells.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow places (cx, cy) in the middle of the view, then clamps so a map of
// mapW×mapH never scrolls past its edges. Maps smaller than the view stay
// anchored at the top-left.
func (c *Camera) Follow(cx, cy, mapW, mapH int) {
	c.OffsetX = clamp(cx-c.ViewWidth/2, 0, max(0, mapW-c.ViewWidth))
	c.OffsetY = clamp(cy-c.ViewHeight/2, 0, max(0, mapH-c.ViewHeight))
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
