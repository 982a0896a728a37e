package session

// camera is a smoothed view offset that follows the player.
type camera struct {
	X, Y         float64
	viewW, viewH float64
}

// follow moves the camera a fraction lerp of the way toward centring
// (tx, ty), then clamps it so the view stays on the board.
func (c *camera) follow(tx, ty, lerp, boardW, boardH float64) {
	c.X += (tx - c.viewW/2 - c.X) * lerp
	c.Y += (ty - c.viewH/2 - c.Y) * lerp
	c.clampTo(boardW, boardH)
}

// centre places the camera on (tx, ty) at once.
func (c *camera) centre(tx, ty, boardW, boardH float64) {
	c.X = tx - c.viewW/2
	c.Y = ty - c.viewH/2
	c.clampTo(boardW, boardH)
}

func (c *camera) clampTo(boardW, boardH float64) {
	c.X = clamp(c.X, 0, boardW-c.viewW)
	c.Y = clamp(c.Y, 0, boardH-c.viewH)
}
