package village

// Clock counts completed turns. Turn indices are 0-based: while the first
// turn resolves, Current returns 0.
type Clock struct {
	turn int
}

// Current returns the index of the turn in progress.
func (c *Clock) Current() int {
	return c.turn
}

// Advance marks the current turn as fully resolved.
func (c *Clock) Advance() {
	c.turn++
}

// Reset rewinds the clock for a new run.
func (c *Clock) Reset() {
	c.turn = 0
}
