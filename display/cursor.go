package display

// WrapCursor tracks a row/column position while a logical line of text
// is laid out across fixed-width terminal rows. It has no notion of
// content; callers feed it one grapheme's display width at a time.
type WrapCursor struct {
	Row, Col int
}

// Advance accounts for one grapheme of the given display width,
// wrapping to the start of the next row when it would overflow
// rowWidth. A wrapped grapheme becomes the first column of the new
// row, so Col is set to width rather than reset to 0.
func (c *WrapCursor) Advance(width, rowWidth int) {
	c.Col += width
	if c.Col > rowWidth {
		c.Row++
		c.Col = width
	}
}

