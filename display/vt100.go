package display

import (
	"fmt"
	"io"
)

// Bell is the single byte that makes a terminal ring its bell.
const Bell = "\x07"

const (
	seqClearScreen  = "\x1b[2J"
	seqEraseLineEnd = "\x1b[0K"
	seqEraseLine    = "\x1b[2K"
	seqCursorHome   = "\x1b[H"
)

func writeCursorUp(w io.Writer, n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(w, "\x1b[%dA", n)
}

func writeCursorDown(w io.Writer, n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(w, "\x1b[%dB", n)
}

func writeCursorForward(w io.Writer, n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(w, "\x1b[%dC", n)
}

func writeEraseLineEnd(w io.Writer) {
	io.WriteString(w, seqEraseLineEnd)
}

func writeEraseLine(w io.Writer) {
	io.WriteString(w, seqEraseLine)
}

// ClearScreen wipes the entire visible screen.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClearScreen)
}

// CursorHome moves the cursor to the top-left corner.
func CursorHome(w io.Writer) {
	io.WriteString(w, seqCursorHome)
}

// RingBell writes a single bell byte to w.
func RingBell(w io.Writer) {
	io.WriteString(w, Bell)
}
