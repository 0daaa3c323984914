// Package display implements the incremental redisplay engine: given
// the previously rendered line and the newly edited one, it emits the
// minimal VT100 control sequences that bring the terminal from the old
// picture to the new one, without ever repainting a byte that did not
// change.
package display

import (
	"bytes"
	"io"

	"github.com/tinylinelib/tinyline/unicode8"
)

// Snapshot records what was last painted, so the next Render call can
// diff against it instead of repainting from scratch.
type Snapshot struct {
	Buffer   []byte
	End      int
	Point    int
	Width    int
	Row      int
	PointRow int
}

// Input describes one redisplay request. Buffer is the fully
// echo-substituted text to show (the caller is responsible for any
// echo-character or echo-suppression policy); Point is the cursor
// offset within that same buffer.
type Input struct {
	Prompt string
	Buffer []byte
	Point  int
	End    int
	Width  int
	Prev   *Snapshot
}

// Render paints in to w, reusing as much of Prev's screen state as
// possible, and returns the Snapshot the next call should diff
// against.
func Render(w io.Writer, in Input) Snapshot {
	var out bytes.Buffer

	buf := in.Buffer[:in.End]
	width := in.Width
	if width <= 0 {
		width = 80
	}

	if in.Prev != nil && in.Prev.End == in.End && in.Prev.Point == in.Point &&
		in.Prev.Width == width && bytes.Equal(in.Prev.Buffer, buf) {
		return *in.Prev
	}

	promptRow, promptCol := Wrap([]byte(in.Prompt), len(in.Prompt), width, 0, 0)

	var keepLen int
	if in.Prev != nil {
		prevBuf := in.Prev.Buffer
		for keepLen < in.End {
			next := unicode8.GraphemeNext(buf, in.End, keepLen)
			if next > in.Prev.End || !bytes.Equal(buf[keepLen:next], sliceOrEmpty(prevBuf, keepLen, next)) {
				break
			}
			keepLen = next
		}

		keepRow, keepCol := Wrap(buf, keepLen, width, promptRow, promptCol)
		if keepLen > 0 && keepCol == width {
			keepLen = unicode8.GraphemePrev(buf, in.End, keepLen)
			keepRow, keepCol = Wrap(buf, keepLen, width, promptRow, promptCol)
		}

		out.WriteByte('\r')
		if in.Prev.Row > in.Prev.PointRow {
			writeCursorDown(&out, in.Prev.Row-in.Prev.PointRow)
		} else if in.Prev.Row < in.Prev.PointRow {
			writeCursorUp(&out, in.Prev.PointRow-in.Prev.Row)
		}

		for row := keepRow; row < in.Prev.Row; row++ {
			writeEraseLine(&out)
			writeCursorUp(&out, 1)
		}

		writeCursorForward(&out, keepCol)
		writeEraseLineEnd(&out)
	} else {
		keepLen = 0
		out.WriteString(in.Prompt)
	}

	out.Write(buf[keepLen:in.End])

	row, _ := Wrap(buf, in.End, width, promptRow, promptCol)
	pointRow, pointCol := Wrap(buf, in.Point, width, promptRow, promptCol)
	if pointCol == width || (in.Point < in.End && pointCol+unicode8.GraphemeWidth(buf, in.End, in.Point) > width) {
		pointRow++
		pointCol = 0
	}

	if row < pointRow {
		out.WriteByte('\n')
	}
	if in.End > in.Point {
		writeCursorUp(&out, row-pointRow)
		out.WriteByte('\r')
		writeCursorForward(&out, pointCol)
	}

	w.Write(out.Bytes())

	return Snapshot{
		Buffer:   append([]byte(nil), buf...),
		End:      in.End,
		Point:    in.Point,
		Width:    width,
		Row:      row,
		PointRow: pointRow,
	}
}

func sliceOrEmpty(b []byte, start, end int) []byte {
	if end > len(b) {
		return nil
	}
	return b[start:end]
}

// Wrap walks s[:length] grapheme by grapheme starting at (row, col) and
// returns the cursor position after the walk, wrapping at rowWidth
// columns exactly as the terminal itself would.
func Wrap(s []byte, length, rowWidth, row, col int) (int, int) {
	c := WrapCursor{Row: row, Col: col}
	for point := 0; point < length; {
		next := unicode8.GraphemeNext(s, length, point)
		w := unicode8.GraphemeWidth(s, length, point)
		c.Advance(w, rowWidth)
		point = next
	}
	return c.Row, c.Col
}
