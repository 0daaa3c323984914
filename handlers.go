package tinyline

import (
	"github.com/tinylinelib/tinyline/display"
	"github.com/tinylinelib/tinyline/unicode8"
)

func ctrl(c byte) byte { return c & 0x1f }

const backspaceByte = 127

// installDefaultBindings wires every printable byte to insertion and
// installs the built-in emacs-style control bindings: Enter commits,
// Ctrl-C clears the line and commits it empty, Backspace/Ctrl-H/Delete/Ctrl-D edit around point,
// Ctrl-A/E/arrow-keys move, Ctrl-K/Y kill and yank, Ctrl-U erases to
// the start of line, Ctrl-L clears the screen.
func (s *Session) installDefaultBindings() {
	for b := 32; b < 256; b++ {
		s.BindKey(byte(b), handleInsert, s)
	}
	s.BindKey('\r', handleCommit, s)
	s.BindKey('\n', handleCommit, s)
	s.BindKey(ctrl('C'), handleInterrupt, s)
	s.BindKey(backspaceByte, handleBackspace, s)
	s.BindKey(ctrl('H'), handleBackspace, s)
	s.BindKey(ctrl('D'), handleDeleteForward, s)
	s.BindKey(ctrl('L'), handleClearScreen, s)
	s.BindKey(ctrl('U'), handleEraseToBOL, s)
	s.BindKey(ctrl('A'), handleStartOfLine, s)
	s.BindKey(ctrl('E'), handleEndOfLine, s)
	s.BindKey(ctrl('K'), handleKill, s)
	s.BindKey(ctrl('Y'), handleYank, s)

	s.BindSpecial(KeyLeft, handleLeft, s)
	s.BindSpecial(KeyRight, handleRight, s)
	s.BindSpecial(KeyHome, handleStartOfLine, s)
	s.BindSpecial(KeyEnd, handleEndOfLine, s)
	s.BindSpecial(KeyDelete, handleDeleteForward, s)
	s.BindSpecial(KeyInsert, nil, nil)
}

func handleInsert(ctx any, key []byte) bool {
	s := ctx.(*Session)
	return s.InsertTextLen(string(key), len(key))
}

func handleCommit(ctx any, key []byte) bool {
	s := ctx.(*Session)
	s.CRLF()
	s.done = true
	return true
}

func handleInterrupt(ctx any, key []byte) bool {
	s := ctx.(*Session)
	s.DeleteText(0, s.end)
	s.done = true
	return true
}

func handleStartOfLine(ctx any, key []byte) bool {
	s := ctx.(*Session)
	s.point = 0
	return true
}

func handleEndOfLine(ctx any, key []byte) bool {
	s := ctx.(*Session)
	s.point = s.end
	return true
}

func handleKill(ctx any, key []byte) bool {
	s := ctx.(*Session)
	s.killString = append(s.killString[:0], s.currentLine()[s.point:s.end]...)
	s.DeleteText(s.point, s.end)
	return true
}

func handleYank(ctx any, key []byte) bool {
	s := ctx.(*Session)
	if len(s.killString) == 0 {
		return false
	}
	return s.InsertTextLen(string(s.killString), len(s.killString))
}

func handleLeft(ctx any, key []byte) bool {
	s := ctx.(*Session)
	if s.point <= 0 {
		return false
	}
	s.point = unicode8.GraphemePrev(s.currentLine(), s.end, s.point)
	return true
}

func handleRight(ctx any, key []byte) bool {
	s := ctx.(*Session)
	if s.point >= s.end {
		return false
	}
	s.point = unicode8.GraphemeNext(s.currentLine(), s.end, s.point)
	return true
}

func handleBackspace(ctx any, key []byte) bool {
	s := ctx.(*Session)
	if s.point == 0 {
		return false
	}
	end := s.point
	s.point = unicode8.CharPrev(s.currentLine(), s.end, s.point)
	s.DeleteText(s.point, end)
	return true
}

func handleDeleteForward(ctx any, key []byte) bool {
	s := ctx.(*Session)
	if s.point >= s.end {
		return false
	}
	end := unicode8.GraphemeNext(s.currentLine(), s.end, s.point)
	s.DeleteText(s.point, end)
	return true
}

func handleEraseToBOL(ctx any, key []byte) bool {
	s := ctx.(*Session)
	if s.point == 0 {
		return false
	}
	s.DeleteText(0, s.point)
	s.point = 0
	return true
}

func handleClearScreen(ctx any, key []byte) bool {
	s := ctx.(*Session)
	display.ClearScreen(s.ostream)
	display.CursorHome(s.ostream)
	s.ResetLineState()
	return true
}
