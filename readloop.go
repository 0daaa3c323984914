package tinyline

import (
	"bufio"
	"io"
	"strings"

	"github.com/tinylinelib/tinyline/ttyio"
	"github.com/tinylinelib/tinyline/unicode8"
)

// ReadLine prompts for and reads one line. On an interactive terminal
// it runs the full raw-mode key-dispatch loop; otherwise it reads one
// newline-terminated line from the input stream, with its line ending
// and leading whitespace stripped. The second
// return value is false only when the input stream ended with nothing
// to show for it.
func (s *Session) ReadLine(prompt string) (string, bool) {
	s.state = stateInit
	s.done = false
	s.point = 0
	s.end = 0
	s.bufferSize = 0
	s.buffer = nil
	s.foreign = nil
	s.killString = s.killString[:0]
	s.prompt = prompt
	s.lastSnapshot = nil

	s.state = stateEditing
	var gotLine bool
	if s.isInteractive {
		gotLine = s.readTTY()
	} else {
		gotLine = s.readRaw()
	}

	if gotLine {
		s.state = stateCommitting
	} else {
		s.state = stateAborting
	}

	var result string
	if gotLine {
		result = s.GetLine()
	}
	if !gotLine || result == "" {
		s.CRLF()
	}

	s.state = stateReturning
	s.buffer = nil
	s.foreign = nil
	return result, gotLine
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// readTTY drives the raw-mode key-dispatch loop used for interactive
// terminals.
func (s *Session) readTTY() bool {
	if s.ttyIn != nil {
		raw, err := ttyio.MakeRaw(s.ttyIn)
		if err != nil {
			s.logWarn("entering raw mode failed, continuing without it", err)
		} else {
			defer func() {
				if rerr := ttyio.Restore(s.ttyIn, raw); rerr != nil {
					s.logWarn("restoring terminal attributes failed", rerr)
				}
			}()
		}
	}

	s.ResetLineState()

	key := make([]byte, 4)
	for !s.done {
		s.Redisplay()
		n, ok := s.getChar(key)
		if !ok {
			s.done = true
			return false
		}
		s.handleKey(key, n)
	}

	line := s.currentLine()
	if s.end > 0 && isSpace(line[s.end-1]) {
		s.DeleteText(s.end-1, s.end)
	}
	return true
}

// readRaw reads exactly one newline-terminated line from a
// non-interactive input stream, stripping the trailing line ending and
// leading whitespace, and echoing what it read.
func (s *Session) readRaw() bool {
	s.lastSnapshot = nil

	if s.rawReader == nil {
		s.rawReader = bufio.NewReader(s.istream)
	}
	line, err := s.rawReader.ReadString('\n')
	trimmed := strings.TrimRight(line, "\r\n")
	text := strings.TrimLeft(trimmed, " \t\n\r\f\v")

	if text != "" {
		s.InsertText(text)
		s.Redisplay()
	}

	if len(line) == 0 && err != nil && s.end == 0 {
		s.done = true
		return false
	}

	s.CRLF()
	s.done = true
	return true
}

// getChar reads one full UTF-8 codepoint into key, blocking until it
// arrives or the stream ends.
func (s *Session) getChar(key []byte) (int, bool) {
	var b [1]byte
	if _, err := io.ReadFull(s.istream, b[:]); err != nil {
		return 0, false
	}
	n := unicode8.CharLen(b[0])
	if n == 0 || n > len(key) {
		return 0, false
	}
	key[0] = b[0]
	for i := 1; i < n; i++ {
		if _, err := io.ReadFull(s.istream, b[:]); err != nil {
			return 0, false
		}
		key[i] = b[0]
	}
	if _, size := unicode8.CharDecode(key[:n]); size == 0 {
		return 0, false
	}
	return n, true
}

// getCharNonblock attempts a single non-blocking byte read, used only
// while resolving whether a partially-matched escape sequence
// continues or should be dispatched as-is.
func (s *Session) getCharNonblock() (byte, bool) {
	if s.ttyIn == nil {
		return 0, false
	}
	return ttyio.TryReadByte(s.ttyIn)
}

// handleKey walks the keymap trie starting from the already-read key
// bytes, pulling in further bytes non-blockingly while a longer
// sequence remains possible, and invokes the longest match found.
func (s *Session) handleKey(first []byte, firstLen int) {
	s.dispatchKey(first, firstLen, s.getCharNonblock)
}

// dispatchKey is handleKey with the non-blocking probe passed in
// explicitly, so tests can simulate queued escape-sequence bytes
// without a real terminal file descriptor. If no handler matched, or
// the matched handler declines the key, the bell rings.
func (s *Session) dispatchKey(first []byte, firstLen int, probe func() (byte, bool)) {
	key := append([]byte(nil), first[:firstLen]...)
	var handler KeyHandler
	var ctx any
	node := s.keymap
	i := 0
	for {
		c := key[i]
		if node.handler[c] != nil {
			handler = node.handler[c]
			ctx = node.context[c]
		}
		next := node.child[c]
		if next == nil {
			break
		}
		node = next
		i++
		if i >= len(key) {
			b, ok := probe()
			if !ok {
				break
			}
			key = append(key, b)
		}
	}
	if handler == nil || !handler(ctx, key) {
		s.Ding()
	}
}
