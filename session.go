package tinyline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/tinylinelib/tinyline/display"
	"github.com/tinylinelib/tinyline/ttyio"
	"github.com/tinylinelib/tinyline/unicode8"
)

// Session is the top-level interactive editing context: one input
// stream, one output stream, one edit buffer, one keymap. A Session is
// not safe for concurrent use.
type Session struct {
	istream   io.Reader
	ostream   io.Writer
	ttyIn     *os.File
	ttyOut    *os.File
	rawReader *bufio.Reader

	isInteractive bool

	prompt string

	buffer     []byte
	bufferSize int
	foreign    *string

	point int
	end   int
	done  bool

	killString []byte

	echoEnabled bool
	echoChar    byte

	maxLineLength int

	keymap *keymapNode

	lastSnapshot *display.Snapshot

	state readState

	logger *zerolog.Logger
}

// New creates a Session reading from in and writing to out, with the
// full set of default key bindings installed. If in is backed by a
// real terminal file, the session runs in interactive raw-mode editing;
// otherwise ReadLine falls back to plain line-at-a-time reading.
func New(in io.Reader, out io.Writer) *Session {
	s := &Session{
		istream:     in,
		ostream:     out,
		echoEnabled: true,
		keymap:      newKeymapNode(),
	}
	if f, ok := in.(*os.File); ok {
		s.ttyIn = f
		s.isInteractive = ttyio.IsTerminal(f)
	}
	if f, ok := out.(*os.File); ok {
		s.ttyOut = f
	}
	s.installDefaultBindings()
	return s
}

// SetLogger attaches an optional structured logger. A nil logger (the
// default) disables logging entirely; Session never requires one.
func (s *Session) SetLogger(l *zerolog.Logger) {
	s.logger = l
}

func (s *Session) logWarn(msg string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Warn().Err(err).Str("state", s.state.String()).Msg(msg)
}

// EnableEcho causes InsertText'd characters to be echoed verbatim
// during redisplay. This is the default.
func (s *Session) EnableEcho() {
	s.echoEnabled = true
}

// DisableEcho suppresses the real contents of the line from the
// display. If c is non-zero, one c byte is echoed per grapheme entered
// (for password-style prompts); if c is zero, nothing is echoed at all.
func (s *Session) DisableEcho(c byte) {
	s.echoEnabled = false
	s.echoChar = c
}

// LimitLineLength caps the line below n bytes, so the longest line it
// admits is n-1 bytes (0 means unbounded, the default). Insertions that
// would reach n bytes fail and ring the bell instead of growing further.
func (s *Session) LimitLineLength(n int) {
	s.maxLineLength = n
}

// GetWidth returns the output terminal's column count, or 80 if it
// cannot be determined.
func (s *Session) GetWidth() int {
	if s.ttyOut != nil {
		return ttyio.Width(s.ttyOut)
	}
	return 80
}

// GetPoint returns the current cursor offset within GetLine's result.
func (s *Session) GetPoint() int {
	return s.point
}

// GetLine returns the line currently being displayed, whether it is
// the owned edit buffer or a caller-supplied string set via SetLine.
func (s *Session) GetLine() string {
	if s.foreign != nil {
		return *s.foreign
	}
	return string(s.buffer[:s.end])
}

// SetLine replaces the displayed line with text without copying it;
// the session keeps only the pointer until the first mutation, at
// which point it is copied into the owned buffer (copy-on-write).
// Passing nil reverts to the owned buffer's current content.
func (s *Session) SetLine(text *string) {
	s.foreign = text
	if text == nil {
		s.point = s.end
		return
	}
	s.point = len(*text)
	s.end = s.point
}

// ReplaceLine overwrites the owned buffer with text, discarding any
// foreign line set via SetLine, and forces a redisplay.
func (s *Session) ReplaceLine(text string) {
	s.changedLine()
	if s.extendLineBuffer(len(text)) {
		s.foreign = nil
		copy(s.buffer, text)
		s.point = len(text)
		s.end = len(text)
	}
	s.Redisplay()
}

// ResetLineState discards the engine's memory of what was last
// painted, so the next Redisplay repaints the entire line from the
// prompt onward. Useful after something else (like a clear-screen) has
// disturbed the terminal's picture out from under the session.
func (s *Session) ResetLineState() {
	s.lastSnapshot = nil
	s.Redisplay()
}

func (s *Session) currentLine() []byte {
	if s.foreign != nil {
		return []byte(*s.foreign)
	}
	return s.buffer[:s.end]
}

func (s *Session) changedLine() {
	if s.foreign == nil {
		return
	}
	text := *s.foreign
	if s.bufferSize < len(text) {
		s.buffer = make([]byte, len(text))
		s.bufferSize = len(text)
	}
	copy(s.buffer, text)
	s.end = len(text)
	s.foreign = nil
}

// Redisplay repaints whatever has changed since the last call, using
// the incremental diff algorithm in package display.
func (s *Session) Redisplay() {
	buf, point := s.echoView()
	snap := display.Render(s.ostream, display.Input{
		Prompt: s.prompt,
		Buffer: buf,
		Point:  point,
		End:    len(buf),
		Width:  s.GetWidth(),
		Prev:   s.lastSnapshot,
	})
	s.lastSnapshot = &snap
	s.flush()
}

// echoView applies the echo policy (verbatim, substituted, or
// suppressed) to the current line, returning the buffer to paint and
// the cursor offset within it.
func (s *Session) echoView() (buf []byte, point int) {
	line := s.currentLine()
	if s.echoEnabled {
		return line, s.point
	}
	if s.echoChar == 0 {
		return nil, 0
	}
	out := make([]byte, 0, len(line))
	outPoint := 0
	for i := 0; i < len(line); {
		if i == s.point {
			outPoint = len(out)
		}
		out = append(out, s.echoChar)
		i = unicode8.GraphemeNext(line, len(line), i)
	}
	if s.point >= len(line) {
		outPoint = len(out)
	}
	return out, outPoint
}

// CRLF writes a newline to the output stream.
func (s *Session) CRLF() {
	io.WriteString(s.ostream, "\n")
}

// Ding rings the terminal bell.
func (s *Session) Ding() {
	display.RingBell(s.ostream)
	s.flush()
}

// Printf writes formatted output directly to the session's stream,
// bypassing the edit buffer. Callers typically use it before the first
// ReadLine of a session, or between lines.
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.ostream, format, args...)
}

// Done reports true once the active ReadLine has committed or aborted.
func (s *Session) Done() bool {
	return s.done
}

type flusher interface {
	Flush() error
}

func (s *Session) flush() {
	if f, ok := s.ostream.(flusher); ok {
		_ = f.Flush()
	}
}
