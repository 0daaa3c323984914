// Package repl layers a small in-memory history and a live window-size
// watcher on top of a tinyline.Session. Neither concept belongs in the
// core editing engine: history is an application policy (what counts
// as "a line worth remembering", how many to keep) and resize handling
// is platform signal plumbing. Session exposes exactly the hooks
// (SetLine, BindSpecial, ResetLineState) this package needs and
// nothing more.
package repl

import (
	"io"

	"github.com/tinylinelib/tinyline"
)

// History is a bounded ring of previously submitted lines.
type History struct {
	lines []string
	limit int
}

// NewHistory creates a History retaining at most limit lines (0 means
// unbounded).
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add records line, dropping the oldest entry if the history is full.
// Empty lines are not recorded.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	h.lines = append(h.lines, line)
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = h.lines[len(h.lines)-h.limit:]
	}
}

// Get returns the line offsetFromEnd entries back from the most recent
// one (0 is the most recent).
func (h *History) Get(offsetFromEnd int) (string, bool) {
	if offsetFromEnd < 0 || offsetFromEnd >= len(h.lines) {
		return "", false
	}
	return h.lines[len(h.lines)-1-offsetFromEnd], true
}

// Len reports how many lines are currently retained.
func (h *History) Len() int {
	return len(h.lines)
}

// Prompt wraps a tinyline.Session with UP/DOWN history navigation.
type Prompt struct {
	session *tinyline.Session
	history *History
	pos     int
}

// New builds a Prompt reading from in and writing to out, recording
// every committed line into history.
func New(in io.Reader, out io.Writer, history *History) *Prompt {
	s := tinyline.New(in, out)
	p := &Prompt{session: s, history: history}
	s.BindSpecial(tinyline.KeyUp, p.historyUp, p)
	s.BindSpecial(tinyline.KeyDown, p.historyDown, p)
	return p
}

// Session exposes the underlying session so callers can install
// additional bindings or logging.
func (p *Prompt) Session() *tinyline.Session {
	return p.session
}

// ReadLine reads one line and, on success, appends it to the history.
func (p *Prompt) ReadLine(prompt string) (string, bool) {
	p.pos = 0
	line, ok := p.session.ReadLine(prompt)
	if ok {
		p.history.Add(line)
	}
	return line, ok
}

func (p *Prompt) historyUp(ctx any, key []byte) bool {
	next := p.pos + 1
	line, ok := p.history.Get(next - 1)
	if !ok {
		return false
	}
	p.pos = next
	p.session.SetLine(&line)
	return true
}

func (p *Prompt) historyDown(ctx any, key []byte) bool {
	if p.pos == 0 {
		return false
	}
	p.pos--
	if p.pos == 0 {
		empty := ""
		p.session.SetLine(&empty)
		return true
	}
	line, ok := p.history.Get(p.pos - 1)
	if !ok {
		return false
	}
	p.session.SetLine(&line)
	return true
}
