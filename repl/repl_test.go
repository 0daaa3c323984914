package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadLineRecordsHistory(t *testing.T) {
	p := New(strings.NewReader("first\nsecond\n"), &bytes.Buffer{}, NewHistory(10))
	line, ok := p.ReadLine("> ")
	assert.True(t, ok)
	assert.Equal(t, "first", line)
	assert.Equal(t, 1, p.history.Len())
}

func TestHistoryBoundedByLimit(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	assert.Equal(t, 2, h.Len())
	v, ok := h.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestHistoryUpDownNavigation(t *testing.T) {
	h := NewHistory(10)
	h.Add("one")
	h.Add("two")
	p := New(&bytes.Buffer{}, &bytes.Buffer{}, h)

	assert.True(t, p.historyUp(p, nil))
	assert.Equal(t, "two", p.Session().GetLine())

	assert.True(t, p.historyUp(p, nil))
	assert.Equal(t, "one", p.Session().GetLine())

	assert.False(t, p.historyUp(p, nil))

	assert.True(t, p.historyDown(p, nil))
	assert.Equal(t, "two", p.Session().GetLine())

	assert.True(t, p.historyDown(p, nil))
	assert.Equal(t, "", p.Session().GetLine())

	assert.False(t, p.historyDown(p, nil))
}
