package tinyline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadLineNonInteractiveStripsAndEchoes(t *testing.T) {
	s := New(strings.NewReader("  hello world\n"), &bytes.Buffer{})
	line, ok := s.ReadLine("> ")
	assert.True(t, ok)
	assert.Equal(t, "hello world", line)
}

func TestReadLineNonInteractiveEOFEmpty(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{})
	line, ok := s.ReadLine("> ")
	assert.False(t, ok)
	assert.Equal(t, "", line)
}

func TestReadLineNonInteractivePartialLineAtEOF(t *testing.T) {
	s := New(strings.NewReader("no newline"), &bytes.Buffer{})
	line, ok := s.ReadLine("> ")
	assert.True(t, ok)
	assert.Equal(t, "no newline", line)
}

func TestReadLineNonInteractivePersistsAcrossCalls(t *testing.T) {
	s := New(strings.NewReader("a\nb\n"), &bytes.Buffer{})

	line, ok := s.ReadLine("> ")
	assert.True(t, ok)
	assert.Equal(t, "a", line)

	line, ok = s.ReadLine("> ")
	assert.True(t, ok)
	assert.Equal(t, "b", line)

	_, ok = s.ReadLine("> ")
	assert.False(t, ok)
}

func TestHandleKeyUnboundRingsBell(t *testing.T) {
	s := newTestSession()
	var out bytes.Buffer
	s.ostream = &out
	s.handleKey([]byte{0x01 ^ 0x01}, 1) // NUL, unbound
	assert.Contains(t, out.String(), "\a")
}

func TestHandleKeyInsertPrintable(t *testing.T) {
	s := newTestSession()
	s.handleKey([]byte("x"), 1)
	assert.Equal(t, "x", s.GetLine())
}

func TestDispatchKeyResolvesQueuedEscapeSequence(t *testing.T) {
	s := newTestSession()
	called := false
	s.bindSequence([]byte{0x1b, 'Z'}, func(ctx any, key []byte) bool {
		called = true
		assert.Equal(t, []byte{0x1b, 'Z'}, key)
		return true
	}, s)

	queued := []byte{'Z'}
	probe := func() (byte, bool) {
		if len(queued) == 0 {
			return 0, false
		}
		b := queued[0]
		queued = queued[1:]
		return b, true
	}
	s.dispatchKey([]byte{0x1b}, 1, probe)
	assert.True(t, called)
}

func TestDispatchKeyUsesLongestMatch(t *testing.T) {
	s := newTestSession()
	s.BindSpecial(KeyLeft, handleLeft, s)
	s.InsertText("ab")
	s.point = 2
	queued := []byte{'[', 'D'}
	probe := func() (byte, bool) {
		if len(queued) == 0 {
			return 0, false
		}
		b := queued[0]
		queued = queued[1:]
		return b, true
	}
	s.dispatchKey([]byte{0x1b}, 1, probe)
	assert.Equal(t, 1, s.GetPoint())
}
