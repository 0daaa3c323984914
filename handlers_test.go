package tinyline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleBackspaceRemovesPrecedingCodepoint(t *testing.T) {
	s := newTestSession()
	s.InsertText("café")
	assert.True(t, handleBackspace(s, nil))
	assert.Equal(t, "caf", s.GetLine())
}

func TestHandleBackspaceAtStartDoesNothing(t *testing.T) {
	s := newTestSession()
	assert.False(t, handleBackspace(s, nil))
}

func TestHandleDeleteForwardRemovesGrapheme(t *testing.T) {
	s := newTestSession()
	s.InsertText("abc")
	s.point = 0
	assert.True(t, handleDeleteForward(s, nil))
	assert.Equal(t, "bc", s.GetLine())
}

func TestHandleKillAndYank(t *testing.T) {
	s := newTestSession()
	s.InsertText("hello world")
	s.point = 5
	assert.True(t, handleKill(s, nil))
	assert.Equal(t, "hello", s.GetLine())

	s.point = 0
	assert.True(t, handleYank(s, nil))
	assert.Equal(t, " worldhello", s.GetLine())
}

func TestHandleKillAtEndOfLineIsNoOp(t *testing.T) {
	s := newTestSession()
	s.InsertText("hello")
	assert.True(t, handleKill(s, nil))
	assert.Equal(t, "hello", s.GetLine())
}

func TestHandleYankWithEmptyKillRingFails(t *testing.T) {
	s := newTestSession()
	assert.False(t, handleYank(s, nil))
}

func TestHandleStartAndEndOfLine(t *testing.T) {
	s := newTestSession()
	s.InsertText("abc")
	assert.True(t, handleStartOfLine(s, nil))
	assert.Equal(t, 0, s.GetPoint())
	assert.True(t, handleEndOfLine(s, nil))
	assert.Equal(t, 3, s.GetPoint())
}

func TestHandleInterruptClearsAndCommits(t *testing.T) {
	s := newTestSession()
	s.InsertText("abc")
	assert.True(t, handleInterrupt(s, nil))
	assert.Equal(t, "", s.GetLine())
	assert.True(t, s.done)
}

func TestHandleEraseToBOL(t *testing.T) {
	s := newTestSession()
	s.InsertText("abcdef")
	s.point = 3
	assert.True(t, handleEraseToBOL(s, nil))
	assert.Equal(t, "def", s.GetLine())
	assert.Equal(t, 0, s.GetPoint())
}
