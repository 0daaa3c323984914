package unicode8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharLen(t *testing.T) {
	assert.Equal(t, 1, CharLen('a'))
	assert.Equal(t, 2, CharLen(0xC3))
	assert.Equal(t, 3, CharLen(0xE2))
	assert.Equal(t, 4, CharLen(0xF0))
	assert.Equal(t, 0, CharLen(0x80))
	assert.Equal(t, 0, CharLen(0xFF))
}

func TestCharDecode(t *testing.T) {
	r, size := CharDecode([]byte("a"))
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, size)

	r, size = CharDecode([]byte("\xc3\xa9")) // é
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, size)

	_, size = CharDecode([]byte{0xC3})
	assert.Equal(t, 0, size)

	_, size = CharDecode([]byte{0xFF})
	assert.Equal(t, 0, size)
}

func TestCharPrev(t *testing.T) {
	s := []byte("a\xc3\xa9b") // a, é, b
	assert.Equal(t, 0, CharPrev(s, len(s), 1))
	assert.Equal(t, 1, CharPrev(s, len(s), 3))
	assert.Equal(t, 0, CharPrev(s, len(s), 0))
}

func TestGraphemeNextPrev(t *testing.T) {
	s := []byte("ab")
	n := GraphemeNext(s, len(s), 0)
	assert.Equal(t, 1, n)
	p := GraphemePrev(s, len(s), n)
	assert.Equal(t, 0, p)
}

func TestGraphemeWidth(t *testing.T) {
	assert.Equal(t, 1, GraphemeWidth([]byte("a"), 1, 0))
	assert.Equal(t, 0, GraphemeWidth([]byte("a"), 1, 1))
}
