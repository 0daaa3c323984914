// Package unicode8 provides the codepoint- and grapheme-cluster-level
// primitives the editing buffer needs: decoding a lead byte's expected
// sequence length, stepping backward by codepoint (for backspace), and
// stepping by grapheme cluster (for cursor motion and forward-delete).
//
// Codepoint and cluster segmentation intentionally disagree: backspace
// removes one codepoint, every other motion removes or crosses one
// grapheme cluster. Keeping both primitives in one package makes that
// asymmetry a deliberate API choice rather than an accident of how the
// caller happened to slice a string.
package unicode8

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// CharLen returns the length in bytes of the UTF-8 sequence that b0 can
// start, or 0 if b0 cannot legally start a sequence.
func CharLen(b0 byte) int {
	switch {
	case b0 < 0x80:
		return 1
	case b0&0xE0 == 0xC0:
		return 2
	case b0&0xF0 == 0xE0:
		return 3
	case b0&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// CharDecode validates that b is exactly one well-formed UTF-8 encoded
// codepoint and returns it. size is 0 if b is malformed or its length
// disagrees with CharLen(b[0]).
func CharDecode(b []byte) (r rune, size int) {
	if len(b) == 0 {
		return utf8.RuneError, 0
	}
	r, size = utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 0
	}
	if size != len(b) {
		return utf8.RuneError, 0
	}
	return r, size
}

// CharPrev returns the byte offset of the codepoint immediately before
// point in s[:end]. Unlike GraphemePrev, it steps by codepoint: a
// multi-codepoint grapheme cluster is crossed one codepoint at a time.
func CharPrev(s []byte, end, point int) int {
	if point <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRune(s[:point])
	if size == 0 {
		return point - 1
	}
	return point - size
}

// GraphemeNext returns the byte offset immediately following the
// grapheme cluster starting at point.
func GraphemeNext(s []byte, end, point int) int {
	if point >= end {
		return end
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(s[point:end]), -1)
	if len(cluster) == 0 {
		return point + 1
	}
	return point + len(cluster)
}

// GraphemePrev returns the byte offset of the grapheme cluster boundary
// immediately before point. point is assumed to already fall on a
// cluster boundary.
func GraphemePrev(s []byte, end, point int) int {
	if point <= 0 {
		return 0
	}
	cur := 0
	for cur < point {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(s[cur:end]), -1)
		n := len(cluster)
		if n == 0 {
			n = 1
		}
		next := cur + n
		if next >= point {
			return cur
		}
		cur = next
	}
	return cur
}

// GraphemeWidth returns the terminal column width of the grapheme
// cluster starting at point.
func GraphemeWidth(s []byte, end, point int) int {
	if point >= end {
		return 0
	}
	_, _, width, _ := uniseg.FirstGraphemeClusterInString(string(s[point:end]), -1)
	return width
}
