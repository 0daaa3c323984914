//go:build !unix

package ttyio

import "os"

// State holds the terminal attributes captured by MakeRaw.
type State struct{}

// IsTerminal always reports false on platforms without a termios model.
func IsTerminal(f *os.File) bool { return false }

// MakeRaw is unsupported outside unix and always returns an error.
// IsTerminal reports false here, so sessions on these platforms use
// non-interactive line mode and never call it.
func MakeRaw(f *os.File) (*State, error) {
	return nil, errUnsupported
}

// Restore is a no-op on platforms where MakeRaw never succeeds.
func Restore(f *os.File, s *State) error { return nil }

// Width always falls back to the conventional default.
func Width(f *os.File) int { return 80 }

// TryReadByte never has a byte to offer without blocking on this
// platform; dispatch falls back to treating the current key as final.
func TryReadByte(f *os.File) (byte, bool) { return 0, false }

var errUnsupported = platformError("raw terminal mode is not supported on this platform")

type platformError string

func (e platformError) Error() string { return string(e) }
