//go:build unix

// Package ttyio isolates every call that touches an *os.File's terminal
// attributes or availability: entering and leaving raw mode, querying
// the window width, detecting whether a stream is a real terminal, and
// probing for a byte without blocking. Everything above this package
// works with io.Reader/io.Writer; only this layer knows about file
// descriptors and ioctls.
package ttyio

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// State holds the terminal attributes captured by MakeRaw, to be
// handed back to Restore.
type State struct {
	termios unix.Termios
}

// IsTerminal reports whether f refers to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// MakeRaw switches f into raw mode: no input processing, no local echo
// or line buffering, no signal generation from the keyboard, one byte
// satisfies a read. Output post-processing is kept on (OPOST|ONLCR are
// set) so a bare '\n' still comes out as a carriage return plus line
// feed. The returned State restores the prior
// attributes.
func MakeRaw(f *os.File) (*State, error) {
	fd := int(f.Fd())
	orig, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	st := &State{termios: *orig}

	raw := *orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag |= unix.OPOST | unix.ONLCR
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, err
	}
	return st, nil
}

// Restore reverts f to the attributes captured by a prior MakeRaw call.
// A nil state is a no-op.
func Restore(f *os.File, s *State) error {
	if s == nil {
		return nil
	}
	t := s.termios
	return unix.IoctlSetTermios(int(f.Fd()), ioctlSetTermios, &t)
}

// Width returns f's terminal column count, or 80 if it cannot be
// determined (not a terminal, or the ioctl failed).
func Width(f *os.File) int {
	if f == nil {
		return 80
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// TryReadByte attempts a single non-blocking read of one byte from f.
// ok is false if no byte was immediately available or the read failed;
// the caller must not wait on a false result, it must give up.
func TryReadByte(f *os.File) (b byte, ok bool) {
	if f == nil {
		return 0, false
	}
	fd := int(f.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		return 0, false
	}
	defer unix.SetNonblock(fd, false)

	buf := make([]byte, 1)
	n, err := unix.Read(fd, buf)
	if err != nil || n <= 0 {
		return 0, false
	}
	return buf[0], true
}
