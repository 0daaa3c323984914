//go:build unix

package repl

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// WatchResize installs a SIGWINCH handler that forces a redisplay as
// soon as the terminal geometry changes, rather than waiting for the
// next keystroke to notice it. The returned func stops watching.
func (p *Prompt) WatchResize() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				p.session.ResetLineState()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
