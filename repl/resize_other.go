//go:build !unix

package repl

// WatchResize is a no-op on platforms without SIGWINCH; the next
// keystroke's redisplay still reflects the new width.
func (p *Prompt) WatchResize() (stop func()) {
	return func() {}
}
