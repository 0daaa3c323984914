// Package tinyline implements a minimal interactive line editor for
// character terminals: a single editable line, built-in emacs-style
// key bindings (motion, kill/yank, interrupt), an extensible keymap for
// binding additional single bytes or escape sequences, and an
// incremental redisplay engine that repaints only what changed.
//
// A Session owns one read/write stream pair and one edit buffer. It is
// not safe for concurrent use: ReadLine must run to completion before
// the next call begins, and key handlers run synchronously on the
// calling goroutine.
package tinyline
