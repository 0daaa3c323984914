package tinyline

// KeyHandler is called when its bound byte or byte sequence is
// dispatched. ctx is whatever value was bound alongside the handler
// (built-in bindings pass the owning Session); key is the full matched
// sequence. A false return rings the bell, signalling "this key did
// nothing here".
type KeyHandler func(ctx any, key []byte) bool

// SpecialKey names one of the multi-byte escape sequences a terminal
// sends for a non-printable key.
type SpecialKey int

const (
	KeyUp SpecialKey = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
)

// keymapNode is one level of the 256-wide dispatch trie: a byte either
// terminates at a bound handler, continues into a child node for the
// next byte of a longer sequence, or does neither (unbound).
type keymapNode struct {
	handler [256]KeyHandler
	context [256]any
	child   [256]*keymapNode
}

func newKeymapNode() *keymapNode {
	return &keymapNode{}
}

// BindKey binds a single byte to a handler, replacing any previous
// binding for that byte at the top level.
func (s *Session) BindKey(b byte, h KeyHandler, ctx any) {
	s.keymap.handler[b] = h
	s.keymap.context[b] = ctx
}

// bindSequence binds a multi-byte sequence, creating intermediate trie
// nodes as needed.
func (s *Session) bindSequence(seq []byte, h KeyHandler, ctx any) {
	if len(seq) == 0 {
		return
	}
	node := s.keymap
	for i := 0; i < len(seq)-1; i++ {
		c := seq[i]
		if node.child[c] == nil {
			node.child[c] = newKeymapNode()
		}
		node = node.child[c]
	}
	last := seq[len(seq)-1]
	node.handler[last] = h
	node.context[last] = ctx
}

// BindSpecial binds one of the named special keys to its conventional
// escape sequence.
func (s *Session) BindSpecial(k SpecialKey, h KeyHandler, ctx any) {
	switch k {
	case KeyUp:
		s.bindSequence([]byte{0x1b, '[', 'A'}, h, ctx)
	case KeyDown:
		s.bindSequence([]byte{0x1b, '[', 'B'}, h, ctx)
	case KeyLeft:
		s.bindSequence([]byte{0x1b, '[', 'D'}, h, ctx)
	case KeyRight:
		s.bindSequence([]byte{0x1b, '[', 'C'}, h, ctx)
	case KeyHome:
		s.bindSequence([]byte{0x1b, 'O', 'H'}, h, ctx)
	case KeyEnd:
		s.bindSequence([]byte{0x1b, 'O', 'F'}, h, ctx)
	case KeyInsert:
		s.bindSequence([]byte{0x1b, '[', '2', '~'}, h, ctx)
	case KeyDelete:
		s.bindSequence([]byte{0x1b, '[', '3', '~'}, h, ctx)
	}
}
