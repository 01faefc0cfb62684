package scanner

import (
	"bufio"
	"io"
)

// Reader pulls runes from a stream one at a time and lets the caller push
// the last rune back so it is read again. The scanner only ever needs one
// rune of lookahead, so the pushback store is a single slot rather than a
// queue.
type Reader struct {
	br      *bufio.Reader
	pending rune
	ok      bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Read returns the pushed-back rune if one is pending, otherwise the next
// rune from the stream. The second result is false once the stream is
// exhausted; read errors end the stream the same way.
func (r *Reader) Read() (rune, bool) {
	if r.ok {
		r.ok = false
		return r.pending, true
	}
	ch, _, err := r.br.ReadRune()
	if err != nil {
		return 0, false
	}
	return ch, true
}

// Unread stores ch so the next Read returns it before touching the stream.
func (r *Reader) Unread(ch rune) {
	r.pending = ch
	r.ok = true
}
