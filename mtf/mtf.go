// Package mtf implements Move-To-Front coding: a dictionary-free coder that
// maintains a recently-used list of the 256 possible byte values and emits,
// for each input byte, its current position in that list before moving it
// to the front.
package mtf

// List is the 256-entry move-to-front symbol list Y. The zero value is not
// usable; call Reset before the first use or rely on Encode/Decode, which
// reset it for every call since no state is meant to survive across blocks.
type List struct {
	y [256]byte
}

// Reset restores the list to the identity permutation Y[i] = i.
func (l *List) Reset() {
	for i := range l.y {
		l.y[i] = byte(i)
	}
}

// Encode move-to-front encodes src into dst, which must have the same
// length as src, and reinitializes the list beforehand. For each byte of
// src, dst receives the byte's current position in the list, and that
// position is moved to the front.
//
// A sequential search for each byte is used rather than an index map: the
// Burrows-Wheeler Transform clusters repeated bytes together, so frequent
// symbols stay near the front of the list and the search stays short.
func (l *List) Encode(dst, src []byte) {
	l.Reset()
	for i, v := range src {
		var pos byte
		for pos = 0; l.y[pos] != v; pos++ {
		}
		copy(l.y[1:int(pos)+1], l.y[:pos])
		l.y[0] = v
		dst[i] = pos
	}
}

// Decode reverses Encode: dst receives the byte at each position recorded
// in src, and that position is moved to the front of the list.
func (l *List) Decode(dst, src []byte) {
	l.Reset()
	for i, pos := range src {
		v := l.y[pos]
		copy(l.y[1:int(pos)+1], l.y[:pos])
		l.y[0] = v
		dst[i] = v
	}
}
