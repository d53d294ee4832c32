package bwt

import "fmt"

// FormatError reports a problem with decoder input that is not the
// implementation's fault: a corrupt or out-of-range primary index.
type FormatError struct {
	Block int // ordinal of the block that failed, 0-based
	Msg   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bwt: block %d: %s", e.Block, e.Msg)
}

// Forward computes the Burrows-Wheeler Transform of s: the last column L of
// the matrix formed by all cyclic rotations of s sorted lexicographically,
// and the primary index i, the rank of the unrotated string s in that sorted
// order. Forward does not modify s.
//
// Forward tolerates any input, including the empty block (in which case l is
// empty and i is 0) and blocks of a single repeated byte.
func Forward(s []byte) (l []byte, i int) {
	n := len(s)
	if n == 0 {
		return nil, 0
	}
	pi := sortRotations(s)
	l = make([]byte, n)
	for idx, start := range pi {
		if start == 0 {
			l[idx] = s[n-1]
			i = idx
		} else {
			l[idx] = s[start-1]
		}
	}
	return l, i
}

// Inverse reconstructs the original block from its last column l and primary
// index i using the LF-mapping: a predecessor count and a cumulative count
// over l's byte histogram let the original string be walked out in O(n)
// without ever materializing the sorted rotation matrix.
//
// Inverse returns a *FormatError if i is outside [0, len(l)); block
// identifies which block ordinal to report in that error.
func Inverse(l []byte, i int, block int) ([]byte, error) {
	n := len(l)
	if n == 0 {
		if i != 0 {
			return nil, &FormatError{Block: block, Msg: fmt.Sprintf("primary index %d out of range for empty block", i)}
		}
		return nil, nil
	}
	if i < 0 || i >= n {
		return nil, &FormatError{Block: block, Msg: fmt.Sprintf("primary index %d out of range [0,%d)", i, n)}
	}

	// Count pass: histogram of byte values in l.
	var count [256]int
	for _, b := range l {
		count[b]++
	}

	// Predecessor pass: pred[idx] is the number of earlier positions in l
	// holding the same byte as l[idx], taken from a second histogram (running)
	// built up as the pass goes; count itself is left as the full histogram.
	pred := make([]int, n)
	var running [256]int
	for idx, b := range l {
		pred[idx] = running[b]
		running[b]++
	}

	// Cumulative pass: count[b] becomes the number of bytes in l strictly
	// less than b.
	sum := 0
	for b := 0; b < 256; b++ {
		c := count[b]
		count[b] = sum
		sum += c
	}

	// Walk the LF-mapping backwards from row i.
	out := make([]byte, n)
	idx := i
	for j := n - 1; j >= 0; j-- {
		out[j] = l[idx]
		idx = pred[idx] + count[l[idx]]
	}
	return out, nil
}
