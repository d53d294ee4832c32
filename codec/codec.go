// Package codec wires the block I/O framing, rotation sort, Burrows-Wheeler
// transform, and move-to-front coder into the two public operations of the
// BWT codec: Forward and Inverse.
package codec

import (
	"fmt"
	"io"

	"github.com/burrowswheeler/bwt/block"
	"github.com/burrowswheeler/bwt/bwt"
	"github.com/burrowswheeler/bwt/internal"
	"github.com/burrowswheeler/bwt/mtf"
)

// ErrNilStream is returned by Forward and Inverse when src or dst is nil.
var ErrNilStream error = internal.Error("source or sink is nil")

// Forward reads src to exhaustion in Size-byte blocks, Burrows-Wheeler
// transforms each one, optionally move-to-front codes the resulting last
// column, and writes each (primary index, payload) record to dst in order.
//
// useMTF is not recorded anywhere in the stream; Inverse must be called with
// the same value to recover the original bytes.
func Forward(src io.Reader, dst io.Writer, useMTF bool) error {
	return forward(src, dst, useMTF, block.Size)
}

// ForwardSize behaves like Forward but reads size-byte blocks instead of the
// package default. The decoder must be given the same size via InverseSize.
func ForwardSize(src io.Reader, dst io.Writer, useMTF bool, size int) error {
	return forward(src, dst, useMTF, size)
}

func forward(src io.Reader, dst io.Writer, useMTF bool, size int) error {
	if src == nil || dst == nil {
		return ErrNilStream
	}
	br := block.NewReader(src, size)
	bw := block.NewWriter(dst)
	var m mtf.List

	for ordinal := 0; ; ordinal++ {
		buf, err := br.ReadBlock()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("codec: reading block %d: %w", ordinal, err)
		}

		l, i := bwt.Forward(buf)
		if useMTF && len(l) > 0 {
			coded := make([]byte, len(l))
			m.Encode(coded, l)
			l = coded
		}
		if err := bw.WriteRecord(int32(i), l); err != nil {
			return fmt.Errorf("codec: writing block %d: %w", ordinal, err)
		}
	}
}

// Inverse reads (primary index, payload) records from src to exhaustion,
// reverses the move-to-front coding (if useMTF) and the Burrows-Wheeler
// Transform of each, and writes the recovered bytes to dst in order.
//
// useMTF must match the value given to the Forward call that produced src;
// a mismatch is not detectable and produces silently corrupted output.
func Inverse(src io.Reader, dst io.Writer, useMTF bool) error {
	return inverse(src, dst, useMTF, block.Size)
}

// InverseSize behaves like Inverse but expects size-byte blocks instead of
// the package default, matching whatever size ForwardSize was given.
func InverseSize(src io.Reader, dst io.Writer, useMTF bool, size int) error {
	return inverse(src, dst, useMTF, size)
}

func inverse(src io.Reader, dst io.Writer, useMTF bool, size int) error {
	if src == nil || dst == nil {
		return ErrNilStream
	}
	var m mtf.List

	for ordinal := 0; ; ordinal++ {
		i, payload, err := block.ReadRecord(src, size, ordinal)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("codec: reading block %d: %w", ordinal, err)
		}

		l := payload
		if useMTF {
			decoded := make([]byte, len(l))
			m.Decode(decoded, l)
			l = decoded
		}
		out, err := bwt.Inverse(l, int(i), ordinal)
		if err != nil {
			return fmt.Errorf("codec: reversing block %d: %w", ordinal, err)
		}
		if _, err := dst.Write(out); err != nil {
			return fmt.Errorf("codec: writing block %d: %w", ordinal, err)
		}
	}
}
