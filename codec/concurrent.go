package codec

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/burrowswheeler/bwt/block"
	"github.com/burrowswheeler/bwt/bwt"
	"github.com/burrowswheeler/bwt/mtf"
)

// ForwardConcurrent behaves exactly like Forward — byte-for-byte identical
// output — but spreads the Burrows-Wheeler transform and move-to-front
// coding of independent blocks across up to workers goroutines at a time.
// Blocks are still read from src and written to dst in their original order;
// only the CPU-bound transform step runs concurrently.
//
// workers <= 1 is equivalent to calling Forward directly. This realizes the
// optional per-block parallelism spec.md §5 allows: nothing about the wire
// format changes, since blocks never share state with one another.
func ForwardConcurrent(src io.Reader, dst io.Writer, useMTF bool, workers int) error {
	return forwardConcurrent(src, dst, useMTF, workers, block.Size)
}

// ForwardConcurrentSize behaves like ForwardConcurrent but reads size-byte
// blocks instead of the package default.
func ForwardConcurrentSize(src io.Reader, dst io.Writer, useMTF bool, workers, size int) error {
	return forwardConcurrent(src, dst, useMTF, workers, size)
}

func forwardConcurrent(src io.Reader, dst io.Writer, useMTF bool, workers, size int) error {
	if src == nil || dst == nil {
		return ErrNilStream
	}
	if workers <= 1 {
		return forward(src, dst, useMTF, size)
	}

	br := block.NewReader(src, size)

	var blocks [][]byte
	for {
		buf, err := br.ReadBlock()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("codec: reading block %d: %w", len(blocks), err)
		}
		blocks = append(blocks, buf)
	}
	if len(blocks) == 0 {
		return nil
	}

	type record struct {
		i int32
		l []byte
	}
	records := make([]record, len(blocks))

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for ordinal, buf := range blocks {
		ordinal, buf := ordinal, buf
		g.Go(func() error {
			var m mtf.List
			l, i := bwt.Forward(buf)
			if useMTF && len(l) > 0 {
				coded := make([]byte, len(l))
				m.Encode(coded, l)
				l = coded
			}
			records[ordinal] = record{i: int32(i), l: l}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("codec: transforming blocks: %w", err)
	}

	bw := block.NewWriter(dst)
	for ordinal, rec := range records {
		if err := bw.WriteRecord(rec.i, rec.l); err != nil {
			return fmt.Errorf("codec: writing block %d: %w", ordinal, err)
		}
	}
	return nil
}
