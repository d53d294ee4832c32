// Package block implements the on-wire framing of a transformed stream: a
// concatenation of (primary index, payload) records, one per input block,
// with no outer length prefix or delimiter. The decoder recovers each
// payload's length from however many bytes are actually available, capped
// at the agreed block size.
package block

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Size is the default block size in bytes: the maximum number of source
// bytes grouped into one (I, L) record. Callers that need a different block
// size construct a Reader/Writer with an explicit size instead of relying on
// this constant; the on-wire format itself carries no size field, so an
// encoder and decoder must agree on it out of band.
const Size = 4096

// FormatError reports a problem with an encoded stream that is not the
// implementation's fault: a truncated header or a header with no following
// payload.
type FormatError struct {
	Block int // ordinal of the record that failed, 0-based
	Msg   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("block: record %d: %s", e.Block, e.Msg)
}

// Reader reads fixed-size blocks of raw source bytes, the input side of the
// forward transform's pipeline (distinct from ReadRecord, which reads back
// already-transformed (I, payload) records).
type Reader struct {
	r    io.Reader
	size int
}

// NewReader returns a Reader that reads blocks of at most size bytes from r.
func NewReader(r io.Reader, size int) *Reader {
	return &Reader{r: r, size: size}
}

// ReadBlock reads up to the Reader's block size in bytes from the source. It returns io.EOF (with
// a nil slice) once the source is exhausted; a short, non-empty read
// indicates the final block.
func (br *Reader) ReadBlock() ([]byte, error) {
	buf := make([]byte, br.size)
	n, err := io.ReadFull(br.r, buf)
	switch {
	case err == io.ErrUnexpectedEOF:
		return buf[:n], nil
	case err != nil:
		return nil, err
	default:
		return buf, nil
	}
}

// Writer writes (primary index, payload) records to an underlying sink.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteRecord writes i as a little-endian 32-bit integer followed
// immediately by l. The length of l is not recorded; the decoder recovers it
// positionally.
func (bw *Writer) WriteRecord(i int32, l []byte) error {
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(i))
	if _, err := bw.w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := bw.w.Write(l)
	return err
}

// ReadRecord reads one (I, payload) record from r, where the payload is up
// to size bytes, determined by how many bytes are available before the
// stream ends. It returns io.EOF if r is exhausted before any byte of a new
// record is read.
//
// A header read that is truncated partway through, or that is followed by
// zero payload bytes, is reported as a *FormatError identifying ordinal as
// the failing record.
func ReadRecord(r io.Reader, size int, ordinal int) (i int32, payload []byte, err error) {
	var hdr [4]byte
	n, err := io.ReadFull(r, hdr[:])
	switch {
	case err == io.EOF && n == 0:
		return 0, nil, io.EOF
	case err == io.ErrUnexpectedEOF || (err == io.EOF && n > 0):
		return 0, nil, &FormatError{Block: ordinal, Msg: "truncated header"}
	case err != nil:
		return 0, nil, err
	}
	i = int32(binary.LittleEndian.Uint32(hdr[:]))

	buf := make([]byte, size)
	n, err = io.ReadFull(r, buf)
	switch {
	case err == io.ErrUnexpectedEOF:
		payload = buf[:n]
	case err == io.EOF:
		return 0, nil, &FormatError{Block: ordinal, Msg: "header with no payload"}
	case err != nil:
		return 0, nil, err
	default:
		payload = buf
	}
	if len(payload) == 0 {
		return 0, nil, &FormatError{Block: ordinal, Msg: "header with no payload"}
	}
	return i, payload, nil
}
