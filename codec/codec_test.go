package codec

import (
	"bytes"
	"testing"

	"github.com/burrowswheeler/bwt/block"
	"github.com/burrowswheeler/bwt/internal/testutil"
)

func roundTrip(t *testing.T, input []byte, useMTF bool) []byte {
	t.Helper()
	var encoded bytes.Buffer
	if err := forward(bytes.NewReader(input), &encoded, useMTF, block.Size); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	var decoded bytes.Buffer
	if err := inverse(bytes.NewReader(encoded.Bytes()), &decoded, useMTF, block.Size); err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	return decoded.Bytes()
}

func TestRoundTripBoundaryCases(t *testing.T) {
	cases := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"single byte", 1},
		{"exactly one block", block.Size},
		{"one block plus one byte", block.Size + 1},
	}
	for _, tc := range cases {
		for _, useMTF := range []bool{false, true} {
			t.Run(tc.name, func(t *testing.T) {
				input := bytes.Repeat([]byte{0x41}, tc.n)
				got := roundTrip(t, input, useMTF)
				if !bytes.Equal(got, input) {
					t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(input))
				}
			})
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	r := testutil.NewRand(42)
	for trial := 0; trial < 1000; trial++ {
		n := r.Intn(2*block.Size + 1)
		input := r.Bytes(n)
		for _, useMTF := range []bool{false, true} {
			got := roundTrip(t, input, useMTF)
			if !bytes.Equal(got, input) {
				t.Fatalf("trial %d (mtf=%v): round trip mismatch for %d-byte input", trial, useMTF, n)
			}
		}
	}
}

func TestTwoBlockBoundaryVector(t *testing.T) {
	input := bytes.Repeat([]byte{0x41}, block.Size+1)
	var encoded bytes.Buffer
	if err := Forward(bytes.NewReader(input), &encoded, false); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if encoded.Len() != 2*4 + block.Size + 1 {
		t.Fatalf("encoded length = %d, want %d", encoded.Len(), 2*4+block.Size+1)
	}
	var decoded bytes.Buffer
	if err := Inverse(bytes.NewReader(encoded.Bytes()), &decoded, false); err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if !bytes.Equal(decoded.Bytes(), input) {
		t.Fatal("round trip mismatch on two-block boundary vector")
	}
}

func TestBlockIndependence(t *testing.T) {
	r := testutil.NewRand(7)
	a := r.Bytes(block.Size)
	b := r.Bytes(block.Size)

	var encA, encB, encAB bytes.Buffer
	if err := Forward(bytes.NewReader(a), &encA, true); err != nil {
		t.Fatal(err)
	}
	if err := Forward(bytes.NewReader(b), &encB, true); err != nil {
		t.Fatal(err)
	}
	if err := Forward(bytes.NewReader(append(append([]byte{}, a...), b...)), &encAB, true); err != nil {
		t.Fatal(err)
	}

	want := append(append([]byte{}, encA.Bytes()...), encB.Bytes()...)
	if !bytes.Equal(encAB.Bytes(), want) {
		t.Fatal("encoding concatenated blocks differs from concatenating individual encodings")
	}
}

func TestForwardConcurrentMatchesForward(t *testing.T) {
	r := testutil.NewRand(99)
	input := r.Bytes(10 * block.Size)
	for _, useMTF := range []bool{false, true} {
		var seq bytes.Buffer
		if err := Forward(bytes.NewReader(input), &seq, useMTF); err != nil {
			t.Fatal(err)
		}
		var conc bytes.Buffer
		if err := ForwardConcurrent(bytes.NewReader(input), &conc, useMTF, 4); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(seq.Bytes(), conc.Bytes()) {
			t.Fatalf("ForwardConcurrent(useMTF=%v) output differs from Forward", useMTF)
		}
	}
}

func TestNilStreamsRejected(t *testing.T) {
	if err := Forward(nil, &bytes.Buffer{}, false); err != ErrNilStream {
		t.Fatalf("Forward(nil, ...): err = %v, want ErrNilStream", err)
	}
	if err := Forward(bytes.NewReader(nil), nil, false); err != ErrNilStream {
		t.Fatalf("Forward(..., nil, ...): err = %v, want ErrNilStream", err)
	}
	if err := Inverse(nil, &bytes.Buffer{}, false); err != ErrNilStream {
		t.Fatalf("Inverse(nil, ...): err = %v, want ErrNilStream", err)
	}
}
