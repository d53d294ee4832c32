package bwt

import "sort"

// sortRotations returns the permutation pi of 0..len(s) such that rotation
// pi[i] precedes rotation pi[i+1] in lexicographic order of their unrolled
// n-byte cyclic forms. It tolerates any byte distribution, including blocks
// of a single repeated byte.
//
// The sort runs in two stages. The first bucket-sorts every rotation by its
// two leading bytes using a pair of stable counting sorts, which is linear
// in n and already leaves real-world input in runs short enough that the
// second stage's comparison sort over each run is cheap even though it is
// worst-case quadratic in the run length.
func sortRotations(s []byte) []int {
	n := len(s)
	pi := make([]int, n)
	if n <= 1 {
		for i := range pi {
			pi[i] = i
		}
		return pi
	}

	var hist [256]int
	for _, b := range s {
		hist[b]++
	}
	var offsets [256]int
	sum := 0
	for b := 0; b < 256; b++ {
		offsets[b] = sum
		sum += hist[b]
	}

	// Pass 1: stable counting sort of rotation starts by their second byte.
	v := make([]int, n)
	cursor := offsets
	for k := 0; k < n; k++ {
		b := s[wrap(k+1, n)]
		v[cursor[b]] = k
		cursor[b]++
	}

	// Pass 2: stable counting sort of the result by the first byte. Because
	// pass 1 was stable, rotations that tie on their first byte remain
	// ordered by their second, so pi is now sorted by the two-byte prefix.
	cursor = offsets
	for _, k := range v {
		b := s[k]
		pi[cursor[b]] = k
		cursor[b]++
	}

	// Step 2: refine every run of rotations sharing a two-byte prefix.
	start := 0
	for start < n {
		end := start + 1
		for end < n && samePrefix(s, pi[start], pi[end], n) {
			end++
		}
		if end-start > 1 {
			refineRun(pi[start:end], s, n)
		}
		start = end
	}
	return pi
}

func samePrefix(s []byte, a, b, n int) bool {
	return s[a] == s[b] && s[wrap(a+1, n)] == s[wrap(b+1, n)]
}

// refineRun sorts a slice of rotation starting indices that already agree on
// their first two bytes, comparing the remaining n-2 bytes of each rotation
// (wrapping modulo n) to break the tie.
func refineRun(run []int, s []byte, n int) {
	sort.Slice(run, func(i, j int) bool {
		a, b := run[i], run[j]
		for k := 2; k < n; k++ {
			ca := s[wrap(a+k, n)]
			cb := s[wrap(b+k, n)]
			if ca != cb {
				return ca < cb
			}
		}
		return false
	})
}

// wrap returns k mod n for 0 <= k < 2n, which is the only range the
// comparator and bucket passes above ever produce.
func wrap(k, n int) int {
	if k >= n {
		return k - n
	}
	return k
}
