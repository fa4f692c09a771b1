package rng

import (
	"errors"
	"fmt"

	"gaops/bits"

	"golang.org/x/exp/slices"
)

var ErrSampleSize = errors.New("rng: sample size out of range")

// insertionCutoff is the largest k sampled by sorted insertion. Above it the
// quadratic shifting loses to Floyd's marker set.
const insertionCutoff = 8

// Sample appends to dst[:0] k distinct indices drawn uniformly without
// replacement from [0,n) and returns the result. Every k-subset is equally
// likely. The order of the returned indices is unspecified.
func (s *Source) Sample(n, k int, dst []int) ([]int, error) {
	if n < 0 || k < 0 || k > n {
		return dst[:0], fmt.Errorf("%w: k=%d, n=%d", ErrSampleSize, k, n)
	}
	dst = dst[:0]
	switch {
	case k == 0:
		return dst, nil
	case k <= insertionCutoff:
		return s.sampleInsertion(n, k, dst), nil
	case 2*k <= n:
		return s.sampleFloyd(n, k, dst), nil
	default:
		return s.sampleComplement(n, k, dst), nil
	}
}

// sampleInsertion keeps the chosen indices sorted. The i-th draw picks a rank
// among the n-i unused indices and walks past the used ones below it.
func (s *Source) sampleInsertion(n, k int, dst []int) []int {
	for i := 0; i < k; i++ {
		v := s.IntN(n - i)
		j := 0
		for ; j < len(dst) && dst[j] <= v; j++ {
			v++
		}
		dst = slices.Insert(dst, j, v)
	}
	return dst
}

// sampleFloyd is Floyd's algorithm: O(k) draws, membership kept in a marker
// vector that is cleared again before returning.
func (s *Source) sampleFloyd(n, k int, dst []int) []int {
	mark := s.marker(n)
	for j := n - k; j < n; j++ {
		t := s.IntN(j + 1)
		if mark.At(t) {
			t = j
		}
		mark.Set(t)
		dst = append(dst, t)
	}
	for _, t := range dst {
		mark.Clear(t)
	}
	return dst
}

// sampleComplement draws the n-k excluded indices and returns the rest.
func (s *Source) sampleComplement(n, k int, dst []int) []int {
	mark := s.marker(n)
	excluded := n - k
	for j := n - excluded; j < n; j++ {
		t := s.IntN(j + 1)
		if mark.At(t) {
			t = j
		}
		mark.Set(t)
	}
	for i := 0; i < n; i++ {
		if mark.At(i) {
			mark.Clear(i)
			continue
		}
		dst = append(dst, i)
	}
	return dst
}

func (s *Source) marker(n int) *bits.BitVector {
	if s.mark == nil || s.mark.Len() < n {
		s.mark = bits.New(n)
	}
	return s.mark
}
