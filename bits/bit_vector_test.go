package bits

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBinary(t *testing.T, text string) *BitVector {
	t.Helper()
	v, err := NewFromBinary(text)
	require.NoError(t, err)
	return v
}

func TestNewFromBinary(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
		ones  int
	}{
		{"empty", "", 0},
		{"all zeros", "00000", 0},
		{"single one", "1", 1},
		{"alternating", "10101010", 4},
		{"crosses word boundary", "1" + strings.Repeat("0", 68) + "1", 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := mustBinary(t, tc.input)
			require.Equal(t, len(tc.input), v.Len())
			require.Equal(t, tc.ones, v.CountOnes())
			require.Equal(t, len(tc.input)-tc.ones, v.CountZeros())
			for i, r := range tc.input {
				require.Equal(t, r == '1', v.At(i), "bit %d", i)
			}
		})
	}

	_, err := NewFromBinary("10a1")
	require.Error(t, err)
}

func TestSetClearFlip(t *testing.T) {
	t.Parallel()
	v := New(130)
	for _, i := range []int{0, 63, 64, 127, 129} {
		v.Set(i)
		require.True(t, v.At(i))
	}
	require.Equal(t, 5, v.CountOnes())

	v.Flip(64)
	require.False(t, v.At(64))
	v.Flip(65)
	require.True(t, v.At(65))

	v.Clear(129)
	require.False(t, v.At(129))
	require.Equal(t, 4, v.CountOnes())

	v.Reset()
	require.Equal(t, 0, v.CountOnes())
}

func TestOutOfRangePanics(t *testing.T) {
	t.Parallel()
	v := New(10)
	for _, f := range []func(){
		func() { v.At(10) },
		func() { v.Set(-1) },
		func() { v.Flip(11) },
		func() { v.Clear(100) },
		func() { v.Word32(1) },
	} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				require.True(t, errors.Is(err, ErrIndexOutOfRange))
			}()
			f()
		}()
	}
}

func TestWord32(t *testing.T) {
	t.Parallel()
	v := New(96)
	v.Set(0)
	v.Set(33)
	v.Set(95)
	require.Equal(t, 3, v.Len32())
	require.Equal(t, uint32(1), v.Word32(0))
	require.Equal(t, uint32(2), v.Word32(1))
	require.Equal(t, uint32(1)<<31, v.Word32(2))
}

func TestNewRandomKeepsTailClear(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{1, 5, 63, 64, 65, 100, 1024} {
		v := NewRandom(size, r)
		words := v.Words()
		if rem := size % 64; rem != 0 {
			require.Zero(t, words[len(words)-1]>>uint(rem), "size %d", size)
		}
		require.LessOrEqual(t, v.CountOnes(), size)

		before := v.Copy()
		v.Randomize(r)
		require.Equal(t, size, v.Len())
		if size >= 64 {
			require.False(t, v.Equal(before), "size %d", size)
		}
	}
}

func TestExchangeBits(t *testing.T) {
	t.Parallel()
	a := mustBinary(t, "11110000")
	b := mustBinary(t, "00001111")
	mask := mustBinary(t, "10011001")

	require.NoError(t, ExchangeBits(a, b, mask))
	require.True(t, a.Equal(mustBinary(t, "01101001")), "got %v", a)
	require.True(t, b.Equal(mustBinary(t, "10010110")), "got %v", b)
}

func TestExchangeBitsLengthMismatch(t *testing.T) {
	t.Parallel()
	for _, sizes := range [][3]int{{8, 9, 8}, {9, 8, 8}, {8, 8, 7}, {0, 1, 0}} {
		err := ExchangeBits(New(sizes[0]), New(sizes[1]), New(sizes[2]))
		require.ErrorIs(t, err, ErrLengthMismatch, "sizes %v", sizes)
	}
}

func TestCopyEqualHash(t *testing.T) {
	t.Parallel()
	a := mustBinary(t, "1011001110001")
	c := a.Copy()
	require.True(t, a.Equal(c))
	require.Equal(t, a.Hash(), c.Hash())

	c.Flip(3)
	require.False(t, a.Equal(c))
	require.NotEqual(t, a.Hash(), c.Hash())

	require.NoError(t, c.CopyFrom(a))
	require.True(t, a.Equal(c))
	require.ErrorIs(t, New(3).CopyFrom(a), ErrLengthMismatch)

	require.NotEqual(t, New(8).Hash(), New(9).Hash())
}

func TestString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "<empty>", New(0).String())
	require.Equal(t, "101 (3 bits)", mustBinary(t, "101").String())
}
