package bits

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

var (
	ErrIndexOutOfRange = errors.New("bits: index out of range")
	ErrLengthMismatch  = errors.New("bits: length mismatch")
)

// WordSource supplies uniformly distributed 64-bit words.
type WordSource interface {
	Uint64() uint64
}

// BitVector is a fixed-length bit sequence packed 64 bits per word. Bit i
// lives in word i/64 at position i%64. Bits past Len in the last word are
// always zero.
type BitVector struct {
	data []uint64
	size int
}

func New(size int) *BitVector {
	if size < 0 {
		panic(fmt.Errorf("%w: negative length %d", ErrIndexOutOfRange, size))
	}
	return &BitVector{
		data: make([]uint64, (size+63)/64),
		size: size,
	}
}

// NewRandom returns a vector whose bits are independent fair coin flips.
func NewRandom(size int, src WordSource) *BitVector {
	v := New(size)
	v.Randomize(src)
	return v
}

// Randomize overwrites every bit with a fair coin flip.
func (v *BitVector) Randomize(src WordSource) {
	for i := range v.data {
		v.data[i] = src.Uint64()
	}
	v.maskTail()
}

// NewFromBinary parses a string of '0' and '1', index 0 first.
func NewFromBinary(text string) (*BitVector, error) {
	v := New(len(text))
	for i, r := range text {
		switch r {
		case '1':
			v.data[i>>6] |= uint64(1) << (uint(i) & 63)
		case '0':
		default:
			return nil, fmt.Errorf("bits: invalid binary text %q", text)
		}
	}
	return v, nil
}

func (v *BitVector) Len() int {
	return v.size
}

// Len32 is the number of 32-bit blocks needed to hold the vector.
func (v *BitVector) Len32() int {
	return (v.size + 31) >> 5
}

func (v *BitVector) check(index int) {
	if index < 0 || index >= v.size {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, v.size))
	}
}

func (v *BitVector) At(index int) bool {
	v.check(index)
	return v.data[index>>6]&(uint64(1)<<(uint(index)&63)) != 0
}

func (v *BitVector) Set(index int) {
	v.check(index)
	v.data[index>>6] |= uint64(1) << (uint(index) & 63)
}

func (v *BitVector) Clear(index int) {
	v.check(index)
	v.data[index>>6] &^= uint64(1) << (uint(index) & 63)
}

func (v *BitVector) Flip(index int) {
	v.check(index)
	v.data[index>>6] ^= uint64(1) << (uint(index) & 63)
}

// Reset clears every bit.
func (v *BitVector) Reset() {
	clear(v.data)
}

// Word32 returns bits [32j, 32j+32) as an unsigned integer.
func (v *BitVector) Word32(j int) uint32 {
	if j < 0 || j >= v.Len32() {
		panic(fmt.Errorf("%w: block %d not in [0,%d)", ErrIndexOutOfRange, j, v.Len32()))
	}
	return uint32(v.data[j>>1] >> ((uint(j) & 1) << 5))
}

// Words exposes the backing storage. Callers must keep the tail bits zero.
func (v *BitVector) Words() []uint64 {
	return v.data
}

func (v *BitVector) CountOnes() int {
	n := 0
	for _, w := range v.data {
		n += bits.OnesCount64(w)
	}
	return n
}

func (v *BitVector) CountZeros() int {
	return v.size - v.CountOnes()
}

func (v *BitVector) Copy() *BitVector {
	c := &BitVector{data: make([]uint64, len(v.data)), size: v.size}
	copy(c.data, v.data)
	return c
}

// CopyFrom overwrites v with the bits of other.
func (v *BitVector) CopyFrom(other *BitVector) error {
	if v.size != other.size {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, v.size, other.size)
	}
	copy(v.data, other.data)
	return nil
}

func (v *BitVector) Equal(other *BitVector) bool {
	if v.size != other.size {
		return false
	}
	for i, w := range v.data {
		if w != other.data[i] {
			return false
		}
	}
	return true
}

// Hash returns an xxh3 digest of the length and contents.
func (v *BitVector) Hash() uint64 {
	buf := make([]byte, 8+8*len(v.data))
	binary.LittleEndian.PutUint64(buf, uint64(v.size))
	for i, w := range v.data {
		binary.LittleEndian.PutUint64(buf[8+8*i:], w)
	}
	return xxh3.Hash(buf)
}

func (v *BitVector) String() string {
	if v.size == 0 {
		return "<empty>"
	}
	var sb strings.Builder
	sb.Grow(v.size + 16)
	for i := 0; i < v.size; i++ {
		if v.data[i>>6]&(uint64(1)<<(uint(i)&63)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(v.size))
	sb.WriteString(" bits)")
	return sb.String()
}

func (v *BitVector) maskTail() {
	if rem := uint(v.size) & 63; rem != 0 {
		v.data[len(v.data)-1] &= (uint64(1) << rem) - 1
	}
}

// ExchangeBits swaps a[i] and b[i] at every position i set in mask.
func ExchangeBits(a, b, mask *BitVector) error {
	if a.size != b.size || a.size != mask.size {
		return fmt.Errorf("%w: %d, %d, mask %d", ErrLengthMismatch, a.size, b.size, mask.size)
	}
	for i, m := range mask.data {
		diff := (a.data[i] ^ b.data[i]) & m
		a.data[i] ^= diff
		b.data[i] ^= diff
	}
	return nil
}
