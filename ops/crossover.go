package ops

import (
	"fmt"

	"gaops/bits"
	"gaops/rng"
)

// Crossover recombines two parents in place, turning them into children.
type Crossover interface {
	Cross(a, b *bits.BitVector) error
	Split() Crossover
}

var _ Crossover = (*UniformCrossover)(nil)

// UniformCrossover exchanges each bit pair independently with probability P.
// The exchange mask is kept between calls, so an instance must not be shared
// between goroutines; use Split.
type UniformCrossover struct {
	masks *MaskGenerator
	mask  *bits.BitVector
}

// NewUniformCrossover saturates p into [0,1].
func NewUniformCrossover(p float64, strategy Strategy, src *rng.Source) *UniformCrossover {
	return &UniformCrossover{masks: NewMaskGenerator(p, strategy, src)}
}

func (c *UniformCrossover) P() float64 { return c.masks.U() }

func (c *UniformCrossover) Cross(a, b *bits.BitVector) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("uniform crossover: %w: %d != %d", bits.ErrLengthMismatch, a.Len(), b.Len())
	}
	if c.mask == nil || c.mask.Len() != a.Len() {
		c.mask = bits.New(a.Len())
	}
	c.masks.Fill(c.mask)
	return bits.ExchangeBits(a, b, c.mask)
}

func (c *UniformCrossover) Split() Crossover {
	return &UniformCrossover{masks: c.masks.Split()}
}
