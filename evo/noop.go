package evo

import (
	"gaops/bits"
	"gaops/ops"
)

var (
	_ ops.Mutation  = (*NoOpMutation)(nil)
	_ ops.Crossover = (*CountingCrossover)(nil)
)

// NoOpMutation leaves vectors untouched and only counts calls.
type NoOpMutation struct {
	state int
}

func (m *NoOpMutation) Mutate(*bits.BitVector) { m.state++ }

func (m *NoOpMutation) State() int { return m.state }

func (m *NoOpMutation) Split() ops.Mutation { return &NoOpMutation{} }

// CountingCrossover leaves parents untouched and counts calls.
type CountingCrossover struct {
	count int
}

func (c *CountingCrossover) Cross(_, _ *bits.BitVector) error {
	c.count++
	return nil
}

func (c *CountingCrossover) Count() int { return c.count }

func (c *CountingCrossover) Reset() { c.count = 0 }

func (c *CountingCrossover) Split() ops.Crossover { return &CountingCrossover{} }
