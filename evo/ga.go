package evo

import (
	"errors"
	"fmt"

	"gaops/bits"
	"gaops/errutil"
	"gaops/ops"
	"gaops/rng"
)

var ErrConfig = errors.New("evo: invalid configuration")

type Config struct {
	PopulationSize int
	BitLength      int
	// CrossoverRate is the probability that a pair of parents is crossed.
	CrossoverRate float64
	// Strategy picks the per-pair coin flips or the binomial pair count.
	Strategy ops.Strategy
}

func (c Config) validate() error {
	if c.PopulationSize < 1 {
		return fmt.Errorf("%w: population size %d", ErrConfig, c.PopulationSize)
	}
	if c.BitLength < 1 {
		return fmt.Errorf("%w: bit length %d", ErrConfig, c.BitLength)
	}
	return nil
}

// Solution is the best candidate seen during a run.
type Solution struct {
	Vector  *bits.BitVector
	Fitness int
	Value   int
}

// GA is a generational evolutionary algorithm. Each generation it selects
// parents, crosses the chosen pairs (2i, 2i+1), mutates every child and
// replaces the whole population. A GA is not safe for concurrent use.
type GA struct {
	cfg       Config
	mutation  ops.Mutation
	crossover ops.Crossover
	fitness   Fitness
	selection Selection
	pairs     *ops.PairSelector
	src       *rng.Source

	pop, next []*bits.BitVector
	scores    []int
	selected  []int
	best      Solution
}

func New(cfg Config, mutation ops.Mutation, crossover ops.Crossover, fitness Fitness, selection Selection, src *rng.Source) (*GA, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := &GA{
		cfg:       cfg,
		mutation:  mutation,
		crossover: crossover,
		fitness:   fitness,
		selection: selection,
		pairs:     ops.NewPairSelector(cfg.CrossoverRate, cfg.Strategy, src.Split("pairs")),
		src:       src,
		pop:       make([]*bits.BitVector, cfg.PopulationSize),
		next:      make([]*bits.BitVector, cfg.PopulationSize),
		scores:    make([]int, cfg.PopulationSize),
		selected:  make([]int, cfg.PopulationSize),
		best:      Solution{Vector: bits.New(cfg.BitLength)},
	}
	for i := range g.pop {
		g.pop[i] = bits.New(cfg.BitLength)
		g.next[i] = bits.New(cfg.BitLength)
	}
	return g, nil
}

func (g *GA) Config() Config { return g.cfg }

// Optimize runs generations generations from a fresh random population and
// returns a copy of the best solution found, including the initial one.
func (g *GA) Optimize(generations int) (Solution, error) {
	for _, v := range g.pop {
		v.Randomize(g.src)
	}
	g.best.Fitness = 0
	g.evaluate()

	for gen := 0; gen < generations; gen++ {
		if err := g.step(); err != nil {
			return Solution{}, fmt.Errorf("generation %d: %w", gen, err)
		}
		g.evaluate()
	}
	return Solution{
		Vector:  g.best.Vector.Copy(),
		Fitness: g.best.Fitness,
		Value:   g.best.Value,
	}, nil
}

func (g *GA) step() error {
	g.selection.Select(g.scores, g.selected)
	for i, parent := range g.selected {
		if err := g.next[i].CopyFrom(g.pop[parent]); err != nil {
			return err
		}
	}
	for _, i := range g.pairs.Select(len(g.next) / 2) {
		if err := g.crossover.Cross(g.next[2*i], g.next[2*i+1]); err != nil {
			return err
		}
	}
	for _, v := range g.next {
		g.mutation.Mutate(v)
	}
	g.pop, g.next = g.next, g.pop
	return nil
}

func (g *GA) evaluate() {
	for i, v := range g.pop {
		f := g.fitness.Fitness(v)
		g.scores[i] = f
		if f > g.best.Fitness {
			g.best.Fitness = f
			g.best.Value = g.fitness.Value(v)
			err := g.best.Vector.CopyFrom(v)
			errutil.BugOn(err != nil, "best vector: %v", err)
		}
	}
}
