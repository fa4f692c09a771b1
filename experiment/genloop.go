package experiment

import (
	"fmt"

	"gaops/errutil"
	"gaops/evo"
	"gaops/harness"
	"gaops/ops"
	"gaops/report"
	"gaops/rng"
	"gaops/utils"
)

// GenLoopConfig times the generation loop alone: operators, fitness and
// selection are replaced by counters and constants so only the pair
// decisions differ between the variants.
type GenLoopConfig struct {
	Common
	CrossoverRates []float64
	PopulationSize int
	Generations    int
}

func DefaultGenLoopConfig() GenLoopConfig {
	return GenLoopConfig{
		Common:         defaultCommon(),
		CrossoverRates: utils.Steps(0.05, 0.1, 1),
		PopulationSize: 200,
		Generations:    100000,
	}
}

func (c GenLoopConfig) validate() error {
	if err := c.Common.validate(); err != nil {
		return err
	}
	if c.PopulationSize < 2 || c.Generations < 1 {
		return fmt.Errorf("%w: population %d, generations %d", ErrConfig, c.PopulationSize, c.Generations)
	}
	return nil
}

// countingGA is a generation loop whose crossover only counts its calls.
type countingGA struct {
	ga        *evo.GA
	mutation  *evo.NoOpMutation
	crossover *evo.CountingCrossover
}

func newCountingGA(cfg GenLoopConfig, c float64, s ops.Strategy, src *rng.Source) (*countingGA, error) {
	g := &countingGA{mutation: &evo.NoOpMutation{}, crossover: &evo.CountingCrossover{}}
	var err error
	g.ga, err = evo.New(evo.Config{
		PopulationSize: cfg.PopulationSize,
		BitLength:      1,
		CrossoverRate:  c,
		Strategy:       s,
	}, g.mutation, g.crossover, evo.ConstantFitness{}, evo.IdentitySelection{}, src)
	return g, err
}

// batch runs one optimisation and reports the number of crossovers.
func (g *countingGA) batch(generations int) harness.Batch {
	return func() harness.Outcome {
		g.crossover.Reset()
		sol, err := g.ga.Optimize(generations)
		errutil.FatalIf(err)
		return harness.Outcome{
			Sink:   uint64(sol.Fitness) + uint64(g.mutation.State()),
			Metric: float64(g.crossover.Count()),
		}
	}
}

func RunGenLoop(env Env, cfg GenLoopConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	r := newRunner("genloop", env, cfg.Common)
	if err := r.preamble("genloop", cfg.Generations, "generations"); err != nil {
		return err
	}

	type pair struct{ naive, optimized *countingGA }
	pairs := make([]pair, len(cfg.CrossoverRates))
	var warm []harness.Batch
	for i, c := range cfg.CrossoverRates {
		naive, errA := newCountingGA(cfg, c, ops.Naive, r.src.Split("naive"))
		optimized, errB := newCountingGA(cfg, c, ops.Binomial, r.src.Split("binomial"))
		if err := errutil.First(errA, errB); err != nil {
			return err
		}
		pairs[i] = pair{naive, optimized}
		warm = append(warm, naive.batch(cfg.Generations), optimized.batch(cfg.Generations))
	}
	r.warmup(warm)

	tbl := report.NewTable(env.Out,
		[]report.Column{report.Param("c", 4, "%4.2f")},
		report.TimeColumns(),
		report.MetricColumns("calls", "%12.3g"))
	tbl.Header()
	for i, c := range cfg.CrossoverRates {
		label := fmt.Sprintf("c=%.2f", c)
		res, cmp, err := r.measure(label, pairs[i].naive.batch(cfg.Generations), pairs[i].optimized.batch(cfg.Generations))
		if err != nil {
			return err
		}
		calls, err := r.compareMetric(label, res)
		if err != nil {
			return err
		}
		tbl.Row(c, report.TimeCells(cmp), report.MetricCells(calls))
	}
	tbl.Blank()
	if err := tbl.Err(); err != nil {
		return err
	}
	return r.footer()
}
