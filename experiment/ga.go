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

// GAConfig times a complete GA on OneMax, with every operator in its naive
// or binomial form.
type GAConfig struct {
	Common
	BitLength int
	// MutationRate of 0 means 1/BitLength.
	MutationRate    float64
	CrossoverParams []float64
	CrossoverRates  []float64
	PopulationSize  int
	Generations     int
}

func DefaultGAConfig() GAConfig {
	return GAConfig{
		Common:          defaultCommon(),
		BitLength:       1024,
		CrossoverParams: []float64{0.33, 0.49},
		CrossoverRates:  utils.Steps(0.05, 0.1, 1),
		PopulationSize:  100,
		Generations:     1000,
	}
}

func (c GAConfig) validate() error {
	if err := c.Common.validate(); err != nil {
		return err
	}
	if c.BitLength < 2 || c.PopulationSize < 2 || c.Generations < 1 {
		return fmt.Errorf("%w: bit length %d, population %d, generations %d",
			ErrConfig, c.BitLength, c.PopulationSize, c.Generations)
	}
	return nil
}

func (c GAConfig) mutationRate() float64 {
	if c.MutationRate == 0 {
		return 1 / float64(c.BitLength)
	}
	return c.MutationRate
}

func newOneMaxGA(cfg GAConfig, u, c float64, s ops.Strategy, src *rng.Source) (*evo.GA, error) {
	mutation, err := ops.NewBitFlipMutation(cfg.mutationRate(), s, src.Split("mutation"))
	if err != nil {
		return nil, err
	}
	return evo.New(evo.Config{
		PopulationSize: cfg.PopulationSize,
		BitLength:      cfg.BitLength,
		CrossoverRate:  c,
		Strategy:       s,
	},
		mutation,
		ops.NewUniformCrossover(u, s, src.Split("crossover")),
		evo.OneMax{},
		evo.NewStochasticUniversalSampling(src.Split("selection")),
		src)
}

// oneMaxBatch runs one optimisation and reports the ones in the best
// solution.
func oneMaxBatch(ga *evo.GA, generations int) harness.Batch {
	return func() harness.Outcome {
		sol, err := ga.Optimize(generations)
		errutil.FatalIf(err)
		return harness.Outcome{Sink: uint64(sol.Value), Metric: float64(sol.Value)}
	}
}

func RunGA(env Env, cfg GAConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	r := newRunner("ga", env, cfg.Common)
	if err := r.preamble("ga", cfg.Generations, "generations"); err != nil {
		return err
	}

	type pair struct{ naive, optimized *evo.GA }
	pairs := make(map[[2]float64]pair)
	var warm []harness.Batch
	for _, u := range cfg.CrossoverParams {
		for _, c := range cfg.CrossoverRates {
			naive, errA := newOneMaxGA(cfg, u, c, ops.Naive, r.src.Split("naive"))
			optimized, errB := newOneMaxGA(cfg, u, c, ops.Binomial, r.src.Split("binomial"))
			if err := errutil.First(errA, errB); err != nil {
				return fmt.Errorf("U=%v c=%v: %w", u, c, err)
			}
			pairs[[2]float64{u, c}] = pair{naive, optimized}
			warm = append(warm, oneMaxBatch(naive, cfg.Generations), oneMaxBatch(optimized, cfg.Generations))
		}
	}
	r.warmup(warm)

	for _, u := range cfg.CrossoverParams {
		if err := report.Title(env.Out, "Uniform Crossover Parameter U=%3.2f", u); err != nil {
			return err
		}
		tbl := report.NewTable(env.Out,
			[]report.Column{report.Param("c", 4, "%4.2f")},
			report.TimeColumns(),
			report.MetricColumns("ones", "%12.2f"))
		tbl.Header()
		for _, c := range cfg.CrossoverRates {
			label := fmt.Sprintf("U=%.2f c=%.2f", u, c)
			p := pairs[[2]float64{u, c}]
			res, cmp, err := r.measure(label, oneMaxBatch(p.naive, cfg.Generations), oneMaxBatch(p.optimized, cfg.Generations))
			if err != nil {
				return err
			}
			ones, err := r.compareMetric(label, res)
			if err != nil {
				return err
			}
			tbl.Row(c, report.TimeCells(cmp), report.MetricCells(ones))
		}
		tbl.Blank()
		if err := tbl.Err(); err != nil {
			return err
		}
	}
	return r.footer()
}
