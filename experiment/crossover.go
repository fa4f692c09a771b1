package experiment

import (
	"fmt"

	"gaops/bits"
	"gaops/errutil"
	"gaops/harness"
	"gaops/ops"
	"gaops/report"
	"gaops/utils"
)

type CrossoverConfig struct {
	Common
	Lengths         []int
	Rates           []float64
	SamplesPerTrial int
	WarmupLength    int
}

func DefaultCrossoverConfig() CrossoverConfig {
	return CrossoverConfig{
		Common:          defaultCommon(),
		Lengths:         utils.Doublings(16, 1024),
		Rates:           utils.Steps(0.1, 0.1, 0.55),
		SamplesPerTrial: 100000,
		WarmupLength:    1024,
	}
}

func (c CrossoverConfig) validate() error {
	if err := c.Common.validate(); err != nil {
		return err
	}
	if c.SamplesPerTrial < 1 {
		return fmt.Errorf("%w: samples per trial %d", ErrConfig, c.SamplesPerTrial)
	}
	for _, n := range append([]int{c.WarmupLength}, c.Lengths...) {
		if n < 1 {
			return fmt.Errorf("%w: bit length %d", ErrConfig, n)
		}
	}
	return nil
}

// crossoverBatch crosses the same two parents samples times.
func crossoverBatch(c ops.Crossover, a, b *bits.BitVector, samples int) harness.Batch {
	return func() harness.Outcome {
		var sink uint64
		words := a.Len32()
		for i := 0; i < samples; i++ {
			errutil.FatalIf(c.Cross(a, b))
			sink += uint64(a.Word32(i%words)) + uint64(b.Word32(i%words))
		}
		return harness.Outcome{Sink: sink}
	}
}

func RunCrossover(env Env, cfg CrossoverConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	r := newRunner("crossover", env, cfg.Common)
	if err := r.preamble("crossover", cfg.SamplesPerTrial, "crossovers"); err != nil {
		return err
	}

	var warm []harness.Batch
	for _, u := range cfg.Rates {
		a := bits.NewRandom(cfg.WarmupLength, r.src)
		b := bits.NewRandom(cfg.WarmupLength, r.src)
		for _, s := range ops.Strategies {
			c := ops.NewUniformCrossover(u, s, r.src.Split("warmup"))
			warm = append(warm, crossoverBatch(c, a, b, cfg.SamplesPerTrial))
		}
	}
	r.warmup(warm)

	for _, n := range cfg.Lengths {
		tbl := report.NewTable(env.Out,
			[]report.Column{report.Param("n", 4, "%4d"), report.Param("u", 3, "%3.1f")},
			report.TimeColumns())
		tbl.Header()
		for _, u := range cfg.Rates {
			a := bits.NewRandom(n, r.src)
			b := bits.NewRandom(n, r.src)
			naive := ops.NewUniformCrossover(u, ops.Naive, r.src.Split("naive"))
			optimized := ops.NewUniformCrossover(u, ops.Binomial, r.src.Split("binomial"))
			_, cmp, err := r.measure(fmt.Sprintf("n=%d u=%.1f", n, u),
				crossoverBatch(naive, a, b, cfg.SamplesPerTrial),
				crossoverBatch(optimized, a, b, cfg.SamplesPerTrial))
			if err != nil {
				return err
			}
			tbl.Row(n, u, report.TimeCells(cmp))
		}
		tbl.Blank()
		if err := tbl.Err(); err != nil {
			return err
		}
	}
	return r.footer()
}
