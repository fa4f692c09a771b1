package experiment

import (
	"fmt"

	"gaops/bits"
	"gaops/harness"
	"gaops/ops"
	"gaops/report"
	"gaops/utils"
)

type MutationConfig struct {
	Common
	Lengths []int
	// Rates for length n are 1/n, 2/n, ... up to MaxRate.
	MaxRate         float64
	SamplesPerTrial int
	WarmupLength    int
}

func DefaultMutationConfig() MutationConfig {
	return MutationConfig{
		Common:          defaultCommon(),
		Lengths:         utils.Doublings(16, 1024),
		MaxRate:         0.25,
		SamplesPerTrial: 100000,
		WarmupLength:    1024,
	}
}

func (c MutationConfig) validate() error {
	if err := c.Common.validate(); err != nil {
		return err
	}
	if c.SamplesPerTrial < 1 {
		return fmt.Errorf("%w: samples per trial %d", ErrConfig, c.SamplesPerTrial)
	}
	if c.MaxRate <= 0 || c.MaxRate >= 1 {
		return fmt.Errorf("%w: max mutation rate %v", ErrConfig, c.MaxRate)
	}
	for _, n := range append([]int{c.WarmupLength}, c.Lengths...) {
		if n < 2 {
			return fmt.Errorf("%w: bit length %d", ErrConfig, n)
		}
	}
	return nil
}

func (c MutationConfig) rates(n int) []float64 {
	return utils.DoublingRates(1/float64(n), c.MaxRate)
}

// mutationBatch mutates the same vector samples times.
func mutationBatch(m ops.Mutation, v *bits.BitVector, samples int) harness.Batch {
	return func() harness.Outcome {
		var sink uint64
		words := v.Len32()
		for i := 0; i < samples; i++ {
			m.Mutate(v)
			sink += uint64(v.Word32(i % words))
		}
		return harness.Outcome{Sink: sink}
	}
}

func RunMutation(env Env, cfg MutationConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	r := newRunner("mutation", env, cfg.Common)
	if err := r.preamble("mutation", cfg.SamplesPerTrial, "mutations"); err != nil {
		return err
	}

	var warm []harness.Batch
	for _, m := range cfg.rates(cfg.WarmupLength) {
		v := bits.New(cfg.WarmupLength)
		for _, s := range ops.Strategies {
			mut, err := ops.NewBitFlipMutation(m, s, r.src.Split("warmup"))
			if err != nil {
				return fmt.Errorf("warm-up m=%v: %w", m, err)
			}
			warm = append(warm, mutationBatch(mut, v, cfg.SamplesPerTrial))
		}
	}
	r.warmup(warm)

	for _, n := range cfg.Lengths {
		tbl := report.NewTable(env.Out,
			[]report.Column{report.Param("n", 4, "%4d"), report.Param("m", 11, "%11.9f")},
			report.TimeColumns())
		tbl.Header()
		for _, m := range cfg.rates(n) {
			naive, errA := ops.NewBitFlipMutation(m, ops.Naive, r.src.Split("naive"))
			optimized, errB := ops.NewBitFlipMutation(m, ops.Binomial, r.src.Split("binomial"))
			if errA != nil || errB != nil {
				return fmt.Errorf("n=%d m=%v: %w", n, m, ops.ErrMutationRate)
			}
			v := bits.New(n)
			_, cmp, err := r.measure(fmt.Sprintf("n=%d m=%.9f", n, m),
				mutationBatch(naive, v, cfg.SamplesPerTrial),
				mutationBatch(optimized, v, cfg.SamplesPerTrial))
			if err != nil {
				return err
			}
			tbl.Row(n, m, report.TimeCells(cmp))
		}
		tbl.Blank()
		if err := tbl.Err(); err != nil {
			return err
		}
	}
	return r.footer()
}
