package experiment

import (
	"fmt"

	"gaops/harness"
	"gaops/ops"
	"gaops/report"
	"gaops/utils"
)

type BitmaskConfig struct {
	Common
	Lengths []int
	// Rates for length n are 1/n, 2/n, ... up to 0.5, then ExtraRates.
	ExtraRates      []float64
	SamplesPerTrial int
	WarmupLength    int
}

func DefaultBitmaskConfig() BitmaskConfig {
	return BitmaskConfig{
		Common:          defaultCommon(),
		Lengths:         utils.Doublings(16, 1024),
		ExtraRates:      []float64{0.625, 0.75, 0.875},
		SamplesPerTrial: 10000,
		WarmupLength:    1024,
	}
}

func (c BitmaskConfig) validate() error {
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

func (c BitmaskConfig) rates(n int) []float64 {
	return append(utils.DoublingRates(1/float64(n), 0.5), c.ExtraRates...)
}

// bitmaskBatch generates samples fresh masks of length n.
func bitmaskBatch(g *ops.MaskGenerator, n, samples int) harness.Batch {
	return func() harness.Outcome {
		var sink uint64
		for k := 0; k < samples; k++ {
			mask := g.Generate(n)
			sink += uint64(mask.Word32(k % mask.Len32()))
		}
		return harness.Outcome{Sink: sink}
	}
}

func RunBitmask(env Env, cfg BitmaskConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	r := newRunner("bitmask", env, cfg.Common)
	if err := r.preamble("bitmask", cfg.SamplesPerTrial, "masks"); err != nil {
		return err
	}

	var warm []harness.Batch
	for _, s := range ops.Strategies {
		for _, u := range utils.DoublingRates(1/float64(cfg.WarmupLength), 0.5) {
			g := ops.NewMaskGenerator(u, s, r.src.Split("warmup"))
			warm = append(warm, bitmaskBatch(g, cfg.WarmupLength, cfg.SamplesPerTrial))
		}
	}
	r.warmup(warm)

	for _, n := range cfg.Lengths {
		tbl := report.NewTable(env.Out,
			[]report.Column{report.Param("n", 4, "%4d"), report.Param("u", 11, "%11.9f")},
			report.TimeColumns())
		tbl.Header()
		for _, u := range cfg.rates(n) {
			naive := ops.NewMaskGenerator(u, ops.Naive, r.src.Split("naive"))
			optimized := ops.NewMaskGenerator(u, ops.Binomial, r.src.Split("binomial"))
			_, cmp, err := r.measure(fmt.Sprintf("n=%d u=%.9f", n, u),
				bitmaskBatch(naive, n, cfg.SamplesPerTrial),
				bitmaskBatch(optimized, n, cfg.SamplesPerTrial))
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

