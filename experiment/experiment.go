// Package experiment holds the five timing studies. Each one sweeps its
// parameters, times the naive and binomial variants with the harness,
// compares them with Welch's t-test and prints a table per sweep.
//
// All sweep ranges are constants returned by Default<Name>Config. Tests run
// the same code on reduced configurations.
package experiment

import (
	"errors"
	"fmt"
	"io"

	"gaops/cputime"
	"gaops/errutil"
	"gaops/harness"
	"gaops/report"
	"gaops/rng"
	"gaops/stats"
	"gaops/utils"

	"go.uber.org/zap"
)

var ErrConfig = errors.New("experiment: invalid configuration")

// Env is what every experiment writes to and measures with.
type Env struct {
	Out   io.Writer
	Log   *zap.Logger
	Clock *cputime.Clock
}

// Common settings shared by all experiments.
type Common struct {
	Trials int
	Order  harness.Order
	// Seed fixes the random stream; 0 uses the process-wide source.
	Seed uint64
	// AllowWallClock lets NewClock fall back to wall-clock time.
	AllowWallClock bool
	// RawSamplesPath, when set, receives every per-trial time as CSV.
	RawSamplesPath string
}

func defaultCommon() Common {
	return Common{Trials: 100, Order: harness.NaiveFirst}
}

func (c Common) validate() error {
	if c.Trials < 2 {
		return fmt.Errorf("%w: need at least 2 trials, got %d", ErrConfig, c.Trials)
	}
	return nil
}

func (c Common) source() *rng.Source {
	if c.Seed == 0 {
		return rng.Global()
	}
	return rng.New(c.Seed)
}

// NewClock returns the thread CPU clock. Without a per-thread clock it fails
// unless allowWall is set, in which case it logs and degrades to wall time.
func NewClock(allowWall bool, log *zap.Logger) (*cputime.Clock, error) {
	clock, err := cputime.New()
	if err == nil {
		return clock, nil
	}
	if !allowWall {
		return nil, err
	}
	clock = cputime.NewWithFallback()
	log.Warn("timing with a degraded clock", zap.Stringer("clock", clock), zap.Error(err))
	return clock, nil
}

type runner struct {
	env    Env
	common Common
	log    *zap.Logger
	h      *harness.Harness
	src    *rng.Source
}

func newRunner(name string, env Env, common Common) *runner {
	log := env.Log.Named(name)
	return &runner{
		env:    env,
		common: common,
		log:    log,
		h:      harness.New(env.Clock, log),
		src:    common.source(),
	}
}

func (r *runner) preamble(name string, work int, unit string) error {
	return report.Preamble{
		Experiment: name,
		Trials:     r.common.Trials,
		Work:       work,
		WorkUnit:   unit,
		Clock:      r.env.Clock.String(),
		Degraded:   r.env.Clock.Degraded(),
	}.Write(r.env.Out)
}

func (r *runner) warmup(work []harness.Batch) {
	r.log.Info("warming up", zap.Int("batches", len(work)))
	r.h.Warmup(work...)
	r.log.Info("end warm-up phase")
}

// measure times one configuration and returns the time comparison.
func (r *runner) measure(label string, naive, optimized harness.Batch) (harness.Result, stats.Comparison, error) {
	r.log.Info("configuration", zap.String("params", label), zap.Stringer("order", r.common.Order))
	res := r.h.Measure(harness.Config{Trials: r.common.Trials, Order: r.common.Order}, naive, optimized)

	if err := r.dump(label, res); err != nil {
		return res, stats.Comparison{}, err
	}
	r.describe(label, res)

	cmp, err := stats.Compare(res.Naive.Nanos, res.Optimized.Nanos)
	if err != nil {
		return res, cmp, fmt.Errorf("compare times for %s: %w", label, err)
	}
	if cmp.Degenerate {
		r.log.Warn("zero variance in trial times", zap.String("params", label), zap.Float64("t", cmp.T))
	}
	return res, cmp, nil
}

func (r *runner) describe(label string, res harness.Result) {
	naive, errA := stats.Describe(res.Naive.Nanos)
	optimized, errB := stats.Describe(res.Optimized.Nanos)
	if err := errutil.First(errA, errB); err != nil {
		r.log.Debug("no summary", zap.String("params", label), zap.Error(err))
		return
	}
	r.log.Debug("trial times",
		zap.String("params", label),
		zap.String("naive_median", report.Seconds(naive.Median)),
		zap.String("naive_p95", report.Seconds(naive.P95)),
		zap.String("naive_stddev", report.Seconds(naive.StdDev)),
		zap.String("optimized_median", report.Seconds(optimized.Median)),
		zap.String("optimized_p95", report.Seconds(optimized.P95)),
		zap.String("optimized_stddev", report.Seconds(optimized.StdDev)),
	)
}

func (r *runner) dump(label string, res harness.Result) error {
	path := r.common.RawSamplesPath
	if path == "" {
		return nil
	}
	return errutil.First(
		utils.AppendSamples(path, "naive "+label, res.Naive.Nanos),
		utils.AppendSamples(path, "optimized "+label, res.Optimized.Nanos),
	)
}

// compareMetric runs the second comparison on per-trial outputs.
func (r *runner) compareMetric(label string, res harness.Result) (stats.Comparison, error) {
	cmp, err := stats.Compare(res.Naive.Metrics, res.Optimized.Metrics)
	if err != nil {
		return cmp, fmt.Errorf("compare metrics for %s: %w", label, err)
	}
	return cmp, nil
}

func (r *runner) footer() error {
	r.log.Info("done", zap.Uint64("sink", r.h.Sink()))
	return report.Footer(r.env.Out, r.h.Sink())
}
