// Package harness times a naive and an optimized variant of the same work
// under identical conditions and collects one sample per variant.
//
// Each configuration walks WARMUP -> TIMED_TRIALS -> DONE. Warm-up batches
// run unscored. Every timed trial then runs one batch of each variant back
// to back and records their thread CPU times. Every batch returns an
// Outcome whose Sink is folded into an accumulator the caller prints, so no
// batch result is ever unobservable.
package harness

import (
	"fmt"
	"runtime"

	"gaops/cputime"

	"go.uber.org/zap"
)

type Phase int

const (
	Idle Phase = iota
	Warmup
	TimedTrials
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "IDLE"
	case Warmup:
		return "WARMUP"
	case TimedTrials:
		return "TIMED_TRIALS"
	case Done:
		return "DONE"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Order decides which variant runs first within a trial.
type Order int

const (
	// NaiveFirst always times the naive batch first. Any drift that grows
	// within a trial is charged to the optimized variant.
	NaiveFirst Order = iota
	// Alternate swaps the order on every odd trial so drift cancels out.
	Alternate
)

func (o Order) String() string {
	if o == Alternate {
		return "alternate"
	}
	return "naive-first"
}

// Outcome is the observable result of one batch.
type Outcome struct {
	// Sink is any value that depends on every operation in the batch.
	Sink uint64
	// Metric is an optional output statistic compared alongside time.
	Metric float64
}

// Batch runs a fixed amount of work, e.g. SAMPLES_PER_TRIAL operator calls.
type Batch func() Outcome

type Config struct {
	Trials int
	// WarmupBatches is the number of unscored batches of each variant run
	// before the timed trials.
	WarmupBatches int
	Order         Order
}

// Sample holds per-trial measurements of one variant.
type Sample struct {
	Nanos   []float64
	Metrics []float64
}

type Result struct {
	Naive     Sample
	Optimized Sample
}

type Harness struct {
	clock *cputime.Clock
	log   *zap.Logger
	phase Phase
	sink  uint64
}

func New(clock *cputime.Clock, log *zap.Logger) *Harness {
	return &Harness{clock: clock, log: log}
}

func (h *Harness) Phase() Phase { return h.phase }

// Sink is the accumulated value of every batch run so far.
func (h *Harness) Sink() uint64 { return h.sink }

func (h *Harness) enter(p Phase) {
	h.log.Debug("harness phase", zap.Stringer("from", h.phase), zap.Stringer("to", p))
	h.phase = p
}

// Warmup runs work without measuring it, e.g. a sweep over all
// configurations before the first timed one.
func (h *Harness) Warmup(work ...Batch) {
	h.enter(Warmup)
	for _, w := range work {
		h.sink += w().Sink
	}
	h.enter(Idle)
}

// Measure runs one configuration through all phases.
func (h *Harness) Measure(cfg Config, naive, optimized Batch) Result {
	if cfg.Trials < 0 {
		panic(fmt.Sprintf("harness: negative trial count %d", cfg.Trials))
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h.enter(Warmup)
	for i := 0; i < cfg.WarmupBatches; i++ {
		h.sink += naive().Sink
		h.sink += optimized().Sink
	}

	h.enter(TimedTrials)
	res := Result{
		Naive:     newSample(cfg.Trials),
		Optimized: newSample(cfg.Trials),
	}
	for j := 0; j < cfg.Trials; j++ {
		if cfg.Order == Alternate && j%2 == 1 {
			h.timeInto(&res.Optimized, j, optimized)
			h.timeInto(&res.Naive, j, naive)
			continue
		}
		h.timeInto(&res.Naive, j, naive)
		h.timeInto(&res.Optimized, j, optimized)
	}
	h.enter(Done)
	return res
}

func (h *Harness) timeInto(s *Sample, j int, b Batch) {
	start := h.clock.Now()
	o := b()
	end := h.clock.Now()
	s.Nanos[j] = float64(end - start)
	s.Metrics[j] = o.Metric
	h.sink += o.Sink
}

func newSample(trials int) Sample {
	return Sample{
		Nanos:   make([]float64, trials),
		Metrics: make([]float64, trials),
	}
}
