package session

import (
	"sync/atomic"

	"github.com/signadot/livedoc/delta"
)

// Metrics receives counts of session activity.
type Metrics interface {
	DeltaApplied(k delta.Kind)
	DeltaFailed()
	RunFinished(pruned int)
	Published()
}

type nopMetrics struct{}

func (nopMetrics) DeltaApplied(delta.Kind) {}
func (nopMetrics) DeltaFailed()            {}
func (nopMetrics) RunFinished(int)         {}
func (nopMetrics) Published()              {}

// Counters is a Metrics which keeps running totals.
type Counters struct {
	applied   [3]atomic.Int64
	failed    atomic.Int64
	runs      atomic.Int64
	pruned    atomic.Int64
	published atomic.Int64
}

type CounterValues struct {
	Applied   map[delta.Kind]int64
	Failed    int64
	Runs      int64
	Pruned    int64
	Published int64
}

func (c *Counters) DeltaApplied(k delta.Kind) {
	if int(k) < 0 || int(k) >= len(c.applied) {
		return
	}
	c.applied[k].Add(1)
}

func (c *Counters) DeltaFailed() { c.failed.Add(1) }

func (c *Counters) RunFinished(pruned int) {
	c.runs.Add(1)
	c.pruned.Add(int64(pruned))
}

func (c *Counters) Published() { c.published.Add(1) }

func (c *Counters) Values() CounterValues {
	res := CounterValues{
		Applied:   map[delta.Kind]int64{},
		Failed:    c.failed.Load(),
		Runs:      c.runs.Load(),
		Pruned:    c.pruned.Load(),
		Published: c.published.Load(),
	}
	for _, k := range delta.Kinds() {
		res.Applied[k] = c.applied[k].Load()
	}
	return res
}
