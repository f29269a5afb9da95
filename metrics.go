package blobvec

import (
	vm "github.com/VictoriaMetrics/metrics"
)

// Metrics holds operation counters for one or more vectors.
type Metrics struct {
	grows   *vm.Counter
	appends *vm.Counter
	inserts *vm.Counter
	deletes *vm.Counter
}

// NewMetrics registers blobvec counters in the given metrics set. Pass the
// result to WithMetrics to have a vector report to it; multiple vectors
// may share one Metrics value.
func NewMetrics(set *vm.Set) *Metrics {
	return &Metrics{
		grows:   set.GetOrCreateCounter("blobvec_grows_total"),
		appends: set.GetOrCreateCounter("blobvec_appends_total"),
		inserts: set.GetOrCreateCounter("blobvec_inserts_total"),
		deletes: set.GetOrCreateCounter("blobvec_deletes_total"),
	}
}

func (m *Metrics) countGrow() {
	if m != nil {
		m.grows.Inc()
	}
}

func (m *Metrics) countAppend() {
	if m != nil {
		m.appends.Inc()
	}
}

func (m *Metrics) countInsert() {
	if m != nil {
		m.inserts.Inc()
	}
}

func (m *Metrics) countDeletes(n int) {
	if m != nil {
		m.deletes.Add(n)
	}
}
