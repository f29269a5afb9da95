package blobvec

// Option configures a vector at creation.
type Option func(*Vector)

// WithCapacity sets the initial capacity instead of the default of ten
// slots. Values below one are ignored.
func WithCapacity(n int) Option {
	return func(v *Vector) {
		if n > 0 {
			v.slots = make([][]byte, n)
		}
	}
}

// WithObserver installs a growth observer.
func WithObserver(o GrowthObserver) Option {
	return func(v *Vector) {
		v.observer = o
	}
}

// WithMetrics attaches operation counters.
func WithMetrics(m *Metrics) Option {
	return func(v *Vector) {
		v.metrics = m
	}
}
