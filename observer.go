package blobvec

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// GrowthObserver is called whenever the slot buffer is reallocated, either
// by doubling or by an explicit reservation, with the capacity before and
// after. It runs synchronously on the growth path and should be cheap.
type GrowthObserver func(oldCap, newCap int)

// SlogObserver returns a GrowthObserver that logs growth events at debug
// level on the given logger.
func SlogObserver(l *slog.Logger) GrowthObserver {
	return func(oldCap, newCap int) {
		l.Debug("blobvec: capacity grown", "from", oldCap, "to", newCap)
	}
}

// DebugObserver returns a GrowthObserver that writes human-readable growth
// events to w.
func DebugObserver(w io.Writer) GrowthObserver {
	return SlogObserver(slog.New(tint.NewHandler(w, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: true,
	})))
}
