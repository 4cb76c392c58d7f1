package timing

import (
	"context"
	"time"

	"github.com/cryptoclass/rsalab-go/pkg/rsalab/logging"
)

// Measure runs fn once and returns its elapsed wall time.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Report runs fn once and logs "function took" with the name and the
// elapsed milliseconds. A nil log falls back to the default logger. The
// elapsed time is returned so callers can aggregate it.
func Report(ctx context.Context, log logging.Logger, name string, fn func()) time.Duration {
	if log == nil {
		log = logging.New(nil)
	}

	elapsed := Measure(fn)
	log.Info(ctx, "function took",
		"name", name,
		"ms", float64(elapsed)/float64(time.Millisecond),
	)
	return elapsed
}
