// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"photom-core/exposure"
	"photom-core/photom"
	"photom-core/phototab"
)

// Config controls the calibration pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// fatal reports whether an error condemns the whole batch. Structural defects
// in the reference file would fail every exposure identically, so there is no
// point continuing; lookup failures are scoped to one exposure.
func fatal(err error) bool {
	return errors.Is(err, photom.ErrInvalidElementCount) ||
		errors.Is(err, photom.ErrNonMonotonicWavelength)
}

// ForEachResult loads each exposure file, calibrates it against tab, and
// streams results to visit in completion order. Per-exposure failures are
// logged and counted; reference-file defects (and visit errors) abort the
// run. It returns the number of failed exposures and the first fatal error.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	tab *phototab.Table,
	expFiles []string,
	eng *photom.Engine,
	log *zap.Logger,
	visit func(photom.Result) error,
) (failed int, err error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	jobs := make(chan string, cfg.Threads*2)
	results := make(chan photom.Result, cfg.Threads*2)

	var mu sync.Mutex // guards failed

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			for path := range jobs {
				exp, lerr := exposure.LoadFile(path)
				var res photom.Result
				if lerr == nil {
					res, lerr = eng.Calibrate(tab, exp)
				}
				if lerr != nil {
					if fatal(lerr) {
						return lerr
					}
					log.Warn("exposure not calibrated",
						zap.String("file", path), zap.Error(lerr))
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				select {
				case results <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	// Collector: visit is called from one goroutine only.
	var (
		cwg  sync.WaitGroup
		cerr error
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			cerr = visit(r)
		}
	}()

	// Feed work.
feed:
	for _, f := range expFiles {
		select {
		case <-gctx.Done():
			break feed
		case jobs <- f:
		}
	}
	close(jobs)

	werr := g.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return failed, ctx.Err()
	}
	if werr != nil {
		return failed, werr
	}
	return failed, cerr
}
