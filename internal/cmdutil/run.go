package cmdutil

import (
	"context"

	"go.uber.org/zap"

	"photom-core/photom"
	"photom-core/phototab"
	"photom/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results
// via send. It returns the number of kept outputs, the number of exposures
// that failed calibration, and the first fatal error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	tab *phototab.Table,
	expFiles []string,
	eng *photom.Engine,
	log *zap.Logger,
	visit func(photom.Result) (bool, T, error),
	send func(T) error,
) (int, int, error) {
	total := 0
	failed, err := pipeline.ForEachResult(ctx, cfg, tab, expFiles, eng, log, func(r photom.Result) error {
		keep, out, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, failed, err
}
