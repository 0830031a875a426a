// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"photom-core/photom"
	"photom-core/phototab"
	"photom/internal/cmdutil"
	"photom/internal/pipeline"
	"photom/internal/runutil"
	"photom/internal/writers"
)

type Options struct {
	RefFile       string
	SchemaFile    string
	ExposureFiles []string

	NoArea bool
	NoTime bool

	Threads int
	Quiet   bool
}

type VisitorFunc[T any] func(photom.Result) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	NeedArrays() bool
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run loads the reference table, builds the engine, and drives the pipeline
// into the writer. Exit codes: 0 ok, 1 some exposures failed calibration,
// 2 bad inputs, 3 runtime/write failure, 130 canceled.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)
	log := cmdutil.NewLogger(stderr, o.Quiet)
	defer func() { _ = log.Sync() }()

	schema := phototab.DefaultSchema()
	if o.SchemaFile != "" {
		var err error
		schema, err = phototab.LoadSchemaFile(o.SchemaFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	tab, err := phototab.LoadFile(o.RefFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	eng := photom.New(photom.Config{
		Schema:      schema,
		DisableArea: o.NoArea,
		DisableTime: o.NoTime,
	})

	thr := runutil.EffectiveThreads(o.Threads)
	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Drop pixel arrays before results queue up in the writer unless the
	// output format carries them.
	needArrays := wf.NeedArrays()
	_, failed, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr},
		tab,
		o.ExposureFiles,
		eng,
		log,
		func(r photom.Result) (bool, T, error) {
			if !needArrays {
				r.Data, r.Err, r.DQ = nil, nil, nil
			}
			return visit(r)
		},
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if failed > 0 {
		log.Error("calibration incomplete", zap.Int("failed_exposures", failed))
		return 1
	}
	return 0
}
