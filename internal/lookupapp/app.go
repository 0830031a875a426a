// internal/lookupapp/app.go
package lookupapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"photom-core/phototab"
	"photom/internal/lookupcli"
	"photom/internal/lookupoutput"
	"photom/internal/version"
	"photom/internal/writers"
	"photom/pkg/api"
)

func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := lookupcli.NewFlagSet("photom-lookup")
	fs.SetOutput(io.Discard)

	opts, err := lookupcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "photom-lookup version %s\n", version.Version)
		return 0
	}

	tab, err := phototab.LoadFile(opts.RefFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	schema := phototab.DefaultSchema()
	if opts.SchemaFile != "" {
		schema, err = phototab.LoadSchemaFile(opts.SchemaFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	var rows []api.LookupRowV1
	exit := 0

	if opts.Mode != "" {
		fields, err := schema.Fields(opts.Mode)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		key := phototab.Key{
			Filter:   opts.Filter,
			Pupil:    opts.Pupil,
			Grating:  opts.Grating,
			Slit:     opts.Slit,
			Subarray: opts.Subarray,
			Order:    opts.Order,
		}
		row, idx, err := phototab.SelectRow(tab, fields, key)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		rows = []api.LookupRowV1{lookupoutput.ToAPIRow(idx, row)}
	} else {
		for i, r := range tab.Rows {
			v := lookupoutput.ToAPIRow(i, r)
			if !v.Valid {
				exit = 1
			}
			rows = append(rows, v)
		}
	}

	switch opts.Output {
	case "json":
		err = lookupoutput.WriteJSON(outw, rows)
	default:
		err = lookupoutput.WriteText(outw, rows, opts.Header)
	}
	if err == nil {
		err = outw.Flush()
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return exit
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
