package appcore

import (
	"io"

	"photom-core/photom"
	"photom/internal/writers"
)

// ResultWriterFactory wires CLI output options to the result writer.
type ResultWriterFactory struct {
	Format string
	Sort   bool
	Header bool
	Arrays bool
}

func NewResultWriterFactory(format string, sort, header, arrays bool) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Sort: sort, Header: header, Arrays: arrays}
}

func (w ResultWriterFactory) NeedArrays() bool { return w.Arrays }

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- photom.Result, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Sort, w.Header, w.Arrays, bufSize)
}
