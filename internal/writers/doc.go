// Package writers owns the output goroutines: each Start* helper consumes a
// channel of results and renders them in the requested format, reporting the
// first write error on a buffered error channel.
package writers
