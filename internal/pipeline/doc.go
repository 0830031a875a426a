// Package pipeline fans calibration work out over a worker pool, one
// exposure file per task, and streams results back to a single visitor.
// Engine operations are pure over an immutable reference table, so workers
// share the table snapshot with no locking.
package pipeline
