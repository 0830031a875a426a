// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads maps the --threads flag to a worker count:
// 0 means all CPUs, negative values are rejected upstream.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}
