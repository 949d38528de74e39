// internal/runutil/runutil.go
package runutil

import "runtime"

// Thread count modes: an explicit positive value is used as is, 0 means
// every CPU.
const AllCPUs = 0

// EffectiveThreads resolves the worker count for per-record builds.
// Merged builds always run on one goroutine.
func EffectiveThreads(threads int, perRecord bool) int {
	if !perRecord {
		return 1
	}
	if threads <= AllCPUs {
		return runtime.NumCPU()
	}
	return threads
}

// EmptyGraphWarning returns a warning when a merged build produced no k-mers,
// or "" when there is nothing to say.
func EmptyGraphWarning(k, nodes int) string {
	if nodes > 0 {
		return ""
	}
	if k <= 0 {
		return "graph is empty: kmer length must be positive"
	}
	return "graph is empty: no input sequence is as long as the kmer length"
}
