// Package parallel provides the data-parallel execution layer of the ASCII
// pipeline.
//
// Every pipeline stage is a pure computation over immutable inputs that writes
// a disjoint region of its output buffer. The package offers a fixed-size
// WorkerPool and range helpers that split an index space (rows or tiles) into
// contiguous chunks:
//
//   - per-worker queues with work stealing
//   - a barrier at the end of every ForRange and ExecuteAll call
//   - no shared mutable accumulators
//
// Thread safety: WorkerPool is safe for concurrent use. The functions passed to
// ForRange must confine their writes to their own range.
package parallel
