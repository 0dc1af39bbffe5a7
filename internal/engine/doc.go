// Package engine executes typing scripts: it walks an in-place mutable
// node queue, applies per-kind handlers against a buffer and cursor, and
// drives timed sequential steps through a render projection.
//
// # Expansion
//
// Relative move/delete directions (start/end) never execute directly.
// When the walk reaches one, its handler rewrites the queue at that very
// index: the node is deleted and replaced by a run of atomic left/right
// copies sized to guarantee reaching the boundary, with one spare step
// of headroom. The walk then picks the copies up like any other nodes.
// After expansion the live queue never contains a relative direction.
//
// # Timeline
//
//	[run-start hooks] -> step 0 -> step 1 -> ... -> [run-finish hooks]
//
// Each step waits its node's delay (a Scheduler suspend point), mutates
// session state through exactly one handler, then renders. Steps never
// overlap; the render projection only ever observes fully-applied
// states. A looping script repeats the traversal with a fresh buffer
// and cursor over the same queue until the context is cancelled.
package engine
