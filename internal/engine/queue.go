package engine

import "github.com/typeline/typeline/internal/script"

// NodeQueue is the ordered sequence of pending typing operations.
//
// The queue is the sole driver of progress: the engine advances an index
// over it, and handlers may insert or delete entries at or after that
// index, changing what runs next (expansion). Entries before the current
// index are never revisited. The queue is mutated in place for the life
// of a session and re-walked as-is on loop; it is never replaced.
//
// No locking: the engine's single-step-at-a-time execution model means
// exactly one goroutine touches the queue once a run has started.
type NodeQueue struct {
	nodes []script.Node
}

// NewNodeQueue creates a queue from the script's node sequence.
// The slice is copied so expansion never mutates the caller's script.
func NewNodeQueue(nodes []script.Node) *NodeQueue {
	q := &NodeQueue{nodes: make([]script.Node, len(nodes))}
	copy(q.nodes, nodes)
	return q
}

// Insert places n before the existing entry at idx, shifting subsequent
// entries right. idx == Len appends.
func (q *NodeQueue) Insert(idx int, n script.Node) {
	q.nodes = append(q.nodes, script.Node{})
	copy(q.nodes[idx+1:], q.nodes[idx:])
	q.nodes[idx] = n
}

// Delete removes the entry at idx, shifting subsequent entries left.
func (q *NodeQueue) Delete(idx int) {
	copy(q.nodes[idx:], q.nodes[idx+1:])
	q.nodes[len(q.nodes)-1] = script.Node{}
	q.nodes = q.nodes[:len(q.nodes)-1]
}

// At returns the node at idx.
func (q *NodeQueue) At(idx int) script.Node {
	return q.nodes[idx]
}

// Len returns the current queue length. The engine re-reads this every
// iteration because expansion grows the walk mid-run.
func (q *NodeQueue) Len() int {
	return len(q.nodes)
}

// Nodes returns a copy of the current queue content.
func (q *NodeQueue) Nodes() []script.Node {
	out := make([]script.Node, len(q.nodes))
	copy(out, q.nodes)
	return out
}
