package script

import (
	"fmt"
	"time"
)

// Kind identifies what a node does when it executes.
type Kind string

const (
	// KindText inserts one unit of visible text at the cursor.
	KindText Kind = "text"
	// KindTag inserts a structural marker at the cursor. Markers render
	// differently but share the text insertion path.
	KindTag Kind = "tag"
	// KindDelay waits for the node's delay and does nothing else.
	KindDelay Kind = "delay"
	// KindClear empties the buffer and resets the cursor to 0.
	KindClear Kind = "clear"
	// KindMove repositions the cursor by one text-aware step.
	KindMove Kind = "move"
	// KindDelete removes one buffer entry relative to the cursor.
	KindDelete Kind = "delete"
)

// Valid reports whether k is a known node kind.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindTag, KindDelay, KindClear, KindMove, KindDelete:
		return true
	}
	return false
}

// Direction qualifies move and delete nodes.
//
// Left and Right are atomic single steps. Start and End are authoring
// shorthand: they never execute directly but are expanded into a run of
// Left/Right copies before execution reaches them. After expansion the
// live queue never contains Start or End.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirStart Direction = "start"
	DirEnd   Direction = "end"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	switch d {
	case DirLeft, DirRight, DirStart, DirEnd:
		return true
	}
	return false
}

// Relative reports whether d is authoring shorthand that requires
// expansion before execution.
func (d Direction) Relative() bool {
	return d == DirStart || d == DirEnd
}

// Node is one declarative typing operation.
//
// A node is immutable once enqueued; expansion replaces a node wholesale
// with concrete copies rather than mutating it.
type Node struct {
	Kind  Kind
	Value string        // payload for text and tag nodes
	Dir   Direction     // direction for move and delete nodes
	Delay time.Duration // wait before this node executes
}

// Validate checks a node's internal consistency.
func (n Node) Validate() error {
	if !n.Kind.Valid() {
		return fmt.Errorf("unknown node kind %q", n.Kind)
	}
	if n.Delay < 0 {
		return fmt.Errorf("%s node: negative delay %s", n.Kind, n.Delay)
	}
	switch n.Kind {
	case KindText, KindTag:
		if n.Value == "" {
			return fmt.Errorf("%s node: value is required", n.Kind)
		}
	case KindMove, KindDelete:
		if !n.Dir.Valid() {
			return fmt.Errorf("%s node: unknown direction %q", n.Kind, n.Dir)
		}
	}
	return nil
}

// Script is a complete typing session definition: the display surface to
// animate, whether to loop, and the ordered node sequence.
type Script struct {
	// Name identifies the script (defaults to the file base name).
	Name string

	// Selector names the display surface the session renders into.
	// Resolution failure is fatal at startup.
	Selector string

	// ClearAttr names the surface property blanked when a clear node
	// executes.
	ClearAttr string

	// Loop re-walks the node sequence indefinitely when true.
	Loop bool

	// Nodes is the initial operation sequence, in execution order.
	Nodes []Node
}

// Validate checks the script and every node in it.
func (s *Script) Validate() error {
	if s.Selector == "" {
		return fmt.Errorf("selector is required")
	}
	if len(s.Nodes) == 0 {
		return fmt.Errorf("nodes list is required and must be non-empty")
	}
	for i, n := range s.Nodes {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}
	return nil
}
