package engine

import (
	"context"
	"log/slog"

	"github.com/typeline/typeline/internal/script"
)

// Renderer projects current session state onto a display surface.
//
// Render is invoked exactly once per completed step, always with a state
// that reflects one fully-applied handler mutation. Implementations are
// expected to be idempotent and side-effect-free beyond updating the
// surface.
type Renderer interface {
	Render(buf *Buffer, queue *NodeQueue, cur *Cursor) error
}

// Resolver maps a script's selector to a renderer bound to a concrete
// display surface. Resolution failure is fatal: New returns the error
// and no run ever begins.
type Resolver interface {
	Resolve(selector string) (Renderer, error)
}

// Observer is notified after each executed step with the step's logical
// seq, the node that ran, and the session state the step produced.
// The frame recorder hangs off this.
type Observer func(seq int64, n script.Node, s *Session)

// Engine drives one typing session: it walks the node queue by index,
// waits out each node's delay, dispatches the matching handler, then
// triggers the render projection.
//
// Execution is strictly sequential on one logical timeline; no two steps
// ever run concurrently, and session state is owned exclusively by the
// run once started. Handlers may grow the queue at or after the current
// index (expansion), so the walk re-reads the queue length every
// iteration and the number of executed steps can exceed the queue's
// original length.
type Engine struct {
	sc       *script.Script
	session  *Session
	handlers map[script.Kind]HandlerFunc
	hooks    Hooks
	clock    *Clock
	sched    Scheduler
	renderer Renderer
	observer Observer

	runErr chan error
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler overrides the delay scheduler. Tests substitute a
// virtual scheduler so runs complete without wall-clock waits.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithObserver registers a per-step observer (e.g. the frame recorder).
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// New creates an engine for the script, resolving its display surface
// up front. A selector that resolves to no surface is a fatal startup
// error and New returns it immediately.
func New(sc *script.Script, resolver Resolver, opts ...Option) (*Engine, error) {
	renderer, err := resolver.Resolve(sc.Selector)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		sc:       sc,
		session:  NewSession(NewNodeQueue(sc.Nodes)),
		handlers: defaultHandlers(),
		clock:    NewClock(),
		sched:    TimerScheduler{},
		renderer: renderer,
		runErr:   make(chan error, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// OnStart registers a run-start callback. Returns the engine for
// chaining. Registration is only valid before Start/Run.
func (e *Engine) OnStart(fn func()) *Engine {
	e.hooks.OnStart(fn)
	return e
}

// OnFinish registers a run-finish callback. Returns the engine for
// chaining.
func (e *Engine) OnFinish(fn func()) *Engine {
	e.hooks.OnFinish(fn)
	return e
}

// Start begins the run on its own goroutine and returns the engine
// immediately; the surface was already resolved in New. Use Wait to
// collect the run's outcome.
func (e *Engine) Start(ctx context.Context) *Engine {
	go func() {
		e.runErr <- e.Run(ctx)
	}()
	return e
}

// Wait blocks until a run started with Start finishes and returns its
// error.
func (e *Engine) Wait() error {
	return <-e.runErr
}

// Run executes the session to completion on the calling goroutine.
//
// Each traversal: fire run-start hooks in registration order, execute
// every queue node sequentially, fire run-finish hooks. With the
// script's loop flag set, traversals repeat with a fresh buffer and
// cursor over the same (possibly expanded) queue until ctx is
// cancelled; a non-looping run returns nil after one traversal.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("typing session starting",
		"script", e.sc.Name,
		"selector", e.sc.Selector,
		"nodes", e.session.Queue.Len(),
		"loop", e.sc.Loop,
	)

	for {
		e.session.Reset()
		e.hooks.fireStart()

		if err := e.walk(ctx); err != nil {
			slog.Info("typing session stopping", "script", e.sc.Name, "reason", err)
			return err
		}

		e.hooks.fireFinish()

		if !e.sc.Loop {
			slog.Info("typing session finished",
				"script", e.sc.Name,
				"steps", e.clock.Current(),
			)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// walk executes one full traversal of the queue. The loop condition
// re-reads the queue length each iteration: expansion inserts nodes at
// or after the current index and the walk picks them up in order.
func (e *Engine) walk(ctx context.Context) error {
	for i := 0; i < e.session.Queue.Len(); i++ {
		n := e.session.Queue.At(i)

		if err := e.sched.Sleep(ctx, n.Delay); err != nil {
			return err
		}

		if h, ok := e.handlers[n.Kind]; ok {
			h(n, i, e.session)
		} else {
			// Unknown kind: tolerated silently, same as a handler
			// receiving a mismatched node.
			slog.Debug("no handler for node kind", "kind", n.Kind, "index", i)
		}

		seq := e.clock.Next()

		if err := e.renderer.Render(e.session.Buffer, e.session.Queue, e.session.Cursor); err != nil {
			// Log and continue: a render failure must not skew the
			// step sequence or the session state.
			slog.Error("render failed",
				"error", err,
				"script", e.sc.Name,
				"seq", seq,
				"index", i,
			)
		}

		if e.observer != nil {
			e.observer(seq, n, e.session)
		}

		slog.Debug("step executed",
			"seq", seq,
			"index", i,
			"kind", n.Kind,
			"cursor", e.session.Cursor.Pos(),
			"buffer_len", e.session.Buffer.Len(),
		)
	}
	return nil
}

// Session exposes the session state for introspection and tests.
func (e *Engine) Session() *Session {
	return e.session
}

// Clock returns the engine's logical step clock.
func (e *Engine) Clock() *Clock {
	return e.clock
}
