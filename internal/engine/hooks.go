package engine

// Hooks holds the two lifecycle callback lists: run-start and
// run-finish. Registration is append-only and callbacks fire in
// registration order. Callbacks are zero-argument and fire-and-forget;
// whatever they do with their own errors or timing is their business,
// the engine does not wait on it.
type Hooks struct {
	start  []func()
	finish []func()
}

// OnStart appends a run-start callback.
func (h *Hooks) OnStart(fn func()) {
	h.start = append(h.start, fn)
}

// OnFinish appends a run-finish callback.
func (h *Hooks) OnFinish(fn func()) {
	h.finish = append(h.finish, fn)
}

func (h *Hooks) fireStart() {
	for _, fn := range h.start {
		fn()
	}
}

func (h *Hooks) fireFinish() {
	for _, fn := range h.finish {
		fn()
	}
}
