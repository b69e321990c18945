package memdom

import "tabnav/internal/ports"

// Document owns the event plumbing: a capture chain that runs before
// host handling, host default actions, and a zero-delay deferred queue
// drained after the outermost dispatch returns (the simulator's stand-in
// for a next-turn timer). It implements ports.Dispatcher and
// ports.Scheduler.
type Document struct {
	captures []func(*ports.ClickEvent)
	defaults []func(*ports.ClickEvent)
	deferred []func()
	depth    int
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddCaptureListener registers a capture-phase listener. Listeners run
// in registration order and see synthetic redispatches too.
func (d *Document) AddCaptureListener(fn func(*ports.ClickEvent)) {
	d.captures = append(d.captures, fn)
}

// AddDefaultAction registers a host default action, run only when the
// event was neither stopped nor prevented.
func (d *Document) AddDefaultAction(fn func(*ports.ClickEvent)) {
	d.defaults = append(d.defaults, fn)
}

// Dispatch sends a click through the capture chain and, if the event
// survives, through the host default actions. Nested dispatches (the
// router's synthetic redispatch) share the deferred queue, which only
// drains once the outermost dispatch has fully unwound.
func (d *Document) Dispatch(ev *ports.ClickEvent) {
	d.depth++
	for _, fn := range d.captures {
		if ev.PropagationStopped() {
			break
		}
		fn(ev)
	}
	if !ev.PropagationStopped() && !ev.DefaultPrevented() {
		for _, fn := range d.defaults {
			fn(ev)
		}
	}
	d.depth--
	if d.depth == 0 {
		d.drain()
	}
}

// Defer queues fn for execution after the current dispatch turn.
func (d *Document) Defer(fn func()) {
	d.deferred = append(d.deferred, fn)
}

func (d *Document) drain() {
	for len(d.deferred) > 0 {
		q := d.deferred
		d.deferred = nil
		for _, fn := range q {
			fn()
		}
	}
}
