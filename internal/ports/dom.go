package ports

// Element is the engine's view of a rendered workspace UI node. The
// host DOM is never owned by this system; elements are only read.
//
// Internal exposes host-internal (undocumented) properties attached to
// the node by the host framework. Access through it is best-effort:
// callers must tolerate absent keys and unexpected value shapes.
type Element interface {
	HasClass(name string) bool
	Attr(name string) (string, bool)
	Internal(key string) (any, bool)
	Text() string
	Parent() Element
	Children() []Element
}

// ClosestClass walks from el up through its ancestry and returns the
// first element carrying the class, or nil.
func ClosestClass(el Element, class string) Element {
	for e := el; e != nil; e = e.Parent() {
		if e.HasClass(class) {
			return e
		}
	}
	return nil
}

// FindClass returns the first descendant of el (depth-first, el
// excluded) carrying the class, or nil.
func FindClass(el Element, class string) Element {
	if el == nil {
		return nil
	}
	for _, c := range el.Children() {
		if c.HasClass(class) {
			return c
		}
		if m := FindClass(c, class); m != nil {
			return m
		}
	}
	return nil
}

// IndexAmong returns the position of el among the children of its
// parent that carry the class, or -1 if el is not among them.
func IndexAmong(el Element, class string) int {
	if el == nil || el.Parent() == nil {
		return -1
	}
	i := 0
	for _, c := range el.Parent().Children() {
		if !c.HasClass(class) {
			continue
		}
		if c == el {
			return i
		}
		i++
	}
	return -1
}

// Modifiers records the modifier keys held during a click.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Meta  bool
	Alt   bool
}

// Any reports whether any modifier key is held.
func (m Modifiers) Any() bool {
	return m.Shift || m.Ctrl || m.Meta || m.Alt
}

// ClickEvent is a single navigation click travelling through the
// capture chain. Its lifecycle is one handling turn; no event state is
// retained across clicks.
type ClickEvent struct {
	Target Element
	Mods   Modifiers

	prevented bool
	stopped   bool
}

// PreventDefault suppresses the host's default action for this event.
func (e *ClickEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether the default action was suppressed.
func (e *ClickEvent) DefaultPrevented() bool { return e.prevented }

// StopPropagation stops the event from reaching later handlers.
func (e *ClickEvent) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether propagation was stopped.
func (e *ClickEvent) PropagationStopped() bool { return e.stopped }

// Dispatcher redispatches a synthetic click through the full capture
// chain, exactly as if the host had produced it.
type Dispatcher interface {
	Dispatch(ev *ClickEvent)
}

// Scheduler defers work to the next scheduling turn (zero delay),
// after the current event's remaining handlers have run.
type Scheduler interface {
	Defer(fn func())
}
