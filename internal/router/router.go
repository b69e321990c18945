package router

import (
	"runtime"

	"tabnav/internal/domain"
	"tabnav/internal/ports"
	"tabnav/internal/resolver"
)

// Router is the single capturing click handler. It classifies a click,
// resolves it to a canonical path, reconciles the path against the
// open pane set, and applies the per-category decision table. All
// state is per event; nothing is retained across clicks.
type Router struct {
	ws     ports.Workspace
	res    *resolver.Resolver
	sched  ports.Scheduler
	events ports.Dispatcher
	mac    bool
}

// New creates a Router. sched is used for the one deferred open (empty
// pane reuse on internal links); events for the one synthetic
// redispatch (search matches).
func New(ws ports.Workspace, res *resolver.Resolver, sched ports.Scheduler, events ports.Dispatcher) *Router {
	return &Router{
		ws:     ws,
		res:    res,
		sched:  sched,
		events: events,
		mac:    runtime.GOOS == "darwin",
	}
}

// SetMac overrides platform detection for the forced-modifier
// redispatch.
func (r *Router) SetMac(mac bool) { r.mac = mac }

// OnClick runs in the capture phase, before the host's own handlers.
// It either suppresses the event and performs the navigation itself,
// or returns without touching it so default handling proceeds.
func (r *Router) OnClick(ev *ports.ClickEvent) {
	src := Classify(ev.Target)
	if !src.Navigational() {
		return
	}
	// Modifier clicks keep their platform-standard meaning. This also
	// terminates the re-entrant pass of our own forced redispatch.
	if ev.Mods.Any() {
		return
	}

	raw, ok := r.res.Resolve(src, ev.Target)
	if !ok {
		return
	}
	path := r.res.Normalize(raw)

	// Activate every pane already showing the file; last match wins in
	// host iteration order.
	open := false
	r.ws.IterateLeaves(func(leaf ports.Leaf) {
		vs := leaf.ViewState()
		if vs.File != "" && r.res.Normalize(vs.File) == path {
			r.ws.SetActiveLeaf(leaf)
			open = true
		}
	})

	switch src {
	case domain.SourceInternalLink:
		suppress(ev)
		if open {
			return
		}
		if empty := r.emptyLeaf(); empty != nil {
			r.ws.SetActiveLeaf(empty)
			// The open must land after the host's handlers for this
			// event have finished, so the now-active blank pane is the
			// one that receives the file.
			r.sched.Defer(func() {
				r.ws.OpenLinkText(path, r.activePath(), false)
			})
			return
		}
		r.ws.OpenLinkText(path, r.activePath(), true)

	case domain.SourceSearchTitle, domain.SourceFileExplorer, domain.SourceBookmark:
		if open {
			suppress(ev)
			return
		}
		if empty := r.emptyLeaf(); empty != nil {
			// Default handling is left to run: it completes the open
			// into the pane we just activated.
			r.ws.SetActiveLeaf(empty)
			return
		}
		suppress(ev)
		r.ws.OpenLinkText(path, "", true)

	case domain.SourceSearchMatch:
		if open {
			// The host scrolls/highlights within the active pane.
			return
		}
		suppress(ev)
		// Redispatch with a forced new-pane modifier so the host's own
		// positional handler performs the navigation and keeps the
		// match scroll position. The modifier makes our second pass a
		// no-op, so the recursion ends after one extra hop.
		forced := &ports.ClickEvent{Target: ev.Target}
		if r.mac {
			forced.Mods.Meta = true
		} else {
			forced.Mods.Ctrl = true
		}
		r.events.Dispatch(forced)
	}
}

func (r *Router) emptyLeaf() ports.Leaf {
	if empties := r.ws.LeavesOfType(ports.LeafTypeEmpty); len(empties) > 0 {
		return empties[0]
	}
	return nil
}

func (r *Router) activePath() string {
	path, _ := r.ws.ActiveFile()
	return path
}

func suppress(ev *ports.ClickEvent) {
	ev.StopPropagation()
	ev.PreventDefault()
}
