package memdom

import (
	"testing"

	"tabnav/internal/ports"
)

func TestCaptureOrderAndStopPropagation(t *testing.T) {
	doc := NewDocument()
	var order []string

	doc.AddCaptureListener(func(ev *ports.ClickEvent) {
		order = append(order, "first")
		ev.StopPropagation()
	})
	doc.AddCaptureListener(func(ev *ports.ClickEvent) {
		order = append(order, "second")
	})
	doc.AddDefaultAction(func(ev *ports.ClickEvent) {
		order = append(order, "default")
	})

	doc.Dispatch(&ports.ClickEvent{Target: NewNode()})

	if len(order) != 1 || order[0] != "first" {
		t.Errorf("stopPropagation must halt the chain, got %v", order)
	}
}

func TestPreventDefaultSkipsDefaultsOnly(t *testing.T) {
	doc := NewDocument()
	var order []string

	doc.AddCaptureListener(func(ev *ports.ClickEvent) {
		order = append(order, "first")
		ev.PreventDefault()
	})
	doc.AddCaptureListener(func(ev *ports.ClickEvent) {
		order = append(order, "second")
	})
	doc.AddDefaultAction(func(ev *ports.ClickEvent) {
		order = append(order, "default")
	})

	doc.Dispatch(&ports.ClickEvent{Target: NewNode()})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("preventDefault must not halt the capture chain, got %v", order)
	}
}

func TestDefaultsRunWhenEventSurvives(t *testing.T) {
	doc := NewDocument()
	ran := false
	doc.AddDefaultAction(func(ev *ports.ClickEvent) { ran = true })

	doc.Dispatch(&ports.ClickEvent{Target: NewNode()})

	if !ran {
		t.Error("default action should have run")
	}
}

func TestDeferredDrainsAfterOutermostDispatch(t *testing.T) {
	doc := NewDocument()
	var order []string

	doc.AddCaptureListener(func(ev *ports.ClickEvent) {
		if ev.Mods.Ctrl {
			order = append(order, "nested")
			return
		}
		order = append(order, "outer")
		doc.Defer(func() { order = append(order, "deferred") })
		// Synthetic redispatch: the queue must survive the nested
		// dispatch unwinding.
		doc.Dispatch(&ports.ClickEvent{Target: ev.Target, Mods: ports.Modifiers{Ctrl: true}})
		order = append(order, "after-nested")
	})

	doc.Dispatch(&ports.ClickEvent{Target: NewNode()})

	want := []string{"outer", "nested", "after-nested", "deferred"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDeferredMayQueueMoreWork(t *testing.T) {
	doc := NewDocument()
	var order []string

	doc.AddCaptureListener(func(ev *ports.ClickEvent) {
		doc.Defer(func() {
			order = append(order, "first")
			doc.Defer(func() { order = append(order, "second") })
		})
	})

	doc.Dispatch(&ports.ClickEvent{Target: NewNode()})

	if len(order) != 2 || order[1] != "second" {
		t.Errorf("chained deferred work must drain in the same turn, got %v", order)
	}
}

func TestNodeAncestry(t *testing.T) {
	root := NewNode("tree-item")
	self := NewNode("tree-item-self")
	inner := NewNode("tree-item-inner").SetText("Demo")
	root.Append(self)
	self.Append(inner)

	if got := ports.ClosestClass(inner, "tree-item"); got != ports.Element(root) {
		t.Error("ClosestClass should walk up to the tree item")
	}
	if got := ports.ClosestClass(inner, "missing"); got != nil {
		t.Errorf("ClosestClass on absent class = %v, want nil", got)
	}
	if root.Text() != "Demo" {
		t.Errorf("Text() should concatenate descendants, got %q", root.Text())
	}
	if inner.Parent() == nil || root.Parent() != nil {
		t.Error("parent links wrong")
	}
}
