package router_test

import (
	"testing"

	"tabnav/internal/adapters/memdom"
	"tabnav/internal/adapters/sim"
	"tabnav/internal/domain"
	"tabnav/internal/ports"
	"tabnav/internal/resolver"
	"tabnav/internal/router"
)

type vaultStub []ports.VaultFile

func (v vaultStub) Files() []ports.VaultFile { return v }

func testFiles() vaultStub {
	return vaultStub{
		{Path: "A.md", Name: "A.md", Basename: "A"},
		{Path: "B.md", Name: "B.md", Basename: "B"},
		{Path: "Notes/Demo.md", Name: "Demo.md", Basename: "Demo"},
	}
}

// harness wires the full capture chain: router first, host default
// action second, like the simulator does.
type harness struct {
	ws  *sim.Workspace
	doc *memdom.Document
	res *resolver.Resolver
	rt  *router.Router
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ws := sim.NewWorkspace(testFiles())
	doc := memdom.NewDocument()
	res := resolver.New(testFiles(), ws)
	res.SetSearchResults(ws)
	ws.SetNormalizer(res)

	rt := router.New(ws, res, doc, doc)
	rt.SetMac(false)
	doc.AddCaptureListener(rt.OnClick)
	doc.AddDefaultAction(ws.DefaultClickAction(res))

	// Drop the startup empty leaf; tests add the panes they need.
	ws.CloseLeaf(ws.Leaves()[0])
	return &harness{ws: ws, doc: doc, res: res, rt: rt}
}

func link(target string) *memdom.Node {
	return memdom.NewNode(domain.ClassInternalLink).SetAttr(domain.AttrHref, target)
}

func (h *harness) click(el *memdom.Node, mods ports.Modifiers) *ports.ClickEvent {
	ev := &ports.ClickEvent{Target: el, Mods: mods}
	h.doc.Dispatch(ev)
	return ev
}

func TestModifierClicksDefer(t *testing.T) {
	mods := []ports.Modifiers{
		{Shift: true},
		{Ctrl: true},
		{Meta: true},
		{Alt: true},
	}
	for _, m := range mods {
		h := newHarness(t)
		h.ws.OpenFile("A.md")

		ev := h.click(link("B"), m)
		if ev.DefaultPrevented() || ev.PropagationStopped() {
			t.Errorf("modifiers %+v: router must defer entirely", m)
		}
	}
}

func TestIgnoredTargetsUntouched(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")
	before := len(h.ws.Leaves())

	for _, class := range []string{domain.ClassCollapseIcon, domain.ClassHoverButton} {
		// Nest the icon inside a navigational container to prove the
		// exclusion wins over ancestry.
		title := memdom.NewNode(domain.ClassNavFileTitle).SetAttr(domain.AttrPath, "B.md")
		icon := memdom.NewNode(class)
		title.Append(icon)

		ev := h.click(icon, ports.Modifiers{})
		if ev.DefaultPrevented() || ev.PropagationStopped() {
			t.Errorf("%s: no suppression expected", class)
		}
	}
	if len(h.ws.Leaves()) != before {
		t.Errorf("pane set changed: %d -> %d", before, len(h.ws.Leaves()))
	}
}

func TestInternalLinkAlreadyOpenActivates(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")
	bLeaf := h.ws.OpenFile("B.md")
	h.ws.SetActiveLeaf(h.ws.Leaves()[0])

	ev := h.click(link("B"), ports.Modifiers{})

	if !ev.DefaultPrevented() || !ev.PropagationStopped() {
		t.Error("expected suppression")
	}
	if h.ws.Active() != bLeaf {
		t.Error("expected the pane showing B.md to be activated")
	}
	if len(h.ws.Leaves()) != 2 {
		t.Errorf("expected 2 panes, got %d", len(h.ws.Leaves()))
	}
}

func TestInternalLinkReusesEmptyPane(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")
	empty := h.ws.AddEmptyLeaf()
	before := len(h.ws.Leaves())

	ev := h.click(link("Demo"), ports.Modifiers{})

	if !ev.DefaultPrevented() {
		t.Error("expected suppression")
	}
	if len(h.ws.Leaves()) != before {
		t.Errorf("expected no new pane, got %d -> %d", before, len(h.ws.Leaves()))
	}
	if got := empty.ViewState().File; got != "Notes/Demo.md" {
		t.Errorf("blank pane shows %q, want Notes/Demo.md", got)
	}
	if len(h.ws.LeavesOfType(ports.LeafTypeEmpty)) != 0 {
		t.Error("blank pane should have been consumed")
	}
}

func TestInternalLinkForcesNewPane(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")

	ev := h.click(link("Demo"), ports.Modifiers{})

	if !ev.DefaultPrevented() {
		t.Error("expected suppression")
	}
	if len(h.ws.Leaves()) != 2 {
		t.Fatalf("expected 2 panes, got %d", len(h.ws.Leaves()))
	}
	if got, _ := h.ws.ActiveFile(); got != "Notes/Demo.md" {
		t.Errorf("active file %q, want Notes/Demo.md", got)
	}
}

func searchTitleFor(path, title string) *memdom.Node {
	pane := sim.SearchPane([]sim.SearchEntry{{Path: path, Title: title}})
	return findClassNode(pane, "tree-item-inner")
}

func searchMatchFor(path string) *memdom.Node {
	pane := sim.SearchPane([]sim.SearchEntry{{Path: path, Title: path, Matches: []string{"snippet"}}})
	return findClassNode(pane, domain.ClassSearchMatch)
}

func findClassNode(root *memdom.Node, class string) *memdom.Node {
	el := ports.FindClass(root, class)
	if el == nil {
		return nil
	}
	return el.(*memdom.Node)
}

func TestSearchTitleReusesEmptyPaneViaDefault(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")
	empty := h.ws.AddEmptyLeaf()
	before := len(h.ws.Leaves())

	ev := h.click(searchTitleFor("Notes/Demo.md", "Demo"), ports.Modifiers{})

	// The router only activates the blank pane; the host's default
	// handling completes the open into it.
	if ev.DefaultPrevented() || ev.PropagationStopped() {
		t.Error("expected no suppression")
	}
	if len(h.ws.Leaves()) != before {
		t.Errorf("expected no new pane, got %d -> %d", before, len(h.ws.Leaves()))
	}
	if got := empty.ViewState().File; got != "Notes/Demo.md" {
		t.Errorf("blank pane shows %q, want Notes/Demo.md", got)
	}
}

func TestSearchTitleForcesNewPane(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")

	ev := h.click(searchTitleFor("Notes/Demo.md", "Demo"), ports.Modifiers{})

	if !ev.DefaultPrevented() {
		t.Error("expected suppression")
	}
	if len(h.ws.Leaves()) != 2 {
		t.Errorf("expected 2 panes, got %d", len(h.ws.Leaves()))
	}
}

func TestSearchTitleAlreadyOpenSuppressesOnly(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("Notes/Demo.md")
	h.ws.OpenFile("A.md")
	before := len(h.ws.Leaves())

	ev := h.click(searchTitleFor("Notes/Demo.md", "Demo"), ports.Modifiers{})

	if !ev.DefaultPrevented() || !ev.PropagationStopped() {
		t.Error("expected suppression")
	}
	if got, _ := h.ws.ActiveFile(); got != "Notes/Demo.md" {
		t.Errorf("active file %q, want Notes/Demo.md", got)
	}
	if len(h.ws.Leaves()) != before {
		t.Errorf("pane count changed: %d -> %d", before, len(h.ws.Leaves()))
	}
}

func TestSearchMatchRedispatchesWithForcedModifier(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")

	var synthetic []*ports.ClickEvent
	h.doc.AddCaptureListener(func(ev *ports.ClickEvent) {
		if ev.Mods.Any() {
			synthetic = append(synthetic, ev)
		}
	})

	ev := h.click(searchMatchFor("Notes/Demo.md"), ports.Modifiers{})

	if !ev.DefaultPrevented() || !ev.PropagationStopped() {
		t.Error("original event must be fully suppressed")
	}
	if len(synthetic) != 1 {
		t.Fatalf("expected exactly one synthetic redispatch, got %d", len(synthetic))
	}
	if !synthetic[0].Mods.Ctrl {
		t.Error("expected forced ctrl modifier on non-mac")
	}
	// The host's modifier handling opens the match in a new pane.
	if len(h.ws.Leaves()) != 2 {
		t.Errorf("expected 2 panes, got %d", len(h.ws.Leaves()))
	}
	if got, _ := h.ws.ActiveFile(); got != "Notes/Demo.md" {
		t.Errorf("active file %q, want Notes/Demo.md", got)
	}
}

func TestSearchMatchAlreadyOpenLeavesDefault(t *testing.T) {
	h := newHarness(t)
	demoLeaf := h.ws.OpenFile("Notes/Demo.md")
	h.ws.OpenFile("A.md")

	ev := h.click(searchMatchFor("Notes/Demo.md"), ports.Modifiers{})

	if ev.PropagationStopped() {
		t.Error("propagation must continue for the host's scroll handling")
	}
	if h.ws.Active() != demoLeaf {
		t.Error("expected the pane showing the match to be active")
	}
}

func TestBookmarkForcesNewPane(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")

	pane := sim.BookmarksPane([]sim.BookmarkEntry{{Path: "Notes/Demo", Title: "Demo"}})
	inner := findClassNode(pane, "tree-item-inner")

	ev := h.click(inner, ports.Modifiers{})

	if !ev.DefaultPrevented() {
		t.Error("expected suppression")
	}
	if len(h.ws.Leaves()) != 2 {
		t.Errorf("expected 2 panes, got %d", len(h.ws.Leaves()))
	}
	if got, _ := h.ws.ActiveFile(); got != "Notes/Demo.md" {
		t.Errorf("active file %q, want Notes/Demo.md", got)
	}
}

func TestExplorerEntryAlreadyOpenSuppressesOnly(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("B.md")
	h.ws.OpenFile("A.md")

	title := memdom.NewNode(domain.ClassNavFileTitle).SetAttr(domain.AttrPath, "B.md")
	inner := memdom.NewNode("tree-item-inner").SetText("B")
	title.Append(inner)

	ev := h.click(inner, ports.Modifiers{})

	if !ev.DefaultPrevented() || !ev.PropagationStopped() {
		t.Error("expected suppression")
	}
	if got, _ := h.ws.ActiveFile(); got != "B.md" {
		t.Errorf("active file %q, want B.md", got)
	}
	if len(h.ws.Leaves()) != 2 {
		t.Errorf("expected 2 panes, got %d", len(h.ws.Leaves()))
	}
}

func TestUnclassifiedClickUntouched(t *testing.T) {
	h := newHarness(t)
	h.ws.OpenFile("A.md")

	plain := memdom.NewNode("status-bar-item")
	ev := h.click(plain, ports.Modifiers{})

	if ev.DefaultPrevented() || ev.PropagationStopped() {
		t.Error("unclassified clicks must pass through untouched")
	}
}
