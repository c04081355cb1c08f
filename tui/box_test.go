package tui

import (
	"reflect"
	"testing"
)

// buildTree returns the shared fixture: Root > (A > (AA, AB), B) with Root
// and A drawing full borders, seeded at 100x100
func buildTree() *Box {
	noCollapse := func() *Style {
		s := DefaultStyle()
		s.BorderCollapse = false
		return s
	}
	aa := NewBox(nil)
	aa.Title = "AA"
	ab := NewBox(nil)
	ab.Title = "AB"
	a := NewBox(noCollapse(), aa, ab)
	a.Title = "A"
	b := NewBox(nil)
	b.Title = "B"
	root := NewBox(noCollapse(), a, b)
	root.Title = "Root"
	root.SetAvailableHeight(100)
	root.SetAvailableWidth(100)
	return root
}

// buildCollapsedTree is the same shape with default (collapsed) borders
func buildCollapsedTree() *Box {
	aa := NewBox(nil)
	aa.Title = "AA"
	ab := NewBox(nil)
	ab.Title = "AB"
	a := NewBox(nil, aa, ab)
	a.Title = "A"
	b := NewBox(nil)
	b.Title = "B"
	root := NewBox(nil, a, b)
	root.Title = "Root"
	root.SetAvailableHeight(100)
	root.SetAvailableWidth(100)
	return root
}

func titles(boxes []*Box) []string {
	out := make([]string, len(boxes))
	for i, b := range boxes {
		out[i] = b.Title
	}
	return out
}

func TestPreOrder(t *testing.T) {
	tree := buildTree()
	got := titles(tree.PreOrder())
	want := []string{"Root", "A", "AA", "AB", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PreOrder() = %v, want %v", got, want)
	}
}

func TestRoot(t *testing.T) {
	tree := buildTree()
	ab := tree.Children()[0].Children()[1]
	if ab.Root() != tree {
		t.Errorf("Root() = %v, want the tree root", ab.Root().Title)
	}
}

func TestAvailableHeight(t *testing.T) {
	tree := buildTree()
	a, b := tree.Children()[0], tree.Children()[1]

	// 49 is the root's 100 minus 2 for borders, divided by 2 children
	if got := a.AvailableHeight(); got != 49 {
		t.Errorf("A available height = %d, want 49", got)
	}
	if got := b.AvailableHeight(); got != 49 {
		t.Errorf("B available height = %d, want 49", got)
	}
	// 23 is A's 49 minus 2 for borders, divided by 2 (rounded down)
	for _, child := range a.Children() {
		if got := child.AvailableHeight(); got != 23 {
			t.Errorf("%s available height = %d, want 23", child.Title, got)
		}
	}
}

func TestAvailableHeightBorderCollapse(t *testing.T) {
	tree := buildCollapsedTree()
	a, b := tree.Children()[0], tree.Children()[1]

	// 50 from dividing the root's 100, plus 1 for the shared border
	if got := a.AvailableHeight(); got != 51 {
		t.Errorf("A available height = %d, want 51", got)
	}
	if got := b.AvailableHeight(); got != 51 {
		t.Errorf("B available height = %d, want 51", got)
	}
	for _, child := range a.Children() {
		if got := child.AvailableHeight(); got != 26 {
			t.Errorf("%s available height = %d, want 26", child.Title, got)
		}
	}
}

func TestAvailableWidth(t *testing.T) {
	tree := buildTree()
	a, b := tree.Children()[0], tree.Children()[1]

	// Vertical layout: each child gets the full interior width
	if got := a.AvailableWidth(); got != 98 {
		t.Errorf("A available width = %d, want 98", got)
	}
	if got := b.AvailableWidth(); got != 98 {
		t.Errorf("B available width = %d, want 98", got)
	}
	for _, child := range a.Children() {
		if got := child.AvailableWidth(); got != 96 {
			t.Errorf("%s available width = %d, want 96", child.Title, got)
		}
	}
}

func TestAvailableWidthBorderCollapse(t *testing.T) {
	tree := buildCollapsedTree()
	for _, box := range tree.PreOrder()[1:] {
		if got := box.AvailableWidth(); got != 100 {
			t.Errorf("%s available width = %d, want 100", box.Title, got)
		}
	}
}

func TestAvailableWidthHorizontalLayout(t *testing.T) {
	tree := buildTree()
	a := tree.Children()[0]
	a.Style().Layout = Horizontal

	if got := a.AvailableWidth(); got != 98 {
		t.Errorf("A available width = %d, want 98", got)
	}
	// A's 96 interior split between 2 siblings
	for _, child := range a.Children() {
		if got := child.AvailableWidth(); got != 48 {
			t.Errorf("%s available width = %d, want 48", child.Title, got)
		}
	}
}

func TestAvailableWidthHorizontalLayoutBorderCollapse(t *testing.T) {
	tree := buildCollapsedTree()
	a := tree.Children()[0]
	a.Style().Layout = Horizontal

	if got := a.AvailableWidth(); got != 100 {
		t.Errorf("A available width = %d, want 100", got)
	}
	// 51 is half the full width plus 1 for the shared border
	for _, child := range a.Children() {
		if got := child.AvailableWidth(); got != 51 {
			t.Errorf("%s available width = %d, want 51", child.Title, got)
		}
	}
}

func TestAncestors(t *testing.T) {
	tree := buildTree()
	aa := tree.Children()[0].Children()[0]
	got := titles(aa.Ancestors())
	want := []string{"A", "Root"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ancestors() = %v, want %v", got, want)
	}
}

func TestOlderSiblings(t *testing.T) {
	tree := buildTree()
	a, b := tree.Children()[0], tree.Children()[1]
	if got := a.OlderSiblings(); len(got) != 0 {
		t.Errorf("A older siblings = %v, want none", titles(got))
	}
	got := titles(b.OlderSiblings())
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("B older siblings = %v, want [A]", got)
	}
}

func TestYoungerSiblings(t *testing.T) {
	tree := buildTree()
	a, b := tree.Children()[0], tree.Children()[1]
	got := titles(a.YoungerSiblings())
	if !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("A younger siblings = %v, want [B]", got)
	}
	if got := b.YoungerSiblings(); len(got) != 0 {
		t.Errorf("B younger siblings = %v, want none", titles(got))
	}
}

func TestUpperLeft(t *testing.T) {
	tree := buildTree()
	a, b := tree.Children()[0], tree.Children()[1]
	aa, ab := a.Children()[0], a.Children()[1]

	cases := []struct {
		box  *Box
		want Point
	}{
		{tree, Point{X: 0, Y: 0}},
		{a, Point{X: 1, Y: 1}},
		{b, Point{X: 1, Y: 50}},
		{aa, Point{X: 2, Y: 2}},
		{ab, Point{X: 2, Y: 25}},
	}
	for _, c := range cases {
		if got := c.box.UpperLeft(); got != c.want {
			t.Errorf("%s UpperLeft() = %v, want %v", c.box.Title, got, c.want)
		}
	}
}

func TestUpperLeftHorizontalLayout(t *testing.T) {
	tree := buildTree()
	a, b := tree.Children()[0], tree.Children()[1]
	aa, ab := a.Children()[0], a.Children()[1]
	a.Style().Layout = Horizontal

	cases := []struct {
		box  *Box
		want Point
	}{
		{tree, Point{X: 0, Y: 0}},
		{a, Point{X: 1, Y: 1}},
		{b, Point{X: 1, Y: 50}},
		{aa, Point{X: 2, Y: 2}},
		{ab, Point{X: 50, Y: 2}},
	}
	for _, c := range cases {
		if got := c.box.UpperLeft(); got != c.want {
			t.Errorf("%s UpperLeft() = %v, want %v", c.box.Title, got, c.want)
		}
	}
}

func TestLowerRight(t *testing.T) {
	tree := buildTree()
	if got := tree.LowerRight(); got != (Point{X: 100, Y: 100}) {
		t.Errorf("LowerRight() = %v, want (100,100)", got)
	}
}

func TestAddChild(t *testing.T) {
	tree := buildTree()
	box := NewBox(nil)
	tree.AddChild(box)
	if box.Parent() != tree {
		t.Error("AddChild did not set the parent")
	}
	if kids := tree.Children(); kids[len(kids)-1] != box {
		t.Error("AddChild did not append the child")
	}
}

func TestNoParentFallback(t *testing.T) {
	// A detached box with no override reports the minimal bordered size
	box := NewBox(nil)
	if got := box.AvailableHeight(); got != 2 {
		t.Errorf("available height = %d, want 2", got)
	}
	if got := box.AvailableWidth(); got != 2 {
		t.Errorf("available width = %d, want 2", got)
	}
}

func TestFixedAndFitDims(t *testing.T) {
	fixed := NewBox(&Style{Layout: Vertical, Height: 7, Width: 11})
	if got := fixed.Height(); got != 7 {
		t.Errorf("fixed height = %d, want 7", got)
	}
	if got := fixed.Width(); got != 11 {
		t.Errorf("fixed width = %d, want 11", got)
	}

	// A childless box sized to content needs only its borders
	fit := NewBox(&Style{Layout: Vertical, Height: Fit, Width: Fit})
	if got := fit.Height(); got != 2 {
		t.Errorf("fit height = %d, want 2", got)
	}
	if got := fit.Width(); got != 2 {
		t.Errorf("fit width = %d, want 2", got)
	}
}

func TestMinimumClamp(t *testing.T) {
	// Minimums apply to content-sized boxes only
	box := NewBox(&Style{Layout: Vertical, Height: Fit, Width: Fit, MinHeight: 12})
	if got := box.Height(); got != 12 {
		t.Errorf("clamped height = %d, want 12", got)
	}
	if got := box.Width(); got != 2 {
		t.Errorf("width = %d, want 2", got)
	}
}

func TestDirtyPropagation(t *testing.T) {
	tree := buildTree()
	tree.ClearDirty()
	aa := tree.Children()[0].Children()[0]

	aa.SetText("hello")
	if !tree.Dirty() {
		t.Error("SetText on a leaf did not dirty the root")
	}
	if !aa.Dirty() {
		t.Error("Dirty() should report the root flag from any node")
	}

	tree.ClearDirty()
	if aa.Dirty() {
		t.Error("ClearDirty did not reset the flag")
	}
}

func TestScrollClamping(t *testing.T) {
	box := NewBox(nil)
	box.SetText("one\ntwo\nthree\nfour")

	box.Scroll(-5)
	if got := box.TextOffset(); got != 0 {
		t.Errorf("offset after scrolling above top = %d, want 0", got)
	}
	box.Scroll(2)
	if got := box.TextOffset(); got != 2 {
		t.Errorf("offset = %d, want 2", got)
	}
	// Clamped to newline count minus one
	box.Scroll(100)
	if got := box.TextOffset(); got != 2 {
		t.Errorf("offset after scrolling past end = %d, want 2", got)
	}
}
