package tui

import "strings"

// Box is one rectangular region in the layout tree. A box owns its children;
// the parent pointer is a non-owning back-reference
type Box struct {
	Title    string
	Editable bool

	style    *Style
	parent   *Box
	children []*Box

	text       string
	textOffset int
	dirty      bool

	availHeight *int // explicit overrides; seeded on the root from the
	availWidth  *int // terminal size, and again on every resize
}

// NewBox creates a box with the given style and children. A nil style means
// DefaultStyle
func NewBox(style *Style, children ...*Box) *Box {
	if style == nil {
		style = DefaultStyle()
	}
	b := &Box{style: style}
	b.AddChildren(children...)
	return b
}

// Style returns the box's style
func (b *Box) Style() *Style { return b.style }

// Parent returns the owning box, nil for the root
func (b *Box) Parent() *Box { return b.parent }

// Children returns the child boxes in layout order
func (b *Box) Children() []*Box { return b.children }

// AddChild appends child and takes ownership
func (b *Box) AddChild(child *Box) {
	child.parent = b
	b.children = append(b.children, child)
}

// AddChildren appends children in order
func (b *Box) AddChildren(children ...*Box) {
	for _, c := range children {
		b.AddChild(c)
	}
}

// Root returns the root of the layout tree
func (b *Box) Root() *Box {
	node := b
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// Ancestors returns the parent boxes, immediate parent first, root last
func (b *Box) Ancestors() []*Box {
	var out []*Box
	for node := b.parent; node != nil; node = node.parent {
		out = append(out, node)
	}
	return out
}

// PreOrder returns all boxes rooted at b in pre-order
func (b *Box) PreOrder() []*Box {
	out := []*Box{b}
	for _, c := range b.children {
		out = append(out, c.PreOrder()...)
	}
	return out
}

// OlderSiblings returns same-parent boxes earlier in the children order
func (b *Box) OlderSiblings() []*Box {
	if b.parent == nil {
		return nil
	}
	sibs := b.parent.children
	return sibs[:b.index()]
}

// YoungerSiblings returns same-parent boxes later in the children order
func (b *Box) YoungerSiblings() []*Box {
	if b.parent == nil {
		return nil
	}
	sibs := b.parent.children
	return sibs[b.index()+1:]
}

// Siblings returns all same-parent boxes except b
func (b *Box) Siblings() []*Box {
	out := append([]*Box{}, b.OlderSiblings()...)
	return append(out, b.YoungerSiblings()...)
}

func (b *Box) index() int {
	for i, c := range b.parent.children {
		if c == b {
			return i
		}
	}
	return 0
}

func (b *Box) siblingsIncludingSelf() []*Box {
	if b.parent == nil {
		return []*Box{b}
	}
	return b.parent.children
}

// Text returns the box's inner text
func (b *Box) Text() string { return b.text }

// SetText replaces the box's text and dirties the tree
func (b *Box) SetText(text string) {
	b.text = text
	b.MarkDirty()
}

// TextOffset returns the vertical scroll position
func (b *Box) TextOffset() int { return b.textOffset }

// Scroll shifts the visible text by amount rows, clamped to the text, and
// dirties the tree
func (b *Box) Scroll(amount int) {
	lines := strings.Count(b.text, "\n")
	b.textOffset += amount
	if b.textOffset < 0 {
		b.textOffset = 0
	}
	if max := lines - 1; max >= 0 && b.textOffset > max {
		b.textOffset = max
	}
	b.MarkDirty()
}

// MarkDirty flags the tree root for repaint. The flag always lives on the
// root; descendants never carry it
func (b *Box) MarkDirty() {
	b.Root().dirty = true
}

// Dirty reports whether the tree rooted at b's root needs repainting
func (b *Box) Dirty() bool {
	return b.Root().dirty
}

// ClearDirty resets the repaint flag after a render pass
func (b *Box) ClearDirty() {
	b.Root().dirty = false
}

// SetAvailableHeight overrides derived available height until cleared
func (b *Box) SetAvailableHeight(rows int) {
	v := rows
	b.availHeight = &v
}

// SetAvailableWidth overrides derived available width until cleared
func (b *Box) SetAvailableWidth(cols int) {
	v := cols
	b.availWidth = &v
}

// ClearAvailableSize removes both overrides, restoring derivation
func (b *Box) ClearAvailableSize() {
	b.availHeight = nil
	b.availWidth = nil
}
