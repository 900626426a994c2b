// Package dom is a small in-memory element tree. It stands in for the host
// document: the combobox builds its markup here, and a renderer walks the
// tree to draw it.
package dom

import (
	"html"
	"strings"
)

// Attr is a single name/value attribute pair
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the tree. Elements are not safe for concurrent use;
// the UI event loop is the only writer.
type Element struct {
	Tag string

	parent   *Element
	children []*Element
	attrs    []Attr
	classes  []string
	text     string
	value    string
}

// New creates a detached element
func New(tag string, classes ...string) *Element {
	e := &Element{Tag: tag}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

// NewText creates a detached element holding only text
func NewText(tag, text string, classes ...string) *Element {
	e := New(tag, classes...)
	e.text = text
	return e
}

// ID returns the id attribute, or "" when absent
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Attr returns the named attribute
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute, keeping first-set order
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	return e
}

// SetAttrs sets several attributes in order
func (e *Element) SetAttrs(attrs ...Attr) *Element {
	for _, a := range attrs {
		e.SetAttr(a.Name, a.Value)
	}
	return e
}

// RemoveAttr deletes an attribute if present
func (e *Element) RemoveAttr(name string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns a copy of the attributes in order
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// AddClass adds a class once
func (e *Element) AddClass(class string) *Element {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
	return e
}

// RemoveClass removes a class if present
func (e *Element) RemoveClass(class string) *Element {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			break
		}
	}
	return e
}

// HasClass reports whether the element carries the class
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Value returns the form value (inputs only)
func (e *Element) Value() string {
	return e.value
}

// SetValue replaces the form value
func (e *Element) SetValue(v string) {
	e.value = v
}

// Text returns the concatenated text of the element and its descendants
func (e *Element) Text() string {
	if len(e.children) == 0 {
		return e.text
	}
	var b strings.Builder
	b.WriteString(e.text)
	for _, c := range e.children {
		b.WriteString(c.Text())
	}
	return b.String()
}

// Parent returns the parent element, or nil when detached
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements
func (e *Element) Children() []*Element {
	return e.children
}

// Append adds children at the end, detaching them from any previous parent
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.Detach()
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// Empty removes all children and text
func (e *Element) Empty() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.text = ""
}

// Detach removes the element from its parent
func (e *Element) Detach() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Wrap puts wrapper where e was and moves e inside it
func (e *Element) Wrap(wrapper *Element) *Element {
	if p := e.parent; p != nil {
		for i, c := range p.children {
			if c == e {
				p.children[i] = wrapper
				wrapper.parent = p
				break
			}
		}
		e.parent = nil
	}
	wrapper.Append(e)
	return wrapper
}

// Index returns the position among siblings, or -1 when detached
func (e *Element) Index() int {
	if e.parent == nil {
		return -1
	}
	for i, c := range e.parent.children {
		if c == e {
			return i
		}
	}
	return -1
}

// Next returns the following sibling with the same tag, or nil
func (e *Element) Next() *Element {
	i := e.Index()
	if i < 0 {
		return nil
	}
	for _, c := range e.parent.children[i+1:] {
		if c.Tag == e.Tag {
			return c
		}
	}
	return nil
}

// Prev returns the preceding sibling with the same tag, or nil
func (e *Element) Prev() *Element {
	i := e.Index()
	if i < 0 {
		return nil
	}
	for j := i - 1; j >= 0; j-- {
		if c := e.parent.children[j]; c.Tag == e.Tag {
			return c
		}
	}
	return nil
}

// Contains reports whether other is e or one of its descendants
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Find returns all descendants matching pred, in document order
func (e *Element) Find(pred func(*Element) bool) []*Element {
	var out []*Element
	e.walk(func(n *Element) {
		if pred(n) {
			out = append(out, n)
		}
	})
	return out
}

// FindFirst returns the first descendant matching pred
func (e *Element) FindFirst(pred func(*Element) bool) *Element {
	if found := e.Find(pred); len(found) > 0 {
		return found[0]
	}
	return nil
}

// ByID returns the descendant with the given id
func (e *Element) ByID(id string) *Element {
	if id == "" {
		return nil
	}
	return e.FindFirst(func(n *Element) bool { return n.ID() == id })
}

func (e *Element) walk(fn func(*Element)) {
	for _, c := range e.children {
		fn(c)
		c.walk(fn)
	}
}

// HasClassFn is a Find predicate matching a class
func HasClassFn(class string) func(*Element) bool {
	return func(e *Element) bool { return e.HasClass(class) }
}

// AttrEquals is a Find predicate matching an attribute value
func AttrEquals(name, value string) func(*Element) bool {
	return func(e *Element) bool {
		v, ok := e.Attr(name)
		return ok && v == value
	}
}

// String renders the subtree as markup
func (e *Element) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Element) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Tag)
	if v, ok := e.Attr("id"); ok {
		writeAttr(b, "id", v)
	}
	if len(e.classes) > 0 {
		writeAttr(b, "class", strings.Join(e.classes, " "))
	}
	for _, a := range e.attrs {
		if a.Name != "id" {
			writeAttr(b, a.Name, a.Value)
		}
	}
	b.WriteByte('>')
	b.WriteString(html.EscapeString(e.text))
	for _, c := range e.children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
