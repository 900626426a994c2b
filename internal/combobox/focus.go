package combobox

import (
	"go.uber.org/zap"

	"combobox/internal/dom"
	"combobox/internal/domain"
	"combobox/internal/logging"
)

// SetFocus moves the logical focus. The previous marker is always cleared
// first, so exactly one element carries it. Focusing a list item also marks
// it selected and points the input's active descendant at it; focusing the
// input drops the active descendant. Targets that
// are not currently rendered are ignored.
func (c *Controller) SetFocus(target domain.FocusTarget) {
	var el *dom.Element
	if target.IsListItem() {
		el = c.itemElement(target.ItemID)
	} else {
		el = c.element
	}
	if el == nil {
		logging.Debug("combobox: focus target not rendered", zap.Stringer("target", target))
		return
	}

	prev := c.focus
	if c.focused != nil {
		c.focused.RemoveClass(ClassFocus)
	}

	c.focused = el
	c.focus = target
	el.AddClass(ClassFocus)

	for _, li := range c.list.Find(dom.AttrEquals(AttrSelected, "true")) {
		li.SetAttr(AttrSelected, "false")
	}

	if target.IsListItem() {
		el.SetAttr(AttrSelected, "true")
		c.element.SetAttr(AttrActiveDescendant, target.ItemID)
	} else {
		c.element.RemoveAttr(AttrActiveDescendant)
	}

	if prev != target {
		c.publish(domain.FocusChangedEvent{From: prev, To: target})
	}
}

// FocusedElement returns the element holding the focus marker
func (c *Controller) FocusedElement() *dom.Element {
	return c.focused
}

func (c *Controller) listItemFocused() bool {
	return c.focus.IsListItem() && c.focused != nil && c.list.Contains(c.focused)
}

func (c *Controller) inputFocused() bool {
	return c.focus.IsInput()
}

// focusItem focuses a rendered item and scrolls it into view. nil is a no-op.
func (c *Controller) focusItem(el *dom.Element) {
	if el == nil {
		return
	}
	c.SetFocus(domain.ItemFocus(el.ID()))
	c.host.ScrollIntoView(el)
}
