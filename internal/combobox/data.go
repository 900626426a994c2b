package combobox

import (
	"strings"

	"combobox/internal/dom"
	"combobox/internal/domain"
)

// Filter recomputes the visible set: the options whose value contains
// query case-insensitively, in original order. An empty query restores the
// full set. The list is always re-rendered.
func (c *Controller) Filter(query string) {
	if query != "" {
		q := strings.ToLower(query)
		visible := make([]domain.Option, 0, len(c.original))
		for _, o := range c.original {
			if strings.Contains(strings.ToLower(o.Value), q) {
				visible = append(visible, o)
			}
		}
		c.visible = visible
	} else {
		c.visible = c.original
	}

	c.renderList()

	c.publish(domain.FilterAppliedEvent{
		Query:   query,
		Visible: len(c.visible),
		Total:   len(c.original),
	})
}

// FilterValue filters against the current input value
func (c *Controller) FilterValue() {
	c.Filter(c.Value())
}

// renderList rebuilds the list markup from the visible set. A focused item
// that survives keeps its markers; one that vanished hands focus back to
// the input.
func (c *Controller) renderList() {
	c.list.Empty()

	if len(c.visible) == 0 {
		c.list.Append(dom.NewText("p", NoDataText))
	} else {
		for _, o := range c.visible {
			li := dom.New("li", ClassListItem).SetAttrs(
				dom.Attr{Name: "id", Value: o.ID},
				dom.Attr{Name: AttrRole, Value: "option"},
				dom.Attr{Name: AttrSelected, Value: "false"},
			)
			li.Append(dom.NewText("span", o.Value, ClassItemText))
			c.list.Append(li)
		}
	}

	if c.focus.IsListItem() {
		if el := c.itemElement(c.focus.ItemID); el != nil {
			c.focused = el
			el.AddClass(ClassFocus)
			el.SetAttr(AttrSelected, "true")
		} else {
			c.SetFocus(domain.InputFocus())
		}
	}
}

func (c *Controller) itemElement(id string) *dom.Element {
	el := c.list.ByID(id)
	if el == nil || !el.HasClass(ClassListItem) {
		return nil
	}
	return el
}

func (c *Controller) firstItem() *dom.Element {
	items := c.Items()
	if len(items) == 0 {
		return nil
	}
	return items[0]
}

func (c *Controller) lastItem() *dom.Element {
	items := c.Items()
	if len(items) == 0 {
		return nil
	}
	return items[len(items)-1]
}
