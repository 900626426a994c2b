package combobox

import (
	"combobox/internal/domain"
)

// HandleInput reacts to the user typing: value is the input's new text
func (c *Controller) HandleInput(value string) {
	c.SetValue(value)
	c.showIcon(len(value) > 0)
	c.SetFocus(domain.InputFocus())
	c.FilterValue()
	c.Open()
}

// HandleBlur reacts to the input losing real focus
func (c *Controller) HandleBlur() {
	c.Close()
}

// HandleFocus reacts to the input gaining real focus
func (c *Controller) HandleFocus() {
	c.SetFocus(domain.InputFocus())
}

// HandleItemClick commits the clicked item's text. Unlike Enter it neither
// re-filters nor closes the popup. Unknown ids are ignored.
func (c *Controller) HandleItemClick(id string) {
	el := c.itemElement(id)
	if el == nil {
		return
	}
	c.commit(id, el.Text(), "pointer")
	c.showIcon(true)
}

// HandleClearClick empties the input without re-filtering
func (c *Controller) HandleClearClick() {
	c.SetValue("")
	c.showIcon(false)
	c.publish(domain.ValueClearedEvent{Source: "pointer"})
}

func (c *Controller) showIcon(show bool) {
	c.clearIconVisible = show
	if show {
		c.host.Show(c.clearIcon)
	} else {
		c.host.Hide(c.clearIcon)
	}
}
