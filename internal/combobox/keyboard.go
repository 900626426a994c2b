package combobox

import (
	"go.uber.org/zap"

	"combobox/internal/domain"
	"combobox/internal/logging"
)

// Key is a key the controller reacts to
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// HandleKeyDown runs the keyboard state machine for one key press. It
// returns true when the host's default action for the key must be
// suppressed. Left and Right only pull focus back to the input and leave
// cursor movement to the host.
func (c *Controller) HandleKeyDown(key Key) bool {
	isListItemFocused := c.listItemFocused()
	isInputFocused := c.inputFocused()
	isPopupOpen := c.popupState.IsOpen()

	logging.Debug("combobox: keydown",
		zap.Stringer("key", key),
		zap.Stringer("focus", c.focus),
		zap.Stringer("popup", c.popupState),
	)

	switch key {
	case KeyUp:
		if isPopupOpen {
			if isInputFocused {
				c.focusItem(c.lastItem())
			} else if isListItemFocused {
				c.focusItem(c.focused.Prev())
			}
		} else {
			c.Open()
			c.focusItem(c.lastItem())
		}
		return true

	case KeyDown:
		if isPopupOpen {
			if isInputFocused {
				c.focusItem(c.firstItem())
			} else if isListItemFocused {
				c.focusItem(c.focused.Next())
			}
		} else {
			c.Open()
			c.focusItem(c.firstItem())
		}
		return true

	case KeyEnter:
		if isListItemFocused {
			c.commit(c.focused.ID(), c.focused.Text(), "keyboard")
			c.FilterValue()
			c.showIcon(true)
		}
		c.SetFocus(domain.InputFocus())
		c.Close()
		return true

	case KeyEscape:
		if isPopupOpen {
			if isListItemFocused {
				c.SetFocus(domain.InputFocus())
			}
			c.Close()
		} else {
			c.SetValue("")
			c.FilterValue()
			c.showIcon(false)
			c.publish(domain.ValueClearedEvent{Source: "keyboard"})
		}
		return true

	case KeyLeft, KeyRight:
		if !isInputFocused {
			c.SetFocus(domain.InputFocus())
		}
		return false
	}

	return false
}

// commit copies an item's display text into the input
func (c *Controller) commit(id, text, source string) {
	c.SetValue(text)
	logging.Debug("combobox: commit", zap.String("id", id), zap.String("source", source))
	c.publish(domain.ValueCommittedEvent{ItemID: id, Value: text, Source: source})
}
