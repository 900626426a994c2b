package combobox

import (
	"combobox/internal/domain"
	"combobox/internal/logging"
)

// Open starts the popup's reveal animation and marks the input expanded.
// Calling it while already open restarts the animation.
func (c *Controller) Open() {
	c.popupState = domain.PopupOpen
	c.host.SlideDown(c.popup, c.opts.OpenAnimationDelay)
	c.element.SetAttr(AttrExpanded, "true")

	logging.Debug("combobox: popup open")
	c.publish(domain.PopupOpenedEvent{})
}

// Close starts the popup's hide animation and marks the input collapsed
func (c *Controller) Close() {
	c.popupState = domain.PopupClosed
	c.host.SlideUp(c.popup, c.opts.CloseAnimationDelay)
	c.element.SetAttr(AttrExpanded, "false")

	logging.Debug("combobox: popup closed")
	c.publish(domain.PopupClosedEvent{})
}
