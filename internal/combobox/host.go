package combobox

import (
	"time"

	"combobox/internal/dom"
)

// Host is the rendering environment the controller drives. All methods are
// fire-and-forget; a newer call for the same element supersedes an
// animation still in flight.
type Host interface {
	// SlideDown reveals el over d
	SlideDown(el *dom.Element, d time.Duration)
	// SlideUp hides el over d
	SlideUp(el *dom.Element, d time.Duration)
	// Show makes el visible immediately
	Show(el *dom.Element)
	// Hide makes el invisible immediately
	Hide(el *dom.Element)
	// ScrollIntoView brings el inside its scroll container's viewport
	ScrollIntoView(el *dom.Element)
}

// NopHost ignores every request. Useful for headless controllers.
type NopHost struct{}

func (NopHost) SlideDown(*dom.Element, time.Duration) {}
func (NopHost) SlideUp(*dom.Element, time.Duration)   {}
func (NopHost) Show(*dom.Element)                     {}
func (NopHost) Hide(*dom.Element)                     {}
func (NopHost) ScrollIntoView(*dom.Element)           {}
