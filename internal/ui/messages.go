package ui

import (
	"combobox/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// animationTickMsg advances the popup slide by one frame
type animationTickMsg struct {
	gen int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
