package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFilterApplied  EventType = "FilterApplied"
	EventFocusChanged   EventType = "FocusChanged"
	EventPopupOpened    EventType = "PopupOpened"
	EventPopupClosed    EventType = "PopupClosed"
	EventValueCommitted EventType = "ValueCommitted"
	EventValueCleared   EventType = "ValueCleared"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FilterAppliedEvent is emitted after the visible option set is recomputed
type FilterAppliedEvent struct {
	Query   string
	Visible int
	Total   int
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// FocusChangedEvent is emitted when the logical focus moves
type FocusChangedEvent struct {
	From FocusTarget
	To   FocusTarget
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// PopupOpenedEvent is emitted when the popup starts opening
type PopupOpenedEvent struct{}

func (e PopupOpenedEvent) Type() EventType { return EventPopupOpened }

// PopupClosedEvent is emitted when the popup starts closing
type PopupClosedEvent struct{}

func (e PopupClosedEvent) Type() EventType { return EventPopupClosed }

// ValueCommittedEvent is emitted when a list item's text is copied into the input
type ValueCommittedEvent struct {
	ItemID string
	Value  string
	Source string // "keyboard" or "pointer"
}

func (e ValueCommittedEvent) Type() EventType { return EventValueCommitted }

// ValueClearedEvent is emitted when the input value is emptied
type ValueClearedEvent struct {
	Source string // "keyboard" or "pointer"
}

func (e ValueClearedEvent) Type() EventType { return EventValueCleared }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Items int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
