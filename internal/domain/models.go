package domain

// Option is a single selectable value in the combobox list
type Option struct {
	ID    string // unique within one widget instance
	Value string // display text
}

// FocusKind says which element holds the logical keyboard focus
type FocusKind int

const (
	FocusInput FocusKind = iota
	FocusListItem
)

func (k FocusKind) String() string {
	switch k {
	case FocusInput:
		return "input"
	case FocusListItem:
		return "list-item"
	default:
		return "unknown"
	}
}

// FocusTarget is either the input or one rendered list item
type FocusTarget struct {
	Kind   FocusKind
	ItemID string // set only when Kind == FocusListItem
}

// InputFocus returns the target pointing at the input element
func InputFocus() FocusTarget {
	return FocusTarget{Kind: FocusInput}
}

// ItemFocus returns the target pointing at the list item with the given id
func ItemFocus(id string) FocusTarget {
	return FocusTarget{Kind: FocusListItem, ItemID: id}
}

// IsInput reports whether the input holds the logical focus
func (f FocusTarget) IsInput() bool {
	return f.Kind == FocusInput
}

// IsListItem reports whether a list item holds the logical focus
func (f FocusTarget) IsListItem() bool {
	return f.Kind == FocusListItem
}

func (f FocusTarget) String() string {
	if f.IsListItem() {
		return "list-item(" + f.ItemID + ")"
	}
	return f.Kind.String()
}

// PopupState is the tracked visibility of the popup list
type PopupState int

const (
	PopupClosed PopupState = iota
	PopupOpen
)

func (p PopupState) String() string {
	if p == PopupOpen {
		return "open"
	}
	return "closed"
}

// IsOpen reports whether the popup is open
func (p PopupState) IsOpen() bool {
	return p == PopupOpen
}
