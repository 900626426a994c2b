// Package combobox implements the interaction state machine of a text
// input augmented with a filterable option list.
//
// A Controller owns three facets: the option data (original and visible
// sets), the logical keyboard focus (the input or one list item) and the
// popup visibility. Host events are delivered through the Handle* methods;
// the controller mutates its element tree and asks the Host to animate,
// show, hide or scroll.
package combobox

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"combobox/internal/dom"
	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
)

var (
	// ErrNilElement is returned when New is given no input element
	ErrNilElement = errors.New("combobox: nil input element")
	// ErrMissingID is returned when the input element has no id attribute
	ErrMissingID = errors.New("combobox: input element has no id")
)

// Class names used in the generated markup
const (
	ClassContainer = "container"
	ClassInput     = "dropdown-input"
	ClassClearIcon = "clear-icon"
	ClassPopup     = "popup"
	ClassList      = "list"
	ClassListItem  = "list-item"
	ClassItemText  = "item-text"
	ClassFocus     = "focus"
)

// Attribute names of the accessibility contract
const (
	AttrRole             = "role"
	AttrAutocomplete     = "aria-autocomplete"
	AttrControls         = "aria-controls"
	AttrExpanded         = "aria-expanded"
	AttrActiveDescendant = "aria-activedescendant"
	AttrSelected         = "aria-selected"
	AttrLabel            = "aria-label"
)

// NoDataText is shown in place of list items when nothing matches
const NoDataText = "No Data"

// Controller is the combobox state machine. It is driven from a single
// event loop and is not safe for concurrent use.
type Controller struct {
	opts Options
	host Host
	bus  eventbus.EventBus

	element   *dom.Element // the input
	wrapper   *dom.Element
	clearIcon *dom.Element
	popup     *dom.Element
	list      *dom.Element

	original []domain.Option
	visible  []domain.Option

	focus   domain.FocusTarget
	focused *dom.Element

	popupState       domain.PopupState
	clearIconVisible bool
}

// New builds the widget markup around input and renders the initial list
func New(input *dom.Element, host Host, opts Options) (*Controller, error) {
	if input == nil {
		return nil, ErrNilElement
	}
	id := input.ID()
	if id == "" {
		return nil, ErrMissingID
	}
	if host == nil {
		host = NopHost{}
	}

	opts = opts.withDefaults()
	c := &Controller{
		opts:    opts,
		host:    host,
		bus:     opts.Bus,
		element: input,
	}

	c.wrapper = input.Wrap(dom.New("div", ClassContainer))
	c.clearIcon = dom.New("span", ClassClearIcon)
	c.list = dom.New("ul", ClassList)
	c.popup = dom.New("div", ClassPopup).Append(c.list)
	c.wrapper.Append(c.clearIcon, c.popup)

	c.applyClassesAndAttributes(id)

	c.original = wrapData(opts.Data, opts.NewID)
	c.visible = c.original
	c.renderList()

	c.SetFocus(domain.InputFocus())
	c.host.Hide(c.clearIcon)

	logging.Debug("combobox: initialized",
		zap.String("id", id),
		zap.Int("options", len(c.original)),
	)
	return c, nil
}

func (c *Controller) applyClassesAndAttributes(id string) {
	listID := ListID(id)

	c.wrapper.SetAttr(AttrRole, "application")

	c.element.AddClass(ClassInput)
	c.element.SetAttrs(
		dom.Attr{Name: "type", Value: "text"},
		dom.Attr{Name: "autocomplete", Value: "off"},
		dom.Attr{Name: AttrRole, Value: "combobox"},
		dom.Attr{Name: AttrAutocomplete, Value: "list"},
		dom.Attr{Name: AttrControls, Value: listID},
		dom.Attr{Name: AttrExpanded, Value: "false"},
	)

	c.list.SetAttrs(
		dom.Attr{Name: AttrRole, Value: "listbox"},
		dom.Attr{Name: AttrLabel, Value: id + " list"},
		dom.Attr{Name: "id", Value: listID},
	)
}

// ListID derives the listbox id from the input id
func ListID(inputID string) string {
	return inputID + "_listbox"
}

// wrapData pairs every raw value with a fresh id. A generator that repeats
// itself gets a numeric suffix so ids stay unique within the instance.
func wrapData(data []string, newID func() string) []domain.Option {
	out := make([]domain.Option, 0, len(data))
	seen := make(map[string]struct{}, len(data))
	for _, v := range data {
		id := newID()
		if _, dup := seen[id]; dup || id == "" {
			base := id
			for n := len(seen); ; n++ {
				id = fmt.Sprintf("%s-%d", base, n)
				if _, taken := seen[id]; !taken {
					break
				}
			}
		}
		seen[id] = struct{}{}
		out = append(out, domain.Option{ID: id, Value: v})
	}
	return out
}

// Value returns the text currently in the input
func (c *Controller) Value() string {
	return c.element.Value()
}

// SetValue replaces the input text without filtering
func (c *Controller) SetValue(v string) {
	c.element.SetValue(v)
}

// Original returns the full option set
func (c *Controller) Original() []domain.Option {
	return append([]domain.Option(nil), c.original...)
}

// Visible returns the currently filtered option set
func (c *Controller) Visible() []domain.Option {
	return append([]domain.Option(nil), c.visible...)
}

// Focus returns the logical focus target
func (c *Controller) Focus() domain.FocusTarget {
	return c.focus
}

// Popup returns the tracked popup state
func (c *Controller) Popup() domain.PopupState {
	return c.popupState
}

// ClearIconVisible reports whether the clear affordance is shown
func (c *Controller) ClearIconVisible() bool {
	return c.clearIconVisible
}

// Input returns the input element
func (c *Controller) Input() *dom.Element { return c.element }

// Container returns the wrapper element around the whole widget
func (c *Controller) Container() *dom.Element { return c.wrapper }

// ClearIcon returns the clear affordance element
func (c *Controller) ClearIcon() *dom.Element { return c.clearIcon }

// PopupElement returns the popup container
func (c *Controller) PopupElement() *dom.Element { return c.popup }

// List returns the listbox element
func (c *Controller) List() *dom.Element { return c.list }

// Items returns the rendered list item elements in display order
func (c *Controller) Items() []*dom.Element {
	return c.list.Find(dom.HasClassFn(ClassListItem))
}

func (c *Controller) publish(event domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
