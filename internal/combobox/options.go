package combobox

import (
	"time"

	"github.com/google/uuid"

	"combobox/internal/eventbus"
)

const (
	DefaultOpenAnimationDelay  = 400 * time.Millisecond
	DefaultCloseAnimationDelay = 300 * time.Millisecond
)

// Options configures one controller. Each call to DefaultOptions returns a
// fresh value; instances never share mutable defaults.
type Options struct {
	// Data is the initial option values, in display order
	Data []string

	// OpenAnimationDelay and CloseAnimationDelay are handed to the host's
	// slide animations
	OpenAnimationDelay  time.Duration
	CloseAnimationDelay time.Duration

	// NewID generates option ids; defaults to random UUIDs
	NewID func() string

	// Bus receives domain events when set
	Bus eventbus.EventBus
}

// DefaultOptions returns the default configuration
func DefaultOptions() Options {
	return Options{
		Data:                []string{},
		OpenAnimationDelay:  DefaultOpenAnimationDelay,
		CloseAnimationDelay: DefaultCloseAnimationDelay,
		NewID:               uuid.NewString,
	}
}

// withDefaults copies o, filling in the zero-value fields that have no
// meaningful zero
func (o Options) withDefaults() Options {
	out := o
	out.Data = append([]string(nil), o.Data...)
	if out.NewID == nil {
		out.NewID = uuid.NewString
	}
	if out.OpenAnimationDelay < 0 {
		out.OpenAnimationDelay = 0
	}
	if out.CloseAnimationDelay < 0 {
		out.CloseAnimationDelay = 0
	}
	return out
}
