package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	clearIconGlyph = "✕"
	focusMarker    = "› "
	blankMarker    = "  "
	minItemWidth   = 12
	maxItemWidth   = 48
)

// Row is one rendered list entry
type Row struct {
	ID       string
	Text     string
	Focused  bool
	Selected bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Label      string
	InputView  string
	ClearIcon  bool
	Rows       []Row  // every rendered item, in list order
	NoData     string // placeholder text when Rows is empty
	Offset     int    // first row of the scroll window
	ListHeight int    // rows in the scroll window
	Reveal     int    // rows of the window currently uncovered by the slide animation
	Status     string
	Inspector  []string
	Help       string
}

// Layout records where clickable parts landed on screen
type Layout struct {
	InputRow     int
	ClearIconCol int // -1 when the icon is hidden
	ItemsTop     int
	RowIDs       []string // item id per screen row starting at ItemsTop; "" for non-items
}

// ItemAt returns the item id drawn at the given screen row
func (l Layout) ItemAt(row int) (string, bool) {
	i := row - l.ItemsTop
	if i < 0 || i >= len(l.RowIDs) || l.RowIDs[i] == "" {
		return "", false
	}
	return l.RowIDs[i], true
}

// OnClearIcon reports whether the cell lies on the clear icon
func (l Layout) OnClearIcon(col, row int) bool {
	if l.ClearIconCol < 0 || row != l.InputRow {
		return false
	}
	return col >= l.ClearIconCol && col < l.ClearIconCol+runewidth.StringWidth(clearIconGlyph)
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Render draws the widget and reports the clickable layout
func (r *Renderer) Render(s ViewState) (string, Layout) {
	layout := Layout{InputRow: 1, ClearIconCol: -1}
	var lines []string

	lines = append(lines, r.styles.Label.Render(s.Label))

	inputLine := r.styles.Input.Render(s.InputView)
	if s.ClearIcon {
		layout.ClearIconCol = lipgloss.Width(inputLine) + 1
		inputLine += " " + r.styles.ClearIcon.Render(clearIconGlyph)
	}
	lines = append(lines, inputLine)

	if popup, ids := r.renderPopup(s); popup != "" {
		layout.ItemsTop = len(lines) + 1 // below the top border
		layout.RowIDs = ids
		lines = append(lines, popup)
		if len(s.Rows) > s.ListHeight {
			lines = append(lines, r.styles.Scroll.Render(scrollHint(s)))
		}
	}

	if s.Status != "" {
		lines = append(lines, r.styles.Status.Render(s.Status))
	}
	for _, l := range s.Inspector {
		lines = append(lines, r.styles.Inspector.Render(l))
	}
	if s.Help != "" {
		lines = append(lines, r.styles.Help.Render(s.Help))
	}

	return strings.Join(lines, "\n"), layout
}

func (r *Renderer) renderPopup(s ViewState) (string, []string) {
	if s.Reveal <= 0 {
		return "", nil
	}

	width := s.Width - 2 // border
	if width > maxItemWidth {
		width = maxItemWidth
	}
	if width < minItemWidth {
		width = minItemWidth
	}

	var body []string
	var ids []string

	if len(s.Rows) == 0 {
		body = append(body, r.styles.NoData.Render(runewidth.Truncate(s.NoData, width, "…")))
		ids = append(ids, "")
	} else {
		end := s.Offset + s.ListHeight
		if end > len(s.Rows) {
			end = len(s.Rows)
		}
		for _, row := range s.Rows[s.Offset:end] {
			marker := blankMarker
			if row.Selected {
				marker = focusMarker
			}
			text := runewidth.Truncate(row.Text, width-runewidth.StringWidth(marker), "…")
			text = runewidth.FillRight(marker+text, width)
			if row.Focused {
				body = append(body, r.styles.ItemFocused.Render(text))
			} else {
				body = append(body, r.styles.Item.Render(text))
			}
			ids = append(ids, row.ID)
		}
	}

	if s.Reveal < len(body) {
		body = body[:s.Reveal]
		ids = ids[:s.Reveal]
	}

	return r.styles.Popup.Render(strings.Join(body, "\n")), ids
}

func scrollHint(s ViewState) string {
	end := s.Offset + s.ListHeight
	if end > len(s.Rows) {
		end = len(s.Rows)
	}
	hint := fmt.Sprintf("%d-%d of %d", s.Offset+1, end, len(s.Rows))
	if s.Offset > 0 {
		hint = "↑ " + hint
	}
	if end < len(s.Rows) {
		hint += " ↓"
	}
	return hint
}
