package combobox

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"combobox/internal/dom"
	"combobox/internal/domain"
)

// recordingHost remembers every host call in order
type recordingHost struct {
	calls    []string
	scrolled []string
	shown    map[*dom.Element]bool
}

func newRecordingHost() *recordingHost {
	return &recordingHost{shown: make(map[*dom.Element]bool)}
}

func (h *recordingHost) SlideDown(el *dom.Element, d time.Duration) {
	h.calls = append(h.calls, fmt.Sprintf("slideDown %s", d))
	h.shown[el] = true
}

func (h *recordingHost) SlideUp(el *dom.Element, d time.Duration) {
	h.calls = append(h.calls, fmt.Sprintf("slideUp %s", d))
	h.shown[el] = false
}

func (h *recordingHost) Show(el *dom.Element) {
	h.calls = append(h.calls, "show")
	h.shown[el] = true
}

func (h *recordingHost) Hide(el *dom.Element) {
	h.calls = append(h.calls, "hide")
	h.shown[el] = false
}

func (h *recordingHost) ScrollIntoView(el *dom.Element) {
	h.scrolled = append(h.scrolled, el.ID())
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("opt-%d", n)
	}
}

func newTestController(t *testing.T, data ...string) (*Controller, *recordingHost) {
	t.Helper()
	input := dom.New("input").SetAttr("id", "fruit")
	dom.New("form").Append(input)

	host := newRecordingHost()
	opts := DefaultOptions()
	opts.Data = data
	opts.NewID = sequentialIDs()

	c, err := New(input, host, opts)
	require.NoError(t, err)
	return c, host
}

func values(opts []domain.Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

func attr(t *testing.T, el *dom.Element, name string) string {
	t.Helper()
	v, ok := el.Attr(name)
	require.True(t, ok, "expected attribute %s on <%s>", name, el.Tag)
	return v
}

func TestNewRejectsInvalidElements(t *testing.T) {
	_, err := New(nil, NopHost{}, DefaultOptions())
	require.ErrorIs(t, err, ErrNilElement)

	_, err = New(dom.New("input"), NopHost{}, DefaultOptions())
	require.ErrorIs(t, err, ErrMissingID)
}

func TestNewBuildsMarkupAndAttributes(t *testing.T) {
	c, host := newTestController(t, "Apple", "Banana")

	input := c.Input()
	require.Equal(t, "combobox", attr(t, input, AttrRole))
	require.Equal(t, "list", attr(t, input, AttrAutocomplete))
	require.Equal(t, "fruit_listbox", attr(t, input, AttrControls))
	require.Equal(t, "false", attr(t, input, AttrExpanded))
	require.Equal(t, "text", attr(t, input, "type"))
	require.Equal(t, "off", attr(t, input, "autocomplete"))
	require.True(t, input.HasClass(ClassInput))
	_, hasActive := input.Attr(AttrActiveDescendant)
	require.False(t, hasActive)

	list := c.List()
	require.Equal(t, "listbox", attr(t, list, AttrRole))
	require.Equal(t, "fruit list", attr(t, list, AttrLabel))
	require.Equal(t, "fruit_listbox", list.ID())

	wrapper := c.Container()
	require.True(t, wrapper.HasClass(ClassContainer))
	require.Equal(t, "application", attr(t, wrapper, AttrRole))
	require.Equal(t, "form", wrapper.Parent().Tag, "wrapper takes the input's place")
	require.Same(t, wrapper, input.Parent())
	require.True(t, wrapper.Contains(c.ClearIcon()))
	require.True(t, c.PopupElement().Contains(list))

	require.Equal(t,
		`<ul id="fruit_listbox" class="list" role="listbox" aria-label="fruit list">`+
			`<li id="opt-1" class="list-item" role="option" aria-selected="false"><span class="item-text">Apple</span></li>`+
			`<li id="opt-2" class="list-item" role="option" aria-selected="false"><span class="item-text">Banana</span></li>`+
			`</ul>`,
		list.String())

	require.Equal(t, values(c.Original()), values(c.Visible()))
	require.True(t, c.Focus().IsInput())
	require.True(t, input.HasClass(ClassFocus))
	require.False(t, c.Popup().IsOpen())
	require.False(t, c.ClearIconVisible())
	require.Equal(t, []string{"hide"}, host.calls)
}

func TestOptionsAreNotShared(t *testing.T) {
	a := DefaultOptions()
	a.Data = append(a.Data, "x")
	b := DefaultOptions()
	require.Empty(t, b.Data)

	data := []string{"one", "two"}
	opts := DefaultOptions()
	opts.Data = data
	c, err := New(dom.New("input").SetAttr("id", "n"), nil, opts)
	require.NoError(t, err)
	data[0] = "changed"
	require.Equal(t, []string{"one", "two"}, values(c.Original()))
}

func TestWrapDataKeepsIDsUnique(t *testing.T) {
	opts := wrapData([]string{"a", "b", "c"}, func() string { return "same" })
	seen := map[string]bool{}
	for _, o := range opts {
		require.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
	}
	require.Equal(t, []string{"a", "b", "c"}, values(opts))
}

func TestDefaultIDsAreUUIDs(t *testing.T) {
	opts := DefaultOptions()
	opts.Data = []string{"a", "b"}
	c, err := New(dom.New("input").SetAttr("id", "u"), nil, opts)
	require.NoError(t, err)
	ids := c.Original()
	require.Len(t, ids[0].ID, 36)
	require.NotEqual(t, ids[0].ID, ids[1].ID)
}

func TestFilter(t *testing.T) {
	c, _ := newTestController(t, "Apple", "Banana", "Cherry", "PINEAPPLE")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "substring", query: "an", want: []string{"Banana"}},
		{name: "case insensitive", query: "APP", want: []string{"Apple", "PINEAPPLE"}},
		{name: "keeps original order", query: "e", want: []string{"Apple", "Cherry", "PINEAPPLE"}},
		{name: "no match", query: "zzz", want: []string{}},
		{name: "empty restores all", query: "", want: []string{"Apple", "Banana", "Cherry", "PINEAPPLE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Filter(tt.query)
			require.Equal(t, tt.want, values(c.Visible()))

			c.Filter(tt.query)
			require.Equal(t, tt.want, values(c.Visible()), "filter is idempotent")
			require.Len(t, c.Items(), len(tt.want))
		})
	}
}

func TestFilterEmptyResultRendersPlaceholder(t *testing.T) {
	c, _ := newTestController(t, "Apple")
	c.Filter("kiwi")

	require.Empty(t, c.Items())
	children := c.List().Children()
	require.Len(t, children, 1)
	require.Equal(t, "p", children[0].Tag)
	require.Equal(t, NoDataText, children[0].Text())
}

func TestSetFocusKeepsSingleMarker(t *testing.T) {
	c, _ := newTestController(t, "Apple", "Banana", "Cherry")
	items := c.Items()

	c.SetFocus(domain.ItemFocus(items[1].ID()))
	require.False(t, c.Input().HasClass(ClassFocus))
	require.True(t, items[1].HasClass(ClassFocus))
	require.Equal(t, "true", attr(t, items[1], AttrSelected))
	require.Equal(t, items[1].ID(), attr(t, c.Input(), AttrActiveDescendant))

	c.SetFocus(domain.ItemFocus(items[2].ID()))
	require.False(t, items[1].HasClass(ClassFocus))
	require.Equal(t, "false", attr(t, items[1], AttrSelected))
	require.Equal(t, "true", attr(t, items[2], AttrSelected))

	c.SetFocus(domain.InputFocus())
	require.True(t, c.Input().HasClass(ClassFocus))
	require.Empty(t, c.List().Find(dom.AttrEquals(AttrSelected, "true")))
	_, hasActive := c.Input().Attr(AttrActiveDescendant)
	require.False(t, hasActive, "active descendant only while an item is focused")

	marked := c.Container().Find(dom.HasClassFn(ClassFocus))
	require.Len(t, marked, 1)
}

func TestSetFocusIgnoresUnknownItem(t *testing.T) {
	c, _ := newTestController(t, "Apple")
	c.SetFocus(domain.ItemFocus("nope"))
	require.True(t, c.Focus().IsInput())
}

func TestOpenCloseMirrorExpanded(t *testing.T) {
	c, host := newTestController(t, "Apple")

	c.Open()
	require.True(t, c.Popup().IsOpen())
	require.Equal(t, "true", attr(t, c.Input(), AttrExpanded))

	c.Open()
	require.True(t, c.Popup().IsOpen())

	c.Close()
	require.False(t, c.Popup().IsOpen())
	require.Equal(t, "false", attr(t, c.Input(), AttrExpanded))

	require.Equal(t, []string{"hide", "slideDown 400ms", "slideDown 400ms", "slideUp 300ms"}, host.calls)
}

func TestRerenderRestoresFocusedItem(t *testing.T) {
	c, _ := newTestController(t, "Apple", "Banana")
	banana := c.Items()[1].ID()
	c.SetFocus(domain.ItemFocus(banana))

	c.Filter("ban")
	require.Equal(t, domain.ItemFocus(banana), c.Focus())
	el := c.List().ByID(banana)
	require.True(t, el.HasClass(ClassFocus))
	require.Equal(t, "true", attr(t, el, AttrSelected))

	c.Filter("apple")
	require.True(t, c.Focus().IsInput(), "vanished item hands focus back to the input")
	require.True(t, c.Input().HasClass(ClassFocus))
}
