package components

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/weekdaytab/internal/tui/styles"
)

// Props are the caller-owned inputs of a TabStrip, passed in fresh on every
// render.
type Props struct {
	Tabs      []Tab
	ActiveKey string

	// OnChange is called synchronously for every user pick. Optional.
	OnChange func(key string)

	// ClassName holds extra space-separated classes for the root container.
	ClassName string

	// Style wraps the root container as-is.
	Style lipgloss.Style
}

// Node is one element of the declarative tree a TabStrip renders.
type Node struct {
	Classes  []string
	Key      string
	Text     string
	Children []Node
}

// HasClass reports whether the node carries class.
func (n Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// CellBounds is the area a rendered tab occupies. Start and End are
// columns, Top and Bottom are rows, both end exclusive.
type CellBounds struct {
	Key    string
	Start  int
	End    int
	Top    int
	Bottom int
}

const cellGap = " "

// Ambiguous-width runes are measured as narrow, matching lipgloss.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

var _ Component = (*TabStrip)(nil)

// TabStrip is a horizontal strip of day tabs with a single selection.
type TabStrip struct {
	props      Props
	selection  Selection
	todayLabel string

	width, height int
}

// NewTabStrip creates a TabStrip with its initial selection derived from props.
func NewTabStrip(props Props) *TabStrip {
	return &TabStrip{
		props:      props,
		selection:  NewSelection(props.Tabs, props.ActiveKey),
		todayLabel: DefaultTodayLabel,
	}
}

// Init implements Component.
func (t *TabStrip) Init() tea.Cmd {
	return nil
}

// Update implements Component. Left clicks inside a tab select it; X and Y
// are relative to the strip's top-left corner.
func (t *TabStrip) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return t, nil
		}
		if key, ok := t.HitTest(msg.X, msg.Y); ok {
			return t, t.Select(key)
		}
	}
	return t, nil
}

// SetProps replaces the props and reconciles a changed ActiveKey into the
// selection. It reports whether the selection changed.
func (t *TabStrip) SetProps(props Props) bool {
	t.props = props
	return t.selection.Observe(props.ActiveKey)
}

// Select marks key as selected, calls OnChange, and returns a command that
// emits TabChangedMsg.
func (t *TabStrip) Select(key string) tea.Cmd {
	t.selection.Select(key)
	if t.props.OnChange != nil {
		t.props.OnChange(key)
	}
	return func() tea.Msg {
		return TabChangedMsg{Key: key}
	}
}

// Current returns the selected key.
func (t *TabStrip) Current() string {
	return t.selection.Current()
}

// SetTodayLabel overrides the label shown on today's entry. Empty restores
// DefaultTodayLabel.
func (t *TabStrip) SetTodayLabel(label string) {
	if label == "" {
		label = DefaultTodayLabel
	}
	t.todayLabel = label
}

// SetSize implements Component. A positive width stretches cells to fill it.
func (t *TabStrip) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// Entries returns the view entries for the current props and selection.
func (t *TabStrip) Entries() []ViewEntry {
	return RenderEntriesWithLabel(t.props.Tabs, t.selection.Current(), t.todayLabel)
}

// Tree returns the declarative description of the strip.
func (t *TabStrip) Tree() Node {
	entries := t.Entries()
	items := make([]Node, 0, len(entries))
	for _, e := range entries {
		children := []Node{
			{Classes: []string{ClassLabel}, Text: e.Label},
			{Classes: []string{ClassDate}, Text: strconv.Itoa(e.Date)},
		}
		if e.Indicator {
			children = append(children, Node{Classes: []string{ClassIndicator}})
		}
		items = append(items, Node{Classes: e.Classes, Key: e.Key, Children: children})
	}

	return Node{
		Classes:  t.rootClasses(),
		Children: []Node{{Classes: []string{ClassList}, Children: items}},
	}
}

// View implements Component.
func (t *TabStrip) View() string {
	view, _ := t.paint()
	return view
}

// Height returns the number of rows the strip occupies.
func (t *TabStrip) Height() int {
	return lipgloss.Height(t.View())
}

// Bounds returns the area of every rendered tab.
func (t *TabStrip) Bounds() []CellBounds {
	_, bounds := t.paint()
	return bounds
}

// HitTest returns the key of the tab rendered at column x, row y. Borders,
// padding and gaps belong to no tab.
func (t *TabStrip) HitTest(x, y int) (string, bool) {
	for _, b := range t.Bounds() {
		if x >= b.Start && x < b.End && y >= b.Top && y < b.Bottom {
			return b.Key, true
		}
	}
	return "", false
}

func (t *TabStrip) rootClasses() []string {
	return append([]string{ClassRoot}, strings.Fields(t.props.ClassName)...)
}

// paint renders the tree from Tree and records where each cell landed.
func (t *TabStrip) paint() (string, []CellBounds) {
	tree := t.Tree()
	list := tree.Children[0]
	rootStyle := styles.Lookup(tree.Classes...)
	listStyle := styles.Lookup(list.Classes...)

	inner := t.innerWidth(list.Children, rootStyle, listStyle)
	x := styles.LeftFrame(t.props.Style) + styles.LeftFrame(rootStyle) + styles.LeftFrame(listStyle)
	y := styles.TopFrame(t.props.Style) + styles.TopFrame(rootStyle) + styles.TopFrame(listStyle)

	cells := make([]string, 0, len(list.Children)*2)
	bounds := make([]CellBounds, 0, len(list.Children))
	for i, item := range list.Children {
		if i > 0 {
			cells = append(cells, cellGap)
			x += lipgloss.Width(cellGap)
		}
		cell := paintItem(item, inner)
		w, h := lipgloss.Width(cell), lipgloss.Height(cell)
		bounds = append(bounds, CellBounds{Key: item.Key, Start: x, End: x + w, Top: y, Bottom: y + h})
		cells = append(cells, cell)
		x += w
	}

	body := listStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	return t.props.Style.Render(rootStyle.Render(body)), bounds
}

// innerWidth is the content width shared by all cells. Cells fit their
// widest text, or stretch to fill a known width.
func (t *TabStrip) innerWidth(items []Node, rootStyle, listStyle lipgloss.Style) int {
	natural := 2
	for _, item := range items {
		for _, child := range item.Children {
			natural = max(natural, cellWidth.StringWidth(child.Text))
		}
	}
	if t.width <= 0 || len(items) == 0 {
		return natural
	}

	itemFrame := styles.Lookup(ClassItem).GetHorizontalFrameSize()
	avail := t.width -
		t.props.Style.GetHorizontalFrameSize() -
		rootStyle.GetHorizontalFrameSize() -
		listStyle.GetHorizontalFrameSize() -
		lipgloss.Width(cellGap)*(len(items)-1)
	per := avail/len(items) - itemFrame
	if per <= 0 {
		return natural
	}
	return per
}

// paintItem stacks an item's children. A cell without an indicator keeps
// the row blank so all cells have the same height.
func paintItem(item Node, inner int) string {
	rows := make([]string, 0, 3)
	indicator := false
	for _, child := range item.Children {
		style := styles.Lookup(child.Classes...)
		if child.HasClass(ClassIndicator) {
			indicator = true
			rows = append(rows, style.Render(strings.Repeat(styles.IndicatorRune, inner)))
			continue
		}
		rows = append(rows, style.Render(center(child.Text, inner)))
	}
	if !indicator {
		rows = append(rows, strings.Repeat(" ", inner))
	}
	return styles.Lookup(item.Classes...).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// center pads s to width cells, truncating with an ellipsis when it does not fit.
func center(s string, width int) string {
	if cellWidth.StringWidth(s) > width {
		s = cellWidth.Truncate(s, width, "…")
	}
	sw := cellWidth.StringWidth(s)
	left := (width - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-sw-left)
}
