package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/ui"
	"github.com/willibrandon/rainbow/internal/ui/styles"
)

// MenuOption is one entry in the bird picker. Row binds the option to a
// table row and is unaffected by the display order.
type MenuOption struct {
	Label      string
	Scientific string
	Row        int
}

func (o MenuOption) FilterValue() string { return o.Label }
func (o MenuOption) Title() string       { return o.Label }

func (o MenuOption) Description() string {
	if o.Scientific == "" {
		return fmt.Sprintf("row %d", o.Row)
	}
	return fmt.Sprintf("%s · row %d", o.Scientific, o.Row)
}

// MenuOptions builds picker entries for table in sort order.
func MenuOptions(table *birds.Table, key birds.SortKey) []MenuOption {
	order := birds.SortForMenu(table.Rows(), key)
	opts := make([]MenuOption, 0, len(order))
	for _, idx := range order {
		row, _ := table.Row(idx)
		opts = append(opts, MenuOption{
			Label:      row.DisplayName(),
			Scientific: birds.ScientificName(row.Name),
			Row:        idx,
		})
	}
	return opts
}

// Menu is a filterable list of birds. It tracks the selected row index and
// reports changes with ui.SelectionChangedMsg.
type Menu struct {
	list     list.Model
	options  []MenuOption
	selected int
}

// NewMenu creates a menu over table's rows ordered by key.
func NewMenu(table *birds.Table, key birds.SortKey) *Menu {
	options := MenuOptions(table, key)
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = o
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.ColorAccent).
		BorderForeground(styles.ColorAccent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.ColorMuted).
		BorderForeground(styles.ColorAccent)

	l := list.New(items, delegate, 32, 20)
	l.Title = "Birds"
	l.Styles.Title = styles.TitleStyle
	l.SetShowHelp(false)
	l.SetStatusBarItemName("bird", "birds")
	l.DisableQuitKeybindings()

	m := &Menu{list: l, options: options, selected: -1}
	if len(options) > 0 {
		m.selected = options[0].Row
	}
	return m
}

// Options returns entries in display order.
func (m *Menu) Options() []MenuOption {
	return m.options
}

// Selected returns the row index bound to the highlighted option, or -1
// for an empty menu.
func (m *Menu) Selected() int {
	return m.selected
}

// SelectedOption returns the highlighted option.
func (m *Menu) SelectedOption() (MenuOption, bool) {
	for _, o := range m.options {
		if o.Row == m.selected {
			return o, true
		}
	}
	return MenuOption{}, false
}

// Select highlights the option bound to row. Any active filter is cleared.
// It reports false when no option is bound to row.
func (m *Menu) Select(row int) bool {
	for i, o := range m.options {
		if o.Row == row {
			m.list.ResetFilter()
			m.list.Select(i)
			m.selected = row
			return true
		}
	}
	return false
}

// SetSize sets the size of the menu
func (m *Menu) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the user is typing a filter, in which case
// keys belong to the menu.
func (m *Menu) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Update forwards msg to the list and emits ui.SelectionChangedMsg when the
// highlighted row changes.
func (m *Menu) Update(msg tea.Msg) (*Menu, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	item, ok := m.list.SelectedItem().(MenuOption)
	if !ok || item.Row == m.selected {
		return m, cmd
	}
	m.selected = item.Row
	changed := func() tea.Msg { return ui.SelectionChangedMsg{Row: item.Row} }
	return m, tea.Batch(cmd, changed)
}

// View renders the menu
func (m *Menu) View() string {
	return styles.MenuPanelStyle.Render(m.list.View())
}
