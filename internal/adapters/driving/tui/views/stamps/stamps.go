// Package stamps renders the localised timestamps of one file as a list.
package stamps

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/timelocal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

// item adapts a domain.Localization to the bubbles list item interface.
type item struct {
	loc domain.Localization
}

// Title returns the produced text shown as the item headline.
func (i item) Title() string {
	return i.loc.Text
}

// Description returns the source attributes behind the rendering.
func (i item) Description() string {
	desc := "datetime=" + i.loc.Stamp.Datetime
	if i.loc.Stamp.HasFormat() {
		desc += "  format=" + i.loc.Stamp.Format
	} else {
		desc += "  (default rendering)"
	}
	if !i.loc.Valid {
		desc += "  ✗ unparseable"
	}
	return desc
}

// FilterValue returns the text used for list filtering.
func (i item) FilterValue() string {
	return i.loc.Stamp.Datetime
}

// View is the stamp list component.
type View struct {
	styles *styles.Styles
	list   list.Model
}

// NewView creates the stamp list view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	return &View{
		styles: s,
		list:   l,
	}
}

// SetResult replaces the listed stamps with a pass result.
func (v *View) SetResult(result *domain.PassResult) {
	items := make([]list.Item, 0, len(result.Stamps))
	for _, loc := range result.Stamps {
		items = append(items, item{loc: loc})
	}
	v.list.SetItems(items)
	v.list.ResetSelected()
}

// SetSize updates the list dimensions.
func (v *View) SetSize(width, height int) {
	v.list.SetSize(width, height)
}

// Selected returns the currently highlighted localisation, if any.
func (v *View) Selected() (domain.Localization, bool) {
	selected, ok := v.list.SelectedItem().(item)
	if !ok {
		return domain.Localization{}, false
	}
	return selected.loc, true
}

// Len returns the number of listed stamps.
func (v *View) Len() int {
	return len(v.list.Items())
}

// Update handles navigation messages.
func (v *View) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

// View renders the list, or a placeholder when no stamps were found.
func (v *View) View() string {
	if v.Len() == 0 {
		return v.styles.Muted.Render("No timestamp elements found.")
	}
	return v.list.View()
}

// StatusLine summarises the listed stamps.
func (v *View) StatusLine() string {
	invalid := 0
	for _, it := range v.list.Items() {
		if stamp, ok := it.(item); ok && !stamp.loc.Valid {
			invalid++
		}
	}
	line := fmt.Sprintf("%d stamp(s)", v.Len())
	if invalid > 0 {
		line += v.styles.Error.Render(fmt.Sprintf("  %d invalid", invalid))
	}
	return line
}
