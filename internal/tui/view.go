package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/groover/internal/model"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Groover"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Your vinyl and CD collection"))
	b.WriteString("\n\n")

	b.WriteString(m.viewSearch())
	b.WriteString("\n")

	if m.mode != ModeSearch {
		b.WriteString(m.viewTabs())
		b.WriteString("\n\n")

		switch m.session.View() {
		case model.ViewDashboard:
			b.WriteString(m.viewDashboard())
		case model.ViewLibrary:
			b.WriteString(m.viewLibrary())
		case model.ViewPlaylists:
			b.WriteString(m.viewPlaylists())
		}
	}

	// Footer
	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render("✗ " + m.status))
		} else {
			b.WriteString(successStyle.Render("✓ " + m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewSearch() string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n")

	if m.mode != ModeSearch {
		return b.String()
	}

	switch {
	case m.searching:
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Searching..."))
		b.WriteString("\n")
	case m.searched && len(m.results) == 0:
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("No records match %q", strings.TrimSpace(m.search.Value()))))
		b.WriteString("\n")
	case len(m.results) > 0:
		b.WriteString("\n")
		for i, res := range m.results {
			line := fmt.Sprintf("%s %s", kindBadge(res.Item.Kind), recordLine(res.Item))
			if res.InLibrary {
				line += " " + badgeStyle.Render("in library")
			}
			b.WriteString(cursorLine(line, i == m.resultCursor))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewTabs() string {
	names := []string{"Dashboard", "Library", "Playlists"}
	tabs := make([]string, len(names))
	for i, name := range names {
		if model.View(i) == m.session.View() {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	d := m.session.Dashboard()

	tiles := lipgloss.JoinHorizontal(lipgloss.Top,
		tileStyle.Render(fmt.Sprintf("%d\nVinyl (1)", d.Vinyl)),
		tileStyle.Render(fmt.Sprintf("%d\nCDs (2)", d.CD)),
		tileStyle.Render(fmt.Sprintf("%d\nTotal (3)", d.Total)),
		tileStyle.Render(fmt.Sprintf("%d\nPlaylists (4)", d.Playlists)),
	)
	b.WriteString(tiles)
	b.WriteString("\n\n")

	var share float64
	if d.Total > 0 {
		share = float64(d.Vinyl) / float64(d.Total)
	}
	b.WriteString(infoStyle.Render("Vinyl share "))
	b.WriteString(m.progress.ViewAs(share))
	b.WriteString(infoStyle.Render(fmt.Sprintf(" %.0f%%", share*100)))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Recently added"))
	b.WriteString("\n")
	if len(d.Recent) == 0 {
		b.WriteString(dimStyle.Render("  Nothing yet. Press / to search the catalog."))
		b.WriteString("\n")
	}
	for _, it := range d.Recent {
		b.WriteString(fmt.Sprintf("  %s %s\n", kindBadge(it.Kind), recordLine(it)))
	}

	return b.String()
}

func (m Model) viewLibrary() string {
	var b strings.Builder

	filter := m.session.Filter()
	items := m.session.LibraryItems()

	b.WriteString(subtitleStyle.Render(filter.Label()))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d record(s)  f: change filter", len(items))))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(dimStyle.Render("  No records here yet."))
		b.WriteString("\n")
	}
	for i, it := range items {
		line := fmt.Sprintf("%s %s %s", kindBadge(it.Kind), recordLine(it), dimStyle.Render(it.Genre))
		b.WriteString(cursorLine(line, i == m.libCursor))
		b.WriteString("\n")
	}

	if m.mode == ModeRecord {
		b.WriteString("\n")
		b.WriteString(m.viewRecord())
	}

	return b.String()
}

func (m Model) viewRecord() string {
	var b strings.Builder

	it := m.record
	b.WriteString(recordStyle.Render(it.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s · %d · %s · %s\n\n", it.Artist, it.Year, it.Kind.Label(), it.Genre))
	b.WriteString(infoStyle.Render("Add to playlist:"))
	b.WriteString("\n")

	lists := m.session.Playlists().List()
	if len(lists) == 0 {
		b.WriteString(dimStyle.Render("No playlists yet. Create one in the Playlists view."))
	}
	for i, pl := range lists {
		line := pl.Name
		if pl.Contains(it.ID) {
			line += dimStyle.Render(" (already added)")
		}
		b.WriteString(cursorLine(line, i == m.recordCursor))
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewPlaylists() string {
	var left strings.Builder

	lists := m.session.Playlists().List()
	selected, hasSelected := m.session.Selected()

	left.WriteString(subtitleStyle.Render("Playlists"))
	left.WriteString("\n")
	if len(lists) == 0 {
		left.WriteString(dimStyle.Render("No playlists. Press n to create one."))
		left.WriteString("\n")
	}
	for i, pl := range lists {
		var line string
		if m.mode == ModeRename && pl.ID == m.renameID {
			line = m.nameInput.View()
		} else {
			line = fmt.Sprintf("%s %s", pl.Name, dimStyle.Render(fmt.Sprintf("(%d)", pl.Len())))
			if hasSelected && pl.ID == selected.ID {
				line = recordStyle.Render("♪ ") + line
			}
		}
		left.WriteString(cursorLine(line, i == m.plCursor && !m.focusTracks))
		left.WriteString("\n")
	}
	if m.mode == ModeCreate {
		left.WriteString("\n")
		left.WriteString(infoStyle.Render("New playlist:"))
		left.WriteString("\n")
		left.WriteString(m.nameInput.View())
		left.WriteString("\n")
	}

	right := m.viewSelected(selected, hasSelected)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(34).Render(left.String()),
		boxStyle.Render(right),
	)
}

func (m Model) viewSelected(pl model.Playlist, ok bool) string {
	var b strings.Builder

	if !ok {
		return dimStyle.Render("Select a playlist to see its records.")
	}

	b.WriteString(recordStyle.Render(pl.Name))
	if m.exporting {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if m.mode == ModePick {
		b.WriteString(m.viewPicker(pl))
		return strings.TrimRight(b.String(), "\n")
	}

	if pl.Len() == 0 {
		b.WriteString(dimStyle.Render("This playlist is empty. Press a to add records from your library."))
		return b.String()
	}
	for i, it := range pl.Items {
		line := fmt.Sprintf("%d. %s", i+1, recordLine(it))
		b.WriteString(cursorLine(line, m.focusTracks && i == m.trackCursor))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewPicker(pl model.Playlist) string {
	var b strings.Builder

	b.WriteString(infoStyle.Render("Add from library:"))
	b.WriteString("\n")

	candidates, err := m.session.Candidates(pl.ID)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		return b.String()
	}
	if len(candidates) == 0 {
		b.WriteString(dimStyle.Render("Every record in your library is already here."))
		return b.String()
	}
	for i, it := range candidates {
		b.WriteString(cursorLine(fmt.Sprintf("%s %s", kindBadge(it.Kind), recordLine(it)), i == m.pickCursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpText() string {
	switch m.mode {
	case ModeSearch:
		return "type to search • ↑/↓: move • enter: add to library • esc: close"
	case ModeRecord:
		return "↑/↓: choose playlist • enter: add • esc: back"
	case ModeCreate:
		return "enter: create • esc: cancel"
	case ModeRename:
		return "enter/tab: save • esc: cancel"
	case ModePick:
		return "↑/↓: move • enter: add • esc: done"
	}

	global := "/: search • tab: next view • g/l/p: views • q: quit"
	switch m.session.View() {
	case model.ViewDashboard:
		return "1-4: open • " + global
	case model.ViewLibrary:
		return "f: filter • enter: details • " + global
	case model.ViewPlaylists:
		return "n: new • e: rename • d: delete • enter: open • r: remove • a: add • x: export • " + global
	}
	return global
}

func recordLine(it model.Item) string {
	return fmt.Sprintf("%s %s", recordStyle.Render(it.Title), dimStyle.Render(fmt.Sprintf("%s (%d)", it.Artist, it.Year)))
}

func kindBadge(k model.Kind) string {
	if k == model.KindVinyl {
		return vinylBadgeStyle.Render("◉")
	}
	return cdBadgeStyle.Render("◎")
}

func cursorLine(line string, active bool) string {
	if active {
		return cursorStyle.Render("› ") + line
	}
	return "  " + line
}
