package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/crimson/internal/ui"
)

const modalMaxWidth = 52

// resize recomputes orientation and the list's box. A terminal cell is
// about twice as tall as it is wide, so the screen is landscape when its
// width in cells exceeds twice its height.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.landscape = w > 2*h

	header := m.headerView()
	footer := 2 // status + help
	if m.landscape {
		m.bodyW = w - lipgloss.Width(header) - 1
		m.bodyH = h - footer
	} else {
		m.bodyW = w
		m.bodyH = h - lipgloss.Height(header) - footer
	}
	m.bodyW = max(m.bodyW, 1)
	m.bodyH = max(m.bodyH, 1)

	m.list.SetSize(m.bodyW, m.bodyH)
	m.input.Width = max(min(m.bodyW, modalMaxWidth)-8, 1)
}

// View implements tea.Model.
func (m Model) View() string {
	header := m.headerView()
	right := lipgloss.JoinVertical(lipgloss.Left, m.bodyView(), m.statusView(), m.helpView())
	if m.landscape {
		return lipgloss.JoinHorizontal(lipgloss.Top, header, " ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, right)
}

func (m Model) headerView() string {
	t := m.theme
	logo := t.Logo.Render(m.logo)
	titles := lipgloss.JoinVertical(lipgloss.Left,
		t.Header.Render(m.title),
		t.Subtitle.Render(m.subtitle),
	)
	if m.landscape {
		block := lipgloss.JoinVertical(lipgloss.Center, logo, "", titles)
		return t.Banner.Height(m.height).Render(block)
	}
	block := lipgloss.JoinHorizontal(lipgloss.Center, logo, "  ", titles)
	return t.Banner.Width(m.width).Render(block)
}

func (m Model) bodyView() string {
	var content string
	switch {
	case m.mode != modeList:
		content = m.modalView()
	case m.store.Len() == 0:
		content = lipgloss.JoinVertical(lipgloss.Center,
			m.theme.Title.Render("No todos yet!"),
			m.theme.Muted.Render("Press a to add your first todo"),
		)
	default:
		return m.list.View()
	}
	return lipgloss.Place(m.bodyW, m.bodyH, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) modalView() string {
	t := m.theme
	width := max(min(m.bodyW, modalMaxWidth)-4, 1)
	box := t.Modal.Width(width)

	var lines []string
	switch m.mode {
	case modeAdd:
		lines = []string{
			t.Accent.Render("Add New Todo"),
			"",
			m.input.View(),
			"",
			t.Help.Render("enter add • esc cancel"),
		}
	case modeConfirmDelete:
		text := ""
		if it, ok := m.store.Get(m.pendingID); ok {
			text = ui.OneLine(it.Text)
		}
		lines = []string{
			t.Accent.Render("Delete Todo"),
			"",
			"Are you sure you want to delete this item?",
			t.Muted.Render(text),
			"",
			t.Help.Render("y delete • n cancel"),
		}
	case modeConfirmClear:
		lines = []string{
			t.Accent.Render("Delete All Todos"),
			"",
			"Are you sure you want to delete ALL todos? This action cannot be undone.",
			"",
			t.Help.Render("y delete all • n cancel"),
		}
	case modeNotice:
		box = t.Notice.Width(width)
		lines = []string{
			t.Error.Render(m.notice.title),
			"",
			m.notice.body,
			"",
			t.Help.Render("enter ok"),
		}
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m Model) statusView() string {
	t := m.theme
	done, pending := m.store.Stats()
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), done+pending,
	)
}

func (m Model) helpView() string {
	if m.mode != modeList {
		return ""
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}
