package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand is the pair of colors the header and accents are painted with.
type Brand struct {
	Primary   string // header background, accents
	Secondary string // header text
}

// Theme bundles palette + symbols + box borders.
// CLI helpers pull from `current`; the TUI gets its own copy.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style
	Banner, Header, Subtitle, Logo                lipgloss.Style
	Modal, Notice                                 lipgloss.Style

	Border                   lipgloss.Border
	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	Cursor                   string
}

var current = NewTheme("classic", Brand{Primary: "#841617", Secondary: "#FDF5DC"})

// NewTheme builds the named theme ("classic", "neon" or "mono"; anything
// else is classic) around the brand colors.
func NewTheme(name string, b Brand) Theme {
	primary := lipgloss.Color(b.Primary)
	secondary := lipgloss.Color(b.Secondary)

	t := Theme{
		Name:     "classic",
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(primary).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(primary),
		Help:     lipgloss.NewStyle().Faint(true),
		Banner:   lipgloss.NewStyle().Foreground(secondary).Background(primary).Padding(0, 1),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(secondary).Background(primary).Padding(0, 1),
		Subtitle: lipgloss.NewStyle().Foreground(secondary).Background(primary).Padding(0, 1),
		Logo:     lipgloss.NewStyle().Foreground(secondary).Background(primary).Bold(true),

		Border:       lipgloss.RoundedBorder(),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		Cursor: "> ",
	}

	switch strings.ToLower(name) {
	case "neon":
		t.Name = "neon"
		t.Title = t.Title.Foreground(lipgloss.Color("13"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
		t.Cursor = "▶ "
	case "mono":
		t.Name = "mono"
		plain := lipgloss.NewStyle()
		t.Title, t.Muted, t.Accent = plain.Bold(true), plain, plain.Bold(true)
		t.Success, t.Error, t.Pending = plain, plain.Bold(true), plain
		t.Done, t.Selected, t.Help = plain, plain.Reverse(true), plain
		t.Banner = plain.Padding(0, 1)
		t.Header, t.Subtitle, t.Logo = plain.Bold(true).Padding(0, 1), plain.Padding(0, 1), plain
		t.Border = lipgloss.NormalBorder()
		t.BoxUnchecked, t.BoxChecked = "[ ]", "[x]"
		t.SymDone, t.SymPending = "x", "-"
	}

	t.Modal = lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(primary).
		Padding(0, 1)
	t.Notice = t.Modal.BorderForeground(lipgloss.Color("9"))
	if t.Name == "mono" {
		t.Modal = t.Modal.UnsetBorderForeground()
		t.Notice = t.Modal
	}
	return t
}

// SetTheme replaces the theme used by the CLI helpers.
func SetTheme(name string, b Brand) { current = NewTheme(name, b) }

// Current returns the theme used by the CLI helpers.
func Current() Theme { return current }
