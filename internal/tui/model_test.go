package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/crimson/internal/model"
	"github.com/idilsaglam/crimson/internal/store"
	"github.com/idilsaglam/crimson/internal/ui"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func newTestModel(t *testing.T, texts ...string) Model {
	t.Helper()
	ui.SetColorMode(true)
	s, err := store.NewWithItems(seed(texts...), store.WithIDGenerator(&store.SequenceGenerator{Prefix: "id-"}))
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return New(Options{
		Store:    s,
		Theme:    ui.NewTheme("classic", ui.Brand{Primary: "#841617", Secondary: "#FDF5DC"}),
		Title:    "To-Do List",
		Subtitle: "University of Oklahoma",
		Logo:     "OU",
	})
}

func seed(texts ...string) []model.Item {
	out := make([]model.Item, 0, len(texts))
	for _, t := range texts {
		out = append(out, model.Item{Text: t})
	}
	return out
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("update returned %T", next)
		}
	}
	return m
}

func TestAdd_AppendsThroughStore(t *testing.T) {
	m := newTestModel(t, "first")

	m = send(t, m, runes("a"))
	if m.mode != modeAdd {
		t.Fatalf("expected add modal, got mode %v", m.mode)
	}
	m = send(t, m, runes("Test suite"), enter)
	if m.mode != modeList {
		t.Fatalf("expected modal to close, got mode %v", m.mode)
	}

	items := m.store.Items()
	if len(items) != 2 || items[1].Text != "Test suite" || items[1].Completed {
		t.Fatalf("unexpected items: %+v", items)
	}
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("list not refreshed: %d items", got)
	}
	if m.list.Index() != 1 {
		t.Fatalf("new item should be selected, cursor at %d", m.list.Index())
	}
}

func TestAdd_BlankShowsNoticeAndKeepsModal(t *testing.T) {
	m := newTestModel(t, "first")

	m = send(t, m, runes("a"), runes("   "), enter)
	if m.mode != modeNotice || m.notice.body != noticeEmptyBody {
		t.Fatalf("expected empty-text notice, got mode %v notice %+v", m.mode, m.notice)
	}
	if m.store.Len() != 1 {
		t.Fatalf("blank add reached the store: %d items", m.store.Len())
	}
	if !strings.Contains(m.View(), noticeEmptyBody) {
		t.Fatalf("notice not rendered")
	}

	m = send(t, m, enter)
	if m.mode != modeAdd {
		t.Fatalf("dismissing the notice should return to the add modal, got %v", m.mode)
	}
}

func TestAdd_EscKeepsDraft(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("a"), runes("draft"), esc)
	if m.mode != modeList || m.store.Len() != 0 {
		t.Fatalf("esc should close without adding: mode %v len %d", m.mode, m.store.Len())
	}

	m = send(t, m, runes("a"))
	if m.mode != modeAdd || m.input.Value() != "draft" {
		t.Fatalf("reopened modal should keep the draft, got mode %v value %q", m.mode, m.input.Value())
	}
	m = send(t, m, enter)
	if m.store.Len() != 1 || m.input.Value() != "" {
		t.Fatalf("submit should add and clear the draft: len %d value %q", m.store.Len(), m.input.Value())
	}
}

func TestToggle_SelectedItem(t *testing.T) {
	m := newTestModel(t, "a", "b")
	m = send(t, m, down, space)

	items := m.store.Items()
	if items[0].Completed || !items[1].Completed {
		t.Fatalf("expected only b completed: %+v", items)
	}
	if li := m.list.Items()[1].(listItem); !li.Completed {
		t.Fatalf("list row not refreshed")
	}

	m = send(t, m, space)
	if it, _ := m.store.Get(items[1].ID); it.Completed {
		t.Fatalf("second toggle should restore pending")
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	m := newTestModel(t, "a", "b")

	m = send(t, m, runes("d"))
	if m.mode != modeConfirmDelete || m.pendingID != "id-1" {
		t.Fatalf("expected confirm for id-1, got mode %v pending %q", m.mode, m.pendingID)
	}
	if !strings.Contains(m.View(), "Are you sure you want to delete this item?") {
		t.Fatalf("confirmation not rendered")
	}
	m = send(t, m, runes("n"))
	if m.store.Len() != 2 || m.mode != modeList {
		t.Fatalf("cancel must not delete")
	}

	m = send(t, m, runes("d"), runes("y"))
	items := m.store.Items()
	if len(items) != 1 || items[0].Text != "b" {
		t.Fatalf("unexpected items after delete: %+v", items)
	}
	if len(m.list.Items()) != 1 {
		t.Fatalf("list not refreshed")
	}
}

func TestDeleteAll_ConfirmThenEmptyNotice(t *testing.T) {
	m := newTestModel(t, "a", "b")

	m = send(t, m, runes("D"))
	if m.mode != modeConfirmClear {
		t.Fatalf("expected clear confirmation, got %v", m.mode)
	}
	m = send(t, m, enter)
	if m.store.Len() != 0 || m.mode != modeList {
		t.Fatalf("clear did not happen: len %d mode %v", m.store.Len(), m.mode)
	}
	if !strings.Contains(m.View(), "No todos yet!") {
		t.Fatalf("empty state not rendered")
	}

	m = send(t, m, runes("D"))
	if m.mode != modeNotice || m.notice.title != noticeNoneTitle {
		t.Fatalf("expected nothing-to-delete notice, got %v %+v", m.mode, m.notice)
	}
	m = send(t, m, esc)
	if m.mode != modeList {
		t.Fatalf("notice should dismiss to the list")
	}
}

func TestDelete_EmptyListIgnored(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("d"), space)
	if m.mode != modeList {
		t.Fatalf("nothing selected, expected list mode, got %v", m.mode)
	}
}

func TestOrientation(t *testing.T) {
	m := newTestModel(t, "a")

	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	if m.Landscape() {
		t.Fatalf("60x40 should be portrait")
	}
	portraitW := m.bodyW

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	if !m.Landscape() {
		t.Fatalf("120x30 should be landscape")
	}
	if m.bodyW >= 120 || m.bodyW <= 0 {
		t.Fatalf("landscape list should share width with the header, got %d", m.bodyW)
	}
	if portraitW != 60 {
		t.Fatalf("portrait list should use the full width, got %d", portraitW)
	}
	if !strings.Contains(m.View(), "University of Oklahoma") {
		t.Fatalf("header missing in landscape")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestView_RendersItems(t *testing.T) {
	m := newTestModel(t, "Write spec", "Test suite")
	m = send(t, m, space)
	out := m.View()
	for _, want := range []string{"To-Do List", "Write spec", "Test suite", "☑", "☐", "Total 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestView_MultiLineItemKeepsOneRow(t *testing.T) {
	m := newTestModel(t, "line one\nline two", "b", "c")
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})

	out := m.View()
	if got := len(strings.Split(out, "\n")); got > 40 {
		t.Fatalf("view is %d rows for a 40-row terminal:\n%s", got, out)
	}
	if !strings.Contains(out, "line one line two") {
		t.Fatalf("multi-line text should be folded onto one row:\n%s", out)
	}

	m = send(t, m, runes("d"))
	if !strings.Contains(m.View(), "line one line two") {
		t.Fatalf("confirmation should show the folded text")
	}
}
