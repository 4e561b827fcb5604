// Package tui is the interactive screen: a branded header, the todo list,
// an add modal and the delete confirmations. Every change goes through the
// store; the view only ever reads snapshots.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/crimson/internal/logging"
	"github.com/idilsaglam/crimson/internal/store"
	"github.com/idilsaglam/crimson/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	textLimit     = 200
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmDelete
	modeConfirmClear
	modeNotice
)

// Notice texts.
const (
	noticeEmptyTitle = "Error"
	noticeEmptyBody  = "Please enter a todo item"
	noticeNoneTitle  = "No Todos"
	noticeNoneBody   = "There are no todos to delete."
)

// Options configures the screen.
type Options struct {
	Store    *store.Store
	Theme    ui.Theme
	Title    string
	Subtitle string
	Logo     string
	Logger   *log.Logger
}

type notice struct {
	title, body string
	back        mode
}

// Model is the Bubble Tea model for the todo screen.
type Model struct {
	store  *store.Store
	theme  ui.Theme
	logger *log.Logger

	title, subtitle, logo string

	list  list.Model
	input textinput.Model
	help  help.Model
	keys  keyMap

	mode      mode
	pendingID string // item awaiting delete confirmation
	notice    notice

	width, height int
	landscape     bool
	bodyW, bodyH  int
}

// New builds the model. A nil store starts empty.
func New(opts Options) Model {
	s := opts.Store
	if s == nil {
		s = store.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	l := list.New(toListItems(s.Items()), itemDelegate{theme: opts.Theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Styles.PaginationStyle = opts.Theme.Help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter your todo item..."
	ti.CharLimit = textLimit

	h := help.New()
	h.Styles.ShortKey = opts.Theme.Accent
	h.Styles.ShortDesc = opts.Theme.Help
	h.Styles.ShortSeparator = opts.Theme.Help

	m := Model{
		store:    s,
		theme:    opts.Theme,
		logger:   logger,
		title:    opts.Title,
		subtitle: opts.Subtitle,
		logo:     opts.Logo,
		list:     l,
		input:    ti,
		help:     h,
		keys:     defaultKeys(),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Run starts the full-screen program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeConfirmDelete, modeConfirmClear:
			return m.updateConfirm(msg)
		case modeNotice:
			return m.updateNotice(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	if m.mode == modeAdd {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.store.Toggle(it.ID); err != nil {
			m.logger.Warn("toggle rejected", "id", it.ID, "err", err)
			return m, m.refresh()
		}
		m.logger.Debug("toggled", "id", it.ID)
		return m, m.refresh()

	case key.Matches(msg, m.keys.Delete):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.pendingID = it.ID
		m.mode = modeConfirmDelete
		return m, nil

	case key.Matches(msg, m.keys.DeleteAll):
		if m.store.Len() == 0 {
			m.showNotice(noticeNoneTitle, noticeNoneBody, modeList)
			return m, nil
		}
		m.mode = modeConfirmClear
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		it, err := m.store.Add(m.input.Value())
		if err != nil {
			m.logger.Warn("add rejected", "err", err)
			body := err.Error()
			if errors.Is(err, store.ErrEmptyText) {
				body = noticeEmptyBody
			}
			m.showNotice(noticeEmptyTitle, body, modeAdd)
			return m, nil
		}
		m.logger.Debug("added", "id", it.ID)
		m.closeAdd()
		cmd := m.refresh()
		m.list.Select(len(m.list.Items()) - 1)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.No):
		m.mode = modeList
		m.pendingID = ""
		return m, nil

	case key.Matches(msg, m.keys.Yes):
		if m.mode == modeConfirmDelete {
			id := m.pendingID
			m.mode, m.pendingID = modeList, ""
			if err := m.store.Remove(id); err != nil {
				m.logger.Warn("remove rejected", "id", id, "err", err)
			} else {
				m.logger.Debug("removed", "id", id)
			}
			return m, m.refresh()
		}

		m.mode = modeList
		if err := m.store.Clear(); err != nil {
			m.logger.Warn("clear rejected", "err", err)
			if errors.Is(err, store.ErrEmptyCollection) {
				m.showNotice(noticeNoneTitle, noticeNoneBody, modeList)
			}
			return m, nil
		}
		m.logger.Debug("cleared")
		return m, m.refresh()
	}
	return m, nil
}

func (m Model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss) {
		m.mode = m.notice.back
		m.notice = notice{}
	}
	return m, nil
}

func (m *Model) showNotice(title, body string, back mode) {
	m.notice = notice{title: title, body: body, back: back}
	m.mode = modeNotice
}

// closeAdd hides the modal after a successful add. Cancelling keeps the
// draft for the next time the modal opens.
func (m *Model) closeAdd() {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
}

func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

// refresh reloads the list from the store, keeping the cursor in range.
func (m *Model) refresh() tea.Cmd {
	idx := m.list.Index()
	cmd := m.list.SetItems(toListItems(m.store.Items()))
	if n := len(m.list.Items()); idx >= n {
		idx = n - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	return cmd
}

// Landscape reports whether the header sits beside the list.
func (m Model) Landscape() bool { return m.landscape }
