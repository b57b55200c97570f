// Package ui renders the task store as a single-screen Bubble Tea app.
package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeModal
)

// bannerTimeoutMsg dismisses the transient banner. The sequence number
// keeps a stale tick from killing a newer banner.
type bannerTimeoutMsg struct{ seq int }

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Toggle key.Binding
	Remove key.Binding
	Clear  key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Clear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Remove, k.Clear, k.Theme, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Toggle, k.Remove},
		{k.Clear, k.Theme, k.Quit},
	}
}

// Model is the Bubble Tea model for the whole screen.
type Model struct {
	store  *task.Store
	cfg    config.Config
	logger *log.Logger

	theme Theme
	keys  keyMap
	help  help.Model
	input textinput.Model

	mode   mode
	cursor int

	banner    string
	bannerSeq int
	modal     string

	width  int
	height int
}

// New builds the initial model around an already-seeded store.
func New(store *task.Store, cfg config.Config, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New task title..."
	ti.CharLimit = 200

	return Model{
		store:  store,
		cfg:    cfg,
		logger: logger,
		theme:  ThemeByName(cfg.Theme),
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(store *task.Store, cfg config.Config, logger *log.Logger) error {
	p := tea.NewProgram(New(store, cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

// visible returns tasks in display order: pending first, then completed.
func (m Model) visible() []task.Task {
	pending, completed := m.store.Partition()
	return append(pending, completed...)
}

func (m *Model) clampCursor() {
	n := m.store.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) dismissBannerCmd() tea.Cmd {
	seq := m.bannerSeq
	delay := time.Duration(m.cfg.BannerSeconds) * time.Second
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return bannerTimeoutMsg{seq: seq}
	})
}

// ringBell emits the terminal bell, the closest thing a terminal has
// to a tactile pulse. Fire-and-forget.
func ringBell() tea.Msg {
	fmt.Fprint(os.Stdout, "\a")
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case bannerTimeoutMsg:
		if msg.seq == m.bannerSeq {
			m.banner = ""
		}
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeModal:
		return m.updateModal(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			added, ok := m.store.Add(m.input.Value())
			m.input.SetValue("")
			m.input.Blur()
			m.mode = modeList
			if !ok {
				// Blank title: the request is dropped without a word.
				return m, nil
			}
			m.logger.Debug("task added", "id", added.ID, "title", added.Title)
			m.cursor = 0
			m.bannerSeq++
			m.banner = fmt.Sprintf("Added %q", added.Title)
			m.modal = fmt.Sprintf("Task %q added to your list.", added.Title)
			m.mode = modeModal
			return m, tea.Batch(m.dismissBannerCmd(), ringBell)
		case "esc":
			m.input.SetValue("")
			m.input.Blur()
			m.mode = modeList
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Any key dismisses the confirmation.
	if _, ok := msg.(tea.KeyMsg); ok {
		m.modal = ""
		m.mode = modeList
	}
	return m, nil
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(k, m.keys.Down):
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(k, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case key.Matches(k, m.keys.Toggle):
		tasks := m.visible()
		if m.cursor >= 0 && m.cursor < len(tasks) {
			if t, ok := m.store.Toggle(tasks[m.cursor].ID); ok {
				m.logger.Debug("task toggled", "id", t.ID, "done", t.Done)
			}
		}
		return m, nil

	case key.Matches(k, m.keys.Remove):
		tasks := m.visible()
		if m.cursor >= 0 && m.cursor < len(tasks) {
			id := tasks[m.cursor].ID
			if m.store.Remove(id) {
				m.logger.Debug("task removed", "id", id)
			}
			m.clampCursor()
		}
		return m, nil

	case key.Matches(k, m.keys.Clear):
		m.store.Clear()
		m.cursor = 0
		m.logger.Debug("store cleared")
		return m, nil

	case key.Matches(k, m.keys.Theme):
		if m.theme.Name == "dark" {
			m.theme = LightTheme()
		} else {
			m.theme = DarkTheme()
		}
		m.logger.Debug("theme switched", "theme", m.theme.Name)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.mode == modeModal {
		return m.viewModal()
	}

	t := m.theme
	inner := m.width - 6 // card border + padding
	if inner < 20 {
		inner = 20
	}

	var sections []string
	sections = append(sections, m.viewHeader())

	if m.banner != "" {
		sections = append(sections, t.Banner.Render(m.banner))
	}

	if m.mode == modeAdd {
		sections = append(sections, t.Input.Render("Add new task\n"+m.input.View()))
	}

	pending, completed := m.store.Partition()
	cols := columnCount(m.width, m.cfg.TwoColumnMinWidth)
	colWidth := inner / cols

	if m.store.Len() == 0 {
		sections = append(sections, t.Muted.Render("Nothing to do. Press 'a' to add a task."))
	} else {
		sections = append(sections, m.viewSection("Pending", pending, 0, cols, colWidth))
		if len(completed) > 0 {
			sections = append(sections, m.viewSection("Completed", completed, len(pending), cols, colWidth))
		}
	}

	sections = append(sections, t.Help.Render(m.help.View(m.keys)))

	card := t.Card.Width(inner + 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) viewHeader() string {
	t := m.theme
	done, pending := m.store.Stats()
	total := m.store.Len()
	counts := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Taskdeck"),
		t.Success.Render("✔"), done,
		t.Pending.Render("•"), pending,
		t.Accent.Render("Total"), total,
	)
	return counts + "\n" + t.Muted.Render(progressBar(done, total, 28))
}

// viewSection renders one partition under its heading. offset is the
// position of the partition's first row in the global cursor order.
func (m Model) viewSection(title string, tasks []task.Task, offset, cols, colWidth int) string {
	t := m.theme
	lines := make([]string, 0, len(tasks))
	for i, item := range tasks {
		box := t.Muted.Render(boxUnchecked)
		text := item.Title
		if item.Done {
			box = t.Success.Render(boxChecked)
			text = t.Done.Render(text)
		}
		prefix := "  "
		if offset+i == m.cursor {
			prefix = t.Selected.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", prefix, box, text))
	}
	body := renderColumns(splitColumns(lines, cols), colWidth)
	return t.Accent.Render(title) + "\n" + body
}

func (m Model) viewModal() string {
	t := m.theme
	box := t.Modal.Render(t.Success.Render("✔ ") + m.modal + "\n\n" + t.Muted.Render("press any key"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
