// Package tui provides the BubbleTea-based token browser.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/windcfg/internal/config"
	"github.com/jmylchreest/windcfg/internal/descriptor"
	"github.com/jmylchreest/windcfg/internal/render"
)

// allCategories is the category filter that shows every token.
const allCategories = ""

// Model is the main TUI model.
type Model struct {
	cfg  *config.Config
	desc *descriptor.Descriptor

	// Components
	list list.Model
	help help.Model
	keys KeyMap

	// Category filter; categories[0] is allCategories
	categories []string
	catIndex   int

	width  int
	height int
	ready  bool

	statusMsg string
	statusErr bool
}

// tokenItem wraps a token for the list component.
type tokenItem struct {
	token descriptor.Token
}

func (i tokenItem) Title() string {
	return i.token.Name
}

func (i tokenItem) Description() string {
	return fmt.Sprintf("[%s] %s", i.token.Category, i.token.Value)
}

func (i tokenItem) FilterValue() string {
	return i.token.Name + " " + i.token.Value
}

// tokenDelegate draws a color swatch in front of color tokens.
type tokenDelegate struct {
	list.DefaultDelegate
}

func newTokenDelegate() tokenDelegate {
	return tokenDelegate{DefaultDelegate: list.NewDefaultDelegate()}
}

// Render renders a list item, prefixing color tokens with a swatch.
func (d tokenDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(tokenItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	titleStyle := d.DefaultDelegate.Styles.NormalTitle
	descStyle := d.DefaultDelegate.Styles.NormalDesc
	if index == m.Index() {
		titleStyle = d.DefaultDelegate.Styles.SelectedTitle
		descStyle = d.DefaultDelegate.Styles.SelectedDesc
	}

	title := ti.Title()
	if ti.token.Category == descriptor.CategoryColors {
		title = render.Swatch(ti.token.Value, 2) + " " + title
	}

	fmt.Fprint(w, titleStyle.Render(title))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, descStyle.Render(ti.Description()))
}

// New creates a new TUI model over the descriptor's theme tokens.
func New(cfg *config.Config, d *descriptor.Descriptor) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	l := list.New(nil, newTokenDelegate(), 0, 0)
	l.Title = "Theme Extension"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	h := help.New()
	h.ShowAll = cfg.TUI.ShowHelp

	m := Model{
		cfg:        cfg,
		desc:       d,
		list:       l,
		help:       h,
		keys:       DefaultKeyMap(),
		categories: append([]string{allCategories}, d.Categories()...),
	}
	m.list.SetItems(m.buildListItems())
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Category returns the active category filter ("" for all).
func (m Model) Category() string {
	return m.categories[m.catIndex]
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Copy failed: " + msg.err.Error(), isErr: true}
			}
		}
		return m, func() tea.Msg {
			return statusMsg{text: "Copied " + msg.text, isErr: false}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	text string
	err  error
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input is open every key except ctrl+c belongs to it
	if m.list.FilterState() == list.Filtering {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.NextCategory):
		m.catIndex = (m.catIndex + 1) % len(m.categories)
		m.list.ResetFilter()
		m.list.SetItems(m.buildListItems())
		m.list.ResetSelected()
		return m, nil

	case key.Matches(msg, m.keys.PrevCategory):
		m.catIndex = (m.catIndex - 1 + len(m.categories)) % len(m.categories)
		m.list.ResetFilter()
		m.list.SetItems(m.buildListItems())
		m.list.ResetSelected()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if tok, ok := m.selectedToken(); ok {
			return m, m.copyToClipboard(tok.Value)
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyName):
		if tok, ok := m.selectedToken(); ok {
			return m, m.copyToClipboard(tok.Name)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selectedToken returns the token under the cursor.
func (m Model) selectedToken() (descriptor.Token, bool) {
	item, ok := m.list.SelectedItem().(tokenItem)
	if !ok {
		return descriptor.Token{}, false
	}
	return item.token, true
}

// buildListItems returns the tokens of the active category.
func (m Model) buildListItems() []list.Item {
	category := m.Category()
	var items []list.Item
	for _, tok := range m.desc.Tokens() {
		if category != allCategories && tok.Category != category {
			continue
		}
		items = append(items, tokenItem{token: tok})
	}
	return items
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	footer := lipgloss.Height(m.footer())
	m.list.SetSize(m.width, max(m.height-footer-1, 1))
}

func (m Model) copyToClipboard(text string) tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		err := copyText(text, cfg)
		return copyResultMsg{text: text, err: err}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.header() + "\n" + m.list.View() + "\n" + m.footer()
}

func (m Model) header() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	s := ""
	for i, cat := range m.categories {
		name := cat
		if cat == allCategories {
			name = "all"
		}
		if i > 0 {
			s += style.Render(" · ")
		}
		if i == m.catIndex {
			s += active.Render(name)
		} else {
			s += style.Render(name)
		}
	}
	return s
}

func (m Model) footer() string {
	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
		if m.statusErr {
			statusStyle = statusStyle.Foreground(lipgloss.Color("9"))
		}
		return statusStyle.Render(m.statusMsg)
	}
	return m.help.View(m.keys)
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config     *config.Config
	Descriptor *descriptor.Descriptor
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	if opts.Descriptor == nil {
		return fmt.Errorf("no descriptor to browse")
	}

	m := New(opts.Config, opts.Descriptor)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
