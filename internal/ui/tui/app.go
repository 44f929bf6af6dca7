package tui

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/usecase"
)

const (
	sidebarWidth = 30

	defaultStatusClearAfter = 3 * time.Second

	// Rows the sidebar uses around the font list, padding included.
	sidebarChrome = 13
	minListHeight = 3
)

type focusArea int

const (
	focusText focusArea = iota
	focusFonts
	focusSave
	focusCount
)

type fontItem domain.FontName

func (f fontItem) Title() string       { return string(f) }
func (f fontItem) Description() string { return "" }
func (f fontItem) FilterValue() string { return string(f) }

type model struct {
	theme Theme
	keys  keyMap
	log   *slog.Logger

	shell      *usecase.Shell
	state      domain.AppState
	clearAfter time.Duration

	input  textinput.Model
	fonts  list.Model
	output viewport.Model
	help   help.Model
	focus  focusArea

	width  int
	height int
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	theme := DefaultTheme()

	clearAfter := deps.StatusClearAfter
	if clearAfter <= 0 {
		clearAfter = defaultStatusClearAfter
	}

	shell := usecase.NewShell(deps.Render, deps.Save,
		usecase.WithClipboard(deps.Clipboard),
		usecase.WithErrorText(userMessage),
		usecase.WithShellLogger(log),
	)

	ti := textinput.New()
	ti.Placeholder = "Type here..."
	ti.Prompt = "> "
	ti.Width = sidebarWidth - 8
	ti.Focus()

	items := make([]list.Item, 0, len(deps.Fonts))
	selected := -1
	for i, f := range deps.Fonts {
		items = append(items, fontItem(f))
		if f == deps.DefaultFont {
			selected = i
		}
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New(items, d, sidebarWidth-4, minListHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	def := deps.DefaultFont
	if selected < 0 && len(deps.Fonts) > 0 {
		selected, def = 0, deps.Fonts[0]
	}
	if selected >= 0 {
		l.Select(selected)
	}

	h := help.New()
	h.Styles.ShortDesc = theme.Help
	h.Styles.ShortSeparator = theme.Help
	h.Styles.FullDesc = theme.Help
	h.Styles.FullSeparator = theme.Help

	vp := viewport.New(80, 20)

	m := model{
		theme:      theme,
		keys:       defaultKeyMap(),
		log:        log,
		shell:      shell,
		state:      shell.Start(def),
		clearAfter: clearAfter,
		input:      ti,
		fonts:      l,
		output:     vp,
		help:       h,
		focus:      focusText,
	}

	log.Info("tui.start",
		"fonts", len(deps.Fonts),
		"default_font", string(def),
		"debug", deps.Debug,
	)
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case statusExpiredMsg:
		m.state = m.shell.StatusExpired(m.state, msg.token)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.fonts, cmd = m.fonts.Update(msg)
	cmds = append(cmds, cmd)
	m.syncFont()

	return m, tea.Batch(cmds...)
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.log.Info("tui.quit")
		return m, tea.Quit
	}

	// While the font filter is being typed, every key belongs to it.
	if m.focus == focusFonts && m.fonts.SettingFilter() {
		return m.updateFonts(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.Copy):
		return m.copyArt()
	case key.Matches(msg, m.keys.ScrollUp):
		m.output.ViewUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.output.ViewDown()
		return m, nil
	case m.focus == focusSave && key.Matches(msg, m.keys.Press):
		return m.save()
	}

	switch m.focus {
	case focusText:
		return m.updateInput(msg)
	case focusFonts:
		return m.updateFonts(msg)
	}
	return m, nil
}

// updateInput re-renders synchronously whenever the text changed.
func (m model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if v := m.input.Value(); v != m.state.InputText {
		m.state = m.shell.TextChanged(m.state, v)
		m.refreshOutput()
	}
	return m, cmd
}

func (m model) updateFonts(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.fonts, cmd = m.fonts.Update(msg)
	m.syncFont()
	return m, cmd
}

func (m *model) syncFont() {
	it, ok := m.fonts.SelectedItem().(fontItem)
	if !ok {
		return
	}
	if f := domain.FontName(it); f != m.state.SelectedFont {
		m.state = m.shell.FontChanged(m.state, f)
		m.refreshOutput()
	}
}

func (m model) save() (tea.Model, tea.Cmd) {
	var token uint64
	m.state, token = m.shell.Save(m.state)
	return m, cmdExpireStatus(token, m.clearAfter)
}

func (m model) copyArt() (tea.Model, tea.Cmd) {
	var token uint64
	m.state, token = m.shell.Copy(m.state)
	return m, cmdExpireStatus(token, m.clearAfter)
}

func (m *model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusText {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *model) refreshOutput() {
	content := m.state.Output()
	if m.state.RenderError != "" {
		content = m.theme.ErrorText.Render(content)
	}
	m.output.SetContent(content)
	m.output.GotoTop()
}

func (m *model) layout() {
	listH := m.height - sidebarChrome
	if listH < minListHeight {
		listH = minListHeight
	}
	m.fonts.SetSize(sidebarWidth-4, listH)

	// Card border and padding take 4 columns; border, title and help take 4 rows.
	w := m.width - sidebarWidth - 1 - 4
	h := m.height - 4
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.output.Width = w
	m.output.Height = h
	m.help.Width = m.width
}

func (m model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.mainView())
	return body + "\n" + m.help.View(m.keys)
}

func (m model) sidebarView() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("figgy"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("text to FIGlet banners"))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Text:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Font:"))
	b.WriteString("\n")
	b.WriteString(m.fonts.View())
	b.WriteString("\n\n")

	btn := m.theme.Button
	if m.focus == focusSave {
		btn = m.theme.Focused
	}
	b.WriteString(btn.Render("Save to File"))
	b.WriteString("\n\n")

	status := clampString(m.state.Status, sidebarWidth-4)
	if strings.HasPrefix(m.state.Status, "Error") {
		b.WriteString(m.theme.ErrorText.Render(status))
	} else {
		b.WriteString(m.theme.Status.Render(status))
	}

	return m.theme.Sidebar.Render(b.String())
}

func (m model) mainView() string {
	title := m.theme.Label.Render(outputTitle(m.state.CurrentArt))
	return m.theme.Card.Render(title + "\n" + m.output.View())
}
