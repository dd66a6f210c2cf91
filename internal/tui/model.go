// Package tui renders the contact menu as a Bubble Tea terminal UI and picks
// between it and the plain text loop.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/menu"
)

// Screen is the current view of the model.
type Screen int

const (
	ScreenMenu  Screen = iota // Choosing a menu item.
	ScreenInput               // Entering the fields for the chosen item.
)

// Model is the Bubble Tea model for the contact menu.
type Model struct {
	handler   *menu.Handler
	menuKeys  menuKeys
	inputKeys inputKeys
	help      help.Model
	input     textinput.Model

	screen   Screen
	cursor   int
	choice   menu.Choice
	prompts  []string
	answers  []string
	output   []string
	quitting bool
	width    int
}

// NewModel creates a Model on the menu screen with the cursor on the first item.
func NewModel(h *menu.Handler) Model {
	ti := textinput.New()
	ti.Prompt = "> "

	return Model{
		handler:   h,
		menuKeys:  MenuKeyMap(),
		inputKeys: InputKeyMap(),
		help:      help.New(),
		input:     ti,
		screen:    ScreenMenu,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with screen-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.screen == ScreenInput {
			return m.updateInput(msg)
		}
		return m.updateMenu(msg)
	}

	// Cursor blink and other textinput messages.
	if m.screen == ScreenInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menuKeys.Quit):
		return m.quit()
	case key.Matches(msg, m.menuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.menuKeys.Down):
		if m.cursor < len(menu.Items)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.menuKeys.Select):
		return m.choose(menu.Items[m.cursor].Choice)
	case msg.Type == tea.KeyRunes:
		if c, ok := menu.ParseChoice(string(msg.Runes)); ok {
			return m.choose(c)
		}
		m.output = []string{menu.InvalidChoice}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Quit):
		return m.quit()
	case key.Matches(msg, m.inputKeys.Cancel):
		m.toMenu()
		m.output = nil
		return m, nil
	case key.Matches(msg, m.inputKeys.Submit):
		m.answers = append(m.answers, m.input.Value())
		m.input.Reset()
		if len(m.answers) < len(m.prompts) {
			return m, nil
		}
		m.output = m.handler.Handle(m.choice, m.answers)
		m.toMenu()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// choose moves the cursor to c and runs it, switching to field entry when the
// choice has prompts.
func (m Model) choose(c menu.Choice) (tea.Model, tea.Cmd) {
	for i, it := range menu.Items {
		if it.Choice == c {
			m.cursor = i
			break
		}
	}
	if c == menu.ChoiceExit {
		return m.quit()
	}

	prompts := menu.Prompts(c)
	if len(prompts) == 0 {
		m.output = m.handler.Handle(c, nil)
		return m, nil
	}

	m.screen = ScreenInput
	m.choice = c
	m.prompts = prompts
	m.answers = nil
	m.output = nil
	m.input.Reset()
	return m, m.input.Focus()
}

func (m *Model) toMenu() {
	m.screen = ScreenMenu
	m.prompts = nil
	m.answers = nil
	m.input.Reset()
	m.input.Blur()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.input.Blur()
	return m, tea.Quit
}

// View renders the menu, the active field prompt, the last output, and the help bar.
func (m Model) View() string {
	if m.quitting {
		return menu.Goodbye + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(menu.Title))
	b.WriteString("\n\n")

	for i, it := range menu.Items {
		line := string(it.Choice) + ". " + it.Label
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(CursorMarker + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.screen == ScreenInput {
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(strings.TrimSpace(m.prompts[len(m.answers)])))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if len(m.output) > 0 {
		b.WriteString("\n")
		b.WriteString(renderOutput(m.output))
	}

	b.WriteString("\n")
	if m.screen == ScreenInput {
		b.WriteString(m.help.View(m.inputKeys))
	} else {
		b.WriteString(m.help.View(m.menuKeys))
	}
	return b.String()
}

// renderOutput styles handler output: list rows indented, failures highlighted.
func renderOutput(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		switch {
		case lines[0] == menu.MsgListHead && i > 0:
			b.WriteString(rowStyle.Render(line))
		case line == menu.MsgListHead || line == menu.MsgEmpty:
			b.WriteString(promptStyle.Render(line))
		case line == menu.InvalidChoice,
			strings.HasPrefix(line, "No contact named"),
			strings.HasPrefix(line, "error:"):
			b.WriteString(warnStyle.Render(line))
		default:
			b.WriteString(successStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
