package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DeckModel is the bubbletea model for the slide deck.
type DeckModel struct {
	theme    Theme
	keymap   KeyMap
	slides   []Slide
	index    int
	width    int
	height   int
	quitting bool
}

// NewDeck creates a deck over the given slides.
func NewDeck(slides []Slide, theme Theme) DeckModel {
	return DeckModel{
		theme:  theme,
		keymap: DefaultKeyMap(),
		slides: slides,
	}
}

// Init initializes the model.
func (m DeckModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages.
func (m DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Next):
			if m.index < len(m.slides)-1 {
				m.index++
			} else {
				// Advancing past the last slide ends the show.
				m.quitting = true
				return m, tea.Quit
			}
		case key.Matches(msg, m.keymap.Prev):
			if m.index > 0 {
				m.index--
			}
		case key.Matches(msg, m.keymap.First):
			m.index = 0
		case key.Matches(msg, m.keymap.Last):
			m.index = len(m.slides) - 1
		}
	}

	return m, nil
}

// View renders the current slide centered in the terminal.
func (m DeckModel) View() string {
	if m.quitting || len(m.slides) == 0 {
		return ""
	}

	slide := m.slides[m.index]

	accent := m.theme.Primary
	if slide.Accent != "" {
		accent = slide.Accent
	}

	title := m.theme.Title.Foreground(accent).Render(slide.Title)
	body := m.theme.Normal.Render(strings.Join(slide.Lines, "\n"))

	box := m.theme.SlideBox.
		BorderForeground(accent).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, body))

	footer := m.theme.Footer.Render(m.progressDots() + "   ←/→ navigate · q quit")
	content := lipgloss.JoinVertical(lipgloss.Center, box, footer)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m DeckModel) progressDots() string {
	dots := make([]string, len(m.slides))
	for i := range m.slides {
		if i == m.index {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return strings.Join(dots, " ")
}
