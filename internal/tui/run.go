package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshsymonds/shelf-wrapped/internal/recap"
)

// Run presents the recap as a full-screen slide show and blocks until the user
// finishes or quits.
func Run(ctx context.Context, res recap.Result, displayName string) error {
	slides := BuildSlides(res, displayName)
	model := NewDeck(slides, Default)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run slide show: %w", err)
	}
	return nil
}
