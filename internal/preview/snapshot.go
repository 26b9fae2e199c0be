package preview

import (
	tea "github.com/charmbracelet/bubbletea"

	"fragvec/internal/shape"
)

// Snapshot renders the collection once to a w x h braille string
// without starting a program. Useful for a quick look in a pipeline
// run and for tests.
func Snapshot(c shape.Collection, w, h int) string {
	return canvas(c, -1, viewport{zoom: 1}, w, h)
}

// Show runs the interactive viewer on an already loaded collection and
// blocks until the user quits it.
func Show(c shape.Collection, title string) error {
	p := tea.NewProgram(NewWithCollection(c, title), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
