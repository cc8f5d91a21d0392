package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capy/internal/ui/theme"
)

// OptionKeyMap binds the option group's keys.
type OptionKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Pick   key.Binding
}

// DefaultOptionKeyMap returns arrow/vim navigation, Enter to choose and 1-4 to pick directly.
func DefaultOptionKeyMap() OptionKeyMap {
	return OptionKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Choose: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Choose")),
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Pick")),
	}
}

// OptionGroup is a single-select radio group. It does not own the selected
// value: the caller passes it to View, and reads Choice right after Update
// to learn what the key just picked.
type OptionGroup struct {
	Options []string
	Cursor  int
	Keys    OptionKeyMap

	// Chosen is the option picked by the last Update, or -1.
	Chosen int
}

// NewOptionGroup creates a group with the cursor on selected (or the first option).
func NewOptionGroup(options []string, selected string) OptionGroup {
	cursor := 0
	for i, o := range options {
		if o == selected {
			cursor = i
			break
		}
	}
	return OptionGroup{
		Options: options,
		Cursor:  cursor,
		Keys:    DefaultOptionKeyMap(),
		Chosen:  -1,
	}
}

// Update handles keyboard navigation and selection. A pick is reported
// synchronously through Chosen so it is applied to the question that was
// on screen when the key was pressed.
func (g OptionGroup) Update(msg tea.Msg) (OptionGroup, tea.Cmd) {
	g.Chosen = -1
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(g.Options) == 0 {
		return g, nil
	}

	switch {
	case key.Matches(kmsg, g.Keys.Up):
		if g.Cursor > 0 {
			g.Cursor--
		}
	case key.Matches(kmsg, g.Keys.Down):
		if g.Cursor < len(g.Options)-1 {
			g.Cursor++
		}
	case key.Matches(kmsg, g.Keys.Choose):
		g.Chosen = g.Cursor
	case key.Matches(kmsg, g.Keys.Pick):
		i := int(kmsg.String()[0] - '1')
		if i < len(g.Options) {
			g.Cursor = i
			g.Chosen = i
		}
	}

	return g, nil
}

// Choice returns the option picked by the last Update.
func (g OptionGroup) Choice() (string, bool) {
	if g.Chosen < 0 || g.Chosen >= len(g.Options) {
		return "", false
	}
	return g.Options[g.Chosen], true
}

// View renders the options, highlighting selected and marking the cursor.
func (g OptionGroup) View(selected string, width int) string {
	lines := make([]string, 0, len(g.Options))
	for i, opt := range g.Options {
		mark := "( )"
		if opt == selected {
			mark = "(●)"
		}
		prefix := "  "
		if i == g.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %d) %s", prefix, mark, i+1, opt)

		var style lipgloss.Style
		switch {
		case opt == selected:
			style = theme.OptionSelected
		case i == g.Cursor:
			style = theme.OptionCursor
		default:
			style = theme.OptionNormal
		}
		if width > 0 {
			style = style.Width(width)
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}
