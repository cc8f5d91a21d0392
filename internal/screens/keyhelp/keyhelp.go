package keyhelp

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capy/internal/router"
	"github.com/abhisek/capy/internal/screen"
	"github.com/abhisek/capy/internal/ui/layout"
	"github.com/abhisek/capy/internal/ui/theme"
)

// KeyHelpScreen lists a screen's key bindings. Any key closes it.
type KeyHelpScreen struct {
	keys help.KeyMap
	help help.Model
}

var _ screen.Screen = (*KeyHelpScreen)(nil)
var _ screen.KeyHintProvider = (*KeyHelpScreen)(nil)

// New creates a KeyHelpScreen for keys.
func New(keys help.KeyMap) *KeyHelpScreen {
	h := help.New()
	h.ShowAll = true
	return &KeyHelpScreen{keys: keys, help: h}
}

func (k *KeyHelpScreen) Init() tea.Cmd { return nil }

func (k *KeyHelpScreen) Title() string { return "Keys" }

func (k *KeyHelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "any key", Description: "Back"}}
}

func (k *KeyHelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return k, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return k, nil
}

func (k *KeyHelpScreen) View(width, height int) string {
	title := theme.Title.Render("Keyboard shortcuts")
	body := theme.Card.Render(k.help.View(k.keys))
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
