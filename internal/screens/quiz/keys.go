package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/capy/internal/ui/components"
)

// keyMap holds every binding the quiz screen reacts to. It satisfies
// help.KeyMap so the help screen can list it.
type keyMap struct {
	Focus   key.Binding
	Start   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Pet     key.Binding
	Ack     key.Binding
	Help    key.Binding
	Slider  components.SliderKeyMap
	Options components.OptionKeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus:   key.NewBinding(key.WithKeys("tab", "up", "down", "shift+tab"), key.WithHelp("Tab", "Next field")),
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Start quiz")),
		Next:    key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "Next")),
		Prev:    key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "Previous")),
		Pet:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Ask Capy")),
		Ack:     key.NewBinding(key.WithKeys("enter", "space", "esc"), key.WithHelp("Enter", "Got it!")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Keys")),
		Slider:  components.DefaultSliderKeyMap(),
		Options: components.DefaultOptionKeyMap(),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Options.Pick, k.Next, k.Prev, k.Pet, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Slider.Decrease, k.Start},
		{k.Options.Up, k.Options.Choose, k.Options.Pick},
		{k.Next, k.Prev, k.Pet},
		{k.Ack, k.Help},
	}
}
