package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capy/internal/ui/theme"
)

// SliderKeyMap binds the slider's keys.
type SliderKeyMap struct {
	Decrease key.Binding
	Increase key.Binding
}

// DefaultSliderKeyMap returns left/right (and h/l) bindings.
func DefaultSliderKeyMap() SliderKeyMap {
	return SliderKeyMap{
		Decrease: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←→", "Adjust")),
		Increase: key.NewBinding(key.WithKeys("right", "l", "+")),
	}
}

// Slider is a draggable integer in [Min, Max].
type Slider struct {
	Label      string
	Min        int
	Max        int
	Step       int
	Value      int
	Focused    bool
	Width      int
	MinCaption string // shown under the left end, e.g. "Not at all"
	MaxCaption string // shown under the right end
	Unit       string // appended to the value readout, e.g. "minutes"
	Keys       SliderKeyMap
}

// NewSlider creates a slider with value clamped into range.
func NewSlider(label string, lo, hi, value int) Slider {
	s := Slider{
		Label: label,
		Min:   lo,
		Max:   hi,
		Step:  1,
		Width: 40,
		Keys:  DefaultSliderKeyMap(),
	}
	s.SetValue(value)
	return s
}

// SetValue clamps v into range and stores it.
func (s *Slider) SetValue(v int) {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	s.Value = v
}

// Update adjusts the value when focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.Keys.Decrease):
		s.SetValue(s.Value - s.Step)
	case key.Matches(kmsg, s.Keys.Increase):
		s.SetValue(s.Value + s.Step)
	}
	return s, nil
}

// View renders the label, track and captions.
func (s Slider) View() string {
	var b strings.Builder

	label := theme.Label
	if s.Focused {
		label = label.Foreground(theme.Primary)
	}
	b.WriteString(label.Render(s.Label))
	b.WriteString("\n")

	trackWidth := s.Width
	if trackWidth < 4 {
		trackWidth = 4
	}
	span := s.Max - s.Min
	pos := 0
	if span > 0 {
		pos = (s.Value - s.Min) * (trackWidth - 1) / span
	}

	knob := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("●")
	if s.Focused {
		knob = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("◆")
	}
	b.WriteString(theme.SliderFilled.Render(strings.Repeat("━", pos)))
	b.WriteString(knob)
	b.WriteString(theme.SliderEmpty.Render(strings.Repeat("─", trackWidth-1-pos)))

	readout := fmt.Sprintf("  %d", s.Value)
	if s.Unit != "" {
		readout += " " + s.Unit
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(readout))

	if s.MinCaption != "" || s.MaxCaption != "" {
		gap := trackWidth - lipgloss.Width(s.MinCaption) - lipgloss.Width(s.MaxCaption)
		if gap < 1 {
			gap = 1
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.MinCaption + strings.Repeat(" ", gap) + s.MaxCaption))
	}

	return b.String()
}
