package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

var hints = []KeyHint{
	{Key: "1-4", Description: "Pick"},
	{Key: "n/→", Description: "Next"},
	{Key: "Ctrl+C", Description: "Quit"},
}

func TestFitHints_AllFit(t *testing.T) {
	if got := FitHints(hints, 200); len(got) != 3 {
		t.Errorf("expected all hints, got %v", got)
	}
}

func TestFitHints_DropsTrailing(t *testing.T) {
	// "  1-4 Pick" is 10 columns, "   n/→ Next" adds 11.
	got := FitHints(hints, 21)
	if len(got) != 2 || got[1].Key != "n/→" {
		t.Errorf("expected the first two hints, got %v", got)
	}
	if got := FitHints(hints, 5); len(got) != 0 {
		t.Errorf("expected no hints, got %v", got)
	}
}

func TestRenderFooter_NarrowKeepsLeadingHints(t *testing.T) {
	out := RenderFooter(hints, 28)
	if !strings.Contains(out, "Pick") {
		t.Error("first hint should survive")
	}
	if strings.Contains(out, "Quit") {
		t.Error("last hint should be dropped when it does not fit")
	}
}

func TestHintsFromBindings_SkipsDisabledAndSilent(t *testing.T) {
	next := key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Next"))
	prev := key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Previous"))
	prev.SetEnabled(false)
	silent := key.NewBinding(key.WithKeys("j"))

	got := HintsFromBindings(next, prev, silent)
	if len(got) != 1 || got[0] != (KeyHint{Key: "n", Description: "Next"}) {
		t.Errorf("unexpected hints %v", got)
	}
}

func TestRenderFrame_FooterOnLastRows(t *testing.T) {
	header := RenderHeader("Question 1 of 6", "Q 1/6", 80)
	footer := RenderFooter(hints, 80)
	body := strings.Repeat("line\n", 100)

	frame := RenderFrame(header, body, footer, 80, 30)
	if h := lipgloss.Height(frame); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
	if !strings.HasSuffix(frame, footer) {
		t.Error("footer should close the frame")
	}
}

func TestBodyHeight_NeverNegative(t *testing.T) {
	if got := BodyHeight("a\nb\nc", "d\ne\nf", 4); got != 0 {
		t.Errorf("body height = %d, want 0", got)
	}
	if got := BodyHeight("a", "b", 10); got != 8 {
		t.Errorf("body height = %d, want 8", got)
	}
}
