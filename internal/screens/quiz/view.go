package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capy/internal/pet"
	"github.com/abhisek/capy/internal/session"
	"github.com/abhisek/capy/internal/ui/components"
	"github.com/abhisek/capy/internal/ui/layout"
	"github.com/abhisek/capy/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.state.AdvisoryVisible():
		return s.renderAdvisory(width, height)
	case s.state.ExampleVisible():
		return s.renderExample(width, height)
	}

	switch s.state.Kind() {
	case session.KindIntro:
		return s.renderIntro(width, height)
	case session.KindComplete:
		return renderComplete(width, height)
	}
	return s.renderQuestion(width, height)
}

// renderIntro renders the welcome card with the two sliders.
func (s *QuizScreen) renderIntro(width, height int) string {
	cardWidth := min(width-4, 72)
	title := s.state.Bank().Title
	if title == "" {
		title = "Quiz"
	}

	s.confidence.Width = cardWidth - 24
	s.estimate.Width = cardWidth - 24

	sections := []string{}
	if !layout.IsCompactHeight(height) {
		sections = append(sections, pet.Render(session.PoseHello), "")
	}
	sections = append(sections,
		theme.Title.Width(cardWidth).Render(fmt.Sprintf("Welcome to the %s!", title)),
		theme.Subtitle.Width(cardWidth).Render("Our teacher's pet will help you stay on task and achieve your learning goals."),
		"",
		s.confidence.View(),
		"",
		s.estimate.View(),
		"",
		components.NewButton("Start Quiz", s.focus == focusStart).View(),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuestion renders the active question with the pet floating to the right.
func (s *QuizScreen) renderQuestion(width, height int) string {
	q := s.state.CurrentQuestion()
	if q == nil {
		return ""
	}

	petArt := pet.Render(s.state.Pose())
	cardWidth := min(width-6, 72)
	if !layout.IsCompactWidth(width) {
		cardWidth = min(width-lipgloss.Width(petArt)-8, 72)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d", s.state.Page(), s.state.Total())))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(cardWidth).Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(s.options.View(s.state.Answer(), cardWidth))
	b.WriteString("\n\n")

	prev := components.NewButton("Previous", false)
	prev.Disabled = !s.state.CanRetreat()
	nextLabel := "Next"
	if s.state.IsLastQuestion() {
		nextLabel = "Finish"
	}
	next := components.NewButton(nextLabel, true)

	prevView, nextView := prev.View(), next.View()
	gap := cardWidth - lipgloss.Width(prevView) - lipgloss.Width(nextView)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(prevView + strings.Repeat(" ", gap) + nextView)

	card := theme.Card.Render(b.String())

	petColumn := petArt
	if s.state.HelpShown() {
		petColumn = lipgloss.JoinVertical(lipgloss.Center,
			petArt,
			theme.Hint.Render("Stuck? Press c"),
		)
	}

	var content string
	if layout.IsCompactWidth(width) {
		content = lipgloss.JoinVertical(lipgloss.Center, card, petColumn)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", petColumn)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+content)
}

// renderComplete renders the static completion card.
func renderComplete(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		pet.Render(session.PoseCongrats),
		"",
		theme.Title.Render("Quiz Completed!"),
		"",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Yay you're done!!"),
		"",
		theme.Body.Render("Thank you for completing the quiz. Your answers have been recorded."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderAdvisory renders the pet's cautionary message.
func (s *QuizScreen) renderAdvisory(width, height int) string {
	modal := components.Modal(
		pet.Render(s.state.Pose()),
		lipgloss.NewStyle().Align(lipgloss.Center).Width(min(width-10, 56)).Render(s.state.AdvisoryText()),
		"Got it!",
		width-10,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

// renderExample renders the worked example aligned with the current question.
func (s *QuizScreen) renderExample(width, height int) string {
	ex := s.state.CurrentExample()
	if ex == nil {
		return ""
	}

	heading := lipgloss.JoinHorizontal(lipgloss.Center,
		pet.Render(session.PoseCorner),
		"  ",
		theme.Title.Render(pet.Name+"'s Corner"),
	)

	boxWidth := min(width-16, 60)
	label := theme.Label
	box := theme.ExampleBox.Width(boxWidth).Render(strings.Join([]string{
		label.Render("Question:"),
		ex.Question,
		"",
		label.Render("Solution:"),
		ex.Solution,
	}, "\n"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		label.Render("Let's look at a similar example:"),
		"",
		box,
	)

	modal := components.Modal(heading, body, "Got it!", width-10)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
