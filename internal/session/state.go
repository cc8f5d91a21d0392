package session

import (
	"time"

	"github.com/abhisek/capy/internal/quiz"
)

// Kind classifies the current page.
type Kind int

const (
	KindIntro    Kind = iota // Page 0: confidence and time estimate
	KindQuestion             // Pages 1..N: one question each
	KindComplete             // Page N+1: terminal
)

func (k Kind) String() string {
	switch k {
	case KindIntro:
		return "intro"
	case KindQuestion:
		return "question"
	case KindComplete:
		return "complete"
	}
	return "unknown"
}

// State is the whole quiz session: page, answers, intro ratings and the
// helper pet's overlay state. It is only changed through the methods in
// session.go, one per user-visible action.
type State struct {
	bank *quiz.Bank
	cfg  Config

	// Page index: 0 = intro, 1..N = questions, N+1 = complete.
	page int

	// answers is index-aligned with bank.Questions; "" means unanswered.
	answers []string

	confidence int
	estimate   int

	pose            Pose
	advisoryVisible bool
	advisoryText    string
	exampleVisible  bool
	helpShown       bool

	// questionStart is when the current page was entered.
	questionStart time.Time

	// lastInteraction is refreshed by answers, navigation and dismissals.
	lastInteraction time.Time
}

// New creates a session on the intro page.
func New(bank *quiz.Bank, cfg Config, now time.Time) *State {
	return &State{
		bank:            bank,
		cfg:             cfg,
		answers:         make([]string, bank.Len()),
		confidence:      ConfidenceDefault,
		estimate:        EstimateDefault,
		pose:            PoseIdle,
		questionStart:   now,
		lastInteraction: now,
	}
}

// Bank returns the question bank driving this session.
func (s *State) Bank() *quiz.Bank { return s.bank }

// Config returns the timing configuration.
func (s *State) Config() Config { return s.cfg }

// Page returns the current page index.
func (s *State) Page() int { return s.page }

// Total returns the number of questions.
func (s *State) Total() int { return s.bank.Len() }

// Kind returns the kind of the current page.
func (s *State) Kind() Kind {
	switch {
	case s.page == 0:
		return KindIntro
	case s.page > s.bank.Len():
		return KindComplete
	}
	return KindQuestion
}

// QuestionIndex returns the zero-based index of the active question, or -1
// outside the question pages.
func (s *State) QuestionIndex() int {
	if s.Kind() != KindQuestion {
		return -1
	}
	return s.page - 1
}

// CurrentQuestion returns the active question, or nil.
func (s *State) CurrentQuestion() *quiz.Question {
	return s.bank.Question(s.QuestionIndex())
}

// CurrentExample returns the worked example aligned with the active question, or nil.
func (s *State) CurrentExample() *quiz.ExampleProblem {
	return s.bank.Example(s.QuestionIndex())
}

// Answer returns the recorded answer for the active question ("" if none).
func (s *State) Answer() string {
	i := s.QuestionIndex()
	if i < 0 {
		return ""
	}
	return s.answers[i]
}

// Answers returns a copy of all recorded answers.
func (s *State) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Confidence returns the intro confidence rating (0-5).
func (s *State) Confidence() int { return s.confidence }

// EstimatedMinutes returns the intro time estimate (5-30).
func (s *State) EstimatedMinutes() int { return s.estimate }

// Pose returns the pet's current pose on a question page.
func (s *State) Pose() Pose { return s.pose }

// AdvisoryVisible reports whether the advisory modal is open.
func (s *State) AdvisoryVisible() bool { return s.advisoryVisible }

// AdvisoryText returns the advisory modal's message.
func (s *State) AdvisoryText() string { return s.advisoryText }

// ExampleVisible reports whether the worked-example modal is open.
func (s *State) ExampleVisible() bool { return s.exampleVisible }

// HelpShown reports whether the pet is currently offering help.
func (s *State) HelpShown() bool { return s.helpShown }

// ModalVisible reports whether any modal is open.
func (s *State) ModalVisible() bool { return s.advisoryVisible || s.exampleVisible }

// CanRetreat reports whether Retreat would move back a page.
func (s *State) CanRetreat() bool {
	return s.Kind() == KindQuestion && s.page > 1 && !s.ModalVisible()
}

// IsLastQuestion reports whether the active question is the final one.
func (s *State) IsLastQuestion() bool {
	return s.Kind() == KindQuestion && s.page == s.bank.Len()
}

// QuestionStart returns when the current page was entered.
func (s *State) QuestionStart() time.Time { return s.questionStart }

// LastInteraction returns the time of the most recent interaction.
func (s *State) LastInteraction() time.Time { return s.lastInteraction }

// IdleFor returns how long the learner has gone without interacting.
func (s *State) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.lastInteraction)
}
