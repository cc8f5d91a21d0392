package quiz

import (
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	qbank "github.com/abhisek/capy/internal/quiz"
	"github.com/abhisek/capy/internal/router"
	"github.com/abhisek/capy/internal/screen"
	"github.com/abhisek/capy/internal/screens/keyhelp"
	"github.com/abhisek/capy/internal/session"
	"github.com/abhisek/capy/internal/ui/components"
	"github.com/abhisek/capy/internal/ui/layout"

	"github.com/google/uuid"
)

// Intro fields that can hold focus.
const (
	focusConfidence = iota
	focusEstimate
	focusStart
	focusCount
)

// Options configures a QuizScreen.
type Options struct {
	Bank   *qbank.Bank
	Config session.Config
	Logger *slog.Logger

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// QuizScreen implements screen.Screen for the whole quiz: intro, questions,
// completion, and the pet's two overlays.
type QuizScreen struct {
	state     *session.State
	sessionID string
	clock     func() time.Time
	logger    *slog.Logger
	keys      keyMap

	confidence components.Slider
	estimate   components.Slider
	focus      int

	options components.OptionGroup

	// tickGen identifies the page whose idle timer is live.
	tickGen int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen on the intro page.
func New(opts Options) *QuizScreen {
	bank := opts.Bank
	if bank == nil {
		bank = qbank.DefaultBank()
	}
	cfg := opts.Config
	if cfg == (session.Config{}) {
		cfg = session.DefaultConfig()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sessionID := uuid.New().String()
	state := session.New(bank, cfg, clock())

	confidence := components.NewSlider("How confident do you feel about this assignment?",
		session.ConfidenceMin, session.ConfidenceMax, state.Confidence())
	confidence.MinCaption = "Not at all"
	confidence.MaxCaption = "Very confident"
	confidence.Focused = true

	estimate := components.NewSlider("How long do you think it will take you to complete? (in minutes)",
		session.EstimateMin, session.EstimateMax, state.EstimatedMinutes())
	estimate.Unit = "minutes"

	return &QuizScreen{
		state:      state,
		sessionID:  sessionID,
		clock:      clock,
		logger:     logger.With("session_id", sessionID),
		keys:       defaultKeyMap(),
		confidence: confidence,
		estimate:   estimate,
	}
}

// State exposes the session for inspection.
func (s *QuizScreen) State() *session.State {
	return s.state
}

func (s *QuizScreen) Init() tea.Cmd {
	s.logger.Info("quiz opened", "questions", s.state.Total())
	return nil
}

func (s *QuizScreen) Title() string {
	switch s.state.Kind() {
	case session.KindQuestion:
		return fmt.Sprintf("Question %d of %d", s.state.Page(), s.state.Total())
	case session.KindComplete:
		return "Quiz Completed!"
	}
	return s.state.Bank().Title
}

// Status reports progress for the header.
func (s *QuizScreen) Status() string {
	switch s.state.Kind() {
	case session.KindQuestion:
		return fmt.Sprintf("Q %d/%d  ", s.state.Page(), s.state.Total())
	case session.KindComplete:
		return fmt.Sprintf("%d/%d answered  ", session.BuildSummary(s.state).Answered, s.state.Total())
	}
	return ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.state.ModalVisible() {
		return layout.HintsFromBindings(s.keys.Ack)
	}
	switch s.state.Kind() {
	case session.KindIntro:
		return layout.HintsFromBindings(s.keys.Focus, s.keys.Slider.Decrease, s.keys.Start, s.keys.Help)
	case session.KindQuestion:
		prev := s.keys.Prev
		prev.SetEnabled(s.state.CanRetreat())
		pet := s.keys.Pet
		pet.SetEnabled(s.state.HelpShown())
		return layout.HintsFromBindings(s.keys.Options.Up, s.keys.Options.Pick, s.keys.Next, prev, pet, s.keys.Help)
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case idleTickMsg:
		return s, s.handleTick(msg)

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	now := s.clock()

	if key.Matches(msg, s.keys.Help) {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: keyhelp.New(s.keys)}
		}
	}

	// An open modal swallows everything except its acknowledgement.
	if s.state.AdvisoryVisible() {
		if key.Matches(msg, s.keys.Ack) {
			s.state.DismissAdvisory(now)
			s.logger.Debug("advisory dismissed", "page", s.state.Page())
		}
		return nil
	}
	if s.state.ExampleVisible() {
		if key.Matches(msg, s.keys.Ack) {
			s.state.DismissExample(now)
			s.logger.Debug("example dismissed", "page", s.state.Page())
		}
		return nil
	}

	switch s.state.Kind() {
	case session.KindIntro:
		return s.handleIntroKey(msg, now)
	case session.KindQuestion:
		return s.handleQuestionKey(msg, now)
	}
	return nil
}

func (s *QuizScreen) handleIntroKey(msg tea.KeyPressMsg, now time.Time) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Start):
		return s.advance(now)

	case key.Matches(msg, s.keys.Focus):
		if msg.String() == "up" || msg.String() == "shift+tab" {
			s.focus = (s.focus + focusCount - 1) % focusCount
		} else {
			s.focus = (s.focus + 1) % focusCount
		}
		s.confidence.Focused = s.focus == focusConfidence
		s.estimate.Focused = s.focus == focusEstimate
		return nil
	}

	s.confidence, _ = s.confidence.Update(msg)
	s.estimate, _ = s.estimate.Update(msg)
	s.state.SetConfidence(s.confidence.Value)
	s.state.SetEstimate(s.estimate.Value)
	return nil
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyPressMsg, now time.Time) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Next):
		return s.advance(now)

	case key.Matches(msg, s.keys.Prev):
		if !s.state.Retreat(now) {
			return nil
		}
		return s.enteredPage()

	case key.Matches(msg, s.keys.Pet):
		if s.state.ClickPet() {
			s.logger.Info("example opened", "page", s.state.Page())
		}
		return nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if option, ok := s.options.Choice(); ok {
		s.recordAnswer(option, now)
	}
	return cmd
}

func (s *QuizScreen) advance(now time.Time) tea.Cmd {
	if !s.state.Advance(now) {
		return nil
	}
	if s.state.Page() == 1 {
		s.logger.Info("quiz started",
			"confidence", s.state.Confidence(),
			"estimated_minutes", s.state.EstimatedMinutes())
	}
	return s.enteredPage()
}

// enteredPage runs after every page change: it retires the previous page's
// timer and arms a new one when the new page is a question.
func (s *QuizScreen) enteredPage() tea.Cmd {
	s.tickGen++

	switch s.state.Kind() {
	case session.KindQuestion:
		q := s.state.CurrentQuestion()
		s.options = components.NewOptionGroup(q.Options, s.state.Answer())
		return s.tickCmd()

	case session.KindComplete:
		sum := session.BuildSummary(s.state)
		s.logger.Info("quiz completed",
			"answered", sum.Answered,
			"correct", sum.Correct,
			"total", sum.Total,
			"confidence", sum.Confidence,
			"estimated_minutes", sum.EstimatedMinutes)
	}
	return nil
}

func (s *QuizScreen) recordAnswer(option string, now time.Time) {
	thinkTime := now.Sub(s.state.QuestionStart())
	outcome := s.state.RecordAnswer(option, now)

	attrs := []any{
		"page", s.state.Page(),
		"answer", option,
		"outcome", outcome.String(),
		"think_time", thinkTime.Round(100 * time.Millisecond).String(),
	}
	switch {
	case outcome == session.OutcomeTooFast:
		s.logger.Info("answer rejected", attrs...)
	case outcome == session.OutcomeChanged:
		s.logger.Info("answer changed", attrs...)
	case outcome.Stored():
		s.logger.Debug("answer recorded", attrs...)
	}
}

func (s *QuizScreen) handleTick(msg idleTickMsg) tea.Cmd {
	if msg.gen != s.tickGen || s.state.Kind() != session.KindQuestion {
		return nil
	}
	idle := s.state.IdleFor(msg.at)
	if s.state.Tick(msg.at) {
		s.logger.Info("help offered",
			"page", s.state.Page(),
			"idle", idle.Round(time.Second).String())
	}
	return s.tickCmd()
}

// tickCmd arms the idle check for the current page.
func (s *QuizScreen) tickCmd() tea.Cmd {
	gen := s.tickGen
	interval := s.state.Config().TickInterval
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return idleTickMsg{gen: gen, at: s.clock()}
	})
}

// SessionID returns the id attached to this session's log entries.
func (s *QuizScreen) SessionID() string {
	return s.sessionID
}
