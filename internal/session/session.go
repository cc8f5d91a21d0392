package session

import "time"

// Advisory messages shown by the pet.
const (
	TooFastMessage       = "Are you sure you read the question properly? Take your time!"
	ChangedAnswerMessage = "Statistics show that changing your answer has a high likelihood of causing the wrong answer to be selected. Are you sure?"
)

// Outcome is the result of RecordAnswer.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // Not on a question page, modal open, or unknown option
	OutcomeAccepted                // Answer stored
	OutcomeChanged                 // Answer stored, replacing a different one; advisory shown
	OutcomeTooFast                 // Answer discarded; advisory shown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeChanged:
		return "changed"
	case OutcomeTooFast:
		return "too-fast"
	}
	return "ignored"
}

// Stored reports whether the answer was written.
func (o Outcome) Stored() bool {
	return o == OutcomeAccepted || o == OutcomeChanged
}

// Advance moves to the next page. It is a no-op on the completion page or
// while a modal covers the navigation.
func (s *State) Advance(now time.Time) bool {
	if s.ModalVisible() || s.Kind() == KindComplete {
		return false
	}
	s.page++
	s.enterPage(now)
	return true
}

// Retreat moves back one question. Unavailable on the first question, on
// the intro and completion pages, and while a modal is open.
func (s *State) Retreat(now time.Time) bool {
	if !s.CanRetreat() {
		return false
	}
	s.page--
	s.enterPage(now)
	return true
}

// enterPage restarts the per-question clocks and clears the pet.
func (s *State) enterPage(now time.Time) {
	s.questionStart = now
	s.lastInteraction = now
	s.helpShown = false
	s.pose = PoseIdle
}

// RecordAnswer stores option as the answer to the active question.
//
// An answer given less than MinThinkTime after the question appeared is
// discarded and the "too fast" advisory opens instead. Replacing a previous,
// different answer opens the "changed answer" advisory but still stores the
// new value.
func (s *State) RecordAnswer(option string, now time.Time) Outcome {
	q := s.CurrentQuestion()
	if q == nil || s.ModalVisible() || !q.HasOption(option) {
		return OutcomeIgnored
	}

	if now.Sub(s.questionStart) < s.cfg.MinThinkTime {
		s.showAdvisory(PoseFast, TooFastMessage)
		return OutcomeTooFast
	}

	i := s.QuestionIndex()
	outcome := OutcomeAccepted
	if prev := s.answers[i]; prev != "" && prev != option {
		s.showAdvisory(PoseStats, ChangedAnswerMessage)
		outcome = OutcomeChanged
	} else if s.pose == PoseHelp {
		s.pose = PoseIdle
	}

	s.answers[i] = option
	s.lastInteraction = now
	s.helpShown = false
	return outcome
}

func (s *State) showAdvisory(pose Pose, text string) {
	s.advisoryVisible = true
	s.advisoryText = text
	s.pose = pose
	s.helpShown = false
}

// Tick runs the idle check. It returns true when it has just raised the
// pet's help pose. Help is raised at most once per page or interaction.
func (s *State) Tick(now time.Time) bool {
	if s.Kind() != KindQuestion || s.ModalVisible() || s.helpShown {
		return false
	}
	if s.IdleFor(now) <= s.cfg.IdleThreshold {
		return false
	}
	s.pose = PoseHelp
	s.helpShown = true
	return true
}

// ClickPet opens the worked example when the pet is offering help.
func (s *State) ClickPet() bool {
	if !s.helpShown || s.ModalVisible() || s.CurrentExample() == nil {
		return false
	}
	s.exampleVisible = true
	s.pose = PoseIdle
	s.helpShown = false
	return true
}

// DismissAdvisory closes the advisory modal and restarts the idle clock.
func (s *State) DismissAdvisory(now time.Time) bool {
	if !s.advisoryVisible {
		return false
	}
	s.advisoryVisible = false
	s.advisoryText = ""
	s.pose = PoseIdle
	s.lastInteraction = now
	return true
}

// DismissExample closes the worked-example modal and restarts the idle clock.
func (s *State) DismissExample(now time.Time) bool {
	if !s.exampleVisible {
		return false
	}
	s.exampleVisible = false
	s.pose = PoseIdle
	s.lastInteraction = now
	return true
}

// SetConfidence sets the intro confidence rating, clamped to its range.
func (s *State) SetConfidence(v int) {
	if s.Kind() != KindIntro {
		return
	}
	s.confidence = clamp(v, ConfidenceMin, ConfidenceMax)
}

// SetEstimate sets the intro time estimate in minutes, clamped to its range.
func (s *State) SetEstimate(v int) {
	if s.Kind() != KindIntro {
		return
	}
	s.estimate = clamp(v, EstimateMin, EstimateMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
