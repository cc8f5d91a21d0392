package session

import (
	"testing"
	"time"

	"github.com/abhisek/capy/internal/quiz"
)

var t0 = time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)

func testState() *State {
	return New(quiz.DefaultBank(), DefaultConfig(), t0)
}

// onQuestion returns a state on question page p, entered at t0.
func onQuestion(p int) *State {
	s := testState()
	for s.Page() < p {
		s.Advance(t0)
	}
	return s
}

func TestNew_IntroDefaults(t *testing.T) {
	s := testState()
	if s.Page() != 0 || s.Kind() != KindIntro {
		t.Fatalf("page = %d kind = %v, want intro", s.Page(), s.Kind())
	}
	if got := len(s.Answers()); got != 6 {
		t.Errorf("len(answers) = %d, want 6", got)
	}
	if s.Confidence() != ConfidenceDefault || s.EstimatedMinutes() != EstimateDefault {
		t.Errorf("sliders = %d/%d, want %d/%d", s.Confidence(), s.EstimatedMinutes(), ConfidenceDefault, EstimateDefault)
	}
	if s.CurrentQuestion() != nil {
		t.Error("expected no current question on intro")
	}
}

func TestSliders_Clamp(t *testing.T) {
	s := testState()

	s.SetConfidence(9)
	if s.Confidence() != ConfidenceMax {
		t.Errorf("Confidence = %d, want %d", s.Confidence(), ConfidenceMax)
	}
	s.SetConfidence(-1)
	if s.Confidence() != ConfidenceMin {
		t.Errorf("Confidence = %d, want %d", s.Confidence(), ConfidenceMin)
	}
	s.SetEstimate(2)
	if s.EstimatedMinutes() != EstimateMin {
		t.Errorf("EstimatedMinutes = %d, want %d", s.EstimatedMinutes(), EstimateMin)
	}
	s.SetEstimate(45)
	if s.EstimatedMinutes() != EstimateMax {
		t.Errorf("EstimatedMinutes = %d, want %d", s.EstimatedMinutes(), EstimateMax)
	}

	// Sliders are locked once the quiz starts.
	s.Advance(t0)
	s.SetConfidence(1)
	if s.Confidence() != ConfidenceMin {
		t.Errorf("Confidence changed after start: %d", s.Confidence())
	}
}

func TestAdvanceRetreat(t *testing.T) {
	s := testState()

	if s.Retreat(t0) {
		t.Error("Retreat should be unavailable on intro")
	}
	if !s.Advance(t0) || s.Page() != 1 {
		t.Fatalf("Advance from intro: page = %d, want 1", s.Page())
	}
	if s.CanRetreat() || s.Retreat(t0) {
		t.Error("Retreat should be unavailable on page 1")
	}
	s.Advance(t0)
	if !s.Retreat(t0) || s.Page() != 1 {
		t.Errorf("Retreat from 2: page = %d, want 1", s.Page())
	}
}

func TestAdvance_CompleteIsTerminal(t *testing.T) {
	s := onQuestion(6)
	if !s.IsLastQuestion() {
		t.Fatal("expected page 6 to be the last question")
	}
	s.Advance(t0)
	if s.Kind() != KindComplete || s.Page() != 7 {
		t.Fatalf("page = %d kind = %v, want 7 complete", s.Page(), s.Kind())
	}
	if s.Advance(t0) || s.Retreat(t0) {
		t.Error("complete page must have no outgoing transition")
	}
	if s.Page() != 7 {
		t.Errorf("page = %d, want 7", s.Page())
	}
}

func TestRecordAnswer_Accepted(t *testing.T) {
	for p := 1; p <= 6; p++ {
		s := onQuestion(p)
		opt := s.CurrentQuestion().Options[2]
		now := t0.Add(2 * time.Second)

		if got := s.RecordAnswer(opt, now); got != OutcomeAccepted {
			t.Fatalf("page %d: outcome = %v, want accepted", p, got)
		}
		if s.Answers()[p-1] != opt {
			t.Errorf("page %d: answer = %q, want %q", p, s.Answers()[p-1], opt)
		}
		if !s.LastInteraction().Equal(now) {
			t.Errorf("page %d: lastInteraction not refreshed", p)
		}
		if s.AdvisoryVisible() {
			t.Errorf("page %d: unexpected advisory", p)
		}
	}
}

func TestRecordAnswer_TooFast(t *testing.T) {
	s := onQuestion(1)

	got := s.RecordAnswer("60 mph", t0.Add(1999*time.Millisecond))
	if got != OutcomeTooFast {
		t.Fatalf("outcome = %v, want too-fast", got)
	}
	if s.Answer() != "" {
		t.Errorf("answer = %q, want unchanged empty", s.Answer())
	}
	if !s.AdvisoryVisible() || s.AdvisoryText() != TooFastMessage {
		t.Errorf("advisory = %v %q, want too-fast message", s.AdvisoryVisible(), s.AdvisoryText())
	}
	if s.Pose() != PoseFast {
		t.Errorf("pose = %v, want fast", s.Pose())
	}
	if !s.LastInteraction().Equal(t0) {
		t.Error("too-fast attempt should not count as an interaction")
	}
}

func TestRecordAnswer_TooFastKeepsPrevious(t *testing.T) {
	s := onQuestion(1)
	s.RecordAnswer("60 mph", t0.Add(3*time.Second))
	s.Advance(t0.Add(4 * time.Second))
	s.Retreat(t0.Add(5 * time.Second))

	if got := s.RecordAnswer("90 mph", t0.Add(6*time.Second)); got != OutcomeTooFast {
		t.Fatalf("outcome = %v, want too-fast", got)
	}
	if s.Answer() != "60 mph" {
		t.Errorf("answer = %q, want %q", s.Answer(), "60 mph")
	}
}

func TestRecordAnswer_Changed(t *testing.T) {
	s := onQuestion(3)
	s.RecordAnswer("5", t0.Add(3*time.Second))

	got := s.RecordAnswer("7", t0.Add(4*time.Second))
	if got != OutcomeChanged {
		t.Fatalf("outcome = %v, want changed", got)
	}
	if s.Answer() != "7" {
		t.Errorf("answer = %q, want overwrite to %q", s.Answer(), "7")
	}
	if !s.AdvisoryVisible() || s.AdvisoryText() != ChangedAnswerMessage || s.Pose() != PoseStats {
		t.Errorf("advisory = %v %q pose %v, want changed-answer advisory", s.AdvisoryVisible(), s.AdvisoryText(), s.Pose())
	}
}

func TestRecordAnswer_SameAnswerNoAdvisory(t *testing.T) {
	s := onQuestion(3)
	s.RecordAnswer("5", t0.Add(3*time.Second))
	if got := s.RecordAnswer("5", t0.Add(4*time.Second)); got != OutcomeAccepted {
		t.Errorf("outcome = %v, want accepted", got)
	}
	if s.AdvisoryVisible() {
		t.Error("re-selecting the same option should not nudge")
	}
}

func TestRecordAnswer_Ignored(t *testing.T) {
	s := testState()
	if got := s.RecordAnswer("60 mph", t0.Add(time.Minute)); got != OutcomeIgnored {
		t.Errorf("intro: outcome = %v, want ignored", got)
	}

	s.Advance(t0)
	if got := s.RecordAnswer("61 mph", t0.Add(time.Minute)); got != OutcomeIgnored {
		t.Errorf("unknown option: outcome = %v, want ignored", got)
	}

	s.RecordAnswer("60 mph", t0.Add(time.Second)) // too fast, opens advisory
	if got := s.RecordAnswer("60 mph", t0.Add(time.Minute)); got != OutcomeIgnored {
		t.Errorf("modal open: outcome = %v, want ignored", got)
	}
}

func TestTick_HelpAfterIdle(t *testing.T) {
	s := onQuestion(2)

	for sec := 1; sec <= 8; sec++ {
		if s.Tick(t0.Add(time.Duration(sec) * time.Second)) {
			t.Fatalf("help raised after %ds, want > 8s", sec)
		}
	}
	if !s.Tick(t0.Add(9 * time.Second)) {
		t.Fatal("expected help after 9s idle")
	}
	if s.Pose() != PoseHelp || !s.HelpShown() {
		t.Errorf("pose = %v helpShown = %v, want help/true", s.Pose(), s.HelpShown())
	}

	// Exactly once until something changes.
	for sec := 10; sec <= 30; sec++ {
		if s.Tick(t0.Add(time.Duration(sec) * time.Second)) {
			t.Fatalf("help raised twice (at %ds)", sec)
		}
	}
}

func TestTick_Suppressed(t *testing.T) {
	late := t0.Add(time.Minute)

	intro := testState()
	if intro.Tick(late) {
		t.Error("no help on intro")
	}

	done := onQuestion(6)
	done.Advance(t0)
	if done.Tick(late) {
		t.Error("no help on completion")
	}

	modal := onQuestion(1)
	modal.RecordAnswer("60 mph", t0) // too fast: advisory open
	if modal.Tick(late) {
		t.Error("no help while a modal is open")
	}
}

func TestTick_ResetByPageChange(t *testing.T) {
	s := onQuestion(1)
	s.Tick(t0.Add(9 * time.Second))

	s.Advance(t0.Add(10 * time.Second))
	if s.HelpShown() || s.Pose() != PoseIdle {
		t.Errorf("page change should clear help: pose %v", s.Pose())
	}
	if s.Tick(t0.Add(18 * time.Second)) {
		t.Error("idle clock should restart on page change")
	}
	if !s.Tick(t0.Add(19 * time.Second)) {
		t.Error("expected help again on the new page")
	}
}

func TestClickPet_OpensAlignedExample(t *testing.T) {
	bank := quiz.DefaultBank()
	for p := 1; p <= bank.Len(); p++ {
		s := onQuestion(p)

		if s.ClickPet() {
			t.Fatalf("page %d: pet click without help should do nothing", p)
		}

		s.Tick(t0.Add(9 * time.Second))
		if !s.ClickPet() {
			t.Fatalf("page %d: expected example to open", p)
		}
		if !s.ExampleVisible() || s.HelpShown() {
			t.Errorf("page %d: example=%v help=%v", p, s.ExampleVisible(), s.HelpShown())
		}
		if got, want := s.CurrentExample().Question, bank.Examples[p-1].Question; got != want {
			t.Errorf("page %d: example = %q, want %q", p, got, want)
		}
	}
}

func TestDismiss_RestartsIdleClock(t *testing.T) {
	s := onQuestion(1)
	s.Tick(t0.Add(9 * time.Second))
	s.ClickPet()

	if s.Advance(t0.Add(10 * time.Second)) {
		t.Error("navigation should be blocked while the example is open")
	}

	dismissAt := t0.Add(20 * time.Second)
	if !s.DismissExample(dismissAt) {
		t.Fatal("expected example to close")
	}
	if s.ExampleVisible() || s.Pose() != PoseIdle || !s.LastInteraction().Equal(dismissAt) {
		t.Errorf("after dismiss: example=%v pose=%v", s.ExampleVisible(), s.Pose())
	}
	if s.Tick(dismissAt.Add(8 * time.Second)) {
		t.Error("idle clock should restart from the dismissal")
	}

	s.RecordAnswer("60 mph", dismissAt.Add(9*time.Second))
	s.RecordAnswer("30 mph", dismissAt.Add(10*time.Second))
	at := dismissAt.Add(11 * time.Second)
	if !s.DismissAdvisory(at) {
		t.Fatal("expected advisory to close")
	}
	if s.AdvisoryVisible() || s.AdvisoryText() != "" || s.Pose() != PoseIdle || !s.LastInteraction().Equal(at) {
		t.Error("advisory dismissal did not reset state")
	}
	if s.DismissAdvisory(at) || s.DismissExample(at) {
		t.Error("dismissing a closed modal should report false")
	}
}

func TestAnswerClearsHelp(t *testing.T) {
	s := onQuestion(1)
	s.Tick(t0.Add(9 * time.Second))
	s.RecordAnswer("60 mph", t0.Add(10*time.Second))
	if s.HelpShown() || s.Pose() != PoseIdle {
		t.Errorf("answer should clear help: helpShown=%v pose=%v", s.HelpShown(), s.Pose())
	}
}

func TestScenario_FullQuiz(t *testing.T) {
	s := testState()
	s.SetConfidence(3)
	s.SetEstimate(15)

	s.Advance(t0)
	if s.Page() != 1 {
		t.Fatalf("page = %d, want 1", s.Page())
	}
	if q := s.CurrentQuestion(); q.Text != "If a train travels 120 miles in 2 hours, what is its average speed?" {
		t.Fatalf("question = %q", q.Text)
	}
	if got := s.RecordAnswer("60 mph", t0.Add(2500*time.Millisecond)); got != OutcomeAccepted {
		t.Fatalf("outcome = %v", got)
	}
	if s.Answers()[0] != "60 mph" {
		t.Fatalf("answers[0] = %q", s.Answers()[0])
	}

	for i := 0; i < 6; i++ {
		s.Advance(t0.Add(time.Duration(3+i) * time.Second))
	}
	if s.Page() != 7 || s.Kind() != KindComplete {
		t.Fatalf("page = %d, want 7 (complete)", s.Page())
	}

	sum := BuildSummary(s)
	if sum.Total != 6 || sum.Answered != 1 || sum.Correct != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Confidence != 3 || sum.EstimatedMinutes != 15 {
		t.Errorf("summary sliders = %d/%d", sum.Confidence, sum.EstimatedMinutes)
	}
}

func TestPose_Names(t *testing.T) {
	want := []string{"idle", "hello", "stats", "fast", "congrats", "corner", "help"}
	poses := AllPoses()
	if len(poses) != len(want) {
		t.Fatalf("len(AllPoses) = %d, want %d", len(poses), len(want))
	}
	for i, p := range poses {
		if p.String() != want[i] {
			t.Errorf("pose %d = %q, want %q", i, p.String(), want[i])
		}
		back, err := ParsePose(want[i])
		if err != nil || back != p {
			t.Errorf("ParsePose(%q) = %v, %v", want[i], back, err)
		}
	}
	if _, err := ParsePose("sleepy"); err == nil {
		t.Error("expected error for unknown pose")
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := DefaultConfig()
	bad.TickInterval = 0
	if bad.Validate() == nil {
		t.Error("expected error for zero tick interval")
	}
}

func TestOutcome_Stored(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    bool
	}{
		{OutcomeIgnored, false},
		{OutcomeAccepted, true},
		{OutcomeChanged, true},
		{OutcomeTooFast, false},
	}
	for _, tt := range tests {
		if got := tt.outcome.Stored(); got != tt.want {
			t.Errorf("%s.Stored() = %v, want %v", tt.outcome, got, tt.want)
		}
	}
}

func TestQuestionStart_ResetOnPageEntry(t *testing.T) {
	s := onQuestion(1)
	if !s.QuestionStart().Equal(t0) {
		t.Errorf("QuestionStart = %v, want %v", s.QuestionStart(), t0)
	}

	later := t0.Add(5 * time.Second)
	s.RecordAnswer("60 mph", later)
	if !s.QuestionStart().Equal(t0) {
		t.Error("answering must not move QuestionStart")
	}

	s.Advance(later)
	if !s.QuestionStart().Equal(later) {
		t.Errorf("QuestionStart = %v, want %v", s.QuestionStart(), later)
	}
}
