package quiz

// OptionsPerQuestion is the number of answer options every question carries.
const OptionsPerQuestion = 4

// Question is a single multiple-choice question.
type Question struct {
	// Text is the prompt shown to the learner.
	Text string `json:"question" yaml:"question"`

	// Options holds exactly four answer options, in display order.
	Options []string `json:"options" yaml:"options"`

	// CorrectAnswer is the text of the correct option.
	CorrectAnswer string `json:"correct_answer" yaml:"correct_answer"`
}

// ExampleProblem is a worked example shown when the learner asks for help.
// Examples are index-aligned with questions: Examples[i] illustrates Questions[i].
type ExampleProblem struct {
	Question string `json:"question" yaml:"question"`
	Solution string `json:"solution" yaml:"solution"`
}

// Bank is an immutable set of questions with their aligned worked examples.
type Bank struct {
	Title     string           `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question       `json:"questions" yaml:"questions"`
	Examples  []ExampleProblem `json:"examples" yaml:"examples"`
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.Questions)
}

// Question returns the question at index i, or nil if out of range.
func (b *Bank) Question(i int) *Question {
	if i < 0 || i >= len(b.Questions) {
		return nil
	}
	return &b.Questions[i]
}

// Example returns the worked example aligned with question i, or nil if out of range.
func (b *Bank) Example(i int) *ExampleProblem {
	if i < 0 || i >= len(b.Examples) {
		return nil
	}
	return &b.Examples[i]
}

// HasOption reports whether option is one of the question's options.
func (q *Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// IsCorrect reports whether answer matches the correct option.
func (q *Question) IsCorrect(answer string) bool {
	return answer != "" && answer == q.CorrectAnswer
}

// Score counts how many answers match their question's correct answer.
// answers is index-aligned with the bank's questions; extra entries are ignored.
func (b *Bank) Score(answers []string) int {
	correct := 0
	for i, a := range answers {
		q := b.Question(i)
		if q != nil && q.IsCorrect(a) {
			correct++
		}
	}
	return correct
}
