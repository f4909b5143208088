// Package quiz parses generated quiz text into questions and scores answers.
package quiz

// Question kinds as they appear in generated quiz text.
const (
	KindMultipleChoice = "multiple-choice"
	KindOpenEnded      = "open-ended"
)

// Question is one quiz question extracted from generated text.
type Question struct {
	Text        string
	Kind        string
	Options     []string
	Answer      string
	Explanation string
}

// IsMultipleChoice reports whether the question carries labelled options.
// Any other kind, including ones the generator invents, is treated as
// open-ended.
func (q Question) IsMultipleChoice() bool {
	return q.Kind == KindMultipleChoice
}
