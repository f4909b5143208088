package quiz

import (
	"fmt"
	"strings"
)

// Performance tiers derived from the final score.
const (
	TierPerfect       = "perfect"
	TierGood          = "good"
	TierNeedsPractice = "needs practice"
)

// Result holds the outcome of scoring one set of answers.
type Result struct {
	Score    int
	Total    int
	Feedback []string
	Tier     string
}

// Evaluate scores answers against questions by position. When the counts
// differ the pairing is truncated to the shorter length. Multiple-choice
// answers must match the stored answer exactly. Open-ended answers count
// as correct when non-empty after trimming.
func Evaluate(questions []Question, answers []string) Result {
	total := len(questions)
	if len(answers) < total {
		total = len(answers)
	}

	result := Result{Total: total}

	for i := 0; i < total; i++ {
		question := questions[i]
		answer := answers[i]

		if isCorrect(question, answer) {
			result.Score++
			result.Feedback = append(result.Feedback, feedbackLine(i, question, answer, true))
		} else {
			result.Feedback = append(result.Feedback, feedbackLine(i, question, answer, false))
		}
	}

	result.Tier = tierFor(result.Score, result.Total)
	return result
}

func isCorrect(question Question, answer string) bool {
	if question.IsMultipleChoice() {
		return answer == question.Answer
	}
	return strings.TrimSpace(answer) != ""
}

func feedbackLine(index int, question Question, answer string, correct bool) string {
	verdict := "incorrect"
	if correct {
		verdict = "correct"
	}
	msg := fmt.Sprintf("Question %d: %s. You answered %q, expected %q.",
		index+1, verdict, answer, question.Answer)
	if question.Explanation != "" {
		msg += " " + question.Explanation
	}
	return msg
}

// tierFor buckets a score: everything right is perfect, at least half is
// good, anything less needs practice. An empty quiz needs practice.
func tierFor(score, total int) string {
	switch {
	case total > 0 && score == total:
		return TierPerfect
	case total > 0 && score*2 >= total:
		return TierGood
	default:
		return TierNeedsPractice
	}
}
