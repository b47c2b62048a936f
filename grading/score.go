package grading

import (
	"math"

	quizModels "lms/models/quiz"
)

// Score computes the earned score, maximum score and rounded percentage for
// a submission against a question set. Pure function, no side effects.
func Score(questions []quizModels.Question, sub Submission) (earned, maxScore, percentage int) {
	for _, q := range questions {
		maxScore += q.Points

		answer, ok := sub.Answer(q.ID)
		if !ok {
			// Unanswered questions score as incorrect
			continue
		}
		correct := CoerceAnswer(q.CorrectAnswer)
		if correct < 0 {
			// A question whose correct answer does not coerce can never be
			// matched; otherwise a malformed submitted answer would score
			// sentinel-equals-sentinel.
			continue
		}
		if CoerceAnswer(answer) == correct {
			earned += q.Points
		}
	}

	percentage = Percentage(earned, maxScore)
	return earned, maxScore, percentage
}

// Percentage rounds earned/max to the nearest whole percent. An empty
// question set yields 0, not a division error. Rounding happens here and
// nowhere else; callers must not round again.
func Percentage(earned, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(earned) / float64(maxScore) * 100))
}
