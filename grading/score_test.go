package grading

import (
	"testing"

	quizModels "lms/models/quiz"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func question(id uint, correct string, points int) quizModels.Question {
	return quizModels.Question{
		Model:         gorm.Model{ID: id},
		CorrectAnswer: correct,
		Points:        points,
	}
}

func TestScore(t *testing.T) {
	questions := []quizModels.Question{
		question(1, "1", 1),
		question(2, "2", 1),
	}
	sub := Submission{"1": float64(1), "2": float64(3)}

	earned, maxScore, percentage := Score(questions, sub)
	assert.Equal(t, 1, earned)
	assert.Equal(t, 2, maxScore)
	assert.Equal(t, 50, percentage)
}

func TestScoreEmptyQuestionSet(t *testing.T) {
	earned, maxScore, percentage := Score(nil, Submission{"1": 0})
	assert.Equal(t, 0, earned)
	assert.Equal(t, 0, maxScore)
	assert.Equal(t, 0, percentage)
}

func TestScoreUnansweredQuestionsAreIncorrect(t *testing.T) {
	questions := []quizModels.Question{
		question(1, "0", 3),
		question(2, "1", 2),
	}
	// Question 2 unanswered
	sub := Submission{"1": float64(0)}

	earned, maxScore, percentage := Score(questions, sub)
	assert.Equal(t, 3, earned)
	assert.Equal(t, 5, maxScore)
	assert.Equal(t, 60, percentage)
}

func TestScoreLetterAndIndexAreInterchangeable(t *testing.T) {
	// Correct answer "B" and a submitted index 1 must score correct
	questions := []quizModels.Question{question(1, "B", 1)}

	earned, _, _ := Score(questions, Submission{"1": float64(1)})
	assert.Equal(t, 1, earned)

	earned, _, _ = Score(questions, Submission{"1": "b"})
	assert.Equal(t, 1, earned)
}

func TestScoreMalformedAnswerNeverMatches(t *testing.T) {
	questions := []quizModels.Question{question(1, "A", 1)}

	for _, bad := range []interface{}{"not-a-letter", "", nil, []interface{}{1}, map[string]interface{}{}} {
		earned, _, _ := Score(questions, Submission{"1": bad})
		assert.Equal(t, 0, earned, "answer %v must not score", bad)
	}
}

func TestScoreMalformedCorrectAnswerNeverScores(t *testing.T) {
	// Both sides coercing to the sentinel must not count as a match
	questions := []quizModels.Question{question(1, "garbage", 5)}

	for _, bad := range []interface{}{true, "garbage", "", []interface{}{1}} {
		earned, maxScore, percentage := Score(questions, Submission{"1": bad})
		assert.Equal(t, 0, earned, "answer %v must not score against an unusable correct answer", bad)
		assert.Equal(t, 5, maxScore)
		assert.Equal(t, 0, percentage)
	}

	// A well-formed answer cannot match it either
	earned, _, _ := Score(questions, Submission{"1": float64(0)})
	assert.Equal(t, 0, earned)
}

func TestScorePercentageRounding(t *testing.T) {
	// 2 of 3 points = 66.67%, rounds to 67 (not truncated to 66)
	questions := []quizModels.Question{
		question(1, "0", 2),
		question(2, "1", 1),
	}
	sub := Submission{"1": float64(0)}

	_, _, percentage := Score(questions, sub)
	assert.Equal(t, 67, percentage)
}

func TestCoerceAnswer(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int
	}{
		{"A", 0},
		{"b", 1},
		{"D", 3},
		{" C ", 2},
		{"2", 2},
		{float64(3), 3},
		{2, 2},
		{nil, -1},
		{"", -1},
		{"AB", -1},
		{"-1", -1},
		{-5, -1},
		{true, -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CoerceAnswer(tc.in), "CoerceAnswer(%v)", tc.in)
	}
}

func TestParseSubmission(t *testing.T) {
	sub, err := ParseSubmission([]byte(`{"1": 2, "4": "B"}`))
	assert.NoError(t, err)
	assert.Len(t, sub, 2)

	answer, ok := sub.Answer(4)
	assert.True(t, ok)
	assert.Equal(t, "B", answer)

	_, ok = sub.Answer(9)
	assert.False(t, ok)

	// Structured value passes through
	sub, err = ParseSubmission(map[string]interface{}{"7": 1})
	assert.NoError(t, err)
	assert.Len(t, sub, 1)

	// Text-encoded form
	sub, err = ParseSubmission(`{"3": 0}`)
	assert.NoError(t, err)
	assert.Len(t, sub, 1)
}

func TestParseSubmissionMalformed(t *testing.T) {
	for _, bad := range []interface{}{nil, "not json", []byte("[1,2,3]"), []byte(""), 42} {
		sub, err := ParseSubmission(bad)
		assert.ErrorIs(t, err, ErrBadSubmission, "input %v", bad)
		assert.Empty(t, sub)
	}
}
