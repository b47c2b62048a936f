package grading

import (
	"errors"

	quizModels "lms/models/quiz"

	"gorm.io/gorm"
)

// AuditRow is the per-question comparison of a stored submission against the
// current question definition
type AuditRow struct {
	QuestionID    uint        `json:"question_id"`
	Prompt        string      `json:"prompt"`
	CorrectAnswer string      `json:"correct_answer"`
	Submitted     interface{} `json:"submitted"`
	Answered      bool        `json:"answered"`
	Correct       bool        `json:"correct"`
	PointsEarned  int         `json:"points_earned"`
}

// AuditResult compares a stored grade against a recomputation from the
// retained submission. Derived on demand, never persisted.
type AuditResult struct {
	GradeID        uint       `json:"grade_id"`
	UserID         uint       `json:"user_id"`
	AssessmentType string     `json:"assessment_type"`
	AssessmentID   uint       `json:"assessment_id"`
	Rows           []AuditRow `json:"rows"`

	TotalQuestions int `json:"total_questions"`
	CorrectCount   int `json:"correct_count"`
	IncorrectCount int `json:"incorrect_count"`
	Unanswered     int `json:"unanswered"`

	Earned           int  `json:"earned"`
	MaxScore         int  `json:"max_score"`
	Percentage       int  `json:"percentage"`
	StoredEarned     int  `json:"stored_earned"`
	StoredPercentage int  `json:"stored_percentage"`
	Match            bool `json:"match"`

	// Set when the retained submission could not be parsed; the record is
	// audited as if nothing was answered rather than failing.
	SubmissionErr string `json:"submission_error,omitempty"`
}

// Audit recomputes a stored grade from its retained submission against the
// current question set. Read-only: detected drift is reported, never fixed
// here. Corrections happen only through ReconcileAll.
func (s *Service) Audit(gradeID uint) (*AuditResult, error) {
	var grade quizModels.Grade
	err := s.db.Where("id = ? AND is_deleted = ?", gradeID, false).First(&grade).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionsFor(grade.AssessmentType, grade.AssessmentID)
	if err != nil {
		return nil, err
	}

	result := BuildAudit(grade, questions)
	return &result, nil
}

// BuildAudit is the pure comparison underlying Audit and ReconcileAll
func BuildAudit(grade quizModels.Grade, questions []quizModels.Question) AuditResult {
	result := AuditResult{
		GradeID:          grade.ID,
		UserID:           grade.UserID,
		AssessmentType:   grade.AssessmentType,
		AssessmentID:     grade.AssessmentID,
		TotalQuestions:   len(questions),
		StoredEarned:     grade.Earned,
		StoredPercentage: grade.Percentage,
	}

	sub, err := ParseSubmission([]byte(grade.Answers))
	if err != nil {
		// A malformed retained submission is surfaced, not thrown
		result.SubmissionErr = err.Error()
		sub = Submission{}
	}

	for _, q := range questions {
		row := AuditRow{
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			CorrectAnswer: q.CorrectAnswer,
		}

		answer, ok := sub.Answer(q.ID)
		if ok {
			row.Answered = true
			row.Submitted = answer
		} else {
			result.Unanswered++
		}

		result.MaxScore += q.Points
		correct := CoerceAnswer(q.CorrectAnswer)
		if ok && correct >= 0 && CoerceAnswer(answer) == correct {
			row.Correct = true
			row.PointsEarned = q.Points
			result.Earned += q.Points
			result.CorrectCount++
		} else {
			result.IncorrectCount++
		}

		result.Rows = append(result.Rows, row)
	}

	result.Percentage = Percentage(result.Earned, result.MaxScore)
	result.Match = result.Percentage == grade.Percentage
	return result
}
