package grading

import (
	"testing"

	quizModels "lms/models/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAuditMatchesUntouchedGrade(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	questions := seedQuestions(t, db, quizModels.AssessmentQuiz, 3, "1", "2")
	sub := Submission{
		Key(questions[0].ID): float64(1),
		Key(questions[1].ID): float64(3),
	}

	grade, err := svc.SubmitOnce(7, quizModels.AssessmentQuiz, 3, questions, sub)
	require.NoError(t, err)

	result, err := svc.Audit(grade.ID)
	require.NoError(t, err)

	assert.True(t, result.Match)
	assert.Equal(t, 50, result.Percentage)
	assert.Equal(t, 50, result.StoredPercentage)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 1, result.IncorrectCount)
	assert.Equal(t, 0, result.Unanswered)
	assert.Empty(t, result.SubmissionErr)
	require.Len(t, result.Rows, 2)
	assert.True(t, result.Rows[0].Correct)
	assert.Equal(t, 1, result.Rows[0].PointsEarned)
	assert.False(t, result.Rows[1].Correct)
}

func TestAuditDetectsEditedCorrectAnswer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	questions := seedQuestions(t, db, quizModels.AssessmentQuiz, 3, "1", "2")
	sub := Submission{
		Key(questions[0].ID): float64(1),
		Key(questions[1].ID): float64(3),
	}

	grade, err := svc.SubmitOnce(7, quizModels.AssessmentQuiz, 3, questions, sub)
	require.NoError(t, err)

	// An edit to question 2's correct answer makes the stored 50% stale
	require.NoError(t, db.Model(&quizModels.Question{}).
		Where("id = ?", questions[1].ID).
		Update("correct_answer", "3").Error)

	result, err := svc.Audit(grade.ID)
	require.NoError(t, err)

	assert.False(t, result.Match)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, 50, result.StoredPercentage)

	// Audit is read-only: the stored record is untouched
	var stored quizModels.Grade
	require.NoError(t, db.First(&stored, grade.ID).Error)
	assert.Equal(t, 50, stored.Percentage)
}

func TestAuditTreatsMalformedSubmissionAsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	seedQuestions(t, db, quizModels.AssessmentQuiz, 1, "0")
	grade := quizModels.Grade{
		UserID:         1,
		AssessmentType: quizModels.AssessmentQuiz,
		AssessmentID:   1,
		Earned:         1,
		MaxScore:       1,
		Percentage:     100,
		AttemptNumber:  1,
		Answers:        []byte("{broken"),
	}
	require.NoError(t, db.Create(&grade).Error)

	result, err := svc.Audit(grade.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, result.SubmissionErr)
	assert.Equal(t, 0, result.Earned)
	assert.Equal(t, 1, result.Unanswered)
	assert.False(t, result.Match)
}

func TestBuildAuditMalformedCorrectAnswerNeverCorrect(t *testing.T) {
	questions := []quizModels.Question{{
		Model:         gorm.Model{ID: 1},
		CorrectAnswer: "garbage",
		Points:        5,
	}}
	grade := quizModels.Grade{
		Earned:     5,
		MaxScore:   5,
		Percentage: 100,
		Answers:    []byte(`{"1": true}`),
	}

	result := BuildAudit(grade, questions)

	require.Len(t, result.Rows, 1)
	assert.True(t, result.Rows[0].Answered)
	assert.False(t, result.Rows[0].Correct)
	assert.Equal(t, 0, result.Earned)
	assert.False(t, result.Match)
}

func TestAuditGradeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.Audit(99)
	assert.ErrorIs(t, err, ErrGradeNotFound)
}

func TestReconcileAllCorrectsDriftedGrades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	questions := seedQuestions(t, db, quizModels.AssessmentQuiz, 3, "1", "2")
	sub := Submission{
		Key(questions[0].ID): float64(1),
		Key(questions[1].ID): float64(3),
	}

	grade, err := svc.SubmitOnce(7, quizModels.AssessmentQuiz, 3, questions, sub)
	require.NoError(t, err)

	// Drift: the second question's correct answer now matches the submission
	require.NoError(t, db.Model(&quizModels.Question{}).
		Where("id = ?", questions[1].ID).
		Update("correct_answer", "3").Error)

	report, err := svc.ReconcileAll()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inspected)
	assert.Equal(t, 1, report.Corrected)
	assert.Equal(t, 0, report.Unchanged)
	assert.Equal(t, 0, report.Errored)

	var stored quizModels.Grade
	require.NoError(t, db.First(&stored, grade.ID).Error)
	assert.Equal(t, 2, stored.Earned)
	assert.Equal(t, 100, stored.Percentage)

	// Second pass is a no-op
	report, err = svc.ReconcileAll()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inspected)
	assert.Equal(t, 0, report.Corrected)
	assert.Equal(t, 1, report.Unchanged)
	assert.Equal(t, 0, report.Errored)
}

func TestReconcileAllSurvivesBadRecords(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	questions := seedQuestions(t, db, quizModels.AssessmentQuiz, 1, "0")

	// Healthy record
	_, err := svc.SubmitOnce(1, quizModels.AssessmentQuiz, 1, questions, Submission{
		Key(questions[0].ID): float64(0),
	})
	require.NoError(t, err)

	// Unparseable retained submission
	require.NoError(t, db.Create(&quizModels.Grade{
		UserID: 2, AssessmentType: quizModels.AssessmentQuiz, AssessmentID: 1,
		AttemptNumber: 1, Answers: []byte("not json"),
	}).Error)

	// Assessment with no question set
	require.NoError(t, db.Create(&quizModels.Grade{
		UserID: 3, AssessmentType: quizModels.AssessmentQuiz, AssessmentID: 42,
		AttemptNumber: 1, Answers: []byte("{}"),
	}).Error)

	report, err := svc.ReconcileAll()
	require.NoError(t, err)
	assert.Equal(t, 3, report.Inspected)
	assert.Equal(t, 2, report.Errored)
	assert.Equal(t, 1, report.Unchanged)
	assert.Equal(t, 0, report.Corrected)
	assert.Equal(t, report.Inspected, report.Corrected+report.Unchanged+report.Errored)
}

func TestReconcileAllSkipsGradesWithoutRetainedSubmission(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	// Instructor-entered grade with no submission attached
	_, err := svc.RecordAttempt(4, quizModels.AssessmentWorkshop, 2, 3, 5, 60, nil)
	require.NoError(t, err)

	report, err := svc.ReconcileAll()
	require.NoError(t, err)
	assert.Equal(t, 0, report.Inspected)
}
