package grading

import (
	"testing"

	quizModels "lms/models/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&quizModels.Question{}, &quizModels.Grade{}))
	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, assessmentType string, assessmentID uint, correct ...string) []quizModels.Question {
	t.Helper()

	questions := make([]quizModels.Question, len(correct))
	for i, c := range correct {
		questions[i] = quizModels.Question{
			AssessmentType: assessmentType,
			AssessmentID:   assessmentID,
			Prompt:         "question",
			CorrectAnswer:  c,
			Points:         1,
			OrderIndex:     i,
		}
		require.NoError(t, db.Create(&questions[i]).Error)
	}
	return questions
}

func TestSubmitOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	questions := seedQuestions(t, db, quizModels.AssessmentQuiz, 3, "1", "2")
	sub := Submission{
		Key(questions[0].ID): float64(1),
		Key(questions[1].ID): float64(3),
	}

	grade, err := svc.SubmitOnce(7, quizModels.AssessmentQuiz, 3, questions, sub)
	require.NoError(t, err)
	assert.Equal(t, 1, grade.Earned)
	assert.Equal(t, 2, grade.MaxScore)
	assert.Equal(t, 50, grade.Percentage)
	assert.Equal(t, 1, grade.AttemptNumber)
	assert.NotEmpty(t, grade.Answers)
}

func TestSubmitOnceRejectsSecondAttempt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	questions := seedQuestions(t, db, quizModels.AssessmentQuiz, 3, "0")
	sub := Submission{Key(questions[0].ID): float64(0)}

	_, err := svc.SubmitOnce(7, quizModels.AssessmentQuiz, 3, questions, sub)
	require.NoError(t, err)

	_, err = svc.SubmitOnce(7, quizModels.AssessmentQuiz, 3, questions, sub)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	// Exactly one grade record exists afterwards
	var count int64
	db.Model(&quizModels.Grade{}).Where("user_id = ? AND assessment_id = ?", 7, 3).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitOnceUniqueConstraintClosesRace(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	questions := seedQuestions(t, db, quizModels.AssessmentQuiz, 1, "0")

	// Simulate losing the check-then-write race: a record appears after the
	// existence check would have passed. The insert itself must be rejected.
	_, err := svc.SubmitOnce(5, quizModels.AssessmentQuiz, 1, questions, Submission{})
	require.NoError(t, err)

	dup := quizModels.Grade{
		UserID:         5,
		AssessmentType: quizModels.AssessmentQuiz,
		AssessmentID:   1,
		AttemptNumber:  1,
	}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err))
}

func TestSubmitOnceSeparateUsersAndAssessments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	quizQuestions := seedQuestions(t, db, quizModels.AssessmentQuiz, 1, "0")
	workshopQuestions := seedQuestions(t, db, quizModels.AssessmentWorkshop, 1, "A")

	_, err := svc.SubmitOnce(1, quizModels.AssessmentQuiz, 1, quizQuestions, Submission{})
	require.NoError(t, err)

	// Same user, different assessment type with the same ID
	_, err = svc.SubmitOnce(1, quizModels.AssessmentWorkshop, 1, workshopQuestions, Submission{})
	require.NoError(t, err)

	// Different user, same assessment
	_, err = svc.SubmitOnce(2, quizModels.AssessmentQuiz, 1, quizQuestions, Submission{})
	require.NoError(t, err)
}

func TestSubmitOnceNoQuestions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.SubmitOnce(1, quizModels.AssessmentQuiz, 99, nil, Submission{})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestRecordAttemptIncrementsAttemptNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	first, err := svc.RecordAttempt(4, quizModels.AssessmentWorkshop, 2, 3, 5, 60, Submission{"1": "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.AttemptNumber)

	second, err := svc.RecordAttempt(4, quizModels.AssessmentWorkshop, 2, 4, 5, 80, Submission{"1": "B"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.AttemptNumber)

	third, err := svc.RecordAttempt(4, quizModels.AssessmentWorkshop, 2, 5, 5, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, third.AttemptNumber)
}

func TestRecordAttemptDoesNotBlockAfterSubmitOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	questions := seedQuestions(t, db, quizModels.AssessmentQuiz, 8, "1")
	_, err := svc.SubmitOnce(9, quizModels.AssessmentQuiz, 8, questions, Submission{})
	require.NoError(t, err)

	// The instructor path numbers past the learner's attempt
	grade, err := svc.RecordAttempt(9, quizModels.AssessmentQuiz, 8, 1, 1, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, grade.AttemptNumber)
}

func TestQuestionsForOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	require.NoError(t, db.Create(&quizModels.Question{
		AssessmentType: quizModels.AssessmentQuiz, AssessmentID: 1,
		CorrectAnswer: "1", Points: 1, OrderIndex: 2,
	}).Error)
	require.NoError(t, db.Create(&quizModels.Question{
		AssessmentType: quizModels.AssessmentQuiz, AssessmentID: 1,
		CorrectAnswer: "0", Points: 1, OrderIndex: 1,
	}).Error)

	questions, err := svc.QuestionsFor(quizModels.AssessmentQuiz, 1)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].OrderIndex)
	assert.Equal(t, 2, questions[1].OrderIndex)
}
