package grading

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	quizModels "lms/models/quiz"

	"gorm.io/gorm"
)

// Sentinel errors, mapped by controllers to distinct HTTP statuses
var (
	ErrAlreadySubmitted = errors.New("assessment already submitted")
	ErrGradeNotFound    = errors.New("grade record not found")
	ErrNoQuestions      = errors.New("assessment has no questions")
)

// Service owns grade computation, attempt gating and audit over the store
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// QuestionsFor returns the ordered question set of an assessment
func (s *Service) QuestionsFor(assessmentType string, assessmentID uint) ([]quizModels.Question, error) {
	var questions []quizModels.Question
	err := s.db.Where("assessment_type = ? AND assessment_id = ? AND is_deleted = ?",
		assessmentType, assessmentID, false).
		Order("order_index asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// SubmitOnce scores and persists a learner self-submission. At most one
// attempt is permitted per (user, assessment) pair: a second submission is
// rejected with ErrAlreadySubmitted and never overwrites the first. The
// application-level check is backed by the grades table's unique index, so
// two concurrent submissions cannot both slip through.
func (s *Service) SubmitOnce(userID uint, assessmentType string, assessmentID uint, questions []quizModels.Question, sub Submission) (*quizModels.Grade, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	// Check for a prior attempt
	var existing quizModels.Grade
	err := s.db.Where("user_id = ? AND assessment_type = ? AND assessment_id = ? AND is_deleted = ?",
		userID, assessmentType, assessmentID, false).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadySubmitted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	earned, maxScore, percentage := Score(questions, sub)

	answers, err := json.Marshal(sub)
	if err != nil {
		return nil, err
	}

	grade := quizModels.Grade{
		UserID:         userID,
		AssessmentType: assessmentType,
		AssessmentID:   assessmentID,
		Earned:         earned,
		MaxScore:       maxScore,
		Percentage:     percentage,
		AttemptNumber:  1,
		CompletedAt:    time.Now(),
		Answers:        answers,
	}

	if err := s.db.Create(&grade).Error; err != nil {
		if isDuplicateKey(err) {
			// Lost the race against a concurrent submission
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}

	return &grade, nil
}

// RecordAttempt persists an instructor-entered grade. Unlike SubmitOnce,
// repeat attempts are allowed and numbered max(prior)+1, starting at 1.
func (s *Service) RecordAttempt(userID uint, assessmentType string, assessmentID uint, earned, maxScore, percentage int, sub Submission) (*quizModels.Grade, error) {
	var lastAttempt int
	err := s.db.Model(&quizModels.Grade{}).
		Where("user_id = ? AND assessment_type = ? AND assessment_id = ? AND is_deleted = ?",
			userID, assessmentType, assessmentID, false).
		Select("COALESCE(MAX(attempt_number), 0)").
		Scan(&lastAttempt).Error
	if err != nil {
		return nil, err
	}

	var answers []byte
	if sub != nil {
		if answers, err = json.Marshal(sub); err != nil {
			return nil, err
		}
	}

	grade := quizModels.Grade{
		UserID:         userID,
		AssessmentType: assessmentType,
		AssessmentID:   assessmentID,
		Earned:         earned,
		MaxScore:       maxScore,
		Percentage:     percentage,
		AttemptNumber:  lastAttempt + 1,
		CompletedAt:    time.Now(),
		Answers:        answers,
	}

	if err := s.db.Create(&grade).Error; err != nil {
		return nil, err
	}

	return &grade, nil
}

// isDuplicateKey reports whether err is a unique constraint violation.
// TranslateError covers postgres and mysql; the sqlite driver still surfaces
// its own message, hence the string fallback.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
