package quiz

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Grade is the persisted result of one scoring event. Answers retains the
// submitted answer mapping verbatim so stored scores can be re-audited after
// question edits. The composite unique index closes the check-then-write race
// on the single-attempt submission path: attempt 1 can only be inserted once
// per (user, assessment) pair.
type Grade struct {
	gorm.Model
	UserID         uint           `json:"user_id" gorm:"index;uniqueIndex:idx_grade_attempt;not null"`
	AssessmentType string         `json:"assessment_type" gorm:"uniqueIndex:idx_grade_attempt;not null"` // QUIZ, WORKSHOP
	AssessmentID   uint           `json:"assessment_id" gorm:"uniqueIndex:idx_grade_attempt;not null"`
	Earned         int            `json:"earned"`
	MaxScore       int            `json:"max_score"`
	Percentage     int            `json:"percentage"` // 0-100, rounded at computation
	AttemptNumber  int            `json:"attempt_number" gorm:"uniqueIndex:idx_grade_attempt;default:1"`
	CompletedAt    time.Time      `json:"completed_at"`
	Answers        datatypes.JSON `json:"answers"` // Retained submission, question ID -> answer
	IsDeleted      bool           `gorm:"default:false"`
}
