package quiz

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question belongs to a quiz or workshop via the assessment discriminator.
// CorrectAnswer holds either a letter (workshop answer sheets, "A".."D") or
// a zero-based option index ("2"); both forms compare equal after coercion.
type Question struct {
	gorm.Model
	AssessmentType string         `json:"assessment_type" gorm:"index:idx_question_assessment;not null"` // QUIZ, WORKSHOP
	AssessmentID   uint           `json:"assessment_id" gorm:"index:idx_question_assessment;not null"`
	Prompt         string         `json:"prompt" gorm:"type:text"`
	Options        datatypes.JSON `json:"options"` // JSON array of option texts
	CorrectAnswer  string         `json:"correct_answer"`
	Points         int            `json:"points" gorm:"default:1"`
	OrderIndex     int            `json:"order_index" gorm:"default:0"`
	IsDeleted      bool           `gorm:"default:false"`
}
