package quiz

import "gorm.io/gorm"

// Assessment types a grade record can be attached to
const (
	AssessmentQuiz     = "QUIZ"
	AssessmentWorkshop = "WORKSHOP"
)

// Quiz represents a multiple choice quiz within a course
type Quiz struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// Workshop represents a practical assessment with lettered answer sheets
type Workshop struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
