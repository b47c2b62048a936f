package survey

import "gorm.io/gorm"

// Survey represents a satisfaction survey attached to a course
type Survey struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	IsOpen    bool   `json:"is_open" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`
}

// SurveyResponse is one user's satisfaction rating for a survey
type SurveyResponse struct {
	gorm.Model
	SurveyID      uint   `json:"survey_id" gorm:"index;not null"`
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	ContentRating int    `json:"content_rating"` // 1-5
	TrainerRating int    `json:"trainer_rating"` // 1-5
	OverallRating int    `json:"overall_rating"` // 1-5
	Comment       string `json:"comment" gorm:"type:text"`
	IsDeleted     bool   `gorm:"default:false"`
}
