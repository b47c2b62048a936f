package course

import "gorm.io/gorm"

// Activity represents a content item within a course
type Activity struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ActivityType string `json:"activity_type" gorm:"default:'TEXT'"` // TEXT, VIDEO, FILE
	TextContent  string `json:"text_content" gorm:"type:text"`       // For TEXT type
	VideoURL     string `json:"video_url"`                           // For VIDEO type
	FileURL      string `json:"file_url"`                            // For FILE type
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
