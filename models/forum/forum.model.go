package forum

import "gorm.io/gorm"

// Thread represents a discussion thread, optionally scoped to a course
type Thread struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index"`
	AuthorID  uint   `json:"author_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Body      string `json:"body" gorm:"type:text"`
	IsLocked  bool   `json:"is_locked" gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}

// Post represents a reply within a thread
type Post struct {
	gorm.Model
	ThreadID  uint   `json:"thread_id" gorm:"index;not null"`
	AuthorID  uint   `json:"author_id" gorm:"index;not null"`
	Body      string `json:"body" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}
