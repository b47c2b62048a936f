package models

import "gorm.io/gorm"

// Upload represents a stored file uploaded by a user
type Upload struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	FileName     string `json:"file_name"`   // Generated name on disk
	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
	IsDeleted    bool   `gorm:"default:false"`
}
