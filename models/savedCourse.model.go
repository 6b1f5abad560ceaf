package models

import "gorm.io/gorm"

// SavedCourse bookmarks a course for a user, independent of enrollment
type SavedCourse struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_saved_user_course"`
	CourseID  uint `json:"course_id" gorm:"index;not null;uniqueIndex:idx_saved_user_course"`
	IsDeleted bool `gorm:"default:false"`
}
