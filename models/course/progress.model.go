package course

import (
	"time"

	"gorm.io/gorm"
)

// Progress is the per-(user, lesson) completion flag. A row is created
// lazily on first toggle; no row means not completed. CompletedAt is
// non-nil exactly when Completed is true.
type Progress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID    uint       `json:"lesson_id" gorm:"index;not null;uniqueIndex:idx_progress_user_lesson"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
}
