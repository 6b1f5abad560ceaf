package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course. The progress columns
// are denormalized snapshots refreshed by the reconciliation scheduler;
// the Progress rows remain the source of truth.
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_enroll_user_course"`
	CourseID         uint       `json:"course_id" gorm:"index;not null;uniqueIndex:idx_enroll_user_course"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	Status           string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress         float64    `json:"progress" gorm:"default:0"`        // Completion percentage (0-100)
	CompletedLessons int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	CompletedAt      *time.Time `json:"completed_at"`
	IsDeleted        bool       `gorm:"default:false"`
}
