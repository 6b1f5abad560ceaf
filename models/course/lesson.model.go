package course

import "gorm.io/gorm"

// Lesson belongs to exactly one section. CourseID is denormalized so the
// enrollment gate can resolve a lesson's course in a single lookup.
type Lesson struct {
	gorm.Model
	SectionID       uint   `json:"section_id" gorm:"index;not null"`
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"` // Order within section
	VideoURL        string `json:"video_url"`
	TextContent     string `json:"text_content" gorm:"type:text"`
	IsDeleted       bool   `gorm:"default:false"`
}
