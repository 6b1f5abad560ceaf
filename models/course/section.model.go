package course

import "gorm.io/gorm"

// Section is an ordered grouping of lessons within a course
type Section struct {
	gorm.Model
	CourseID   uint     `json:"course_id" gorm:"index;not null"`
	Title      string   `json:"title"`
	OrderIndex int      `json:"order_index" gorm:"default:0"` // Section order in course
	Lessons    []Lesson `json:"lessons,omitempty" gorm:"foreignKey:SectionID"`
	IsDeleted  bool     `gorm:"default:false"`
}
