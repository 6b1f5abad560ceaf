package progress

import (
	"errors"
	"time"

	courseModels "lms/models/course"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore backs the engine with the application database
type GormStore struct {
	Db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{Db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) CourseIDForLesson(lessonID uint) (uint, error) {
	var lesson courseModels.Lesson
	err := s.Db.Select("id, course_id").
		Where("id = ? AND is_deleted = ?", lessonID, false).
		First(&lesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrLessonNotFound
	}
	if err != nil {
		return 0, err
	}
	return lesson.CourseID, nil
}

func (s *GormStore) IsEnrolled(userID, courseID uint) (bool, error) {
	var count int64
	err := s.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertProgress is a single conditional write: concurrent toggles for the
// same (user, lesson) pair resolve last-write-wins at the storage layer.
func (s *GormStore) UpsertProgress(userID, lessonID uint, completed bool, completedAt *time.Time) error {
	row := courseModels.Progress{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   completed,
		CompletedAt: completedAt,
	}
	return s.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
	}).Create(&row).Error
}

// CourseSections loads a course's sections with their lessons, ordered by
// order_index with id as tiebreaker, ready for ComputeCourseProgress.
func (s *GormStore) CourseSections(courseID uint) ([]courseModels.Section, error) {
	var sections []courseModels.Section
	err := s.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc, id asc").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc, id asc")
		}).
		Find(&sections).Error
	return sections, err
}

// Completions loads the user's completed lessons restricted to one course
func (s *GormStore) Completions(userID, courseID uint) (Completions, error) {
	var rows []courseModels.Progress
	err := s.Db.
		Joins("JOIN lessons ON lessons.id = progresses.lesson_id").
		Where("progresses.user_id = ? AND progresses.completed = ? AND lessons.course_id = ? AND lessons.is_deleted = ?",
			userID, true, courseID, false).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	done := make(Completions, len(rows))
	for _, row := range rows {
		if row.CompletedAt != nil {
			done[row.LessonID] = *row.CompletedAt
		} else {
			// completed without a timestamp should not happen; keep the
			// lesson counted and leave the certificate date resolution to
			// the engine
			done[row.LessonID] = time.Time{}
		}
	}
	return done, nil
}

// EnrolledCourses assembles the dashboard input for every live enrollment
func (s *GormStore) EnrolledCourses(userID uint) ([]EnrolledCourse, []courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := s.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, nil, err
	}

	enrolled := make([]EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var c courseModels.Course
		if err := s.Db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // course removed after enrollment
			}
			return nil, nil, err
		}

		sections, err := s.CourseSections(c.ID)
		if err != nil {
			return nil, nil, err
		}
		done, err := s.Completions(userID, c.ID)
		if err != nil {
			return nil, nil, err
		}

		enrolled = append(enrolled, EnrolledCourse{Course: c, Sections: sections, Completions: done})
	}
	return enrolled, enrollments, nil
}
