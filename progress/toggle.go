package progress

import (
	"errors"
	"time"
)

// Store is the persistence contract the toggle needs. The GORM
// implementation lives in store.go; tests use an in-memory fake.
type Store interface {
	// CourseIDForLesson resolves the course a lesson belongs to, returning
	// ErrLessonNotFound for unknown or deleted lessons.
	CourseIDForLesson(lessonID uint) (uint, error)
	// IsEnrolled reports whether an enrollment row exists for the pair
	IsEnrolled(userID, courseID uint) (bool, error)
	// UpsertProgress atomically writes the (user, lesson) completion flag
	// as a single conditional write, never read-modify-write.
	UpsertProgress(userID, lessonID uint, completed bool, completedAt *time.Time) error
}

// ToggleLessonCompletion sets the completion flag of one lesson for one
// user. The lesson's course is re-derived server-side from the lesson row;
// the caller-supplied courseID is only cross-checked, closing the
// cross-course id injection gap. The upsert is idempotent: repeating the
// same desired state is not an error.
func ToggleLessonCompletion(store Store, userID, lessonID, courseID uint, desired bool) error {
	actualCourseID, err := store.CourseIDForLesson(lessonID)
	if err != nil {
		if errors.Is(err, ErrLessonNotFound) {
			return ErrLessonNotFound
		}
		return &PersistenceError{Err: err}
	}
	if courseID != 0 && courseID != actualCourseID {
		return ErrLessonNotFound
	}

	enrolled, err := store.IsEnrolled(userID, actualCourseID)
	if err != nil {
		return &PersistenceError{Err: err}
	}
	if !enrolled {
		return ErrNotEnrolled
	}

	var completedAt *time.Time
	if desired {
		now := time.Now()
		completedAt = &now
	}

	if err := store.UpsertProgress(userID, lessonID, desired, completedAt); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}
