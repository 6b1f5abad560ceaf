package progress

import "errors"

var (
	// ErrNotEnrolled is returned when a progress mutation is attempted
	// without an enrollment for the lesson's course. Nothing is written.
	ErrNotEnrolled = errors.New("user not enrolled in this course")

	// ErrLessonNotFound is returned when a lesson id does not resolve to a
	// lesson of the requested course (broken link or stale navigation).
	ErrLessonNotFound = errors.New("lesson not found in course")
)

// PersistenceError wraps a storage failure. Callers surface it as a
// generic retryable error; it is never retried automatically.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failure: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
