package progress

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type progressRow struct {
	completed   bool
	completedAt *time.Time
}

// fakeStore is an in-memory Store for toggle tests
type fakeStore struct {
	lessonCourse map[uint]uint           // lesson id -> course id
	enrollments  map[[2]uint]bool        // (user, course)
	rows         map[[2]uint]progressRow // (user, lesson)
	failUpsert   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		lessonCourse: map[uint]uint{},
		enrollments:  map[[2]uint]bool{},
		rows:         map[[2]uint]progressRow{},
	}
}

func (f *fakeStore) CourseIDForLesson(lessonID uint) (uint, error) {
	courseID, ok := f.lessonCourse[lessonID]
	if !ok {
		return 0, ErrLessonNotFound
	}
	return courseID, nil
}

func (f *fakeStore) IsEnrolled(userID, courseID uint) (bool, error) {
	return f.enrollments[[2]uint{userID, courseID}], nil
}

func (f *fakeStore) UpsertProgress(userID, lessonID uint, completed bool, completedAt *time.Time) error {
	if f.failUpsert != nil {
		return f.failUpsert
	}
	f.rows[[2]uint{userID, lessonID}] = progressRow{completed: completed, completedAt: completedAt}
	return nil
}

func TestToggleLessonCompletion_SetsCompletionWithTimestamp(t *testing.T) {
	store := newFakeStore()
	store.lessonCourse[5] = 2
	store.enrollments[[2]uint{1, 2}] = true

	if err := ToggleLessonCompletion(store, 1, 5, 2, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := store.rows[[2]uint{1, 5}]
	if !row.completed {
		t.Fatalf("expected completed=true")
	}
	if row.completedAt == nil {
		t.Fatalf("expected completedAt set when completing")
	}
}

func TestToggleLessonCompletion_IsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.lessonCourse[5] = 2
	store.enrollments[[2]uint{1, 2}] = true

	if err := ToggleLessonCompletion(store, 1, 5, 2, true); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if err := ToggleLessonCompletion(store, 1, 5, 2, true); err != nil {
		t.Fatalf("second toggle must not fail: %v", err)
	}
	row := store.rows[[2]uint{1, 5}]
	if !row.completed || row.completedAt == nil {
		t.Fatalf("state changed across idempotent toggles: %+v", row)
	}
}

func TestToggleLessonCompletion_UncompleteClearsTimestamp(t *testing.T) {
	store := newFakeStore()
	store.lessonCourse[5] = 2
	store.enrollments[[2]uint{1, 2}] = true

	if err := ToggleLessonCompletion(store, 1, 5, 2, true); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := ToggleLessonCompletion(store, 1, 5, 2, false); err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	row := store.rows[[2]uint{1, 5}]
	if row.completed {
		t.Fatalf("expected completed=false")
	}
	if row.completedAt != nil {
		t.Fatalf("completedAt must be cleared when toggling off, got %v", row.completedAt)
	}
}

func TestToggleLessonCompletion_NotEnrolledLeavesStateUnchanged(t *testing.T) {
	store := newFakeStore()
	store.lessonCourse[5] = 2

	err := ToggleLessonCompletion(store, 1, 5, 2, true)
	if !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("progress table must be unchanged, got %d rows", len(store.rows))
	}
}

func TestToggleLessonCompletion_UnknownLesson(t *testing.T) {
	store := newFakeStore()
	store.enrollments[[2]uint{1, 2}] = true

	err := ToggleLessonCompletion(store, 1, 99, 2, true)
	if !errors.Is(err, ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestToggleLessonCompletion_CrossCourseIDRejected(t *testing.T) {
	store := newFakeStore()
	store.lessonCourse[5] = 2
	store.enrollments[[2]uint{1, 2}] = true
	store.enrollments[[2]uint{1, 3}] = true

	// lesson 5 belongs to course 2; claiming course 3 must fail even
	// though the user is enrolled in course 3
	err := ToggleLessonCompletion(store, 1, 5, 3, true)
	if !errors.Is(err, ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("progress table must be unchanged")
	}
}

func TestToggleLessonCompletion_StorageFailureIsPersistenceError(t *testing.T) {
	store := newFakeStore()
	store.lessonCourse[5] = 2
	store.enrollments[[2]uint{1, 2}] = true
	store.failUpsert = fmt.Errorf("connection refused")

	err := ToggleLessonCompletion(store, 1, 5, 2, true)
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
