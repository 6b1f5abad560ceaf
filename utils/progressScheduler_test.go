package utils

import (
	"testing"
	"time"

	courseModels "lms/models/course"
	"lms/progress"
)

func completedView(lessons int) progress.CourseView {
	return progress.CourseView{
		TotalLessons:    lessons,
		CompletedCount:  lessons,
		ProgressPercent: 100,
		IsFullyComplete: true,
	}
}

func TestSnapshotStatus(t *testing.T) {
	if got := snapshotStatus(progress.CourseView{TotalLessons: 3}); got != "ENROLLED" {
		t.Fatalf("no completions expected ENROLLED, got %s", got)
	}
	if got := snapshotStatus(progress.CourseView{TotalLessons: 3, CompletedCount: 1, ProgressPercent: 33}); got != "IN_PROGRESS" {
		t.Fatalf("partial expected IN_PROGRESS, got %s", got)
	}
	if got := snapshotStatus(completedView(3)); got != "COMPLETED" {
		t.Fatalf("full expected COMPLETED, got %s", got)
	}
}

func TestSnapshotDirty_CleanSnapshotIsSkipped(t *testing.T) {
	now := time.Now()
	e := courseModels.Enrollment{
		Status:           "COMPLETED",
		Progress:         100,
		CompletedLessons: 3,
		TotalLessons:     3,
		CompletedAt:      &now,
	}
	if snapshotDirty(e, completedView(3), "COMPLETED") {
		t.Fatalf("matching snapshot must not be dirty")
	}
}

func TestSnapshotDirty_BackfillsMissingCompletedAt(t *testing.T) {
	// COMPLETED snapshot written without a timestamp must be reconciled
	// even though the counters already match
	e := courseModels.Enrollment{
		Status:           "COMPLETED",
		Progress:         100,
		CompletedLessons: 3,
		TotalLessons:     3,
		CompletedAt:      nil,
	}
	if !snapshotDirty(e, completedView(3), "COMPLETED") {
		t.Fatalf("nil CompletedAt on a COMPLETED snapshot must be dirty")
	}
}

func TestSnapshotDirty_CounterDrift(t *testing.T) {
	now := time.Now()
	e := courseModels.Enrollment{
		Status:           "IN_PROGRESS",
		Progress:         33,
		CompletedLessons: 1,
		TotalLessons:     3,
		CompletedAt:      &now,
	}
	view := progress.CourseView{TotalLessons: 3, CompletedCount: 2, ProgressPercent: 67}
	if !snapshotDirty(e, view, "IN_PROGRESS") {
		t.Fatalf("counter drift must be dirty")
	}
}
