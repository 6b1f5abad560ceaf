package progress

import (
	"testing"
	"time"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

func lesson(id, sectionID uint, order, minutes int) courseModels.Lesson {
	return courseModels.Lesson{
		Model:           gorm.Model{ID: id},
		SectionID:       sectionID,
		Title:           "lesson",
		DurationMinutes: minutes,
		OrderIndex:      order,
	}
}

func section(id uint, order int, lessons ...courseModels.Lesson) courseModels.Section {
	return courseModels.Section{
		Model:      gorm.Model{ID: id},
		Title:      "section",
		OrderIndex: order,
		Lessons:    lessons,
	}
}

// twoSectionCourse builds the worked example: Section A with L1 (10 min)
// and L2 (20 min), Section B with L3 (30 min).
func twoSectionCourse() (courseModels.Course, []courseModels.Section) {
	c := courseModels.Course{Model: gorm.Model{ID: 7}, Title: "Go Basics"}
	sections := []courseModels.Section{
		section(1, 1, lesson(1, 1, 1, 10), lesson(2, 1, 2, 20)),
		section(2, 2, lesson(3, 2, 1, 30)),
	}
	return c, sections
}

func TestComputeCourseProgress_EmptyCourse(t *testing.T) {
	c := courseModels.Course{Model: gorm.Model{ID: 1}, Title: "Empty"}

	view := ComputeCourseProgress(c, nil, Completions{})
	if view.TotalLessons != 0 || view.TotalMinutes != 0 || view.CompletedCount != 0 {
		t.Fatalf("expected zeroed stats, got %+v", view)
	}
	if view.ProgressPercent != 0 {
		t.Fatalf("expected percent 0 for zero lessons, got %d", view.ProgressPercent)
	}
	if view.IsFullyComplete {
		t.Fatalf("empty course must never be fully complete")
	}
}

func TestComputeCourseProgress_WorkedExample(t *testing.T) {
	c, sections := twoSectionCourse()
	now := time.Now()
	done := Completions{1: now.Add(-time.Hour), 3: now}

	view := ComputeCourseProgress(c, sections, done)
	if view.TotalLessons != 3 {
		t.Fatalf("expected 3 lessons, got %d", view.TotalLessons)
	}
	if view.CompletedCount != 2 {
		t.Fatalf("expected 2 completed, got %d", view.CompletedCount)
	}
	if view.ProgressPercent != 67 {
		t.Fatalf("expected 67%%, got %d", view.ProgressPercent)
	}
	if view.TotalMinutes != 60 {
		t.Fatalf("expected 60 minutes, got %d", view.TotalMinutes)
	}
	if view.IsFullyComplete {
		t.Fatalf("expected not fully complete")
	}

	// per-section banding
	if len(view.Sections) != 2 {
		t.Fatalf("expected 2 section stats, got %d", len(view.Sections))
	}
	if view.Sections[0].CompletedCount != 1 || view.Sections[0].LessonCount != 2 {
		t.Fatalf("section A expected 1/2, got %d/%d", view.Sections[0].CompletedCount, view.Sections[0].LessonCount)
	}
	if view.Sections[1].CompletedCount != 1 || view.Sections[1].LessonCount != 1 {
		t.Fatalf("section B expected 1/1, got %d/%d", view.Sections[1].CompletedCount, view.Sections[1].LessonCount)
	}
}

func TestComputeCourseProgress_CompletingLastLessonYields100(t *testing.T) {
	c, sections := twoSectionCourse()
	now := time.Now()
	done := Completions{1: now.Add(-2 * time.Hour), 2: now, 3: now.Add(-time.Hour)}

	view := ComputeCourseProgress(c, sections, done)
	if view.ProgressPercent != 100 {
		t.Fatalf("expected 100%%, got %d", view.ProgressPercent)
	}
	if !view.IsFullyComplete {
		t.Fatalf("expected fully complete")
	}
}

func TestComputeCourseProgress_OrderTiesAreStable(t *testing.T) {
	c := courseModels.Course{Model: gorm.Model{ID: 2}, Title: "Tied"}
	// both lessons share order_index 1; id breaks the tie
	sections := []courseModels.Section{
		section(1, 1, lesson(9, 1, 1, 5), lesson(4, 1, 1, 5)),
	}

	view := ComputeCourseProgress(c, sections, Completions{})
	if view.Lessons[0].ID != 4 || view.Lessons[1].ID != 9 {
		t.Fatalf("expected id tiebreak order [4 9], got [%d %d]", view.Lessons[0].ID, view.Lessons[1].ID)
	}
}

func TestComputeCourseProgress_IsPureAndRepeatable(t *testing.T) {
	c, sections := twoSectionCourse()
	done := Completions{1: time.Now()}

	first := ComputeCourseProgress(c, sections, done)
	second := ComputeCourseProgress(c, sections, done)
	if first.ProgressPercent != second.ProgressPercent || first.CompletedCount != second.CompletedCount {
		t.Fatalf("repeated calls diverged: %+v vs %+v", first, second)
	}
	// input sections must not be reordered in place
	if sections[0].Lessons[0].ID != 1 {
		t.Fatalf("input mutated: %+v", sections[0].Lessons)
	}
}

func TestComputeLessonNavigation_Boundaries(t *testing.T) {
	c, sections := twoSectionCourse()
	view := ComputeCourseProgress(c, sections, Completions{})

	nav, err := ComputeLessonNavigation(view, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nav.Prev != nil {
		t.Fatalf("first lesson must have nil prev, got %+v", nav.Prev)
	}
	if nav.Next == nil || nav.Next.ID != 2 {
		t.Fatalf("expected next lesson 2, got %+v", nav.Next)
	}

	nav, err = ComputeLessonNavigation(view, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nav.Next != nil {
		t.Fatalf("last lesson must have nil next, got %+v", nav.Next)
	}
	if nav.Prev == nil || nav.Prev.ID != 2 {
		t.Fatalf("expected prev lesson 2, got %+v", nav.Prev)
	}
}

func TestComputeLessonNavigation_MidListNeighbors(t *testing.T) {
	c, sections := twoSectionCourse()
	view := ComputeCourseProgress(c, sections, Completions{})

	nav, err := ComputeLessonNavigation(view, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nav.Prev == nil || nav.Prev.ID != 1 {
		t.Fatalf("expected prev 1, got %+v", nav.Prev)
	}
	if nav.Next == nil || nav.Next.ID != 3 {
		t.Fatalf("expected next 3, got %+v", nav.Next)
	}
	if len(nav.All) != 3 {
		t.Fatalf("expected full list of 3, got %d", len(nav.All))
	}
}

func TestComputeLessonNavigation_UnknownLesson(t *testing.T) {
	c, sections := twoSectionCourse()
	view := ComputeCourseProgress(c, sections, Completions{})

	if _, err := ComputeLessonNavigation(view, 999); err != ErrLessonNotFound {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestComputeDashboardStats_Empty(t *testing.T) {
	stats := ComputeDashboardStats(nil)
	if stats.CoursesEnrolled != 0 || stats.AvgProgress != 0 || stats.LearningMinutes != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
	if len(stats.Certificates) != 0 {
		t.Fatalf("expected no certificates, got %d", len(stats.Certificates))
	}
}

func TestComputeDashboardStats_AggregateMatchesPerCourseSums(t *testing.T) {
	now := time.Now()

	c1, s1 := twoSectionCourse()
	done1 := Completions{1: now, 3: now}

	c2 := courseModels.Course{Model: gorm.Model{ID: 8}, Title: "SQL"}
	s2 := []courseModels.Section{section(10, 1, lesson(20, 10, 1, 15), lesson(21, 10, 2, 25))}
	done2 := Completions{20: now}

	enrolled := []EnrolledCourse{
		{Course: c1, Sections: s1, Completions: done1},
		{Course: c2, Sections: s2, Completions: done2},
	}
	stats := ComputeDashboardStats(enrolled)

	sumCompleted := 0
	sumLessons := 0
	for _, ec := range enrolled {
		view := ComputeCourseProgress(ec.Course, ec.Sections, ec.Completions)
		sumCompleted += view.CompletedCount
		sumLessons += view.TotalLessons
	}
	if stats.CompletedLessons != sumCompleted {
		t.Fatalf("aggregate completed %d != per-course sum %d", stats.CompletedLessons, sumCompleted)
	}
	if stats.TotalLessons != sumLessons {
		t.Fatalf("aggregate lessons %d != per-course sum %d", stats.TotalLessons, sumLessons)
	}
	if stats.CoursesEnrolled != 2 {
		t.Fatalf("expected 2 enrolled, got %d", stats.CoursesEnrolled)
	}
	// round(mean(67, 50)) = 59
	if stats.AvgProgress != 59 {
		t.Fatalf("expected avg 59, got %d", stats.AvgProgress)
	}
	// 10 + 30 + 15 completed minutes
	if stats.LearningMinutes != 55 {
		t.Fatalf("expected 55 learning minutes, got %d", stats.LearningMinutes)
	}
}

func TestComputeDashboardStats_CertificateForFullCompletionOnly(t *testing.T) {
	now := time.Now()
	latest := now.Add(time.Hour)

	c, sections := twoSectionCourse()
	done := Completions{1: now, 2: latest, 3: now.Add(-time.Hour)}

	stats := ComputeDashboardStats([]EnrolledCourse{{Course: c, Sections: sections, Completions: done}})
	if len(stats.Certificates) != 1 {
		t.Fatalf("expected 1 certificate, got %d", len(stats.Certificates))
	}
	cert := stats.Certificates[0]
	if cert.CourseID != c.ID || cert.CourseTitle != c.Title {
		t.Fatalf("unexpected certificate %+v", cert)
	}
	if cert.CompletedAt == nil || !cert.CompletedAt.Equal(latest) {
		t.Fatalf("expected completedAt %v, got %v", latest, cert.CompletedAt)
	}

	// flipping any one lesson back removes the certificate
	delete(done, 2)
	stats = ComputeDashboardStats([]EnrolledCourse{{Course: c, Sections: sections, Completions: done}})
	if len(stats.Certificates) != 0 {
		t.Fatalf("expected no certificate after flip-back, got %d", len(stats.Certificates))
	}
}

func TestComputeDashboardStats_EmptyCourseNeverCertifies(t *testing.T) {
	c := courseModels.Course{Model: gorm.Model{ID: 3}, Title: "Empty"}
	stats := ComputeDashboardStats([]EnrolledCourse{{Course: c, Sections: nil, Completions: Completions{}}})
	if len(stats.Certificates) != 0 {
		t.Fatalf("zero-lesson course must not certify")
	}
	if stats.AvgProgress != 0 {
		t.Fatalf("expected avg 0, got %d", stats.AvgProgress)
	}
}
