package progress

import (
	"math"
	"sort"
	"time"

	courseModels "lms/models/course"
)

// Completions maps a lesson id to the time it was marked completed.
// Membership alone decides the completed flag; the timestamp feeds
// certificate dates.
type Completions map[uint]time.Time

// LessonView is one lesson of the flattened course order, annotated with
// the user's completion state.
type LessonView struct {
	ID              uint   `json:"id"`
	SectionID       uint   `json:"section_id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	OrderIndex      int    `json:"order_index"`
	VideoURL        string `json:"video_url"`
	Completed       bool   `json:"completed"`
}

// SectionStat carries per-section completion counts for display banding
type SectionStat struct {
	SectionID      uint   `json:"section_id"`
	Title          string `json:"title"`
	OrderIndex     int    `json:"order_index"`
	LessonCount    int    `json:"lesson_count"`
	CompletedCount int    `json:"completed_count"`
}

// CourseView is the computed completion state of one course for one user
type CourseView struct {
	CourseID        uint          `json:"course_id"`
	CourseTitle     string        `json:"course_title"`
	Lessons         []LessonView  `json:"lessons"`
	Sections        []SectionStat `json:"sections"`
	TotalLessons    int           `json:"total_lessons"`
	TotalMinutes    int           `json:"total_minutes"`
	CompletedCount  int           `json:"completed_count"`
	ProgressPercent int           `json:"progress_percent"`
	IsFullyComplete bool          `json:"is_fully_complete"`
}

// Navigation holds the neighbors of the current lesson in course order.
// Prev/Next are nil at the boundaries.
type Navigation struct {
	Prev *LessonView  `json:"prev"`
	Next *LessonView  `json:"next"`
	All  []LessonView `json:"all"`
}

// Certificate is a derived fact, not a stored entity: the user completed
// 100% of the course. CompletedAt is the latest lesson completion time,
// nil only on inconsistent data.
type Certificate struct {
	CourseID    uint       `json:"course_id"`
	CourseTitle string     `json:"course_title"`
	CompletedAt *time.Time `json:"completed_at"`
}

// DashboardStats aggregates completion state across all enrolled courses
type DashboardStats struct {
	CoursesEnrolled  int           `json:"courses_enrolled"`
	TotalLessons     int           `json:"total_lessons"`
	CompletedLessons int           `json:"completed_lessons"`
	AvgProgress      int           `json:"avg_progress"`
	LearningMinutes  int           `json:"learning_minutes"`
	Certificates     []Certificate `json:"certificates"`
}

// EnrolledCourse is the fetched input for one enrollment: the course, its
// sections with lessons, and the user's completions under it.
type EnrolledCourse struct {
	Course      courseModels.Course
	Sections    []courseModels.Section
	Completions Completions
}

// ComputeCourseProgress derives a user's completion view of a course from
// its sections/lessons and the set of completed lesson ids. Pure function;
// a course with zero sections or lessons yields zeroed statistics.
func ComputeCourseProgress(course courseModels.Course, sections []courseModels.Section, done Completions) CourseView {
	view := CourseView{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Lessons:     []LessonView{},
		Sections:    []SectionStat{},
	}

	ordered := make([]courseModels.Section, len(sections))
	copy(ordered, sections)
	sortSections(ordered)

	for _, section := range ordered {
		lessons := make([]courseModels.Lesson, len(section.Lessons))
		copy(lessons, section.Lessons)
		sortLessons(lessons)

		stat := SectionStat{
			SectionID:   section.ID,
			Title:       section.Title,
			OrderIndex:  section.OrderIndex,
			LessonCount: len(lessons),
		}

		for _, lesson := range lessons {
			_, completed := done[lesson.ID]
			if completed {
				stat.CompletedCount++
				view.CompletedCount++
			}
			view.TotalMinutes += lesson.DurationMinutes
			view.Lessons = append(view.Lessons, LessonView{
				ID:              lesson.ID,
				SectionID:       lesson.SectionID,
				Title:           lesson.Title,
				DurationMinutes: lesson.DurationMinutes,
				OrderIndex:      lesson.OrderIndex,
				VideoURL:        lesson.VideoURL,
				Completed:       completed,
			})
		}

		view.Sections = append(view.Sections, stat)
	}

	view.TotalLessons = len(view.Lessons)
	view.ProgressPercent = percent(view.CompletedCount, view.TotalLessons)
	view.IsFullyComplete = view.ProgressPercent == 100 && view.TotalLessons > 0

	return view
}

// ComputeLessonNavigation locates the current lesson in the flattened
// course order and returns its neighbors. Returns ErrLessonNotFound when
// the id is not part of the course, so callers can redirect to the course
// overview instead of crashing on a stale link.
func ComputeLessonNavigation(view CourseView, currentLessonID uint) (Navigation, error) {
	index := -1
	for i, lesson := range view.Lessons {
		if lesson.ID == currentLessonID {
			index = i
			break
		}
	}
	if index < 0 {
		return Navigation{}, ErrLessonNotFound
	}

	nav := Navigation{All: view.Lessons}
	if index > 0 {
		prev := view.Lessons[index-1]
		nav.Prev = &prev
	}
	if index < len(view.Lessons)-1 {
		next := view.Lessons[index+1]
		nav.Next = &next
	}
	return nav, nil
}

// ComputeDashboardStats aggregates per-course progress across every
// enrollment. AvgProgress is 0 with no enrollments; learning minutes are
// deduplicated by lesson id; certificates are emitted for every fully
// completed course with the latest lesson completion time.
func ComputeDashboardStats(enrolled []EnrolledCourse) DashboardStats {
	stats := DashboardStats{
		CoursesEnrolled: len(enrolled),
		Certificates:    []Certificate{},
	}

	percentSum := 0
	countedMinutes := make(map[uint]bool)

	for _, ec := range enrolled {
		view := ComputeCourseProgress(ec.Course, ec.Sections, ec.Completions)

		stats.TotalLessons += view.TotalLessons
		stats.CompletedLessons += view.CompletedCount
		percentSum += view.ProgressPercent

		for _, lesson := range view.Lessons {
			if lesson.Completed && !countedMinutes[lesson.ID] {
				countedMinutes[lesson.ID] = true
				stats.LearningMinutes += lesson.DurationMinutes
			}
		}

		if view.IsFullyComplete {
			stats.Certificates = append(stats.Certificates, Certificate{
				CourseID:    view.CourseID,
				CourseTitle: view.CourseTitle,
				CompletedAt: latestCompletion(view, ec.Completions),
			})
		}
	}

	if len(enrolled) > 0 {
		stats.AvgProgress = int(math.Round(float64(percentSum) / float64(len(enrolled))))
	}

	return stats
}

// latestCompletion returns the max completion time among the course's
// lessons, nil when no timestamp is recorded (inconsistent data; callers
// log it, we do not crash).
func latestCompletion(view CourseView, done Completions) *time.Time {
	var latest *time.Time
	for _, lesson := range view.Lessons {
		if at, ok := done[lesson.ID]; ok && !at.IsZero() {
			if latest == nil || at.After(*latest) {
				t := at
				latest = &t
			}
		}
	}
	return latest
}

// percent rounds 100*completed/total, 0 when total is 0
func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Sorting is by OrderIndex ascending with ID as the stable tiebreaker, so
// duplicate order values after concurrent edits never make navigation
// nondeterministic.

func sortSections(sections []courseModels.Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].OrderIndex != sections[j].OrderIndex {
			return sections[i].OrderIndex < sections[j].OrderIndex
		}
		return sections[i].ID < sections[j].ID
	})
}

func sortLessons(lessons []courseModels.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].OrderIndex != lessons[j].OrderIndex {
			return lessons[i].OrderIndex < lessons[j].OrderIndex
		}
		return lessons[i].ID < lessons[j].ID
	})
}
