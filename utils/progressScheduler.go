package utils

import (
	"log"
	"strconv"
	"time"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileEnrollmentSnapshots recomputes the denormalized progress columns
// on every live enrollment from the Progress rows. Completion emails fire on
// the first transition to COMPLETED only.
func reconcileEnrollmentSnapshots() {
	db := database.Database.Db
	store := progress.NewGormStore(db)

	var enrollments []courseModels.Enrollment
	if err := db.Where("is_deleted = ?", false).Find(&enrollments).Error; err != nil {
		logScheduler("Error fetching enrollments: " + err.Error())
		return
	}

	updated := 0
	for _, enrollment := range enrollments {
		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
			continue
		}

		sections, err := store.CourseSections(course.ID)
		if err != nil {
			logScheduler("Error loading sections for course " + course.Title + ": " + err.Error())
			continue
		}
		done, err := store.Completions(enrollment.UserID, course.ID)
		if err != nil {
			logScheduler("Error loading completions for course " + course.Title + ": " + err.Error())
			continue
		}

		view := progress.ComputeCourseProgress(course, sections, done)
		status := snapshotStatus(view)

		wasCompleted := enrollment.Status == "COMPLETED"

		if !snapshotDirty(enrollment, view, status) {
			continue
		}

		enrollment.Status = status
		enrollment.Progress = float64(view.ProgressPercent)
		enrollment.CompletedLessons = view.CompletedCount
		enrollment.TotalLessons = view.TotalLessons

		if status == "COMPLETED" && enrollment.CompletedAt == nil {
			completedAt := latestCompletionTime(done)
			enrollment.CompletedAt = &completedAt
		}
		if status != "COMPLETED" {
			// lessons were uncompleted or the course grew; certificate
			// derivation follows the live rows, the snapshot follows along
			enrollment.CompletedAt = nil
		}

		if err := db.Save(&enrollment).Error; err != nil {
			logScheduler("Error saving enrollment snapshot: " + err.Error())
			continue
		}
		updated++

		if status == "COMPLETED" && !wasCompleted {
			var user models.User
			if err := db.Where("id = ? AND is_deleted = ?", enrollment.UserID, false).First(&user).Error; err == nil {
				go SendCourseCompletionEmail(user.Email, user.Name, course.Title)
			}
		}
	}

	if updated > 0 {
		logScheduler("Snapshots updated: " + strconv.Itoa(updated))
	}
}

func snapshotStatus(view progress.CourseView) string {
	if view.IsFullyComplete && view.TotalLessons > 0 {
		return "COMPLETED"
	}
	if view.CompletedCount > 0 {
		return "IN_PROGRESS"
	}
	return "ENROLLED"
}

// snapshotDirty reports whether the enrollment snapshot diverges from the
// computed view. A COMPLETED enrollment whose CompletedAt was never written
// counts as dirty so the timestamp gets backfilled.
func snapshotDirty(e courseModels.Enrollment, view progress.CourseView, status string) bool {
	return e.Status != status ||
		e.Progress != float64(view.ProgressPercent) ||
		e.CompletedLessons != view.CompletedCount ||
		e.TotalLessons != view.TotalLessons ||
		(status == "COMPLETED" && e.CompletedAt == nil)
}

func latestCompletionTime(done progress.Completions) time.Time {
	var latest time.Time
	for _, at := range done {
		if at.After(latest) {
			latest = at
		}
	}
	if latest.IsZero() {
		latest = time.Now()
	}
	return latest
}

// StartProgressScheduler initializes the hourly snapshot reconciliation
func StartProgressScheduler() *cron.Cron {
	logScheduler("Initializing progress scheduler...")

	c := cron.New()

	// Hourly, on the hour
	if _, err := c.AddFunc("0 * * * *", reconcileEnrollmentSnapshots); err != nil {
		logScheduler("Error scheduling snapshot reconciliation: " + err.Error())
		return c
	}

	c.Start()

	// One pass at boot so fresh deployments start consistent
	go reconcileEnrollmentSnapshots()

	logScheduler("Progress scheduler initialized successfully")
	return c
}
