package userController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetDashboard returns the learner dashboard: aggregate statistics across
// all enrolled courses, earned certificates, and this week's activity.
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	store := progress.NewGormStore(database.Database.Db)

	enrolled, enrollments, err := store.EnrolledCourses(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	stats := progress.ComputeDashboardStats(enrolled)
	for _, cert := range stats.Certificates {
		if cert.CompletedAt == nil {
			// fully complete course without a single completion timestamp
			// points at inconsistent progress rows
			log.Printf("Dashboard: course %d complete for user %d but no completed_at recorded", cert.CourseID, userID)
		}
	}

	// Minutes completed since the start of this week
	weekStart := now.BeginningOfWeek()
	minutesThisWeek := 0
	var recentRows []courseModels.Progress
	database.Database.Db.Where("user_id = ? AND completed = ? AND completed_at >= ?", userID, true, weekStart).Find(&recentRows)
	for _, row := range recentRows {
		var lesson courseModels.Lesson
		if err := database.Database.Db.Select("id, duration_minutes").Where("id = ?", row.LessonID).First(&lesson).Error; err == nil {
			minutesThisWeek += lesson.DurationMinutes
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"stats":             stats,
		"enrollments":       enrollments,
		"minutes_this_week": minutesThisWeek,
	})
}

// GetCertificates lists the user's earned certificates (derived, not stored)
func GetCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	store := progress.NewGormStore(database.Database.Db)

	enrolled, _, err := store.EnrolledCourses(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	stats := progress.ComputeDashboardStats(enrolled)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": stats.Certificates,
		"total":        len(stats.Certificates),
	})
}
