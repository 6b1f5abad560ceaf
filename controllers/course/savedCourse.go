package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// SaveCourse bookmarks a course for later. Saving an already saved
// course is not an error.
func SaveCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// The (user, course) unique index outlives a soft delete, so a
	// previously unsaved bookmark is revived instead of re-created
	var existing models.SavedCourse
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		if !existing.IsDeleted {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Course already saved!", existing)
		}
		existing.IsDeleted = false
		if err := database.Database.Db.Save(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course saved successfully!", existing)
	}

	saved := models.SavedCourse{
		UserID:   userID,
		CourseID: uint(courseID),
	}
	if err := database.Database.Db.Create(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course saved successfully!", saved)
}

// UnsaveCourse removes a bookmark
func UnsaveCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var saved models.SavedCourse
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course is not saved!", nil)
	}

	saved.IsDeleted = true
	if err := database.Database.Db.Save(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unsave course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from saved!", nil)
}

// GetSavedCourses lists the user's bookmarked courses
func GetSavedCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var savedRows []models.SavedCourse
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&savedRows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch saved courses!", nil)
	}

	type SavedWithCourse struct {
		models.SavedCourse
		CourseTitle     string `json:"course_title"`
		CourseThumbnail string `json:"course_thumbnail"`
		CourseDuration  int64  `json:"course_duration"`
	}

	result := make([]SavedWithCourse, 0, len(savedRows))
	for _, row := range savedRows {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", row.CourseID, false).First(&course).Error; err != nil {
			continue // course removed since it was saved
		}
		result = append(result, SavedWithCourse{
			SavedCourse:     row,
			CourseTitle:     course.Title,
			CourseThumbnail: course.ThumbnailURL,
			CourseDuration:  course.Duration,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Saved courses fetched successfully!", fiber.Map{
		"saved": result,
		"total": len(result),
	})
}
