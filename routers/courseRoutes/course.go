package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the student-facing catalog, enrollment,
// player and progress routes
func SetupCourseRoutes(app *fiber.App) {
	course := app.Group("/course")

	// Static paths first so they never shadow the :id matchers
	course.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)

	course.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	course.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	course.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)

	course.Post("/:id/save", middleware.JWTMiddleware, validators.CourseID(), controllers.SaveCourse)
	course.Delete("/:id/save", middleware.JWTMiddleware, validators.CourseID(), controllers.UnsaveCourse)

	// Lesson player
	course.Get("/:course_id/lesson/:lesson_id", middleware.JWTMiddleware, validators.LessonRef(), controllers.GetLesson)
	course.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.ToggleCompletion(), controllers.ToggleLessonCompletion)
}
