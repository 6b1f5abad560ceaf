package courseRoutes

import (
	adminController "lms/controllers/admin"
	"lms/middleware"
	adminValidator "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course")

	// Course CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, adminValidator.CoursePayload(), adminController.AdminCreateCourse)
	adminGroup.Get("/list", middleware.JWTMiddleware, adminValidator.AdminList(), adminController.AdminGetAllCourses)
	adminGroup.Put("/:id", middleware.JWTMiddleware, adminValidator.CourseID(), adminValidator.CoursePayload(), adminController.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, adminValidator.CourseID(), adminController.AdminDeleteCourse)
	adminGroup.Post("/:id/publish", middleware.JWTMiddleware, adminValidator.PublishState(), adminController.AdminPublishCourse)

	// Section Management
	adminGroup.Get("/:id/sections", middleware.JWTMiddleware, adminValidator.CourseID(), adminController.AdminListSections)
	adminGroup.Post("/:id/section", middleware.JWTMiddleware, adminValidator.CourseID(), adminValidator.SectionPayload(), adminController.AdminCreateSection)
	adminGroup.Put("/:id/section/:section_id", middleware.JWTMiddleware, adminValidator.SectionRef(), adminValidator.SectionPayload(), adminController.AdminUpdateSection)
	adminGroup.Delete("/:id/section/:section_id", middleware.JWTMiddleware, adminValidator.SectionRef(), adminController.AdminDeleteSection)

	// Lesson Management
	adminGroup.Post("/:id/section/:section_id/lesson", middleware.JWTMiddleware, adminValidator.SectionRef(), adminValidator.LessonPayload(), adminController.AdminCreateLesson)

	lessonGroup := app.Group("/admin/lesson")
	lessonGroup.Put("/:lesson_id", middleware.JWTMiddleware, adminValidator.LessonID(), adminValidator.LessonPayload(), adminController.AdminUpdateLesson)
	lessonGroup.Delete("/:lesson_id", middleware.JWTMiddleware, adminValidator.LessonID(), adminController.AdminDeleteLesson)

	// Enrollment Reporting
	adminGroup.Get("/:id/enrollments", middleware.JWTMiddleware, adminValidator.CourseID(), adminValidator.AdminList(), adminController.AdminGetCourseEnrollments)
	adminGroup.Get("/:id/enrollments/export", middleware.JWTMiddleware, adminValidator.CourseID(), adminController.AdminExportCourseEnrollments)
}
