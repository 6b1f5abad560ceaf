package userRoutes

import (
	courseController "lms/controllers/course"
	userController "lms/controllers/user"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/user")

	user.Get("/dashboard", middleware.JWTMiddleware, userController.GetDashboard)
	user.Get("/certificates", middleware.JWTMiddleware, userController.GetCertificates)
	user.Get("/enrollments", middleware.JWTMiddleware, courseController.GetUserEnrollmentsList)
	user.Get("/saved", middleware.JWTMiddleware, courseController.GetSavedCourses)
}
