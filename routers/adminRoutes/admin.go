package adminRoutes

import (
	adminController "lms/controllers/admin"
	"lms/middleware"
	adminValidator "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the console dashboard and user management routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin")

	admin.Get("/dashboard", middleware.JWTMiddleware, adminController.AdminDashboardStats)

	admin.Get("/users", middleware.JWTMiddleware, adminValidator.AdminList(), adminController.AdminGetAllUsers)
	admin.Post("/user/:id/role", middleware.JWTMiddleware, adminValidator.TargetRole(), adminController.AdminSetUserRole)
	admin.Post("/user/:id/active", middleware.JWTMiddleware, adminValidator.TargetActive(), adminController.AdminSetUserActive)

	admin.Get("/student/:id/progress", middleware.JWTMiddleware, adminValidator.TargetUser(), adminController.AdminGetStudentProgress)
}
