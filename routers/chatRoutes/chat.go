package chatRoutes

import (
	chatController "lms/controllers/chat"
	"lms/middleware"
	chatValidator "lms/validators/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupChatRoutes(app *fiber.App) {
	chat := app.Group("/chat")

	chat.Post("/message", middleware.JWTMiddleware, chatValidator.SendMessage(), chatController.SendMessage)
	chat.Get("/history", middleware.JWTMiddleware, chatController.GetChatHistory)
}
