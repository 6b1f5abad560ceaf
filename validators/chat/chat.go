package chatValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SendMessage validates the chat message body
func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		trimmed := strings.TrimSpace(reqData.Message)
		if trimmed == "" {
			errors["message"] = "Message is required!"
		}
		if len(trimmed) > 2000 {
			errors["message"] = "Message must be at most 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChatMessage", reqData)
		return c.Next()
	}
}
