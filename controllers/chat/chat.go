package chatController

import (
	"encoding/json"
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

const systemPrompt = "You are a helpful assistant for an online learning platform. " +
	"Answer questions about courses, enrollment, lesson progress and certificates. " +
	"Keep answers short and friendly. If you don't know, say so."

// llmClient bounds the upstream call so a hung endpoint falls back to the
// FAQ path instead of holding the request open
var llmClient = resty.New().SetTimeout(10 * time.Second)

// SendMessage handles one chat widget message. The LLM path is primary;
// any failure (missing key, transport error, bad status) falls back to
// the deterministic FAQ matcher.
func SendMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedChatMessage").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Log the user's side of the conversation
	database.Database.Db.Create(&models.ChatMessage{
		UserID: userID,
		Role:   "user",
		Body:   reqData.Message,
	})

	answer := ""
	source := ""

	if config.AppConfig.ChatApiKey != "" {
		if llmAnswer, err := askLLM(reqData.Message); err == nil {
			answer = llmAnswer
			source = "llm"
		} else {
			log.Printf("Chat LLM call failed, falling back to FAQs: %v", err)
		}
	}

	if answer == "" {
		var faqs []models.FAQ
		database.Database.Db.Where("is_deleted = ?", false).Order("id asc").Find(&faqs)
		if faqAnswer, matched := MatchFAQ(reqData.Message, faqs); matched {
			answer = faqAnswer
			source = "faq"
		} else {
			answer = FallbackAnswer
			source = "fallback"
		}
	}

	reply := models.ChatMessage{
		UserID: userID,
		Role:   "assistant",
		Body:   answer,
		Source: source,
	}
	database.Database.Db.Create(&reply)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message processed successfully!", fiber.Map{
		"reply":  answer,
		"source": source,
	})
}

// askLLM calls the configured OpenAI-compatible completions endpoint
func askLLM(message string) (string, error) {
	resp, err := llmClient.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.ChatApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": config.AppConfig.ChatModel,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": message},
			},
			"max_tokens": 300,
		}).
		Post(config.AppConfig.ChatApiURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fiber.NewError(resp.StatusCode(), "chat completion failed: "+resp.String())
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fiber.NewError(fiber.StatusBadGateway, "empty chat completion")
	}
	return completion.Choices[0].Message.Content, nil
}

// GetChatHistory returns the user's conversation with the assistant
func GetChatHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var messages []models.ChatMessage
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at asc").Limit(100).Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chat history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat history fetched successfully!", fiber.Map{
		"messages": messages,
		"total":    len(messages),
	})
}
