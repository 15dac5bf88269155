package chat

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/poopky/chat-backend/internal/llm"
)

type Handler struct {
	service *Service
}

type chatRequest struct {
	Message string `json:"message"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/chat", h.chat)
}

func (h *Handler) chat(c *fiber.Ctx) error {
	payload := new(chatRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required."})
	}

	res, err := h.service.Recommend(c.UserContext(), payload.Message)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// fail converts pipeline errors into safe responses. The reply strings and
// error codes differ per failure class so operators can tell a dead upstream
// from a model that broke the output contract; details stay in the log.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required."})
	case errors.Is(err, llm.ErrUpstreamUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"reply": replyUpstreamDown,
			"error": "upstream_unavailable",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"reply": replyMalformed,
			"error": "malformed_response",
		})
	}
}
