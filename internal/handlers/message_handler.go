package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/internal/repository"
)

type MessageHandler struct {
	messages *repository.Collection
}

func NewMessageHandler(messages *repository.Collection) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// MarkRead stamps read_at on the message. Re-marking an already read
// message keeps the original timestamp.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")

	doc, err := h.messages.Get(id)
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Resource not found", "NOT_FOUND")
	}

	if _, already := doc["read_at"]; already {
		return respondData(c, doc)
	}

	updated, err := h.messages.Update(id, repository.Doc{
		"read_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Resource not found", "NOT_FOUND")
	}
	return respondData(c, updated)
}
