package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/internal/repository"
)

// ProfileHandler serves the authenticated student's own record without
// requiring the caller to know its id.
type ProfileHandler struct {
	students *repository.Collection
}

func NewProfileHandler(students *repository.Collection) *ProfileHandler {
	return &ProfileHandler{students: students}
}

func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	doc, ok := h.currentStudent(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Resource not found", "NOT_FOUND")
	}
	return respondData(c, doc)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	doc, ok := h.currentStudent(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Resource not found", "NOT_FOUND")
	}

	var patch repository.Doc
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	if wrapped, ok := patch["student"].(map[string]any); ok {
		patch = repository.Doc(wrapped)
	}
	// The record's identity and ownership are not writable through this route.
	delete(patch, "id")
	delete(patch, "user_id")
	delete(patch, "trainer_id")

	id, _ := doc["id"].(string)
	updated, err := h.students.Update(id, patch)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to update resource", "INTERNAL")
	}
	return respondData(c, updated)
}

func (h *ProfileHandler) currentStudent(c *fiber.Ctx) (repository.Doc, bool) {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return nil, false
	}
	docs := h.students.List(map[string]string{"user_id": userID})
	if len(docs) == 0 {
		return nil, false
	}
	return docs[0], true
}
