package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/internal/repository"
)

// ResourceHandler serves the uniform CRUD surface every collection shares.
// Write payloads may arrive flat or wrapped under the resource key, the way
// the web clients send them.
type ResourceHandler struct {
	collection *repository.Collection
	wrapKey    string

	// ownerField, when set, is filled with the authenticated user id on
	// create if the payload leaves it empty.
	ownerField string
}

func NewResourceHandler(collection *repository.Collection, wrapKey string) *ResourceHandler {
	return &ResourceHandler{collection: collection, wrapKey: wrapKey}
}

func (h *ResourceHandler) WithOwnerField(field string) *ResourceHandler {
	h.ownerField = field
	return h
}

func (h *ResourceHandler) List(c *fiber.Ctx) error {
	page, perPage := parsePagination(c)

	filters := map[string]string{}
	for key, value := range c.Queries() {
		if key == "page" || key == "per_page" {
			continue
		}
		filters[key] = value
	}

	docs := h.collection.List(filters)
	total := len(docs)

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return respondPage(c, docs[start:end], buildPaginationMeta(page, perPage, total))
}

func (h *ResourceHandler) Get(c *fiber.Ctx) error {
	doc, err := h.collection.Get(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Resource not found", "NOT_FOUND")
	}
	return respondData(c, doc)
}

func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	doc, err := h.parseBody(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	if h.ownerField != "" {
		if _, set := doc[h.ownerField]; !set {
			if userID, ok := c.Locals("user_id").(string); ok {
				doc[h.ownerField] = userID
			}
		}
	}

	created := h.collection.Insert(doc)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	patch, err := h.parseBody(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	updated, err := h.collection.Update(c.Params("id"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Resource not found", "NOT_FOUND")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to update resource", "INTERNAL")
	}
	return respondData(c, updated)
}

func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	if err := h.collection.Delete(c.Params("id")); err != nil {
		return respondError(c, fiber.StatusNotFound, "Resource not found", "NOT_FOUND")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ResourceHandler) parseBody(c *fiber.Ctx) (repository.Doc, error) {
	var doc repository.Doc
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		return nil, err
	}

	if wrapped, ok := doc[h.wrapKey].(map[string]any); ok {
		doc = repository.Doc(wrapped)
	}
	return doc, nil
}
