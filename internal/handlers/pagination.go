package handlers

import "github.com/gofiber/fiber/v2"

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

type paginationMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func parsePagination(c *fiber.Ctx) (page, perPage int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage = c.QueryInt("per_page", defaultPageSize)
	if perPage < 1 {
		perPage = defaultPageSize
	}
	if perPage > maxPageSize {
		perPage = maxPageSize
	}
	return page, perPage
}

func buildPaginationMeta(page, perPage, total int) paginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	return paginationMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
