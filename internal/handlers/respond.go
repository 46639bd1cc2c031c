package handlers

import "github.com/gofiber/fiber/v2"

// Every response is wrapped in the envelope the clients decode: data on
// success, an errors array on failure, optional pagination meta.

func respondData(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

func respondPage(c *fiber.Ctx, data any, meta paginationMeta) error {
	return c.JSON(fiber.Map{"data": data, "meta": meta})
}

func respondError(c *fiber.Ctx, status int, message, code string) error {
	return c.Status(status).JSON(fiber.Map{
		"errors": []fiber.Map{{"message": message, "code": code}},
	})
}

func respondFieldError(c *fiber.Ctx, status int, field, message, code string) error {
	return c.Status(status).JSON(fiber.Map{
		"errors": []fiber.Map{{"field": field, "message": message, "code": code}},
	})
}
