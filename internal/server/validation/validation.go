// Package validation decodes and validates request payloads before they
// reach a handler.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DecorateWithBodyEx parses the JSON body into a new T, validates it and
// passes it to next. Decoding and validation failures are 400s.
func DecorateWithBodyEx[T any](v *validator.Validate, next func(*fiber.Ctx, *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return validated(v, c, req, next)
	}
}

// DecorateWithQueryEx is DecorateWithBodyEx for query string parameters.
func DecorateWithQueryEx[T any](v *validator.Validate, next func(*fiber.Ctx, *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.QueryParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return validated(v, c, req, next)
	}
}

func validated[T any](v *validator.Validate, c *fiber.Ctx, req *T, next func(*fiber.Ctx, *T) error) error {
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return next(c, req)
}
