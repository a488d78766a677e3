package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	qmodel "problems_service/internals/features/qa/model"
	helper "problems_service/internals/helpers"
)

// writeError maps the repository error taxonomy onto HTTP responses.
func writeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var ve *qmodel.ValidationError
	switch {
	case errors.As(err, &ve):
		return helper.JsonValidationError(c, ve.Fields)
	case errors.Is(err, qmodel.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// pathID parses a positive integer path param. Anything else is treated
// as a route that does not exist.
func pathID(c *fiber.Ctx, name string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func invalidPayload(c *fiber.Ctx) error {
	return helper.JsonError(c, fiber.StatusBadRequest, "Invalid JSON payload")
}
