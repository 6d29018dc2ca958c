package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/neuralink-ai/site-backend/internal/service"
	apperrors "github.com/neuralink-ai/site-backend/pkg/util"
)

// param returns the percent-decoded route param. Malformed escapes are kept as sent.
func param(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// parseID reads the :id route param. A non-numeric id cannot match any
// record, so notFound is returned for it.
func parseID(c *fiber.Ctx, notFound func(any) error) (int, error) {
	raw := param(c, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, notFound(raw)
	}
	return id, nil
}

// parseBody decodes a JSON body into out; an empty body leaves out untouched.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("Invalid payload", "Request body must be valid JSON")
	}
	return nil
}

func currentTimestamp() string {
	return time.Now().UTC().Format(service.TimestampLayout)
}
