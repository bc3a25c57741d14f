package handlers

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/internal/utils"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var fieldMessages = map[string]string{
	"name":          domain.MessageInvalidName,
	"expiryDate":    domain.MessageInvalidExpiryDate,
	"externalImage": domain.MessageInvalidExternalImage,
	"image":         domain.MessageUnsupportedImage,
}

// formValues returns the first value of every submitted form field, for
// url-encoded and multipart bodies alike.
func formValues(c *fiber.Ctx) map[string]string {
	values := make(map[string]string)

	if form, err := c.MultipartForm(); err == nil {
		for key, vs := range form.Value {
			if len(vs) > 0 {
				values[key] = vs[0]
			}
		}
		return values
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if _, seen := values[k]; !seen {
			values[k] = string(value)
		}
	})
	return values
}

func paramID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	if raw == "" {
		return 0, fmt.Errorf("%w: id", domain.ErrMissingRouteParam)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}

func bindForm(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	return nil
}

func validationFailure(err error) error {
	fields := utils.FieldErrors(err, fieldMessages)
	if fields == nil {
		return err
	}
	return domain.NewValidationFailure(fields)
}

func actionFailure(c *fiber.Ctx, err error) *domain.ActionFailure {
	failure := domain.FailureFromError(err)
	if failure.Kind == domain.FailureServer {
		log.Errorf("%s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return failure
}

func failureResponse(failure *domain.ActionFailure, values map[string]string) domain.ActionResponse {
	return domain.ActionResponse{Errors: failure.Errors, Values: values}
}
