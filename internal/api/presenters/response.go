package presenters

import (
	"Pantry-Tracker/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const layout = "layouts/main"

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// Page renders view inside the main layout, or returns data as JSON when the
// client prefers it.
func Page(c *fiber.Ctx, statusCode int, view string, data fiber.Map) error {
	c.Status(statusCode)
	if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
		return c.JSON(data)
	}
	return c.Render(view, data, layout)
}

// ErrorHandler handles errors returned by handlers: read failures and requests
// whose form does not match any known action. Details are logged, not sent.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := domain.MessageFailedProcessRequest

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.OriginalURL(), err)
		message = domain.MessageFailedProcessRequest
	}

	return ErrorResponse(c, code, message, nil)
}
