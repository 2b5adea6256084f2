package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ApiError carries an HTTP status through the service layer so the error
// handler middleware can map it without string matching.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

func SuccessResponse(message string, data interface{}) *ApiResponse {
	return &ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) *ApiResponse {
	return &ApiResponse{
		Success: false,
		Message: message,
	}
}

// ValidateRequest runs struct tag validation and converts failures into a
// 400-level ApiError.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return NewApiError(fiber.StatusBadRequest, "validation failed on field '"+verrs[0].Field()+"'")
		}
		return NewApiError(fiber.StatusBadRequest, "invalid request payload")
	}
	return nil
}

// ErrorHandlerMiddleware converts errors bubbling out of controllers into
// JSON envelopes. Unknown errors become 500s with a generic message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.Status).JSON(ErrorResponse(apiErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
