package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(code int, message string, data interface{}) ApiResponse {
	return ApiResponse{Success: true, Code: code, Message: message, Data: data}
}

func ErrorResponse(code int, message string) ApiResponse {
	return ApiResponse{Success: false, Code: code, Message: message}
}

// ErrorHandlerMiddleware recovers panics into a generic 500 so internals are
// never leaked in a response body.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "Something went wrong. Please try again."))
			}
		}()
		return ctx.Next()
	}
}
