// services/errors.go - Typed business errors carried up to the HTTP layer
package services

import "github.com/gofiber/fiber/v2"

// ServiceError is a business rule violation with a stable machine code and
// the HTTP status the handlers should answer with.
type ServiceError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Status  int    `json:"-"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(message, code string, status int) *ServiceError {
	return &ServiceError{Message: message, Code: code, Status: status}
}

func NotFound(message, code string) *ServiceError {
	return NewServiceError(message, code, fiber.StatusNotFound)
}

func Conflict(message, code string) *ServiceError {
	return NewServiceError(message, code, fiber.StatusConflict)
}

func Forbidden(message, code string) *ServiceError {
	return NewServiceError(message, code, fiber.StatusForbidden)
}

func Unauthorized(message, code string) *ServiceError {
	return NewServiceError(message, code, fiber.StatusUnauthorized)
}

func BadRequest(message, code string) *ServiceError {
	return NewServiceError(message, code, fiber.StatusBadRequest)
}

func Unprocessable(message, code string) *ServiceError {
	return NewServiceError(message, code, fiber.StatusUnprocessableEntity)
}
