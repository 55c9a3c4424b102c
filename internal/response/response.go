// Package response shapes every successful payload into the uniform
// envelope the clients expect: {statusCode, code, message, pagination?, data}.
package response

import (
	"github.com/gofiber/fiber/v2"
)

const (
	CodeSuccess = "E001"

	MessageSuccess = "SUCCESS"
)

type Pagination struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	LastPage int   `json:"lastPage"`
}

type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Code       string      `json:"code"`
	Message    any         `json:"message"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       any         `json:"data,omitempty"`
}

// OK wraps data in the success envelope.
func OK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		StatusCode: fiber.StatusOK,
		Code:       CodeSuccess,
		Message:    MessageSuccess,
		Data:       data,
	})
}

// Page wraps a page of records plus pagination metadata.
func Page(c *fiber.Ctx, data any, total int64, page, pageSize int) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		StatusCode: fiber.StatusOK,
		Code:       CodeSuccess,
		Message:    MessageSuccess,
		Pagination: &Pagination{
			Total:    total,
			Page:     page,
			PageSize: pageSize,
			LastPage: lastPage(total, pageSize),
		},
		Data: data,
	})
}

func lastPage(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
