// Package handlers contains the Fiber HTTP handlers. Each handler
// decodes and validates the request body, delegates to a service, and
// returns either the uniform success envelope or a structured error for
// the app-level error handler to render.
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/lunahq/accounts-api/internal/dto"
	"github.com/lunahq/accounts-api/internal/httperr"
	"github.com/lunahq/accounts-api/internal/i18n"
)

// requestLang resolves the response language from the Accept-Language
// header.
func requestLang(c *fiber.Ctx) language.Tag {
	return i18n.Resolve(c.Get(fiber.HeaderAcceptLanguage))
}

// validate runs a DTO's validation rules and localizes any field errors.
func validate(c *fiber.Ctx, req interface{ Validate() error }) error {
	if err := req.Validate(); err != nil {
		fields := dto.FieldErrors(err)
		return httperr.Validation(i18n.Localize(requestLang(c), fields))
	}
	return nil
}

func badBody() error {
	return httperr.BadRequest("Invalid request body")
}
