package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/lunahq/accounts-api/internal/dto"
	"github.com/lunahq/accounts-api/internal/httperr"
	"github.com/lunahq/accounts-api/internal/middleware"
	"github.com/lunahq/accounts-api/internal/response"
	"github.com/lunahq/accounts-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) EmailLogin(c *fiber.Ctx) error {
	return h.emailLogin(c, false)
}

// AdminEmailLogin is the admin-panel login; non-admin accounts are
// reported as absent even with correct credentials.
func (h *AuthHandler) AdminEmailLogin(c *fiber.Ctx) error {
	return h.emailLogin(c, true)
}

func (h *AuthHandler) emailLogin(c *fiber.Ctx, adminOnly bool) error {
	var req dto.EmailLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	resp, err := h.authService.ValidateLogin(c.Context(), req.Email, req.Password, adminOnly)
	if err != nil {
		return err
	}
	return response.OK(c, resp)
}

func (h *AuthHandler) SocialLogin(c *fiber.Ctx) error {
	var req dto.SocialLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	verifier, ok := h.authService.Verifier(req.SocialType)
	if !ok {
		return httperr.BadRequest("unknown social provider: " + req.SocialType)
	}

	identity, err := verifier.Exchange(c.Context(), req.Tokens.Token1, req.Tokens.Token2)
	if err != nil {
		slog.Error("social credential verification failed", "provider", req.SocialType, "error", err)
		return httperr.NotFound(map[string]string{"user": "notFound"})
	}

	// Apple never puts names in the identity token; the client sends
	// them alongside on first sign-in.
	if identity.FirstName == "" {
		identity.FirstName = req.FirstName
	}
	if identity.LastName == "" {
		identity.LastName = req.LastName
	}

	resp, err := h.authService.ValidateSocialLogin(c.Context(), req.SocialType, identity)
	if err != nil {
		return err
	}
	return response.OK(c, resp)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	if err := h.authService.Register(c.Context(), req); err != nil {
		return err
	}
	return response.OK(c, nil)
}

func (h *AuthHandler) ConfirmEmail(c *fiber.Ctx) error {
	var req dto.ConfirmEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	if err := h.authService.ConfirmEmail(c.Context(), req.Hash); err != nil {
		return err
	}
	return response.OK(c, nil)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	if err := h.authService.ForgotPassword(c.Context(), req.Email); err != nil {
		return err
	}
	return response.OK(c, nil)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	if err := h.authService.ResetPassword(c.Context(), req.Hash, req.Password); err != nil {
		return err
	}
	return response.OK(c, nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.authService.Me(c.Context(), userID)
	if err != nil {
		return err
	}
	return response.OK(c, user)
}

func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	user, err := h.authService.Update(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return response.OK(c, user)
}

func (h *AuthHandler) DeleteMe(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.authService.SoftDelete(c.Context(), userID); err != nil {
		return err
	}
	return response.OK(c, nil)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(response.Envelope{
		StatusCode: fiber.StatusUnauthorized,
		Code:       httperr.DefaultCode,
		Message:    "Unauthorized",
	})
}
