package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lunahq/accounts-api/internal/dto"
	"github.com/lunahq/accounts-api/internal/httperr"
	"github.com/lunahq/accounts-api/internal/models"
	"github.com/lunahq/accounts-api/internal/repository"
	"github.com/lunahq/accounts-api/internal/response"
	"github.com/lunahq/accounts-api/internal/services"
)

// UsersHandler exposes the admin-panel user CRUD.
type UsersHandler struct {
	usersService *services.UsersService
}

func NewUsersHandler(usersService *services.UsersService) *UsersHandler {
	return &UsersHandler{usersService: usersService}
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	opts := response.Paginate(c)
	users, total, err := h.usersService.FindAll(c.Context(), opts.Skip, opts.Take)
	if err != nil {
		return err
	}
	return response.Page(c, users, total, opts.Page, opts.PageSize)
}

func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	email := req.Email
	user := &models.User{
		ID:        uuid.New(),
		Email:     &email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		Status:    status,
		Provider:  models.ProviderEmail,
		PhotoID:   req.PhotoID,
	}

	created, err := h.usersService.Create(c.Context(), user)
	if err != nil {
		return httperr.BadRequest(err.Error())
	}
	return response.OK(c, created)
}

func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httperr.BadRequest("invalid user id")
	}

	user, err := h.usersService.FindOne(c.Context(), map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return httperr.NotFound(nil)
		}
		return err
	}
	return response.OK(c, user)
}

func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httperr.BadRequest("invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody()
	}
	if err := validate(c, req); err != nil {
		return err
	}

	user, err := h.usersService.Update(c.Context(), id, services.UserPatch{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Status:    req.Status,
		PhotoID:   req.PhotoID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return httperr.NotFound(nil)
		}
		return err
	}
	return response.OK(c, user)
}

func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httperr.BadRequest("invalid user id")
	}

	if err := h.usersService.SoftDelete(c.Context(), id); err != nil {
		return err
	}
	return response.OK(c, nil)
}
