package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/lunahq/accounts-api/internal/models"
)

// CreateUserRequest is the admin-panel user creation body.
type CreateUserRequest struct {
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	PhotoID   *uuid.UUID `json:"photoId"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("validation.EMAIL_REQUIRED"),
			is.Email.Error("validation.EMAIL_INVALID")),
		validation.Field(&r.Password,
			validation.Required.Error("validation.PASSWORD_REQUIRED"),
			validation.Length(6, 100).Error("validation.PASSWORD_MIN")),
		validation.Field(&r.FirstName,
			validation.Required.Error("validation.FIRST_NAME_REQUIRED")),
		validation.Field(&r.LastName,
			validation.Required.Error("validation.LAST_NAME_REQUIRED")),
		validation.Field(&r.Role,
			validation.In(models.RoleAdmin, models.RoleUser).Error("validation.ROLE_INVALID")),
		validation.Field(&r.Status,
			validation.In(models.StatusActive, models.StatusInactive).Error("validation.STATUS_INVALID")),
	)
}

// UpdateUserRequest patches an arbitrary user from the admin panel; all
// fields are optional.
type UpdateUserRequest struct {
	Email     *string    `json:"email"`
	Password  string     `json:"password"`
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Role      *string    `json:"role"`
	Status    *string    `json:"status"`
	PhotoID   *uuid.UUID `json:"photoId"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			is.Email.Error("validation.EMAIL_INVALID")),
		validation.Field(&r.Password,
			validation.Length(6, 100).Error("validation.PASSWORD_MIN")),
		validation.Field(&r.Role,
			validation.In(models.RoleAdmin, models.RoleUser).Error("validation.ROLE_INVALID")),
		validation.Field(&r.Status,
			validation.In(models.StatusActive, models.StatusInactive).Error("validation.STATUS_INVALID")),
	)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
