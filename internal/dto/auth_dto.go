package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/lunahq/accounts-api/internal/models"
)

type EmailLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r EmailLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("validation.EMAIL_REQUIRED"),
			is.Email.Error("validation.EMAIL_INVALID")),
		validation.Field(&r.Password,
			validation.Required.Error("validation.PASSWORD_REQUIRED")),
	)
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r RegisterRequest) Validate() error {
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
	)
}

type ConfirmEmailRequest struct {
	Hash string `json:"hash"`
}

func (r ConfirmEmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Hash,
			validation.Required.Error("validation.HASH_REQUIRED")),
	)
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("validation.EMAIL_REQUIRED"),
			is.Email.Error("validation.EMAIL_INVALID")),
	)
}

type ResetPasswordRequest struct {
	Hash     string `json:"hash"`
	Password string `json:"password"`
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Hash,
			validation.Required.Error("validation.HASH_REQUIRED")),
		validation.Field(&r.Password,
			validation.Required.Error("validation.PASSWORD_REQUIRED"),
			validation.Length(6, 100).Error("validation.PASSWORD_MIN")),
	)
}

// SocialTokens carries the provider credential: token1 is the primary
// credential (ID token or access token), token2 is provider-specific.
type SocialTokens struct {
	Token1 string `json:"token1"`
	Token2 string `json:"token2"`
}

type SocialLoginRequest struct {
	SocialType string       `json:"socialType"`
	Tokens     SocialTokens `json:"tokens"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
}

func (r SocialLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SocialType,
			validation.Required.Error("validation.SOCIAL_TYPE_REQUIRED"),
			validation.In(models.ProviderGoogle, models.ProviderFacebook, models.ProviderApple).
				Error("validation.SOCIAL_TYPE_INVALID")),
		validation.Field(&r.Tokens),
	)
}

func (t SocialTokens) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Token1,
			validation.Required.Error("validation.TOKEN_REQUIRED")),
	)
}

// UpdateMeRequest patches the authenticated user's profile. Supplying a
// new password requires the current one.
type UpdateMeRequest struct {
	FirstName   *string    `json:"firstName"`
	LastName    *string    `json:"lastName"`
	Password    string     `json:"password"`
	OldPassword string     `json:"oldPassword"`
	PhotoID     *uuid.UUID `json:"photoId"`
}

func (r UpdateMeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password,
			validation.Length(6, 100).Error("validation.PASSWORD_MIN")),
	)
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
