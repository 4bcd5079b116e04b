package types

import (
	"github.com/go-playground/validator/v10"
)

// ChooseRoleRequest sets the desired role for a session.
type ChooseRoleRequest struct {
	Role string `json:"role" validate:"required,min=1"`
}

// RecordAnswerRequest records one answer for the question at Index.
type RecordAnswerRequest struct {
	Index int    `json:"index" validate:"gte=0"`
	Text  string `json:"text"`
}

// AdminLoginRequest represents the admin login request.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse carries the token issued after a successful admin login.
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// Validate validates the ChooseRoleRequest using the validator.
func (r *ChooseRoleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RecordAnswerRequest using the validator.
func (r *RecordAnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AdminLoginRequest using the validator.
func (r *AdminLoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
