package auth

import "github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if !validator.IsValidEmail(r.Email) {
		return validator.ValidationErrors{{Field: "email", Message: "email format is invalid"}}
	}
	return nil
}

type LoginResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
	Role                 string `json:"role"`
	EmployeeID           string `json:"employee_id,omitempty"`
}
