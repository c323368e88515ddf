package auth

import (
	"strings"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

const (
	minPasswordLength = 8
	// bcrypt refuses longer input.
	maxPasswordBytes = 72
	maxNameLength    = 100
	maxEmailLength   = 255
)

type SignupRequest struct {
	CompanyName   string  `json:"company_name"`
	CompanyPrefix string  `json:"company_prefix"`
	AdminName     string  `json:"admin_name"`
	AdminEmail    string  `json:"admin_email"`
	AdminPhone    *string `json:"admin_phone,omitempty"`
	AdminPassword string  `json:"admin_password"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	// Company
	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}
	if !validator.MaxLength(r.CompanyName, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name must not exceed 255 characters",
		})
	}
	if !validator.IsValidCompanyPrefix(r.CompanyPrefix) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_prefix",
			Message: "company_prefix must be 2-5 letters or digits",
		})
	}

	// Admin
	if validator.IsEmpty(r.AdminName) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_name",
			Message: "admin_name is required",
		})
	} else if !validator.MaxLength(r.AdminName, maxNameLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_name",
			Message: "admin_name must not exceed 100 characters",
		})
	}
	if validator.IsEmpty(r.AdminEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_email",
			Message: "admin_email is required",
		})
	} else if !validator.IsValidEmail(r.AdminEmail) || len(r.AdminEmail) > maxEmailLength {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_email",
			Message: "invalid email format",
		})
	}
	if r.AdminPhone != nil && !validator.IsValidPhoneNumber(*r.AdminPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_phone",
			Message: "invalid phone number",
		})
	}
	if !validator.MinLength(r.AdminPassword, minPasswordLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_password",
			Message: "admin_password must be at least 8 characters",
		})
	} else if len(r.AdminPassword) > maxPasswordBytes {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_password",
			Message: "admin_password must not exceed 72 bytes",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Identifier) {
		errs = append(errs, validator.ValidationError{
			Field:   "identifier",
			Message: "identifier is required",
		})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsEmail reports whether the identifier should be looked up as an email.
func (r *LoginRequest) IsEmail() bool {
	return strings.Contains(r.Identifier, "@")
}

// EmployeeCode normalises the identifier for an employee-code lookup.
func (r *LoginRequest) EmployeeCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Identifier))
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CurrentPassword == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}
	if !validator.MinLength(r.NewPassword, minPasswordLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	} else if len(r.NewPassword) > maxPasswordBytes {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must not exceed 72 bytes",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserSummary struct {
	AccountID         int64   `json:"user_id"`
	Email             string  `json:"email"`
	EmployeeCode      string  `json:"employee_id"`
	Role              string  `json:"role"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   int64       `json:"expires_at"`
	User        UserSummary `json:"user"`
}
