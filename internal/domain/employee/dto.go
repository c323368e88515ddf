package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	maxNameLength  = 100
	maxEmailLength = 255
)

// textLimits mirrors the employee_profiles column widths.
var textLimits = map[string]int{
	"first_name":     maxNameLength,
	"last_name":      maxNameLength,
	"department":     100,
	"job_title":      100,
	"nationality":    64,
	"marital_status": 32,
	"pan_number":     20,
	"uan_number":     20,
	"bank_account":   34,
	"ifsc_code":      11,
}

func checkLength(errs validator.ValidationErrors, field string, value *string) validator.ValidationErrors {
	if value == nil {
		return errs
	}
	limit := textLimits[field]
	if !validator.MaxLength(*value, limit) {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must not exceed %d characters", field, limit),
		})
	}
	return errs
}

type CreateEmployeeRequest struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Phone      *string          `json:"phone,omitempty"`
	Role       string           `json:"role,omitempty"`
	Department *string          `json:"department,omitempty"`
	JobTitle   *string          `json:"job_title,omitempty"`
	JoinDate   string           `json:"join_date"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	errs = checkLength(errs, "first_name", &r.FirstName)
	errs = checkLength(errs, "last_name", &r.LastName)
	errs = checkLength(errs, "department", r.Department)
	errs = checkLength(errs, "job_title", r.JobTitle)

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) || len(r.Email) > maxEmailLength {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if r.Role != "" && !user.Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of employee, hr, admin",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if r.BaseSalary != nil {
		if r.BaseSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must not be negative",
			})
		} else if !validator.FitsNumeric(*r.BaseSalary, 12, 2) {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be below 10000000000 with at most 2 decimal places",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RoleOrDefault returns the requested role, employee when omitted.
func (r *CreateEmployeeRequest) RoleOrDefault() user.Role {
	if r.Role == "" {
		return user.RoleEmployee
	}
	return user.Role(r.Role)
}

type CreateEmployeeResponse struct {
	AccountID         int64  `json:"user_id"`
	EmployeeCode      string `json:"employee_id"`
	Email             string `json:"email"`
	TemporaryPassword string `json:"temporary_password"`
}

type UpdateEmployeeRequest struct {
	FirstName         *string   `json:"first_name,omitempty"`
	LastName          *string   `json:"last_name,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	Address           *string   `json:"address,omitempty"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
	Department        *string   `json:"department,omitempty"`
	JobTitle          *string   `json:"job_title,omitempty"`
	DateOfBirth       *string   `json:"date_of_birth,omitempty"`
	Gender            *string   `json:"gender,omitempty"`
	About             *string   `json:"about,omitempty"`
	Skills            *[]string `json:"skills,omitempty"`
	Certifications    *[]string `json:"certifications,omitempty"`
	Nationality       *string   `json:"nationality,omitempty"`
	MaritalStatus     *string   `json:"marital_status,omitempty"`
	PANNumber         *string   `json:"pan_number,omitempty"`
	UANNumber         *string   `json:"uan_number,omitempty"`
	BankAccount       *string   `json:"bank_account,omitempty"`
	IFSCCode          *string   `json:"ifsc_code,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	errs = checkLength(errs, "first_name", r.FirstName)
	errs = checkLength(errs, "last_name", r.LastName)
	errs = checkLength(errs, "department", r.Department)
	errs = checkLength(errs, "job_title", r.JobTitle)
	errs = checkLength(errs, "nationality", r.Nationality)
	errs = checkLength(errs, "marital_status", r.MaritalStatus)
	errs = checkLength(errs, "pan_number", r.PANNumber)
	errs = checkLength(errs, "uan_number", r.UANNumber)
	errs = checkLength(errs, "bank_account", r.BankAccount)
	errs = checkLength(errs, "ifsc_code", r.IFSCCode)
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Gender != nil && !Gender(*r.Gender).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of male, female, other, prefer_not_to_say",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToProfileUpdate assumes Validate has passed.
func (r *UpdateEmployeeRequest) ToProfileUpdate() ProfileUpdate {
	u := ProfileUpdate{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		Address:           r.Address,
		ProfilePictureURL: r.ProfilePictureURL,
		Department:        r.Department,
		JobTitle:          r.JobTitle,
		About:             r.About,
		Skills:            r.Skills,
		Certifications:    r.Certifications,
		Nationality:       r.Nationality,
		MaritalStatus:     r.MaritalStatus,
		PANNumber:         r.PANNumber,
		UANNumber:         r.UANNumber,
		BankAccount:       r.BankAccount,
		IFSCCode:          r.IFSCCode,
	}
	if r.DateOfBirth != nil {
		if dob, ok := validator.IsValidDate(*r.DateOfBirth); ok {
			u.DateOfBirth = &dob
		}
	}
	if r.Gender != nil {
		g := Gender(strings.ToLower(*r.Gender))
		u.Gender = &g
	}
	return u
}

type EmployeeResponse struct {
	AccountID         int64                 `json:"user_id"`
	EmployeeCode      string                `json:"employee_id"`
	Email             string                `json:"email"`
	Role              string                `json:"role"`
	FirstName         string                `json:"first_name"`
	LastName          string                `json:"last_name"`
	Phone             *string               `json:"phone,omitempty"`
	Department        *string               `json:"department,omitempty"`
	JobTitle          *string               `json:"job_title,omitempty"`
	ProfilePictureURL *string               `json:"profile_picture_url,omitempty"`
	JoinDate          *string               `json:"join_date,omitempty"`
	TodayStatus       *attendance.DayStatus `json:"today_status,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		AccountID:         e.Account.ID,
		EmployeeCode:      e.Account.EmployeeCode,
		Email:             e.Account.Email,
		Role:              string(e.Account.Role),
		FirstName:         e.Profile.FirstName,
		LastName:          e.Profile.LastName,
		Phone:             e.Profile.Phone,
		Department:        e.Profile.Department,
		JobTitle:          e.Profile.JobTitle,
		ProfilePictureURL: e.Profile.ProfilePictureURL,
		JoinDate:          formatOptionalDate(e.Profile.JoinDate),
	}
}

type EmployeeDetailResponse struct {
	EmployeeResponse

	IsVerified     bool       `json:"is_verified"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	Address        *string    `json:"address,omitempty"`
	DateOfBirth    *string    `json:"date_of_birth,omitempty"`
	Gender         *Gender    `json:"gender,omitempty"`
	About          *string    `json:"about,omitempty"`
	Skills         []string   `json:"skills"`
	Certifications []string   `json:"certifications"`
	Nationality    *string    `json:"nationality,omitempty"`
	MaritalStatus  *string    `json:"marital_status,omitempty"`
	PANNumber      *string    `json:"pan_number,omitempty"`
	UANNumber      *string    `json:"uan_number,omitempty"`
	BankAccount    *string    `json:"bank_account,omitempty"`
	IFSCCode       *string    `json:"ifsc_code,omitempty"`

	BaseSalary      decimal.NullDecimal `json:"base_salary"`
	SalaryStructure *payroll.Breakdown  `json:"salary_structure,omitempty"`
}

func NewEmployeeDetailResponse(e Employee) EmployeeDetailResponse {
	skills := e.Profile.Skills
	if skills == nil {
		skills = []string{}
	}
	certs := e.Profile.Certifications
	if certs == nil {
		certs = []string{}
	}
	return EmployeeDetailResponse{
		EmployeeResponse: NewEmployeeResponse(e),
		IsVerified:       e.Account.IsVerified,
		LastLogin:        e.Account.LastLogin,
		Address:          e.Profile.Address,
		DateOfBirth:      formatOptionalDate(e.Profile.DateOfBirth),
		Gender:           e.Profile.Gender,
		About:            e.Profile.About,
		Skills:           skills,
		Certifications:   certs,
		Nationality:      e.Profile.Nationality,
		MaritalStatus:    e.Profile.MaritalStatus,
		PANNumber:        e.Profile.PANNumber,
		UANNumber:        e.Profile.UANNumber,
		BankAccount:      e.Profile.BankAccount,
		IFSCCode:         e.Profile.IFSCCode,
		BaseSalary:       e.Profile.BaseWage,
	}
}

func formatOptionalDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := datetime.FormatDate(*d)
	return &s
}
