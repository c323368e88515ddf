package employee

import (
	"strings"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

// Profile is the 1:1 personal record of an account.
type Profile struct {
	ID                int64
	AccountID         int64
	FirstName         string
	LastName          string
	Phone             *string
	Address           *string
	Department        *string
	JobTitle          *string
	ProfilePictureURL *string
	JoinDate          *time.Time
	DateOfBirth       *time.Time
	Gender            *Gender

	// Resume
	About          *string
	Skills         []string
	Certifications []string

	// Private info
	Nationality   *string
	MaritalStatus *string
	PANNumber     *string
	UANNumber     *string
	BankAccount   *string
	IFSCCode      *string

	BaseWage  decimal.NullDecimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Employee joins an account with its profile.
type Employee struct {
	Account user.Account
	Profile Profile
}

// ProfileUpdate carries the fields to change; nil means untouched.
type ProfileUpdate struct {
	FirstName         *string
	LastName          *string
	Phone             *string
	Address           *string
	ProfilePictureURL *string
	Department        *string
	JobTitle          *string
	DateOfBirth       *time.Time
	Gender            *Gender
	About             *string
	Skills            *[]string
	Certifications    *[]string
	Nationality       *string
	MaritalStatus     *string
	PANNumber         *string
	UANNumber         *string
	BankAccount       *string
	IFSCCode          *string
}

// SelfService drops every field an employee may not edit on their own profile.
func (u ProfileUpdate) SelfService() ProfileUpdate {
	return ProfileUpdate{
		Phone:             u.Phone,
		Address:           u.Address,
		ProfilePictureURL: u.ProfilePictureURL,
		About:             u.About,
		Skills:            u.Skills,
		Certifications:    u.Certifications,
	}
}

func (u ProfileUpdate) IsEmpty() bool {
	return u == ProfileUpdate{}
}
