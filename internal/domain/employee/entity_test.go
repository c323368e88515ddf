package employee

import (
	"strings"
	"testing"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdate_SelfService(t *testing.T) {
	skills := []string{"go", "sql"}
	req := UpdateEmployeeRequest{
		FirstName:   strPtr("Renamed"),
		Department:  strPtr("Finance"),
		Phone:       strPtr("9876543210"),
		About:       strPtr("Backend engineer"),
		Skills:      &skills,
		BankAccount: strPtr("123456789"),
	}
	require.NoError(t, req.Validate())

	self := req.ToProfileUpdate().SelfService()
	assert.Nil(t, self.FirstName)
	assert.Nil(t, self.Department)
	assert.Nil(t, self.BankAccount)
	require.NotNil(t, self.Phone)
	assert.Equal(t, "9876543210", *self.Phone)
	require.NotNil(t, self.Skills)
	assert.Equal(t, skills, *self.Skills)
	assert.False(t, self.IsEmpty())

	onlyPrivate := UpdateEmployeeRequest{PANNumber: strPtr("ABCDE1234F")}
	assert.True(t, onlyPrivate.ToProfileUpdate().SelfService().IsEmpty())
}

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	bad := UpdateEmployeeRequest{
		FirstName:   strPtr(" "),
		DateOfBirth: strPtr("1990-13-01"),
		Gender:      strPtr("unknown"),
	}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_name")
	assert.Contains(t, err.Error(), "date_of_birth")
	assert.Contains(t, err.Error(), "gender")

	good := UpdateEmployeeRequest{DateOfBirth: strPtr("1990-01-31"), Gender: strPtr("female")}
	require.NoError(t, good.Validate())
	u := good.ToProfileUpdate()
	require.NotNil(t, u.DateOfBirth)
	assert.Equal(t, 1990, u.DateOfBirth.Year())
	assert.Equal(t, GenderFemale, *u.Gender)
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	req := CreateEmployeeRequest{FirstName: "John", LastName: "Doe", Email: "john@dayflow.io", JoinDate: "2024-04-01"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "employee", string(req.RoleOrDefault()))

	req.Role = "owner"
	req.Email = "john"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
	assert.Contains(t, err.Error(), "email")
}

func TestEmployeeRequests_ColumnLimits(t *testing.T) {
	long := strings.Repeat("x", 101)
	huge := decimal.NewFromInt(10_000_000_000)
	subCent := decimal.RequireFromString("1000.001")

	create := func(mutate func(r *CreateEmployeeRequest)) error {
		req := CreateEmployeeRequest{FirstName: "John", LastName: "Doe", Email: "john@dayflow.io", JoinDate: "2024-04-01"}
		mutate(&req)
		return req.Validate()
	}

	cases := []struct {
		name  string
		err   error
		field string
	}{
		{"create first name", create(func(r *CreateEmployeeRequest) { r.FirstName = long }), "first_name"},
		{"create last name", create(func(r *CreateEmployeeRequest) { r.LastName = long }), "last_name"},
		{"create department", create(func(r *CreateEmployeeRequest) { r.Department = &long }), "department"},
		{"create job title", create(func(r *CreateEmployeeRequest) { r.JobTitle = &long }), "job_title"},
		{"create salary overflow", create(func(r *CreateEmployeeRequest) { r.BaseSalary = &huge }), "base_salary"},
		{"create salary sub-cent", create(func(r *CreateEmployeeRequest) { r.BaseSalary = &subCent }), "base_salary"},
		{"update last name", (&UpdateEmployeeRequest{LastName: &long}).Validate(), "last_name"},
		{"update job title", (&UpdateEmployeeRequest{JobTitle: &long}).Validate(), "job_title"},
		{"update ifsc", (&UpdateEmployeeRequest{IFSCCode: strPtr("HDFC00001234")}).Validate(), "ifsc_code"},
		{"update pan", (&UpdateEmployeeRequest{PANNumber: strPtr(strings.Repeat("P", 21))}).Validate(), "pan_number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var verrs validator.ValidationErrors
			require.ErrorAs(t, tc.err, &verrs)
			assert.Contains(t, verrs.ToMap(), tc.field)
		})
	}

	exact := strings.Repeat("é", 100)
	assert.NoError(t, create(func(r *CreateEmployeeRequest) { r.FirstName = exact; r.Department = &exact }))
}
