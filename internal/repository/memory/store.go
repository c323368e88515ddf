// Package memory provides map-backed repositories that enforce the same
// unique keys and conditional updates as the PostgreSQL schema. Services
// are tested against it.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/company"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	now    func() time.Time

	company    *company.Company
	accounts   map[int64]user.Account
	profiles   map[int64]employee.Profile // keyed by account id
	attendance map[int64]attendance.Attendance
	leaves     map[int64]leave.LeaveRequest
	salaries   map[string]payroll.SalaryStructure
}

func NewStore() *Store {
	return &Store{
		now:        time.Now,
		accounts:   make(map[int64]user.Account),
		profiles:   make(map[int64]employee.Profile),
		attendance: make(map[int64]attendance.Attendance),
		leaves:     make(map[int64]leave.LeaveRequest),
		salaries:   make(map[string]payroll.SalaryStructure),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) Accounts() user.AccountRepository { return accountRepo{s} }
func (s *Store) Companies() company.CompanyRepository { return companyRepo{s} }
func (s *Store) Employees() employee.EmployeeRepository { return employeeRepo{s} }
func (s *Store) Attendance() attendance.AttendanceRepository { return attendanceRepo{s} }
func (s *Store) LeaveRequests() leave.LeaveRequestRepository { return leaveRepo{s} }
func (s *Store) Salaries() payroll.SalaryStructureRepository { return salaryRepo{s} }
func (s *Store) Transactor() database.Transactor { return transactor{} }

// transactor runs fn directly; the store has no rollback.
type transactor struct{}

func (transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---------- accounts ----------

type accountRepo struct{ s *Store }

func (r accountRepo) Create(_ context.Context, a user.Account) (user.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.accounts {
		if existing.Email == a.Email {
			return user.Account{}, user.ErrEmailExists
		}
		if existing.EmployeeCode == a.EmployeeCode {
			return user.Account{}, user.ErrEmployeeCodeExists
		}
	}
	a.ID = r.s.id()
	a.CreatedAt = r.s.now()
	a.UpdatedAt = a.CreatedAt
	r.s.accounts[a.ID] = a
	return a, nil
}

func (r accountRepo) find(match func(user.Account) bool) (user.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if match(a) {
			return a, nil
		}
	}
	return user.Account{}, user.ErrAccountNotFound
}

func (r accountRepo) GetByID(_ context.Context, id int64) (user.Account, error) {
	return r.find(func(a user.Account) bool { return a.ID == id })
}

func (r accountRepo) GetByEmail(_ context.Context, email string) (user.Account, error) {
	return r.find(func(a user.Account) bool { return a.Email == email })
}

func (r accountRepo) GetByEmployeeCode(_ context.Context, code string) (user.Account, error) {
	return r.find(func(a user.Account) bool { return a.EmployeeCode == code })
}

func (r accountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r accountRepo) CountByEmployeeCodePrefix(_ context.Context, prefix string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, a := range r.s.accounts {
		if strings.HasPrefix(a.EmployeeCode, prefix) {
			n++
		}
	}
	return n, nil
}

func (r accountRepo) update(id int64, fn func(*user.Account)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return user.ErrAccountNotFound
	}
	fn(&a)
	a.UpdatedAt = r.s.now()
	r.s.accounts[id] = a
	return nil
}

func (r accountRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	return r.update(id, func(a *user.Account) { a.LastLogin = &at })
}

func (r accountRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	return r.update(id, func(a *user.Account) { a.PasswordHash = hash })
}

// ---------- company ----------

type companyRepo struct{ s *Store }

func (r companyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.company != nil {
		return company.Company{}, company.ErrCompanyExists
	}
	c.ID = r.s.id()
	c.CreatedAt = r.s.now()
	r.s.company = &c
	return c, nil
}

func (r companyRepo) Get(_ context.Context) (company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.company == nil {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return *r.s.company, nil
}

// ---------- employee profiles ----------

type employeeRepo struct{ s *Store }

func (r employeeRepo) CreateProfile(_ context.Context, p employee.Profile) (employee.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.profiles[p.AccountID]; ok {
		return employee.Profile{}, employee.ErrProfileExists
	}
	p.ID = r.s.id()
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.profiles[p.AccountID] = p
	return p, nil
}

func (r employeeRepo) GetProfile(_ context.Context, accountID int64) (employee.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[accountID]
	if !ok {
		return employee.Profile{}, employee.ErrEmployeeNotFound
	}
	return p, nil
}

func (r employeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []employee.Employee
	for id, p := range r.s.profiles {
		a, ok := r.s.accounts[id]
		if !ok || (filter.ExcludeRole != nil && a.Role == *filter.ExcludeRole) {
			continue
		}
		out = append(out, employee.Employee{Account: a, Profile: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account.ID < out[j].Account.ID })
	return out, nil
}

func (r employeeRepo) UpdateProfile(_ context.Context, accountID int64, u employee.ProfileUpdate) error {
	return r.update(accountID, func(p *employee.Profile) {
		set := func(dst **string, src *string) {
			if src != nil {
				v := *src
				*dst = &v
			}
		}
		if u.FirstName != nil {
			p.FirstName = *u.FirstName
		}
		if u.LastName != nil {
			p.LastName = *u.LastName
		}
		set(&p.Phone, u.Phone)
		set(&p.Address, u.Address)
		set(&p.ProfilePictureURL, u.ProfilePictureURL)
		set(&p.Department, u.Department)
		set(&p.JobTitle, u.JobTitle)
		set(&p.About, u.About)
		set(&p.Nationality, u.Nationality)
		set(&p.MaritalStatus, u.MaritalStatus)
		set(&p.PANNumber, u.PANNumber)
		set(&p.UANNumber, u.UANNumber)
		set(&p.BankAccount, u.BankAccount)
		set(&p.IFSCCode, u.IFSCCode)
		if u.DateOfBirth != nil {
			p.DateOfBirth = u.DateOfBirth
		}
		if u.Gender != nil {
			p.Gender = u.Gender
		}
		if u.Skills != nil {
			p.Skills = slices.Clone(*u.Skills)
		}
		if u.Certifications != nil {
			p.Certifications = slices.Clone(*u.Certifications)
		}
	})
}

func (r employeeRepo) UpdateBaseWage(_ context.Context, accountID int64, wage decimal.Decimal) error {
	return r.update(accountID, func(p *employee.Profile) {
		p.BaseWage = decimal.NullDecimal{Decimal: wage, Valid: true}
	})
}

func (r employeeRepo) update(accountID int64, fn func(*employee.Profile)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[accountID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	fn(&p)
	p.UpdatedAt = r.s.now()
	r.s.profiles[accountID] = p
	return nil
}

// ---------- attendance ----------

type attendanceRepo struct{ s *Store }

func (r attendanceRepo) CheckIn(_ context.Context, accountID int64, date, at time.Time) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	date = datetime.DateOf(date)
	for id, a := range r.s.attendance {
		if a.AccountID == accountID && a.Date.Equal(date) {
			if a.HasCheckIn() {
				return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
			}
			a.CheckIn = &at
			r.s.attendance[id] = a
			return a, nil
		}
	}
	a := attendance.Attendance{
		ID:        r.s.id(),
		AccountID: accountID,
		Date:      date,
		CheckIn:   &at,
		CreatedAt: r.s.now(),
	}
	a.UpdatedAt = a.CreatedAt
	r.s.attendance[a.ID] = a
	return a, nil
}

func (r attendanceRepo) CheckOut(_ context.Context, id int64, at time.Time, remarks *string) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.attendance[id]
	switch {
	case !ok:
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	case !a.HasCheckIn():
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	case a.HasCheckOut():
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}
	a.CheckOut = &at
	if remarks != nil {
		a.Remarks = remarks
	}
	a.UpdatedAt = r.s.now()
	r.s.attendance[id] = a
	return a, nil
}

func (r attendanceRepo) GetByAccountAndDate(_ context.Context, accountID int64, date time.Time) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	date = datetime.DateOf(date)
	for _, a := range r.s.attendance {
		if a.AccountID == accountID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r attendanceRepo) ListByAccount(_ context.Context, accountID int64, f attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []attendance.Attendance
	for _, a := range r.s.attendance {
		if a.AccountID != accountID ||
			(f.StartDate != nil && a.Date.Before(*f.StartDate)) ||
			(f.EndDate != nil && a.Date.After(*f.EndDate)) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r attendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	date = datetime.DateOf(date)
	var out []attendance.Attendance
	for _, a := range r.s.attendance {
		if a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}

// ---------- leave requests ----------

type leaveRepo struct{ s *Store }

// withNames fills the joined employee code and name; callers hold the lock.
func (r leaveRepo) withNames(l leave.LeaveRequest) leave.LeaveRequest {
	if a, ok := r.s.accounts[l.AccountID]; ok {
		code := a.EmployeeCode
		l.EmployeeCode = &code
	}
	if p, ok := r.s.profiles[l.AccountID]; ok {
		if name := p.FullName(); name != "" {
			l.EmployeeName = &name
		}
	}
	return l
}

func (r leaveRepo) Create(_ context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = r.s.id()
	l.CreatedAt = r.s.now()
	l.UpdatedAt = l.CreatedAt
	r.s.leaves[l.ID] = l
	return l, nil
}

func (r leaveRepo) GetByID(_ context.Context, id int64) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r.withNames(l), nil
}

func (r leaveRepo) List(_ context.Context, f leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	return r.list(func(l leave.LeaveRequest) bool {
		return (f.AccountID == nil || l.AccountID == *f.AccountID) &&
			(f.Status == nil || l.Status == *f.Status)
	}, func(a, b leave.LeaveRequest) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

func (r leaveRepo) ListApprovedOverlapping(_ context.Context, accountID *int64, start, end time.Time) ([]leave.LeaveRequest, error) {
	return r.list(func(l leave.LeaveRequest) bool {
		return l.Status == leave.LeaveRequestStatusApproved &&
			(accountID == nil || l.AccountID == *accountID) &&
			l.Overlaps(start, end)
	}, func(a, b leave.LeaveRequest) bool {
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.ID < b.ID
	})
}

func (r leaveRepo) list(match func(leave.LeaveRequest) bool, less func(a, b leave.LeaveRequest) bool) ([]leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []leave.LeaveRequest
	for _, l := range r.s.leaves {
		if match(l) {
			out = append(out, r.withNames(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

func (r leaveRepo) Decide(_ context.Context, id int64, status leave.LeaveRequestStatus, approverID int64, at time.Time) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.leaves[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if err := l.Decide(status, approverID, at); err != nil {
		return leave.LeaveRequest{}, err
	}
	r.s.leaves[id] = l
	return l, nil
}

// ---------- salary structures ----------

type salaryRepo struct{ s *Store }

func (r salaryRepo) GetByEmployeeCode(_ context.Context, code string) (payroll.SalaryStructure, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.salaries[code]
	if !ok {
		return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
	}
	return st, nil
}

func (r salaryRepo) Upsert(_ context.Context, st payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	if existing, ok := r.s.salaries[st.EmployeeCode]; ok {
		st.ID = existing.ID
		st.CreatedAt = existing.CreatedAt
	} else {
		st.ID = r.s.id()
		st.CreatedAt = now
	}
	st.UpdatedAt = now
	r.s.salaries[st.EmployeeCode] = st
	return st, nil
}
