package teacher

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CH-Shireesha/teacher-management/core"
)

type (
	SalaryType string
	Status     string
)

const (
	SalaryHourly SalaryType = "hourly"
	SalaryFixed  SalaryType = "fixed"

	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Teacher struct {
	ID                    string                 `json:"id"`
	FullName              string                 `json:"full_name"`
	Email                 string                 `json:"email"`
	PhoneNumber           string                 `json:"phone_number"`
	Role                  string                 `json:"role"`
	DateOfBirth           time.Time              `json:"date_of_birth"`
	Address               string                 `json:"address"`
	HighestQualification  string                 `json:"highest_qualification"`
	Salary                decimal.Decimal        `json:"salary"`
	SalaryType            SalaryType             `json:"salary_type"`
	PrivateQualifications []PrivateQualification `json:"private_qualifications"`
	GroupQualifications   []GroupQualification   `json:"group_qualifications,omitempty"`
	JoinedDate            time.Time              `json:"joined_date"`
	Status                Status                 `json:"status"`
	CreatedAt             time.Time              `json:"created_at"` // UTC
	UpdatedAt             time.Time              `json:"updated_at"` // UTC
}

type PrivateQualification struct {
	ID         string          `json:"id"`
	Subject    string          `json:"subject"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

type GroupQualification struct {
	ID          string          `json:"id"`
	Subject     string          `json:"subject"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	MaxStudents int             `json:"max_students"`
}

func (t Teacher) IsActive() bool { return t.Status == StatusActive }

// Matches reports whether the teacher passes the directory filter: the search
// keyword (case-insensitive) must appear in FullName, Email or Role, and the
// role filter ("all" or empty matches everything) must appear in Role.
func (t Teacher) Matches(search, role string) bool {
	if search != "" &&
		!core.ContainsFold(t.FullName, search) &&
		!core.ContainsFold(t.Email, search) &&
		!core.ContainsFold(t.Role, search) {
		return false
	}
	if role != "" && role != RoleFilterAll && !core.ContainsFold(t.Role, role) {
		return false
	}
	return true
}

// clone returns a deep copy; qualification slices are never shared.
func (t Teacher) clone() Teacher {
	cp := t
	if t.PrivateQualifications != nil {
		cp.PrivateQualifications = make([]PrivateQualification, len(t.PrivateQualifications))
		copy(cp.PrivateQualifications, t.PrivateQualifications)
	}
	if t.GroupQualifications != nil {
		cp.GroupQualifications = make([]GroupQualification, len(t.GroupQualifications))
		copy(cp.GroupQualifications, t.GroupQualifications)
	}
	return cp
}

// RoleFilterAll disables role filtering in QueryFilter.
const RoleFilterAll = "all"

type QueryFilter struct {
	Search string `query:"search"`
	Role   string `query:"role"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && (qf.Role == "" || qf.Role == RoleFilterAll)
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Role = core.CleanString(qf.Role)
}

// Filter returns the ordered subsequence of teachers matching the filter,
// preserving input order. An empty search matches everything.
func Filter(teachers []Teacher, qf QueryFilter) []Teacher {
	qf.Clean()
	res := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if t.Matches(qf.Search, qf.Role) {
			res = append(res, t)
		}
	}
	return res
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	FullName              string                  `json:"full_name" validate:"required"`
	Email                 string                  `json:"email" validate:"required,email"`
	PhoneNumber           string                  `json:"phone_number" validate:"required"`
	Role                  string                  `json:"role" validate:"required"`
	DateOfBirth           time.Time               `json:"date_of_birth" validate:"required"`
	Address               string                  `json:"address" validate:"required"`
	HighestQualification  string                  `json:"highest_qualification" validate:"required"`
	Salary                decimal.Decimal         `json:"salary" validate:"gt=0"`
	SalaryType            SalaryType              `json:"salary_type" validate:"required,oneof=hourly fixed"`
	PrivateQualifications []NewQualification      `json:"private_qualifications" validate:"required,min=1,dive"`
	GroupQualifications   []NewGroupQualification `json:"group_qualifications" validate:"omitempty,dive"`
	JoinedDate            time.Time               `json:"joined_date"`
}

type NewQualification struct {
	Subject    string          `json:"subject" validate:"required"`
	HourlyRate decimal.Decimal `json:"hourly_rate" validate:"gte=0"`
}

type NewGroupQualification struct {
	Subject     string          `json:"subject" validate:"required"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" validate:"gte=0"`
	MaxStudents int             `json:"max_students" validate:"gte=1"`
}

func (nt *NewTeacher) Validate() error {
	nt.FullName = core.CleanString(nt.FullName)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Role = core.CleanString(nt.Role)
	return core.Validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an existing
// Teacher. Zero-valued fields are left untouched.
type UpdateTeacher struct {
	FullName             string           `json:"full_name"`
	Email                string           `json:"email" validate:"omitempty,email"`
	PhoneNumber          string           `json:"phone_number"`
	Role                 string           `json:"role"`
	DateOfBirth          *time.Time       `json:"date_of_birth"`
	Address              string           `json:"address"`
	HighestQualification string           `json:"highest_qualification"`
	Salary               *decimal.Decimal `json:"salary" validate:"omitempty,gt=0"`
	SalaryType           *SalaryType      `json:"salary_type" validate:"omitempty,oneof=hourly fixed"`
	Status               *Status          `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (ut *UpdateTeacher) Validate() error {
	ut.FullName = core.CleanString(ut.FullName)
	ut.Email = core.CleanString(ut.Email, true /* lower */)
	ut.Role = core.CleanString(ut.Role)
	return core.Validate.Struct(ut)
}
