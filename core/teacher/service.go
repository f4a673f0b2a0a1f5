package teacher

import (
	"errors"
	"time"

	"github.com/CH-Shireesha/teacher-management/core"
)

var (
	// errors
	ErrNotFound    = errors.New("teacher not found")
	ErrEmailExists = errors.New("a teacher with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(email string, excluded ...Teacher) error
		CreateTeacher(t Teacher) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
		GetTeacherByID(id string) (Teacher, error)
		// FilterTeachers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of
		// Teacher.FullName, Teacher.Email or Teacher.Role; QueryFilter.Role
		// ("all" disables it) a case-insensitive match on Teacher.Role.
		// Insertion order is preserved.
		FilterTeachers(filter QueryFilter) ([]Teacher, error)
		UpdateTeacher(t Teacher) (Teacher, error)
		QueryScheduleByTeacherID(id string) ([]ScheduleSession, error)
		CreateScheduleSessions(teacherID string, sessions ...ScheduleSession) error
	}

	// ActivityRecorder receives teacher lifecycle events for the dashboard feed.
	ActivityRecorder interface {
		TeacherAdded(t Teacher)
		TeacherUpdated(t Teacher)
	}

	Service struct {
		repo     Repository
		activity ActivityRecorder
	}
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

func NewService(repo Repository, activity ActivityRecorder) *Service {
	return &Service{repo: repo, activity: activity}
}

func (svc *Service) checkUniqueness(email string, excl ...Teacher) error {
	if err := svc.repo.CheckEmailUniqueness(email, excl...); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(nt NewTeacher) (Teacher, error) {
	if err := nt.Validate(); err != nil {
		return Teacher{}, err
	}
	if err := svc.checkUniqueness(nt.Email); err != nil {
		return Teacher{}, err
	}

	now := nowFunc().UTC()
	joined := nt.JoinedDate
	if joined.IsZero() {
		joined = now
	}
	t := Teacher{
		FullName:             nt.FullName,
		Email:                nt.Email,
		PhoneNumber:          nt.PhoneNumber,
		Role:                 nt.Role,
		DateOfBirth:          nt.DateOfBirth,
		Address:              nt.Address,
		HighestQualification: nt.HighestQualification,
		Salary:               nt.Salary,
		SalaryType:           nt.SalaryType,
		JoinedDate:           joined,
		Status:               StatusActive,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, q := range nt.PrivateQualifications {
		t.PrivateQualifications = append(t.PrivateQualifications, PrivateQualification{
			Subject:    q.Subject,
			HourlyRate: q.HourlyRate,
		})
	}
	for _, q := range nt.GroupQualifications {
		t.GroupQualifications = append(t.GroupQualifications, GroupQualification{
			Subject:     q.Subject,
			HourlyRate:  q.HourlyRate,
			MaxStudents: q.MaxStudents,
		})
	}

	t, err := svc.repo.CreateTeacher(t)
	if err != nil {
		return Teacher{}, err
	}
	if svc.activity != nil {
		svc.activity.TeacherAdded(t)
	}
	return t, nil
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

func (svc *Service) GetByID(id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Teacher, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllTeachers()
	}
	return svc.repo.FilterTeachers(filter)
}

// Update merges the patch through an edit projection so a failed write never
// leaves a half-applied record behind.
func (svc *Service) Update(id string, ut UpdateTeacher) (Teacher, error) {
	if err := ut.Validate(); err != nil {
		return Teacher{}, err
	}

	orig, err := svc.repo.GetTeacherByID(id)
	if err != nil {
		return Teacher{}, err
	}
	if ut.Email != "" && ut.Email != orig.Email {
		if err := svc.checkUniqueness(ut.Email, orig); err != nil {
			return Teacher{}, err
		}
	}

	ed := NewEditor(orig)
	ed.Begin()
	ed.Apply(ut)

	t, err := svc.repo.UpdateTeacher(ed.Commit())
	if err != nil {
		return Teacher{}, err
	}
	if svc.activity != nil {
		svc.activity.TeacherUpdated(t)
	}
	return t, nil
}

// Schedule computes the weekly grid for one teacher.
func (svc *Service) Schedule(id string) (ScheduleGrid, error) {
	if _, err := svc.repo.GetTeacherByID(id); err != nil {
		return ScheduleGrid{}, err
	}
	sessions, err := svc.repo.QueryScheduleByTeacherID(id)
	if err != nil {
		return ScheduleGrid{}, err
	}
	return NewScheduleGrid(sessions), nil
}
