package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CH-Shireesha/teacher-management/core"
	"github.com/CH-Shireesha/teacher-management/core/payment"
	"github.com/CH-Shireesha/teacher-management/core/teacher"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Activity struct {
	ID          int       `json:"id"`
	Action      string    `json:"action"`
	TeacherName string    `json:"teacher"`
	Time        time.Time `json:"time"` // UTC
	Severity    Severity  `json:"severity"`
}

type Repository interface {
	RecordActivity(a Activity) (Activity, error)
	// RecentActivity returns up to n entries, newest first.
	RecentActivity(n int) ([]Activity, error)
}

// Stats are derived from the live teacher/payment collections rather than
// maintained independently, so they cannot drift.
type Stats struct {
	TotalTeachers   int             `json:"total_teachers"`
	ActiveTeachers  int             `json:"active_teachers"`
	TotalPayments   int             `json:"total_payments"`
	PendingPayments int             `json:"pending_payments"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
}

type Service struct {
	teachers teacher.Repository
	payments payment.Repository
	activity Repository
	logger   core.Logger
}

// nowFunc is swapped out in tests.
var nowFunc = time.Now

func NewService(teachers teacher.Repository, payments payment.Repository, activity Repository, logger core.Logger) *Service {
	return &Service{teachers: teachers, payments: payments, activity: activity, logger: logger}
}

func (svc *Service) Stats() (Stats, error) {
	var stats Stats

	teachers, err := svc.teachers.QueryAllTeachers()
	if err != nil {
		return Stats{}, err
	}
	stats.TotalTeachers = len(teachers)
	for _, t := range teachers {
		if t.IsActive() {
			stats.ActiveTeachers++
		}
	}

	payments, err := svc.payments.QueryAllPayments()
	if err != nil {
		return Stats{}, err
	}
	stats.TotalPayments = len(payments)

	now := nowFunc().UTC()
	for _, p := range payments {
		if p.Status == payment.StatusPending {
			stats.PendingPayments++
		}
		if p.Status == payment.StatusCompleted &&
			p.Date.Year() == now.Year() && p.Date.Month() == now.Month() {
			stats.MonthlyExpenses = stats.MonthlyExpenses.Add(p.Amount)
		}
	}
	return stats, nil
}

func (svc *Service) Recent(n int) ([]Activity, error) {
	return svc.activity.RecentActivity(n)
}

// Lifecycle event recorders; wired as the teacher/payment services'
// ActivityRecorder.

var (
	_ teacher.ActivityRecorder = (*Service)(nil)
	_ payment.ActivityRecorder = (*Service)(nil)
)

func (svc *Service) TeacherAdded(t teacher.Teacher) {
	svc.record("New teacher added", t.FullName, SeveritySuccess)
}

func (svc *Service) TeacherUpdated(t teacher.Teacher) {
	svc.record("Profile updated", t.FullName, SeverityWarning)
}

func (svc *Service) PaymentProcessed(p payment.Payment) {
	svc.record("Payment processed", p.TeacherName, SeverityInfo)
}

func (svc *Service) PaymentPending(p payment.Payment) {
	svc.record("Payment pending", p.TeacherName, SeverityError)
}

func (svc *Service) record(action, teacherName string, sev Severity) {
	a := Activity{
		Action:      action,
		TeacherName: teacherName,
		Time:        nowFunc().UTC(),
		Severity:    sev,
	}
	if _, err := svc.activity.RecordActivity(a); err != nil {
		svc.logger.Error("recording activity: "+action, err)
	}
}

// RelativeTime renders the feed's relative-time label for t as of now.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
