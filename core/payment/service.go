package payment

import (
	"errors"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/CH-Shireesha/teacher-management/core"
	"github.com/CH-Shireesha/teacher-management/core/teacher"
)

var (
	// errors
	ErrNotFound = errors.New("payment not found")
)

type (
	Repository interface {
		CreatePayment(p Payment) (Payment, error)
		QueryAllPayments() ([]Payment, error)
		GetPaymentByID(id string) (Payment, error)
		GetPaymentByTransactionID(txn string) (Payment, error)
		// FilterPayments applies AND operation on available QueryFilter fields.
		FilterPayments(filter QueryFilter) ([]Payment, error)
		UpdatePaymentStatus(id string, status Status) (Payment, error)
		DeletePayment(id string) error
	}

	// Directory resolves teacher display data at submission time.
	Directory interface {
		GetTeacherByID(id string) (teacher.Teacher, error)
	}

	// ActivityRecorder receives payment lifecycle events for the dashboard feed.
	ActivityRecorder interface {
		PaymentProcessed(p Payment)
		PaymentPending(p Payment)
	}

	Service struct {
		repo     Repository
		dir      Directory
		mailSvc  core.EmailService
		logger   core.Logger
		activity ActivityRecorder
		sched    core.Scheduler

		processingDelay time.Duration
		successDelay    time.Duration

		mu    sync.Mutex
		flows map[string]*UpiFlow // keyed by transaction id
	}
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

func NewService(
	repo Repository,
	dir Directory,
	mailSvc core.EmailService,
	logger core.Logger,
	activity ActivityRecorder,
	sched core.Scheduler,
	conf *core.Config,
) *Service {
	return &Service{
		repo:            repo,
		dir:             dir,
		mailSvc:         mailSvc,
		logger:          logger,
		activity:        activity,
		sched:           sched,
		processingDelay: conf.Payment.UpiProcessingDelay,
		successDelay:    conf.Payment.SuccessDisplayDelay,
		flows:           make(map[string]*UpiFlow),
	}
}

// resolveTeacherName looks the teacher up at submission time. A miss degrades
// to an empty name instead of failing the flow.
func (svc *Service) resolveTeacherName(id string) string {
	t, err := svc.dir.GetTeacherByID(id)
	if err != nil {
		return ""
	}
	return t.FullName
}

// Create processes a direct (non-UPI) payment: the record is synthesized
// completed immediately, with no intermediate state observable by the caller.
func (svc *Service) Create(np NewPayment) (Payment, error) {
	if err := np.Validate(); err != nil {
		return Payment{}, err
	}

	p := Payment{
		TeacherID:   np.TeacherID,
		TeacherName: svc.resolveTeacherName(np.TeacherID),
		Amount:      np.Amount,
		Method:      np.Method,
		Date:        nowFunc().UTC(),
		Status:      StatusCompleted,
		Description: np.Description,
	}
	p, err := svc.repo.CreatePayment(p)
	if err != nil {
		return Payment{}, err
	}
	if svc.activity != nil {
		svc.activity.PaymentProcessed(p)
	}
	svc.sendReceipt(p)
	return p, nil
}

// CreateUpi starts the simulated UPI flow: a pending record is stored under a
// fresh transaction id and a UpiFlow drives it to completed. onDone, when not
// nil, is invoked with the completed payment exactly once.
func (svc *Service) CreateUpi(np NewPayment, onDone func(Payment)) (Payment, *UpiFlow, error) {
	if err := np.Validate(); err != nil {
		return Payment{}, nil, err
	}
	if np.Method != MethodUpi {
		return Payment{}, nil, fmt.Errorf("payment method %q is not upi", np.Method)
	}

	p := Payment{
		TeacherID:     np.TeacherID,
		TeacherName:   svc.resolveTeacherName(np.TeacherID),
		Amount:        np.Amount,
		Method:        MethodUpi,
		Date:          nowFunc().UTC(),
		Status:        StatusPending,
		Description:   np.Description,
		TransactionID: NewTransactionID(),
	}
	p, err := svc.repo.CreatePayment(p)
	if err != nil {
		return Payment{}, nil, err
	}
	if svc.activity != nil {
		svc.activity.PaymentPending(p)
	}

	flow := newUpiFlow(svc, p, onDone)
	svc.mu.Lock()
	svc.flows[p.TransactionID] = flow
	svc.mu.Unlock()
	return p, flow, nil
}

// CancelUpi closes an in-flight UPI flow by transaction id. Completed or
// unknown transactions report ErrNotFound.
func (svc *Service) CancelUpi(txn string) error {
	svc.mu.Lock()
	flow, ok := svc.flows[txn]
	svc.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	flow.mu.Lock()
	completed := flow.completed
	flow.mu.Unlock()
	if completed {
		return ErrNotFound
	}
	return flow.Close()
}

func (svc *Service) QueryAll() ([]Payment, error) {
	return svc.repo.QueryAllPayments()
}

func (svc *Service) GetByID(id string) (Payment, error) {
	return svc.repo.GetPaymentByID(id)
}

// GetByTransactionID resolves a UPI payment by its transaction id; callers
// poll it to watch a pending record flip to completed.
func (svc *Service) GetByTransactionID(txn string) (Payment, error) {
	return svc.repo.GetPaymentByTransactionID(txn)
}

func (svc *Service) Filter(filter QueryFilter) ([]Payment, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllPayments()
	}
	return svc.repo.FilterPayments(filter)
}

// completeUpi flips the pending record to completed and emits the side effects.
func (svc *Service) completeUpi(pending Payment) (Payment, error) {
	p, err := svc.repo.UpdatePaymentStatus(pending.ID, StatusCompleted)
	if err != nil {
		return Payment{}, err
	}
	if svc.activity != nil {
		svc.activity.PaymentProcessed(p)
	}
	svc.sendReceipt(p)
	return p, nil
}

// abandonUpi withdraws a pending record whose flow was closed before
// completion. Nothing is emitted.
func (svc *Service) abandonUpi(pending Payment) {
	if err := svc.repo.DeletePayment(pending.ID); err != nil {
		svc.logger.Error("withdrawing pending upi payment "+pending.TransactionID, err)
	}
	svc.unregisterFlow(pending.TransactionID)
}

func (svc *Service) unregisterFlow(txn string) {
	svc.mu.Lock()
	delete(svc.flows, txn)
	svc.mu.Unlock()
}

// sendReceipt mails a receipt to the teacher. A directory miss skips it.
func (svc *Service) sendReceipt(p Payment) {
	t, err := svc.dir.GetTeacherByID(p.TeacherID)
	if err != nil {
		return
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nA payment of %s via %s was processed on %s.",
		t.FullName, p.Amount.StringFixed(2), p.Method, p.Date.Format("2 Jan 2006"),
	)
	if p.TransactionID != "" {
		body += "\nTransaction ID: " + p.TransactionID
	}
	if p.Description != "" {
		body += "\n\n" + p.Description
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: t.FullName, Address: t.Email}},
		Subject: "Payment receipt",
		BodyStr: body,
	})
}
