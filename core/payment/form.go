package payment

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/CH-Shireesha/teacher-management/core"
)

type FormState string

const (
	StateCollecting FormState = "collecting"
	StateSuccess    FormState = "success"
)

var ErrNotCollecting = errors.New("a submission is already in progress")

// Form collects a payment intent and drives it through submission. Submit
// rejects the intent while the teacher is unset or the amount non-positive
// (the only validation gate) and the form then stays in collecting with
// nothing emitted. After a successful submission the success state is shown
// for a fixed duration, then every field resets.
type Form struct {
	svc *Service

	mu         sync.Mutex
	state      FormState
	intent     NewPayment
	resetTimer core.Timer
}

func NewForm(svc *Service) *Form {
	return &Form{svc: svc, state: StateCollecting}
}

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Intent() NewPayment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.intent
}

func (f *Form) SetTeacher(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intent.TeacherID = id
}

func (f *Form) SetAmount(amount decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intent.Amount = amount
}

func (f *Form) SetMethod(m Method) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intent.Method = m
}

func (f *Form) SetDescription(d string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intent.Description = d
}

// Submit processes the collected intent. Non-UPI methods synthesize exactly
// one completed Payment immediately; the upi method branches into the
// returned UpiFlow, which emits the Payment when its simulated processing
// succeeds. A validation failure leaves the form collecting, untouched.
func (f *Form) Submit() (Payment, *UpiFlow, error) {
	f.mu.Lock()
	if f.state != StateCollecting {
		f.mu.Unlock()
		return Payment{}, nil, ErrNotCollecting
	}
	intent := f.intent
	f.mu.Unlock()

	if intent.Method == MethodUpi {
		_, flow, err := f.svc.CreateUpi(intent, f.succeed)
		if err != nil {
			return Payment{}, nil, err
		}
		return Payment{}, flow, nil
	}

	p, err := f.svc.Create(intent)
	if err != nil {
		return Payment{}, nil, err
	}
	f.succeed(p)
	return p, nil, nil
}

// succeed shows the success state, scheduling the reset back to collecting.
func (f *Form) succeed(Payment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateSuccess
	f.resetTimer = f.svc.sched.AfterFunc(f.svc.successDelay, f.reset)
}

func (f *Form) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intent = NewPayment{}
	f.state = StateCollecting
}
