package payment

import (
	"errors"
	"math/rand"
	"strings"
	"sync"

	"github.com/CH-Shireesha/teacher-management/core"
)

type (
	UpiMethod string
	UpiStep   string
)

const (
	UpiMethodQR  UpiMethod = "qr"
	UpiMethodID  UpiMethod = "upi"
	UpiMethodApp UpiMethod = "app"

	StepMethodSelect UpiStep = "method-select"
	StepProcessing   UpiStep = "processing"
	StepSuccess      UpiStep = "success"
)

var (
	ErrFlowClosed     = errors.New("upi flow closed")
	ErrNotInitiable   = errors.New("upi flow already initiated")
	errUnknownUpiMeth = errors.New("unknown upi method")
)

const txnAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTransactionID allocates a mock UPI transaction identifier:
// "TXN" followed by 9 uppercase alphanumeric characters.
func NewTransactionID() string {
	var b strings.Builder
	b.WriteString("TXN")
	for i := 0; i < 9; i++ {
		b.WriteByte(txnAlphabet[rand.Intn(len(txnAlphabet))])
	}
	return b.String()
}

// UpiFlow is the simulated UPI sub-flow: method-select -> processing ->
// success, driven by scheduler delays standing in for the gateway round trip.
// There is no failure branch; reaching processing always leads to success
// unless the flow is closed first.
type UpiFlow struct {
	svc     *Service
	payment Payment // the pending record backing this flow

	mu        sync.Mutex
	step      UpiStep
	method    UpiMethod
	timer     core.Timer
	closed    bool
	completed bool
	onDone    func(Payment)
}

func newUpiFlow(svc *Service, p Payment, onDone func(Payment)) *UpiFlow {
	return &UpiFlow{
		svc:     svc,
		payment: p,
		step:    StepMethodSelect,
		method:  UpiMethodQR,
		onDone:  onDone,
	}
}

func (f *UpiFlow) Step() UpiStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *UpiFlow) TransactionID() string { return f.payment.TransactionID }

// SelectMethod picks the informational panel shown before processing starts.
// It has no effect on the synthesized transaction.
func (f *UpiFlow) SelectMethod(m UpiMethod) error {
	switch m {
	case UpiMethodQR, UpiMethodID, UpiMethodApp:
	default:
		return errUnknownUpiMeth
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFlowClosed
	}
	if f.step != StepMethodSelect {
		return ErrNotInitiable
	}
	f.method = m
	return nil
}

// Initiate starts the simulated processing stage. Success follows after the
// configured delay unless Close intervenes.
func (f *UpiFlow) Initiate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFlowClosed
	}
	if f.step != StepMethodSelect {
		return ErrNotInitiable
	}
	f.step = StepProcessing
	f.timer = f.svc.sched.AfterFunc(f.svc.processingDelay, f.complete)
	return nil
}

func (f *UpiFlow) complete() {
	f.mu.Lock()
	if f.closed || f.completed {
		f.mu.Unlock()
		return
	}
	f.step = StepSuccess
	f.completed = true
	// auto-dismiss after the success display duration
	f.timer = f.svc.sched.AfterFunc(f.svc.successDelay, f.dismiss)
	f.mu.Unlock()

	p, err := f.svc.completeUpi(f.payment)
	if err != nil {
		f.svc.logger.Error("completing upi payment "+f.payment.TransactionID, err)
		return
	}
	if f.onDone != nil {
		f.onDone(p)
	}
}

func (f *UpiFlow) dismiss() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.svc.unregisterFlow(f.payment.TransactionID)
}

// Close dismisses the dialog. Before completion it clears the pending timer,
// resets the sub-flow to method-select and withdraws the pending record, so no
// payment is ever emitted afterwards.
func (f *UpiFlow) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	if f.completed {
		f.mu.Unlock()
		f.svc.unregisterFlow(f.payment.TransactionID)
		return nil
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.step = StepMethodSelect
	f.mu.Unlock()

	f.svc.abandonUpi(f.payment)
	return nil
}
