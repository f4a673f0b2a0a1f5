package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CH-Shireesha/teacher-management/core"
)

type (
	Method string
	Status string
)

const (
	MethodBankTransfer  Method = "bank_transfer"
	MethodCash          Method = "cash"
	MethodCheck         Method = "check"
	MethodDigitalWallet Method = "digital_wallet"
	MethodUpi           Method = "upi"

	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

type Payment struct {
	ID        string `json:"id"`
	TeacherID string `json:"teacher_id"`
	// TeacherName is a snapshot taken at creation time; it is not re-resolved
	// and may drift from the teacher's current name. Acceptable for an
	// audit-style record.
	TeacherName   string          `json:"teacher_name"`
	Amount        decimal.Decimal `json:"amount"`
	Method        Method          `json:"payment_method"`
	Date          time.Time       `json:"date"`
	Status        Status          `json:"status"`
	Description   string          `json:"description,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"` // UPI only
}

// NewPayment contains the payment intent collected by the form.
type NewPayment struct {
	TeacherID   string          `json:"teacher_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Method      Method          `json:"payment_method" validate:"required,oneof=bank_transfer cash check digital_wallet upi"`
	Description string          `json:"description"`
}

func (np *NewPayment) Validate() error {
	np.TeacherID = core.CleanString(np.TeacherID)
	np.Description = core.CleanString(np.Description)
	return core.Validate.Struct(np)
}

type QueryFilter struct {
	TeacherID string `query:"teacher_id"`
	Status    Status `query:"status"`
	Method    Method `query:"method"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.TeacherID == "" && qf.Status == "" && qf.Method == ""
}

func (qf *QueryFilter) Clean() {
	qf.TeacherID = core.CleanString(qf.TeacherID)
}

// Matches reports whether the payment passes the filter (AND over set fields).
func (p Payment) Matches(qf QueryFilter) bool {
	if qf.TeacherID != "" && p.TeacherID != qf.TeacherID {
		return false
	}
	if qf.Status != "" && p.Status != qf.Status {
		return false
	}
	if qf.Method != "" && p.Method != qf.Method {
		return false
	}
	return true
}
