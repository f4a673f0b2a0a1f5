package echoapi

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CH-Shireesha/teacher-management/core/payment"
	emailsvc "github.com/CH-Shireesha/teacher-management/services/email"
)

func newPaymentBody(method string) map[string]interface{} {
	return map[string]interface{}{
		"teacher_id":     "1",
		"amount":         1200,
		"payment_method": method,
		"description":    "Monthly salary",
	}
}

func Test_paymentApi_paymentCreate(t *testing.T) {
	app := setup(t)
	createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya.sharma@gmail.com", "Piano Teacher")

	rec := app.request(t, http.MethodPost, "/v1/payments", marshal(t, newPaymentBody("bank_transfer")))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got payment.Payment
	decode(t, rec, &got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, payment.StatusCompleted, got.Status)
	assert.Equal(t, "Priya Sharma", got.TeacherName)
	assert.True(t, decimal.NewFromInt(1200).Equal(got.Amount))
	assert.Empty(t, got.TransactionID)

	require.Len(t, emailsvc.GetSentMessages(), 1, "a receipt is mailed")
}

func Test_paymentApi_paymentCreate_validation(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
	}{
		{name: "missing teacher", mutate: func(body map[string]interface{}) { delete(body, "teacher_id") }},
		{name: "zero amount", mutate: func(body map[string]interface{}) { body["amount"] = 0 }},
		{name: "unknown method", mutate: func(body map[string]interface{}) { body["payment_method"] = "barter" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := newPaymentBody("cash")
			tt.mutate(body)
			rec := app.request(t, http.MethodPost, "/v1/payments", marshal(t, body))
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	payments, err := app.paymentRepo.QueryAllPayments()
	require.NoError(t, err)
	assert.Empty(t, payments, "rejected intents must write nothing")
}

func Test_paymentApi_upiLifecycle(t *testing.T) {
	app := setup(t)
	createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya.sharma@gmail.com", "Piano Teacher")

	rec := app.request(t, http.MethodPost, "/v1/payments", marshal(t, newPaymentBody("upi")))
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var pending payment.Payment
	decode(t, rec, &pending)
	assert.Equal(t, payment.StatusPending, pending.Status)
	assert.Regexp(t, `^TXN[A-Z0-9]{9}$`, pending.TransactionID)
	assert.Empty(t, emailsvc.GetSentMessages(), "no receipt while pending")

	// the transaction is pollable by id while in flight
	rec = app.request(t, http.MethodGet, "/v1/payments/upi/"+pending.TransactionID)
	require.Equal(t, http.StatusOK, rec.Code)
	var got payment.Payment
	decode(t, rec, &got)
	assert.Equal(t, payment.StatusPending, got.Status)

	// the simulated gateway completes after its processing delay
	app.sched.Advance(testProcessingDelay)

	rec = app.request(t, http.MethodGet, "/v1/payments/upi/"+pending.TransactionID)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &got)
	assert.Equal(t, payment.StatusCompleted, got.Status)
	assert.Equal(t, pending.TransactionID, got.TransactionID)

	require.Len(t, emailsvc.GetSentMessages(), 1)

	// completed flows can no longer be cancelled
	rec = app.request(t, http.MethodDelete, "/v1/payments/upi/"+pending.TransactionID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_paymentApi_upiCancel(t *testing.T) {
	app := setup(t)
	createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya.sharma@gmail.com", "Piano Teacher")

	rec := app.request(t, http.MethodPost, "/v1/payments", marshal(t, newPaymentBody("upi")))
	require.Equal(t, http.StatusAccepted, rec.Code)
	var pending payment.Payment
	decode(t, rec, &pending)

	rec = app.request(t, http.MethodDelete, "/v1/payments/upi/"+pending.TransactionID)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// the pending record is withdrawn and the deadline passing changes nothing
	app.sched.Advance(10 * testProcessingDelay)
	payments, err := app.paymentRepo.QueryAllPayments()
	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.Empty(t, emailsvc.GetSentMessages())

	rec = app.request(t, http.MethodGet, "/v1/payments/upi/"+pending.TransactionID)
	assert.Equal(t, http.StatusNotFound, rec.Code, "a withdrawn transaction is gone")

	rec = app.request(t, http.MethodDelete, "/v1/payments/upi/TXNUNKNOWN00")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_paymentApi_paymentQuery(t *testing.T) {
	app := setup(t)
	createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya.sharma@gmail.com", "Piano Teacher")
	createTeacher(t, app.teacherRepo, "2", "Rajesh Kumar", "rajesh.kumar@gmail.com", "Guitar Teacher")

	rec := app.request(t, http.MethodPost, "/v1/payments", marshal(t, newPaymentBody("bank_transfer")))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := newPaymentBody("upi")
	body["teacher_id"] = "2"
	rec = app.request(t, http.MethodPost, "/v1/payments", marshal(t, body))
	require.Equal(t, http.StatusAccepted, rec.Code)

	tests := []struct {
		name  string
		path  string
		wantN int
	}{
		{name: "all", path: "/v1/payments", wantN: 2},
		{name: "by teacher", path: "/v1/payments?teacher_id=1", wantN: 1},
		{name: "by status", path: "/v1/payments?status=pending", wantN: 1},
		{name: "by method", path: "/v1/payments?method=bank_transfer", wantN: 1},
		{name: "no match", path: "/v1/payments?teacher_id=1&status=pending", wantN: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request(t, http.MethodGet, tt.path)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var got []payment.Payment
			decode(t, rec, &got)
			assert.Len(t, got, tt.wantN)
		})
	}

	rec = app.request(t, http.MethodGet, "/v1/payments/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
