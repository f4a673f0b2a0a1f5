package echoapi

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CH-Shireesha/teacher-management/core/dashboard"
)

func Test_dashboardApi_stats(t *testing.T) {
	app := setup(t)

	rec := app.request(t, http.MethodGet, "/v1/dashboard/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var empty dashboard.Stats
	decode(t, rec, &empty)
	assert.Zero(t, empty.TotalTeachers)

	// drive real traffic through the API and watch the stats follow
	rec = app.request(t, http.MethodPost, "/v1/teachers", marshal(t, newTeacherBody()))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodPost, "/v1/payments", marshal(t, newPaymentBody("bank_transfer")))
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = app.request(t, http.MethodPost, "/v1/payments", marshal(t, newPaymentBody("upi")))
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = app.request(t, http.MethodGet, "/v1/dashboard/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats dashboard.Stats
	decode(t, rec, &stats)

	assert.Equal(t, 1, stats.TotalTeachers)
	assert.Equal(t, 1, stats.ActiveTeachers)
	assert.Equal(t, 2, stats.TotalPayments)
	assert.Equal(t, 1, stats.PendingPayments)
	assert.True(t, decimal.NewFromInt(1200).Equal(stats.MonthlyExpenses),
		"pending payments do not count as expenses, got %s", stats.MonthlyExpenses)
}

func Test_dashboardApi_activity(t *testing.T) {
	app := setup(t)

	rec := app.request(t, http.MethodPost, "/v1/teachers", marshal(t, newTeacherBody()))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := newPaymentBody("cash")
	rec = app.request(t, http.MethodPost, "/v1/payments", marshal(t, body))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodGet, "/v1/dashboard/activity")
	require.Equal(t, http.StatusOK, rec.Code)

	var feed []activityResponse
	decode(t, rec, &feed)
	require.Len(t, feed, 2)

	// newest first
	assert.Equal(t, "Payment processed", feed[0].Action)
	assert.Equal(t, dashboard.SeverityInfo, feed[0].Severity)
	assert.Equal(t, "New teacher added", feed[1].Action)
	assert.Equal(t, dashboard.SeveritySuccess, feed[1].Severity)
	for _, entry := range feed {
		assert.Equal(t, "just now", entry.When)
	}

	rec = app.request(t, http.MethodGet, "/v1/dashboard/activity?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "Payment processed", feed[0].Action)

	rec = app.request(t, http.MethodGet, "/v1/dashboard/activity?limit=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = app.request(t, http.MethodGet, "/v1/dashboard/activity?limit=nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
