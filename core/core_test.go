package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_CleanString(t *testing.T) {
	assert.Equal(t, "Hello", CleanString("  Hello\t"))
	assert.Equal(t, "hello", CleanString("  Hello ", true))
	assert.Equal(t, "", CleanString("   "))
}

func Test_ContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Piano Teacher", "piano"))
	assert.True(t, ContainsFold("Piano Teacher", "TEACH"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Piano Teacher", "guitar"))
}

func Test_ValidationError_FieldMap(t *testing.T) {
	err := NewValidationError(
		errors.New("invalid input"),
		FieldError{Field: "email", Error: "already taken"},
		FieldError{Field: "salary", Error: "must be positive"},
	)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "invalid input", vErr.Error())
	assert.Equal(t, map[string]string{
		"email":  "already taken",
		"salary": "must be positive",
	}, vErr.FieldMap())

	bare := &ValidationError{Err: errors.New("nope")}
	assert.Nil(t, bare.FieldMap())
}

func Test_ManualScheduler(t *testing.T) {
	sched := NewManualScheduler()

	var fired []string
	sched.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	sched.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	stopper := sched.AfterFunc(3*time.Second, func() { fired = append(fired, "c") })

	sched.Advance(500 * time.Millisecond)
	assert.Empty(t, fired, "nothing fires before its deadline")

	sched.Advance(1500 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired, "due callbacks fire in deadline order")

	assert.True(t, stopper.Stop())
	assert.False(t, stopper.Stop(), "a stopped timer stays stopped")
	sched.Advance(time.Hour)
	assert.Equal(t, []string{"a", "b"}, fired, "stopped timers never fire")

	// callbacks may reschedule
	sched.AfterFunc(time.Second, func() {
		sched.AfterFunc(time.Second, func() { fired = append(fired, "chained") })
	})
	sched.Advance(time.Second)
	sched.Advance(time.Second)
	assert.Contains(t, fired, "chained")
}
