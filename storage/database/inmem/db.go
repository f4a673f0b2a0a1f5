package inmemdb

import (
	"sync"

	"github.com/CH-Shireesha/teacher-management/core/dashboard"
	"github.com/CH-Shireesha/teacher-management/core/payment"
	"github.com/CH-Shireesha/teacher-management/core/teacher"
)

type (
	// DB is the in-memory store backing the repositories. Tables keep an
	// ordered index next to the map so listings preserve insertion order.
	DB struct {
		teacher  *teacherTable
		payment  *paymentTable
		activity *activityTable
	}

	teacherTable struct {
		sync.RWMutex
		table    map[string]*teacher.Teacher
		order    []string
		schedule map[string][]teacher.ScheduleSession // keyed by teacher id
	}

	paymentTable struct {
		sync.RWMutex
		table map[string]*payment.Payment
		order []string
	}

	activityTable struct {
		sync.RWMutex
		table   []dashboard.Activity
		idCount int
	}
)

func Open() (*DB, error) {
	db := &DB{
		teacher: &teacherTable{
			table:    make(map[string]*teacher.Teacher),
			schedule: make(map[string][]teacher.ScheduleSession),
		},
		payment:  &paymentTable{table: make(map[string]*payment.Payment)},
		activity: &activityTable{},
	}
	return db, nil
}
