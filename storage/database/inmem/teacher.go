package inmemdb

import (
	"github.com/google/uuid"

	"github.com/CH-Shireesha/teacher-management/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

var _ teacher.Repository = (*teacherRepository)(nil)

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher}
}

// query snapshots the table in insertion order. Callers hold the lock.
func (repo *teacherRepository) query() []teacher.Teacher {
	teachers := make([]teacher.Teacher, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		teachers = append(teachers, *repo.db.table[id])
	}
	return teachers
}

func (repo *teacherRepository) CheckEmailUniqueness(email string, excluded ...teacher.Teacher) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, t := range repo.query() {
		if t.Email != email {
			continue
		}
		if !isExcluded(t, excluded) {
			return teacher.ErrEmailExists
		}
	}
	return nil
}

func (repo *teacherRepository) CreateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, ok := repo.db.table[t.ID]; !ok {
		repo.db.order = append(repo.db.order, t.ID)
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) FilterTeachers(filter teacher.QueryFilter) ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return teacher.Filter(repo.query(), filter), nil
}

func (repo *teacherRepository) UpdateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[t.ID]
	if !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	t.CreatedAt = orig.CreatedAt
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *teacherRepository) QueryScheduleByTeacherID(id string) ([]teacher.ScheduleSession, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	sessions := repo.db.schedule[id]
	res := make([]teacher.ScheduleSession, len(sessions))
	copy(res, sessions)
	return res, nil
}

func (repo *teacherRepository) CreateScheduleSessions(teacherID string, sessions ...teacher.ScheduleSession) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.schedule[teacherID] = append(repo.db.schedule[teacherID], sessions...)
	return nil
}

func isExcluded(t teacher.Teacher, excluded []teacher.Teacher) bool {
	for _, ex := range excluded {
		if ex.ID == t.ID {
			return true
		}
	}
	return false
}
