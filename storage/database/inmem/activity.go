package inmemdb

import (
	"github.com/CH-Shireesha/teacher-management/core/dashboard"
)

// maxActivityEntries caps the feed; older entries are dropped.
const maxActivityEntries = 100

type activityRepository struct {
	db *activityTable
}

var _ dashboard.Repository = (*activityRepository)(nil)

func NewActivityRepository(db *DB) dashboard.Repository {
	return &activityRepository{db: db.activity}
}

func (repo *activityRepository) RecordActivity(a dashboard.Activity) (dashboard.Activity, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.idCount++
	a.ID = repo.db.idCount
	repo.db.table = append(repo.db.table, a)
	if len(repo.db.table) > maxActivityEntries {
		repo.db.table = repo.db.table[len(repo.db.table)-maxActivityEntries:]
	}
	return a, nil
}

func (repo *activityRepository) RecentActivity(n int) ([]dashboard.Activity, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if n <= 0 || n > len(repo.db.table) {
		n = len(repo.db.table)
	}
	res := make([]dashboard.Activity, 0, n)
	for i := len(repo.db.table) - 1; i >= len(repo.db.table)-n; i-- {
		res = append(res, repo.db.table[i])
	}
	return res, nil
}
