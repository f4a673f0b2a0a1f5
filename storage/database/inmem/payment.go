package inmemdb

import (
	"github.com/google/uuid"

	"github.com/CH-Shireesha/teacher-management/core/payment"
)

type paymentRepository struct {
	db *paymentTable
}

var _ payment.Repository = (*paymentRepository)(nil)

func NewPaymentRepository(db *DB) payment.Repository {
	return &paymentRepository{db: db.payment}
}

// query snapshots the table in insertion order. Callers hold the lock.
func (repo *paymentRepository) query() []payment.Payment {
	payments := make([]payment.Payment, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		payments = append(payments, *repo.db.table[id])
	}
	return payments
}

func (repo *paymentRepository) CreatePayment(p payment.Payment) (payment.Payment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, ok := repo.db.table[p.ID]; !ok {
		repo.db.order = append(repo.db.order, p.ID)
	}
	repo.db.table[p.ID] = &p
	return p, nil
}

func (repo *paymentRepository) QueryAllPayments() ([]payment.Payment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *paymentRepository) GetPaymentByID(id string) (payment.Payment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if p, ok := repo.db.table[id]; ok {
		return *p, nil
	}
	return payment.Payment{}, payment.ErrNotFound
}

func (repo *paymentRepository) GetPaymentByTransactionID(txn string) (payment.Payment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, p := range repo.query() {
		if p.TransactionID == txn {
			return p, nil
		}
	}
	return payment.Payment{}, payment.ErrNotFound
}

func (repo *paymentRepository) FilterPayments(filter payment.QueryFilter) ([]payment.Payment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var filtered []payment.Payment
	for _, p := range repo.query() {
		if p.Matches(filter) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (repo *paymentRepository) UpdatePaymentStatus(id string, status payment.Status) (payment.Payment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	p, ok := repo.db.table[id]
	if !ok {
		return payment.Payment{}, payment.ErrNotFound
	}
	p.Status = status
	return *p, nil
}

func (repo *paymentRepository) DeletePayment(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return payment.ErrNotFound
	}
	delete(repo.db.table, id)
	for i, oid := range repo.db.order {
		if oid == id {
			repo.db.order = append(repo.db.order[:i], repo.db.order[i+1:]...)
			break
		}
	}
	return nil
}
