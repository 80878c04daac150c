package repositories

import (
	"gorm.io/gorm"
)

type Repos struct {
	User        UserRepo
	Resource    ResourceRepo
	Reservation ReservationRepo
	Audit       AuditRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:        NewUserRepo(db),
		Resource:    NewResourceRepo(db),
		Reservation: NewReservationRepo(db),
		Audit:       NewAuditRepo(db),
		db:          db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:        r.User.WithTx(tx),
		Resource:    r.Resource.WithTx(tx),
		Reservation: r.Reservation.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn against a transaction-scoped copy of the container. A
// non-nil error from fn rolls the whole transaction back. A container
// assembled without a db handle (mock repos in unit tests) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
