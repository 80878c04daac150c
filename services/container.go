package services

import "github.com/linskybing/reserve-go/repositories"

type Services struct {
	User        *UserService
	Resource    *ResourceService
	Reservation *ReservationService
	Audit       *AuditService
	Events      *EventBus
}

func New(repos *repositories.Repos) *Services {
	events := NewEventBus()
	return &Services{
		User:        NewUserService(repos),
		Resource:    NewResourceService(repos, events),
		Reservation: NewReservationService(repos, events),
		Audit:       NewAuditService(repos),
		Events:      events,
	}
}
