package handlers

import (
	"github.com/linskybing/reserve-go/services"
)

type Handlers struct {
	Auth        *AuthHandler
	Resource    *ResourceHandler
	Reservation *ReservationHandler
	Audit       *AuditHandler
	WS          *WSHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(svc.User),
		Resource:    NewResourceHandler(svc.Resource),
		Reservation: NewReservationHandler(svc.Reservation),
		Audit:       NewAuditHandler(svc.Audit),
		WS:          NewWSHandler(svc.Events),
	}
}
