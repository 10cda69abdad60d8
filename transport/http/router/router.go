package router

import (
	"github.com/go-chi/chi/v5"

	"facil/internal/handlers/auth"
	"facil/internal/handlers/holiday"
	"facil/internal/handlers/reservation"
	"facil/internal/handlers/room"
	"facil/internal/handlers/user"
	"facil/transport/http/middleware"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Room        room.Handler
	Holiday     holiday.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router, authMiddleware middleware.AuthRole) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(authMiddleware.Auth)
		routerGroup.Use(authMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Holiday.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
