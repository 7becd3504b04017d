package router

import (
	"neodrive/internal/handlers/booking"
	"neodrive/internal/handlers/car"
	"neodrive/internal/handlers/health"
	"neodrive/internal/handlers/token"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health  health.Handler
	Token   token.Handler
	Car     car.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Token.Router(router)
	r.DomainHandlers.Car.Router(router)
	r.DomainHandlers.Booking.Router(router)

	router.Get("/swagger/*", httpSwagger.Handler())
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
