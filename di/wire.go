//go:build wireinject
// +build wireinject

package di

import (
	"neodrive/config"
	"neodrive/infras/jwt"
	"neodrive/infras/mongodb"
	"neodrive/infras/otel"
	"neodrive/infras/redis"
	"neodrive/permissions"
	"neodrive/shared/cache"
	"neodrive/transport/http"
	"neodrive/transport/http/middleware"
	"neodrive/transport/http/router"

	bookingRepository "neodrive/internal/domains/booking/repository"
	bookingService "neodrive/internal/domains/booking/service"
	carRepository "neodrive/internal/domains/car/repository"
	carService "neodrive/internal/domains/car/service"
	tokenService "neodrive/internal/domains/token/service"

	"github.com/google/wire"

	bookingHandler "neodrive/internal/handlers/booking"
	carHandler "neodrive/internal/handlers/car"
	healthHandler "neodrive/internal/handlers/health"
	tokenHandler "neodrive/internal/handlers/token"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	mongodb.New,
	otel.New,
	redis.New,
	jwt.New,
	wire.Bind(new(healthHandler.Pinger), new(*mongodb.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var tokenDomain = wire.NewSet(
	tokenService.New,
)

var domains = wire.NewSet(
	carDomain,
	bookingDomain,
	tokenDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	tokenHandler.New,
	carHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
