//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"facil/config"
	"facil/infras/jwt"
	"facil/infras/kafka"
	"facil/infras/otel"
	"facil/infras/postgres"
	"facil/infras/redis"
	"facil/internal/events"
	"facil/permissions"
	"facil/shared/cache"
	"facil/transport/http"
	"facil/transport/http/middleware"
	"facil/transport/http/router"

	authService "facil/internal/domains/auth/service"
	holidayRepository "facil/internal/domains/holiday/repository"
	holidayService "facil/internal/domains/holiday/service"
	reservationRepository "facil/internal/domains/reservation/repository"
	reservationService "facil/internal/domains/reservation/service"
	roomRepository "facil/internal/domains/room/repository"
	roomService "facil/internal/domains/room/service"
	userRepository "facil/internal/domains/user/repository"
	userService "facil/internal/domains/user/service"
	authHandler "facil/internal/handlers/auth"
	holidayHandler "facil/internal/handlers/holiday"
	reservationHandler "facil/internal/handlers/reservation"
	roomHandler "facil/internal/handlers/room"
	userHandler "facil/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewDispatcher,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewTimeSlot,
	roomRepository.NewSlotPrice,
	roomService.New,
)

var holidayDomain = wire.NewSet(
	holidayRepository.New,
	holidayRepository.NewClosedDate,
	holidayService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationRepository.NewUsage,
	reservationService.New,
)

var domains = wire.NewSet(
	userDomain,
	roomDomain,
	holidayDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	holidayHandler.New,
	reservationHandler.New,
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
