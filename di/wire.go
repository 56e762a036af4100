//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	"hotelier/internal/events"
	analyticsHandler "hotelier/internal/handlers/analytics"
	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	catalogHandler "hotelier/internal/handlers/catalog"
	guestHandler "hotelier/internal/handlers/guest"
	housekeepingHandler "hotelier/internal/handlers/housekeeping"
	roomHandler "hotelier/internal/handlers/room"
	staffHandler "hotelier/internal/handlers/staff"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	analyticsService "hotelier/internal/domains/analytics/service"
	authService "hotelier/internal/domains/auth/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	catalogRepository "hotelier/internal/domains/catalog/repository"
	catalogService "hotelier/internal/domains/catalog/service"
	guestRepository "hotelier/internal/domains/guest/repository"
	guestService "hotelier/internal/domains/guest/service"
	housekeepingRepository "hotelier/internal/domains/housekeeping/repository"
	housekeepingService "hotelier/internal/domains/housekeeping/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	staffRepository "hotelier/internal/domains/staff/repository"
	staffService "hotelier/internal/domains/staff/service"
	userRepository "hotelier/internal/domains/user/repository"
	userService "hotelier/internal/domains/user/service"

	"github.com/google/wire"
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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
	events.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewPayment,
	bookingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffRepository.NewSchedule,
	staffService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var analyticsDomain = wire.NewSet(
	analyticsService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
	bookingDomain,
	staffDomain,
	housekeepingDomain,
	catalogDomain,
	analyticsDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	staffHandler.New,
	housekeepingHandler.New,
	catalogHandler.New,
	analyticsHandler.New,
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
