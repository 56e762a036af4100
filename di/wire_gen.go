// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	service9 "hotelier/internal/domains/analytics/service"
	"hotelier/internal/domains/auth/service"
	repository5 "hotelier/internal/domains/booking/repository"
	service5 "hotelier/internal/domains/booking/service"
	repository7 "hotelier/internal/domains/catalog/repository"
	service8 "hotelier/internal/domains/catalog/service"
	repository3 "hotelier/internal/domains/guest/repository"
	service3 "hotelier/internal/domains/guest/service"
	repository6 "hotelier/internal/domains/housekeeping/repository"
	service7 "hotelier/internal/domains/housekeeping/service"
	repository4 "hotelier/internal/domains/room/repository"
	service4 "hotelier/internal/domains/room/service"
	repository2 "hotelier/internal/domains/staff/repository"
	service6 "hotelier/internal/domains/staff/service"
	"hotelier/internal/domains/user/repository"
	service2 "hotelier/internal/domains/user/service"
	"hotelier/internal/events"
	"hotelier/internal/handlers/analytics"
	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/catalog"
	"hotelier/internal/handlers/guest"
	"hotelier/internal/handlers/housekeeping"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/staff"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	user := repository.New(connection, otelOtel)
	repositoryStaff := repository2.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(user, repositoryStaff, configConfig, otelOtel, jwtJWT)
	serviceUser := service2.New(user, otelOtel)
	handler := auth.New(serviceAuth, serviceUser, otelOtel)
	repositoryGuest := repository3.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	kafkaClient := kafka.New(configConfig)
	publisher := events.New(kafkaClient, configConfig, otelOtel)
	serviceGuest := service3.New(repositoryGuest, configConfig, redisCache, publisher, otelOtel)
	guestHandler := guest.New(serviceGuest, otelOtel)
	repositoryRoom := repository4.New(connection, otelOtel)
	serviceRoom := service4.New(repositoryRoom, configConfig, redisCache, publisher, otelOtel)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryBooking := repository5.New(connection, otelOtel)
	payment := repository5.NewPayment(connection, otelOtel)
	serviceBooking := service5.New(repositoryBooking, payment, repositoryGuest, repositoryRoom, configConfig, redisCache, publisher, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	schedule := repository2.NewSchedule(connection, otelOtel)
	serviceStaff := service6.New(repositoryStaff, schedule, configConfig, redisCache, publisher, otelOtel)
	staffHandler := staff.New(serviceStaff, otelOtel)
	repositoryHousekeeping := repository6.New(connection, otelOtel)
	serviceHousekeeping := service7.New(repositoryHousekeeping, repositoryRoom, repositoryStaff, configConfig, redisCache, publisher, otelOtel)
	housekeepingHandler := housekeeping.New(serviceHousekeeping, otelOtel)
	repositoryService := repository7.New(connection, otelOtel)
	serviceCatalog := service8.New(repositoryService, configConfig, redisCache, publisher, otelOtel)
	catalogHandler := catalog.New(serviceCatalog, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceAnalytics := service9.New(repositoryGuest, repositoryRoom, repositoryBooking, payment, repositoryStaff, repositoryHousekeeping, configConfig, redisCache, s3S3, otelOtel)
	analyticsHandler := analytics.New(serviceAnalytics, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:         handler,
		Guest:        guestHandler,
		Room:         roomHandler,
		Booking:      bookingHandler,
		Staff:        staffHandler,
		Housekeeping: housekeepingHandler,
		Catalog:      catalogHandler,
		Analytics:    analyticsHandler,
	}
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData)
	routerRouter := router.New(domainHandlers, authRole)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, permissions.Get, events.New)

var guestDomain = wire.NewSet(repository3.New, service3.New)

var roomDomain = wire.NewSet(repository4.New, service4.New)

var bookingDomain = wire.NewSet(repository5.New, repository5.NewPayment, service5.New)

var staffDomain = wire.NewSet(repository2.New, repository2.NewSchedule, service6.New)

var housekeepingDomain = wire.NewSet(repository6.New, service7.New)

var catalogDomain = wire.NewSet(repository7.New, service8.New)

var analyticsDomain = wire.NewSet(service9.New)

var authDomain = wire.NewSet(repository.New, service2.New, service.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, guest.New, room.New, booking.New, staff.New, housekeeping.New, catalog.New, analytics.New, router.New)
