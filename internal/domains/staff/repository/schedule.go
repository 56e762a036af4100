package repository

//go:generate go run go.uber.org/mock/mockgen -source=./schedule.go -destination=../mocks/schedule_mock.go -package=mocks

import (
	"context"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/staff/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Schedule interface {
	InsertReturning(ctx context.Context, model model.Schedule) (model.Schedule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Schedule, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type scheduleRepositoryImpl struct {
	gRepo.Repository[model.Schedule]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSchedule(db *postgres.Connection, otel otel.Otel) Schedule {
	return &scheduleRepositoryImpl{
		Repository: gRepo.NewRepository[model.Schedule](model.ScheduleEntityName, model.ScheduleTableName, model.FieldScheduleID, db, otel),
		db:         db,
		otel:       otel,
	}
}
