package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/housekeeping/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Housekeeping interface {
	InsertReturning(ctx context.Context, model model.HousekeepingTask) (model.HousekeepingTask, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HousekeepingTask, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HousekeepingTask, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateReturning(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (model.HousekeepingTask, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.HousekeepingTask]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Housekeeping {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HousekeepingTask](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
