package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"neodrive/infras/mongodb"
	"neodrive/infras/otel"
	"neodrive/internal/domains/booking/model"
	gDto "neodrive/shared/dto"
	gRepo "neodrive/shared/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (gDto.InsertResult, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter bson.M) ([]model.Booking, error)
	Update(ctx context.Context, fields bson.M, filter bson.M) (gDto.UpdateResult, error)
	Delete(ctx context.Context, filter bson.M) (gDto.DeleteResult, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *mongodb.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, db.Collection(model.CollectionName), otel),
	}
}
