package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"neodrive/infras/mongodb"
	"neodrive/infras/otel"
	"neodrive/internal/domains/car/model"
	gDto "neodrive/shared/dto"
	gRepo "neodrive/shared/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type Car interface {
	Insert(ctx context.Context, car model.Car) (gDto.InsertResult, error)
	Get(ctx context.Context, filter bson.M) (model.Car, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter bson.M) ([]model.Car, error)
	Update(ctx context.Context, fields bson.M, filter bson.M) (gDto.UpdateResult, error)
	Delete(ctx context.Context, filter bson.M) (gDto.DeleteResult, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Car]
}

func New(db *mongodb.Connection, otel otel.Otel) Car {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Car](model.EntityName, db.Collection(model.CollectionName), otel),
	}
}
