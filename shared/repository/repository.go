package repository

import (
	"context"
	"errors"
	"fmt"
	"neodrive/infras/otel"
	"neodrive/shared/constant"
	"neodrive/shared/dto"
	"neodrive/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	errRequiredFilter = errors.New("required filter")
)

// Repository performs single-operation reads and writes against one collection.
// T is the document type decoded from the store.
type Repository[T any] struct {
	collection *mongo.Collection
	otel       otel.Otel
	entitas    string
}

func NewRepository[T any](entitasName string, collection *mongo.Collection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		collection: collection,
		otel:       otl,
		entitas:    entitasName,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.collection.Name())

	return ctx, scope
}

// Insert stores model as a new document and returns the identifier the store acknowledged.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (dto.InsertResult, error) {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	var res dto.InsertResult

	result, err := repo.collection.InsertOne(ctx, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	res.FromMongo(result)

	return res, nil
}

// Get returns the first document matching filter, or the zero T when none matches.
func (repo *Repository[T]) Get(ctx context.Context, filter bson.M) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var res T

	if len(filter) == 0 {
		return res, errRequiredFilter
	}

	scope.SetAttribute(constant.OtelFilterAttributeKey, filter)

	err := repo.collection.FindOne(ctx, filter).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return res, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return res, nil
}

// GetAll returns every document matching filter, honoring the sort and limit in params.
// The result is never nil.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter bson.M) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	if filter == nil {
		filter = bson.M{}
	}

	scope.SetAttribute(constant.OtelFilterAttributeKey, filter)

	opts := options.Find()
	if params.SortBy != "" {
		opts.SetSort(bson.D{{Key: params.SortBy, Value: params.SortOrder()}})
	}

	if params.Limit > 0 {
		opts.SetLimit(params.Limit)
	}

	cursor, err := repo.collection.Find(ctx, filter, opts)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}
	defer cursor.Close(ctx)

	res := make([]T, 0)
	if err := cursor.All(ctx, &res); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode data (%s): %w", repo.entitas, err)
	}

	scope.SetAttribute("result.count", len(res))

	return res, nil
}

// Update applies $set of fields to the first document matching filter.
func (repo *Repository[T]) Update(ctx context.Context, fields bson.M, filter bson.M) (dto.UpdateResult, error) {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	var res dto.UpdateResult

	if len(filter) == 0 {
		return res, errRequiredFilter
	}

	scope.SetAttribute(constant.OtelFilterAttributeKey, filter)

	result, err := repo.collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	res.FromMongo(result)

	return res, nil
}

// Delete removes the first document matching filter.
func (repo *Repository[T]) Delete(ctx context.Context, filter bson.M) (dto.DeleteResult, error) {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	var res dto.DeleteResult

	if len(filter) == 0 {
		return res, errRequiredFilter
	}

	scope.SetAttribute(constant.OtelFilterAttributeKey, filter)

	result, err := repo.collection.DeleteOne(ctx, filter)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	res.FromMongo(result)

	return res, nil
}
