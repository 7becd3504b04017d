package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"net/http"

	"neodrive/config"
	"neodrive/infras/otel"
	"neodrive/internal/domains/car/model"
	"neodrive/internal/domains/car/model/dto"
	"neodrive/internal/domains/car/repository"
	"neodrive/shared"
	"neodrive/shared/cache"
	"neodrive/shared/constant"
	gDto "neodrive/shared/dto"
	"neodrive/shared/failure"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	cacheGetCar    = "car:get"
	cacheRecentCar = "car:recent"
)

const (
	msgFetchCars       = "Failed to fetch cars"
	msgFetchCarDetails = "Failed to fetch car details"
	msgFetchMyCars     = "Failed to fetch my car details"
	msgAddCar          = "Failed to add car"
	msgUpdateCar       = "Failed to update car"
	msgDeleteCar       = "Failed to delete car"
	msgCarNotFound     = "Car not found"
)

type Car interface {
	GetAll(ctx context.Context) ([]model.Car, error)
	Get(ctx context.Context, id string) (model.Car, error)
	GetByOwner(ctx context.Context, email string) ([]model.Car, error)
	GetRecent(ctx context.Context) ([]model.Car, error)
	Create(ctx context.Context, car model.Car) (gDto.InsertResult, error)
	Update(ctx context.Context, req dto.UpdateCarRequest, id string) (gDto.UpdateResult, error)
	Delete(ctx context.Context, id string) (gDto.DeleteResult, error)
}

type serviceImpl struct {
	repo  repository.Car
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Car, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Car {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Car, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetAll(ctx, gDto.QueryParams{}, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cars")

		return nil, failure.Wrap(http.StatusBadRequest, msgFetchCars, err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Car, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return nil, failure.Wrap(http.StatusBadRequest, msgFetchCarDetails, err)
	}

	cacheKey := getCacheKey(filter)
	if s.cacheEnabled() {
		if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil && res != nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for car")

			return res, nil
		}
	}

	res, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get car")

		return nil, failure.Wrap(http.StatusBadRequest, msgFetchCarDetails, err)
	}

	if res != nil {
		s.save(ctx, cacheKey, res)
	}

	return res, nil
}

func (s *serviceImpl) GetByOwner(ctx context.Context, email string) (res []model.Car, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.GetByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(model.FieldOwnerEmail, email))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get cars by owner")

		return nil, failure.Wrap(http.StatusBadRequest, msgFetchMyCars, err)
	}

	return res, nil
}

// GetRecent returns the latest cars by availability date.
func (s *serviceImpl) GetRecent(ctx context.Context) (res []model.Car, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.GetRecent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.cacheEnabled() {
		if cacheErr := s.cache.Get(ctx, cacheRecentCar, &res); cacheErr == nil && res != nil {
			log.Debug().Str("cacheKey", cacheRecentCar).Msg("cache hit for recent cars")

			return res, nil
		}
	}

	res, err = s.repo.GetAll(ctx, gDto.QueryParams{
		Limit:   model.RecentLimit,
		SortBy:  model.FieldAvailabilityDate,
		SortDir: gDto.SortDirDesc,
	}, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent cars")

		return nil, failure.Wrap(http.StatusBadRequest, msgFetchCars, err)
	}

	s.save(ctx, cacheRecentCar, res)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, car model.Car) (res gDto.InsertResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if car == nil {
		car = model.Car{}
	}

	shared.NormalizeID(car)

	res, err = s.repo.Insert(ctx, car)
	if err != nil {
		log.Error().Err(err).Msg("failed to create car")

		return res, failure.Wrap(http.StatusBadRequest, msgAddCar, err)
	}

	s.invalidate(ctx)

	return res, nil
}

// Update overwrites the allow-listed fields of a car. Other stored fields are left untouched.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCarRequest, id string) (res gDto.UpdateResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, failure.Wrap(http.StatusBadRequest, msgUpdateCar, err)
	}

	res, err = s.repo.Update(ctx, req.ToUpdate(), filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update car")

		return res, failure.Wrap(http.StatusBadRequest, msgUpdateCar, err)
	}

	if res.MatchedCount == 0 {
		return res, failure.NotFound(msgCarNotFound)
	}

	s.invalidate(ctx, getCacheKey(filter))

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res gDto.DeleteResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, failure.Wrap(http.StatusBadRequest, msgDeleteCar, err)
	}

	res, err = s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete car")

		return res, failure.Wrap(http.StatusBadRequest, msgDeleteCar, err)
	}

	if res.DeletedCount == 0 {
		return res, failure.NotFound(msgCarNotFound)
	}

	s.invalidate(ctx, getCacheKey(filter))

	return res, nil
}

func (s *serviceImpl) cacheEnabled() bool {
	return s.cfg.Cache.TTL > 0
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if !s.cacheEnabled() {
		return
	}

	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save car to cache")
	}
}

// invalidate drops the recent list and the given cached documents.
func (s *serviceImpl) invalidate(ctx context.Context, keys ...string) {
	if !s.cacheEnabled() {
		return
	}

	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to delete car from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheRecentCar)
}

// getCacheKey keys a cached car by its parsed identifier, so every spelling of an ObjectId shares one entry.
func getCacheKey(filter bson.M) string {
	return shared.BuildCacheKey(cacheGetCar, shared.CanonicalID(filter[constant.FieldID]))
}
