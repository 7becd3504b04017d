package car

import (
	"net/http"
	"neodrive/infras/otel"
	"neodrive/internal/domains/car/model"
	"neodrive/internal/domains/car/model/dto"
	"neodrive/internal/domains/car/service"
	"neodrive/shared/constant"
	"neodrive/shared/failure"
	"neodrive/shared/validator"
	"neodrive/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Car
	otel    otel.Otel
}

func New(service service.Car, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/cars", handler.GetCars)
	router.Post("/cars", handler.CreateCar)
	router.Get("/cars/{id}", handler.GetCarByID)
	router.Put("/cars/{id}", handler.UpdateCar)
	router.Delete("/cars/{id}", handler.DeleteCar)
	router.Get("/my-cars/{email}", handler.GetMyCars)
	router.Get("/recent-cars", handler.GetRecentCars)
}

// GetCars lists every car in storage order.
// @Summary Get all cars
// @Tags Car
// @Produce json
// @Success 200 {array} map[string]any "List of cars"
// @Failure 400 {object} response.Error
// @Router /cars [get]
func (handler *Handler) GetCars(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCars")
	defer scope.End()

	cars, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, cars)
}

// GetCarByID retrieves a car by its identifier. An unknown identifier yields null data.
// @Summary Get a car by ID
// @Tags Car
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} map[string]any "Car details or null"
// @Failure 400 {object} response.Error
// @Router /cars/{id} [get]
func (handler *Handler) GetCarByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCarByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	car, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, car)
}

// GetMyCars lists the cars saved by the given email.
// @Summary Get cars saved by an email
// @Tags Car
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {array} map[string]any "List of cars"
// @Failure 400 {object} response.Error
// @Router /my-cars/{email} [get]
// @Security BearerAuth
func (handler *Handler) GetMyCars(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyCars")
	defer scope.End()

	email := chi.URLParam(r, constant.RequestParamEmail)

	cars, err := handler.service.GetByOwner(ctx, email)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, cars)
}

// GetRecentCars lists the six cars with the latest availability date.
// @Summary Get recent cars
// @Tags Car
// @Produce json
// @Success 200 {array} map[string]any "Up to six cars, latest availability first"
// @Failure 400 {object} response.Error
// @Router /recent-cars [get]
func (handler *Handler) GetRecentCars(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentCars")
	defer scope.End()

	cars, err := handler.service.GetRecent(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, cars)
}

// CreateCar stores the request body as a new car.
// @Summary Create a car
// @Tags Car
// @Accept json
// @Produce json
// @Param car body map[string]any true "Car document"
// @Success 200 {object} map[string]any "Insert acknowledgment"
// @Failure 400 {object} response.Error
// @Router /cars [post]
// @Security BearerAuth
func (handler *Handler) CreateCar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCar")
	defer scope.End()

	car := model.Car{}
	if err := validator.Decode(r.Body, &car); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode car")

		response.WithError(w, failure.Wrap(http.StatusBadRequest, "Failed to add car", err))

		return
	}

	res, err := handler.service.Create(ctx, car)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, res)
}

// UpdateCar overwrites the allow-listed fields of a car.
// @Summary Update a car by ID
// @Description Sets carModel, dailyRentalPrice, availabilityDate, vehicleRegistrationNumber, features, description, bookingCount, imageUrl, location and bookingStatus. Missing fields are set to null; other fields are ignored.
// @Tags Car
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param car body dto.UpdateCarRequest true "Car fields"
// @Success 200 {object} map[string]any "Update acknowledgment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /cars/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCar")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateCarRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode car update")

		response.WithError(w, failure.Wrap(http.StatusBadRequest, "Failed to update car", err))

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, res)
}

// DeleteCar removes a car by its identifier.
// @Summary Delete a car by ID
// @Tags Car
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} map[string]any "Delete acknowledgment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /cars/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCar")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, res)
}
