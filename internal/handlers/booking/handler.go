package booking

import (
	"net/http"
	"neodrive/infras/otel"
	"neodrive/internal/domains/booking/model"
	"neodrive/internal/domains/booking/service"
	"neodrive/shared/constant"
	"neodrive/shared/failure"
	"neodrive/shared/validator"
	"neodrive/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/booking-cars", handler.GetBookings)
	router.Post("/booking-cars", handler.CreateBooking)
	router.Get("/booking-cars/{email}", handler.GetMyBookings)
	router.Patch("/booking-cars/{id}", handler.CancelBooking)
	router.Delete("/booking-cars/{id}", handler.DeleteBooking)
}

// GetBookings lists every booking.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Success 200 {array} map[string]any "List of bookings"
// @Failure 400 {object} response.Error
// @Router /booking-cars [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, bookings)
}

// GetMyBookings lists the bookings made by the given email.
// @Summary Get bookings by user email
// @Tags Booking
// @Produce json
// @Param email path string true "Booked user email"
// @Success 200 {array} map[string]any "List of bookings"
// @Failure 400 {object} response.Error
// @Router /booking-cars/{email} [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	email := chi.URLParam(r, constant.RequestParamEmail)

	bookings, err := handler.service.GetByUser(ctx, email)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, bookings)
}

// CreateBooking stores the request body as a new booking.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking body map[string]any true "Booking document"
// @Success 200 {object} map[string]any "Insert acknowledgment"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /booking-cars [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	booking := model.Booking{}
	if err := validator.Decode(r.Body, &booking); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode booking")

		response.WithError(w, failure.Wrap(http.StatusInternalServerError, "Failed to add booking car", err))

		return
	}

	res, err := handler.service.Create(ctx, booking)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, res)
}

// CancelBooking sets the booking status to Cancel.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]any "Update acknowledgment"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /booking-cars/{id} [patch]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, res)
}

// DeleteBooking removes a booking by its identifier.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]any "Delete acknowledgment"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /booking-cars/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
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
