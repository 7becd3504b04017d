package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"net/http"

	"neodrive/infras/otel"
	"neodrive/internal/domains/booking/model"
	"neodrive/internal/domains/booking/model/dto"
	"neodrive/internal/domains/booking/repository"
	"neodrive/shared"
	"neodrive/shared/constant"
	gDto "neodrive/shared/dto"
	"neodrive/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgFetchBookings     = "Failed to fetch booking cars"
	msgFetchUserBookings = "Failed to fetch booking cars by user email"
	msgNoInsertedBooking = "Failed to add new booking"
	msgAddBooking        = "Failed to add booking car"
	msgCancelBooking     = "Failed to update booking status"
	msgCancelNotApplied  = "Booking car not found or no changes made"
	msgDeleteBooking     = "An error occurred while deleting the document"
	msgBookingNotFound   = "Booking car not found"
)

type Booking interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	GetByUser(ctx context.Context, email string) ([]model.Booking, error)
	Create(ctx context.Context, booking model.Booking) (gDto.InsertResult, error)
	Cancel(ctx context.Context, id string) (gDto.UpdateResult, error)
	Delete(ctx context.Context, id string) (gDto.DeleteResult, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetAll(ctx, gDto.QueryParams{}, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, failure.Wrap(http.StatusBadRequest, msgFetchBookings, err)
	}

	return res, nil
}

func (s *serviceImpl) GetByUser(ctx context.Context, email string) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(model.FieldBookedUser, email))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get bookings by user")

		return nil, failure.Wrap(http.StatusBadRequest, msgFetchUserBookings, err)
	}

	return res, nil
}

// Create stores the booking verbatim. A missing generated identifier is reported as a client error.
func (s *serviceImpl) Create(ctx context.Context, booking model.Booking) (res gDto.InsertResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if booking == nil {
		booking = model.Booking{}
	}

	shared.NormalizeID(booking)

	res, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, failure.Wrap(http.StatusInternalServerError, msgAddBooking, err)
	}

	if res.InsertedID == nil {
		return res, failure.BadRequestFromString(msgNoInsertedBooking) // nolint:wrapcheck
	}

	return res, nil
}

// Cancel sets the booking status to Cancel and nothing else.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res gDto.UpdateResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, failure.Wrap(http.StatusInternalServerError, msgCancelBooking, err)
	}

	res, err = s.repo.Update(ctx, dto.NewCancelBooking().ToUpdate(), filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to cancel booking")

		return res, failure.Wrap(http.StatusInternalServerError, msgCancelBooking, err)
	}

	if res.ModifiedCount != 1 {
		return res, failure.NotFound(msgCancelNotApplied) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res gDto.DeleteResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := shared.FilterByID(id)
	if err != nil {
		return res, failure.Wrap(http.StatusInternalServerError, msgDeleteBooking, err)
	}

	res, err = s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return res, failure.Wrap(http.StatusInternalServerError, msgDeleteBooking, err)
	}

	if res.DeletedCount == 0 {
		return res, failure.BadRequestFromString(msgBookingNotFound) // nolint:wrapcheck
	}

	return res, nil
}
