package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"neodrive/infras/otel/mocks"
	bookingMocks "neodrive/internal/domains/booking/mocks"
	"neodrive/internal/domains/booking/model"
	"neodrive/internal/domains/booking/service"
	gDto "neodrive/shared/dto"
	"neodrive/shared/failure"
)

func newService(t *testing.T) (*bookingMocks.MockBooking, service.Booking) {
	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)

	return repo, service.New(repo, mocks.NewOtel())
}

func assertFailure(t *testing.T, err error, code int, message string) {
	t.Helper()

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, code, fail.Code)
	assert.Equal(t, message, fail.Message)
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("all bookings", func(t *testing.T) {
		repo, svc := newService(t)
		bookings := []model.Booking{{"booked_user": "a@example.com"}}

		repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Nil()).Return(bookings, nil)

		res, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, bookings, res)
	})

	t.Run("store error", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.GetAll(context.Background())
		assertFailure(t, err, http.StatusBadRequest, "Failed to fetch booking cars")
	})
}

func TestBookingService_GetByUser(t *testing.T) {
	t.Run("filters on booked user", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{}, bson.M{"booked_user": "a@example.com"}).
			Return([]model.Booking{}, nil)

		res, err := svc.GetByUser(context.Background(), "a@example.com")
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("store error", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.GetByUser(context.Background(), "a@example.com")
		assertFailure(t, err, http.StatusBadRequest, "Failed to fetch booking cars by user email")
	})
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		booking   model.Booking
		setupMock func(repo *bookingMocks.MockBooking)
		wantCode  int
		wantMsg   string
	}{
		{
			name:    "stored verbatim",
			booking: model.Booking{"booked_user": "a@example.com", "bookingStatus": "Pending"},
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Insert(gomock.Any(), model.Booking{"booked_user": "a@example.com", "bookingStatus": "Pending"}).
					Return(gDto.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil)
			},
		},
		{
			name:    "no generated identifier",
			booking: model.Booking{"booked_user": "a@example.com"},
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(gDto.InsertResult{Acknowledged: true}, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Failed to add new booking",
		},
		{
			name:    "store error",
			booking: model.Booking{"booked_user": "a@example.com"},
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(gDto.InsertResult{}, errors.New("duplicate key"))
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to add booking car",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.booking)
			if tt.wantCode != 0 {
				assertFailure(t, err, tt.wantCode, tt.wantMsg)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, res.InsertedID)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *bookingMocks.MockBooking)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "status set to cancel",
			id:   "booking-1",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Update(gomock.Any(), bson.M{"bookingStatus": "Cancel"}, bson.M{"_id": "booking-1"}).
					Return(gDto.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
			},
		},
		{
			name: "already cancelled",
			id:   "booking-1",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(gDto.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Booking car not found or no changes made",
		},
		{
			name: "no match",
			id:   "665f1c2e8b3e4a1d2c3b4a59",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(gDto.UpdateResult{Acknowledged: true}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Booking car not found or no changes made",
		},
		{
			name: "store error",
			id:   "booking-1",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(gDto.UpdateResult{}, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to update booking status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			tt.setupMock(repo)

			res, err := svc.Cancel(context.Background(), tt.id)
			if tt.wantCode != 0 {
				assertFailure(t, err, tt.wantCode, tt.wantMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ModifiedCount)
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().
			Delete(gomock.Any(), bson.M{"_id": "booking-1"}).
			Return(gDto.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

		res, err := svc.Delete(context.Background(), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)
	})

	t.Run("no match", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(gDto.DeleteResult{Acknowledged: true}, nil)

		_, err := svc.Delete(context.Background(), "booking-1")
		assertFailure(t, err, http.StatusBadRequest, "Booking car not found")
	})

	t.Run("store error", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(gDto.DeleteResult{}, errors.New("timeout"))

		_, err := svc.Delete(context.Background(), "booking-1")
		assertFailure(t, err, http.StatusInternalServerError, "An error occurred while deleting the document")
	})
}
