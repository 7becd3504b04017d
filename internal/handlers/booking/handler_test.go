package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"neodrive/infras/otel/mocks"
	"neodrive/internal/domains/booking/model"
	serviceMocks "neodrive/internal/domains/booking/service/mocks"
	"neodrive/internal/handlers/booking"
	gDto "neodrive/shared/dto"
	"neodrive/shared/failure"
)

func newRouter(t *testing.T) (*serviceMocks.MockBooking, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_GetBookings(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any()).Return([]model.Booking{{"booked_user": "a@example.com"}}, nil)

	rec := serve(router, http.MethodGet, "/booking-cars", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"booked_user":"a@example.com"}]`, rec.Body.String())
}

func TestHandler_GetMyBookings(t *testing.T) {
	t.Run("by email", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().GetByUser(gomock.Any(), "a@example.com").Return([]model.Booking{}, nil)

		rec := serve(router, http.MethodGet, "/booking-cars/a@example.com", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().GetByUser(gomock.Any(), gomock.Any()).
			Return(nil, failure.BadRequestFromString("Failed to fetch booking cars by user email"))

		rec := serve(router, http.MethodGet, "/booking-cars/a@example.com", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch booking cars by user email"}`, rec.Body.String())
	})
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().
			Create(gomock.Any(), model.Booking{"booked_user": "a@example.com", "bookingStatus": "Pending"}).
			Return(gDto.InsertResult{Acknowledged: true, InsertedID: "booking-1"}, nil)

		rec := serve(router, http.MethodPost, "/booking-cars", `{"booked_user":"a@example.com","bookingStatus":"Pending"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"acknowledged":true,"insertedId":"booking-1"}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPost, "/booking-cars", `"booking"`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to add booking car"}`, rec.Body.String())
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().Cancel(gomock.Any(), "booking-1").
			Return(gDto.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		rec := serve(router, http.MethodPatch, "/booking-cars/booking-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`, rec.Body.String())
	})

	t.Run("nothing modified", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().Cancel(gomock.Any(), "missing").
			Return(gDto.UpdateResult{Acknowledged: true}, failure.NotFound("Booking car not found or no changes made"))

		rec := serve(router, http.MethodPatch, "/booking-cars/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Booking car not found or no changes made"}`, rec.Body.String())
	})
}

func TestHandler_DeleteBooking(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().Delete(gomock.Any(), "booking-1").Return(gDto.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

		rec := serve(router, http.MethodDelete, "/booking-cars/booking-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
	})

	t.Run("no match", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().Delete(gomock.Any(), "missing").
			Return(gDto.DeleteResult{Acknowledged: true}, failure.BadRequestFromString("Booking car not found"))

		rec := serve(router, http.MethodDelete, "/booking-cars/missing", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Booking car not found"}`, rec.Body.String())
	})
}
