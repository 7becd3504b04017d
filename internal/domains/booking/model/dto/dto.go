package dto

import (
	"neodrive/internal/domains/booking/model"
	"neodrive/shared"

	"go.mongodb.org/mongo-driver/bson"
)

// CancelBooking is the only change a booking accepts after creation.
type CancelBooking struct {
	BookingStatus string `bson:"bookingStatus"`
}

func NewCancelBooking() CancelBooking {
	return CancelBooking{BookingStatus: model.StatusCancel}
}

func (c CancelBooking) ToUpdate() bson.M {
	return shared.TransformFields(c)
}
