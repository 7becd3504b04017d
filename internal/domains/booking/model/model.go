package model

import "go.mongodb.org/mongo-driver/bson"

const (
	CollectionName = "bookingCars"
	EntityName     = "booking"

	FieldID            = "_id"
	FieldBookedUser    = "booked_user"
	FieldBookingStatus = "bookingStatus"
)

const StatusCancel = "Cancel"

// Booking is a schema-less booking document, stored exactly as posted.
type Booking = bson.M
