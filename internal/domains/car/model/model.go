package model

import "go.mongodb.org/mongo-driver/bson"

const (
	CollectionName = "cars"
	EntityName     = "car"

	FieldID                        = "_id"
	FieldCarModel                  = "carModel"
	FieldDailyRentalPrice          = "dailyRentalPrice"
	FieldAvailabilityDate          = "availabilityDate"
	FieldVehicleRegistrationNumber = "vehicleRegistrationNumber"
	FieldFeatures                  = "features"
	FieldDescription               = "description"
	FieldBookingCount              = "bookingCount"
	FieldImageURL                  = "imageUrl"
	FieldLocation                  = "location"
	FieldBookingStatus             = "bookingStatus"
	FieldOwnerEmail                = "saveUserDetails.email"
)

const RecentLimit = 6

// Car is a schema-less listing document. Whatever the client posts is stored as is.
type Car = bson.M
