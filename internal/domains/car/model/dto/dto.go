package dto

import (
	"neodrive/shared"

	"go.mongodb.org/mongo-driver/bson"
)

// UpdateCarRequest holds the only fields a car update may touch.
// Fields missing from the body stay nil and overwrite the stored value with null.
type UpdateCarRequest struct {
	CarModel                  any `bson:"carModel"                  json:"carModel"`
	DailyRentalPrice          any `bson:"dailyRentalPrice"          json:"dailyRentalPrice"`
	AvailabilityDate          any `bson:"availabilityDate"          json:"availabilityDate"`
	VehicleRegistrationNumber any `bson:"vehicleRegistrationNumber" json:"vehicleRegistrationNumber"`
	Features                  any `bson:"features"                  json:"features"`
	Description               any `bson:"description"               json:"description"`
	BookingCount              any `bson:"bookingCount"              json:"bookingCount"`
	ImageURL                  any `bson:"imageUrl"                  json:"imageUrl"`
	Location                  any `bson:"location"                  json:"location"`
	BookingStatus             any `bson:"bookingStatus"             json:"bookingStatus"`
}

// ToUpdate returns the $set document for the request.
func (r *UpdateCarRequest) ToUpdate() bson.M {
	return shared.TransformFields(r)
}
