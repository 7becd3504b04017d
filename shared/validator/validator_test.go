package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"neodrive/shared/failure"
	"neodrive/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBooking struct {
	BookedUser string  `json:"booked_user"   validate:"required,email"`
	Days       int     `json:"days"          validate:"gte=1,lte=30"`
	Status     string  `json:"bookingStatus" validate:"omitempty,oneof=Pending Confirmed Cancel"`
	Price      float64 `json:"-"             validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    testBooking
		wantMsg string
	}{
		{
			name: "valid struct",
			data: testBooking{BookedUser: "user@example.com", Days: 3, Status: "Pending"},
		},
		{
			name:    "missing required field",
			data:    testBooking{Days: 3},
			wantMsg: "booked_user is required",
		},
		{
			name:    "invalid email",
			data:    testBooking{BookedUser: "not-an-email", Days: 3},
			wantMsg: "booked_user must be a valid email address",
		},
		{
			name:    "out of range",
			data:    testBooking{BookedUser: "user@example.com", Days: 45},
			wantMsg: "days must be less than or equal to 30",
		},
		{
			name:    "not one of",
			data:    testBooking{BookedUser: "user@example.com", Days: 3, Status: "Lost"},
			wantMsg: "bookingStatus must be one of Pending Confirmed Cancel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		var data map[string]any

		require.NoError(t, validator.Decode(strings.NewReader(`{"carModel":"Civic"}`), &data))
		assert.Equal(t, "Civic", data["carModel"])
	})

	t.Run("empty body", func(t *testing.T) {
		data := map[string]any{}

		require.NoError(t, validator.Decode(strings.NewReader(""), &data))
		assert.Empty(t, data)
	})

	t.Run("not an object", func(t *testing.T) {
		var data map[string]any

		err := validator.Decode(strings.NewReader(`["a","b"]`), &data)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("malformed", func(t *testing.T) {
		var data map[string]any

		err := validator.Decode(strings.NewReader(`{"carModel":}`), &data)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestValidate(t *testing.T) {
	var data testBooking

	require.NoError(t, validator.Validate(strings.NewReader(`{"booked_user":"user@example.com","days":2}`), &data))
	assert.Equal(t, "user@example.com", data.BookedUser)

	data = testBooking{}
	assert.Error(t, validator.Validate(strings.NewReader(`{}`), &data))
}
