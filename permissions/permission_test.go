package permissions_test

import (
	"testing"

	"neodrive/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		path     string
		method   string
		wantSkip bool
	}{
		{path: "/jwt", method: "GET", wantSkip: true},
		{path: "/cars/{id}", method: "GET", wantSkip: true},
		{path: "/cars/{id}", method: "PUT", wantSkip: false},
		{path: "/booking-cars/{id}", method: "PATCH", wantSkip: false},
		{path: "/unknown", method: "GET", wantSkip: false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.wantSkip, data.FindPermissions(tt.path, tt.method).Skip)
		})
	}
}

func TestParse(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/cars","method":"POST","skip":true}]}`))
	require.NoError(t, err)

	assert.Equal(t, permissions.Permission{Path: "/cars", Method: "POST", Skip: true}, data.FindPermissions("/cars", "POST"))
	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/cars", "GET"))

	_, err = permissions.Parse([]byte(`not json`))
	assert.Error(t, err)
}
