package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildrydes/internal/utils"
)

func floatPtr(f float64) *float64 {
	return &f
}

func pickupRequest(lat, lng float64) *RideRequestRequest {
	return &RideRequestRequest{
		PickupLocation: &PickupLocationRequest{
			Latitude:  &lat,
			Longitude: &lng,
		},
	}
}

func TestValidateRideRequest_Valid(t *testing.T) {
	point, err := ValidateRideRequest(pickupRequest(47.6062, -122.3321))
	require.NoError(t, err)

	assert.Equal(t, 47.6062, point.Latitude)
	assert.Equal(t, -122.3321, point.Longitude)
	assert.Equal(t, "47.6062, -122.3321", point.Address)
}

func TestValidateRideRequest_SuppliedAddressKept(t *testing.T) {
	req := pickupRequest(47.6062, -122.3321)
	req.PickupLocation.Address = "1 Pike Place, Seattle"

	point, err := ValidateRideRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "1 Pike Place, Seattle", point.Address)
}

func TestValidateRideRequest_Boundaries(t *testing.T) {
	for _, coords := range [][2]float64{{90, 180}, {-90, -180}, {0, 0}} {
		_, err := ValidateRideRequest(pickupRequest(coords[0], coords[1]))
		assert.NoError(t, err)
	}
}

func TestValidateRideRequest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		request *RideRequestRequest
		message string
	}{
		{"nil request", nil, utils.ErrPickupRequired},
		{"missing pickup", &RideRequestRequest{}, utils.ErrPickupRequired},
		{
			"missing latitude",
			&RideRequestRequest{PickupLocation: &PickupLocationRequest{Longitude: floatPtr(0)}},
			utils.ErrCoordinateTypes,
		},
		{
			"missing longitude",
			&RideRequestRequest{PickupLocation: &PickupLocationRequest{Latitude: floatPtr(0)}},
			utils.ErrCoordinateTypes,
		},
		{"latitude above range", pickupRequest(90.0001, 0), utils.ErrLatitudeRange},
		{"latitude below range", pickupRequest(-90.0001, 0), utils.ErrLatitudeRange},
		{"longitude above range", pickupRequest(0, 180.0001), utils.ErrLongitudeRange},
		{"longitude below range", pickupRequest(0, -180.0001), utils.ErrLongitudeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := ValidateRideRequest(tt.request)
			require.Error(t, err)
			assert.Nil(t, point)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateStatusUpdate(t *testing.T) {
	assert.NoError(t, ValidateStatusUpdate(&RideStatusUpdateRequest{Status: "COMPLETED"}))

	err := ValidateStatusUpdate(nil)
	require.Error(t, err)
	assert.Equal(t, utils.ErrBodyRequired, err.Error())

	err = ValidateStatusUpdate(&RideStatusUpdateRequest{})
	require.Error(t, err)
	assert.Equal(t, "Status is required", err.Error())
}
