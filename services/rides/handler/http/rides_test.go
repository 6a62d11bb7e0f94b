package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides/lifecycle"
	"github.com/piresc/pullup/services/rides/mocks"
	"github.com/piresc/pullup/services/rides/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riderCaller() models.Caller {
	return models.Caller{ID: uuid.New(), Role: models.RoleRider}
}

func TestRequestRide_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRideHandler(mockUC)
	caller := riderCaller()
	rideID := uuid.New()

	mockUC.EXPECT().RequestRide(gomock.Any(), caller, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Caller, req models.RideRequest) (*models.Ride, error) {
			assert.Equal(t, "economy", req.VehicleClass)
			assert.Equal(t, "123 Main St", req.Pickup.Address)
			return &models.Ride{ID: rideID, Status: models.RideStatusSearching}, nil
		})

	body := `{"pickup":{"address":"123 Main St","latitude":40.7128,"longitude":-74.006},
		"destination":{"address":"JFK","latitude":40.6413,"longitude":-73.7781},"vehicle_class":"economy"}`

	// Act
	rec, env := serve(t, h.RequestRide, http.MethodPost, "/api/v1/rides", body, caller, nil)

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	var ride models.Ride
	require.NoError(t, json.Unmarshal(env.Data, &ride))
	assert.Equal(t, rideID, ride.ID)
}

func TestRequestRide_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewRideHandler(mocks.NewMockRideUC(ctrl))

	rec, env := serve(t, h.RequestRide, http.MethodPost, "/api/v1/rides", `{}`, models.Caller{}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
}

func TestRequestRide_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRideHandler(mockUC)
	caller := riderCaller()

	mockUC.EXPECT().RequestRide(gomock.Any(), caller, gomock.Any()).
		Return(nil, models.NewValidationError("pickup", "is required"))

	rec, env := serve(t, h.RequestRide, http.MethodPost, "/api/v1/rides", `{"vehicle_class":"economy"}`, caller, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "pickup: is required", env.Error)
}

func TestGetRide_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewRideHandler(mocks.NewMockRideUC(ctrl))

	rec, env := serve(t, h.GetRide, http.MethodGet, "/api/v1/rides/nope", "", riderCaller(), map[string]string{"id": "nope"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid ride ID", env.Error)
}

func TestGetRide_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRideHandler(mockUC)
	caller, rideID := riderCaller(), uuid.New()

	mockUC.EXPECT().GetRide(gomock.Any(), caller, rideID).Return(nil, models.ErrForbidden)

	rec, _ := serve(t, h.GetRide, http.MethodGet, "/api/v1/rides/"+rideID.String(), "", caller, map[string]string{"id": rideID.String()})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetActiveRide_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRideHandler(mockUC)
	caller := riderCaller()

	mockUC.EXPECT().GetActiveRide(gomock.Any(), caller).Return(nil, models.ErrNotFound)

	rec, _ := serve(t, h.GetActiveRide, http.MethodGet, "/api/v1/rides/active", "", caller, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func invalidTransition() error {
	_, err := lifecycle.Next(models.RideStatusArrived, lifecycle.CompleteTrip)
	return err
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		expect  func(m *mocks.MockRideUC, caller models.Caller, id uuid.UUID) *gomock.Call
		handler func(h *RideHandler) echo.HandlerFunc
		err     error
		status  int
	}{
		{
			name: "arrived",
			expect: func(m *mocks.MockRideUC, caller models.Caller, id uuid.UUID) *gomock.Call {
				return m.EXPECT().ArrivedAtPickup(gomock.Any(), caller, id)
			},
			handler: func(h *RideHandler) echo.HandlerFunc { return h.ArrivedAtPickup },
			status:  http.StatusOK,
		},
		{
			name: "start",
			expect: func(m *mocks.MockRideUC, caller models.Caller, id uuid.UUID) *gomock.Call {
				return m.EXPECT().StartTrip(gomock.Any(), caller, id)
			},
			handler: func(h *RideHandler) echo.HandlerFunc { return h.StartTrip },
			status:  http.StatusOK,
		},
		{
			name: "complete from wrong status",
			expect: func(m *mocks.MockRideUC, caller models.Caller, id uuid.UUID) *gomock.Call {
				return m.EXPECT().CompleteTrip(gomock.Any(), caller, id)
			},
			handler: func(h *RideHandler) echo.HandlerFunc { return h.CompleteTrip },
			err:     invalidTransition(),
			status:  http.StatusConflict,
		},
		{
			name: "cancel in progress",
			expect: func(m *mocks.MockRideUC, caller models.Caller, id uuid.UUID) *gomock.Call {
				return m.EXPECT().CancelRide(gomock.Any(), caller, id)
			},
			handler: func(h *RideHandler) echo.HandlerFunc { return h.CancelRide },
			err:     models.ErrUnsupportedTransition,
			status:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockUC := mocks.NewMockRideUC(ctrl)
			h := NewRideHandler(mockUC)
			caller, rideID := riderCaller(), uuid.New()

			call := tt.expect(mockUC, caller, rideID)
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&models.Ride{ID: rideID}, nil)
			}

			rec, _ := serve(t, tt.handler(h), http.MethodPost, "/api/v1/rides/"+rideID.String(), "", caller,
				map[string]string{"id": rideID.String()})

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestEstimateFares(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRideHandler(mockUC)

	mockUC.EXPECT().EstimateFares(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.FareQuote{{}}, nil)

	body := `{"pickup":{"address":"A","latitude":1,"longitude":1},"destination":{"address":"B","latitude":1.1,"longitude":1.1}}`
	rec, env := serve(t, h.EstimateFares, http.MethodPost, "/api/v1/rides/estimate", body, riderCaller(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	rec, _ = serve(t, h.EstimateFares, http.MethodPost, "/api/v1/rides/estimate", `{}`, riderCaller(), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRiderDashboard_PassesLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRideHandler(mockUC)
	caller := riderCaller()

	mockUC.EXPECT().RiderDashboard(gomock.Any(), caller, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Caller, at *models.Place) (*projection.RiderDashboard, error) {
			require.NotNil(t, at)
			assert.Equal(t, 40.7128, at.Latitude)
			return &projection.RiderDashboard{Mode: models.ModeRider}, nil
		})

	rec, env := serve(t, h.RiderDashboard, http.MethodGet, "/api/v1/views/rider-dashboard?lat=40.7128&lng=-74.006", "", caller, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestRiderDashboard_BadLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewRideHandler(mocks.NewMockRideUC(ctrl))

	rec, _ := serve(t, h.RiderDashboard, http.MethodGet, "/api/v1/views/rider-dashboard?lat=north&lng=1", "", riderCaller(), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDriverDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockRideUC(ctrl)
	h := NewRideHandler(mockUC)
	caller := models.Caller{ID: uuid.New(), Role: models.RoleDriver}

	mockUC.EXPECT().DriverDashboard(gomock.Any(), caller).
		Return(&projection.DriverDashboard{Mode: models.ModeDriver, IsOnline: true}, nil)

	rec, env := serve(t, h.DriverDashboard, http.MethodGet, "/api/v1/views/driver-dashboard", "", caller, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var view projection.DriverDashboard
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.True(t, view.IsOnline)
}
