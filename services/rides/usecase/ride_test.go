package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/appstate"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides/dispatch"
	"github.com/piresc/pullup/services/rides/fare"
	"github.com/piresc/pullup/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type rideFixture struct {
	uc         *rideUC
	repo       *mocks.MockRideRepo
	gw         *mocks.MockRideGW
	dispatcher *mocks.MockDispatcher
	appState   *mocks.MockAppState
	catalog    *fare.Catalog
}

func newRideFixture(t *testing.T) *rideFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	catalog, err := fare.DefaultCatalog()
	require.NoError(t, err)

	cfg := &models.Config{Rides: models.RidesConfig{SearchRadiusKm: 5, CommissionRate: 0.2}}
	f := &rideFixture{
		repo:       mocks.NewMockRideRepo(ctrl),
		gw:         mocks.NewMockRideGW(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
		appState:   mocks.NewMockAppState(ctrl),
		catalog:    catalog,
	}
	uc := NewRideUC(cfg, catalog, f.repo, f.gw, f.dispatcher, f.appState).(*rideUC)
	uc.now = func() time.Time { return fixedNow }
	f.uc = uc
	return f
}

func rider() models.Caller {
	return models.Caller{ID: uuid.New(), Role: models.RoleRider, Name: "Alex Kim", Phone: "+15550100"}
}

func downtown() *models.Place {
	return &models.Place{Address: "123 Main St", Latitude: 40.7128, Longitude: -74.0060}
}

func airport() *models.Place {
	return &models.Place{Address: "JFK Terminal 4", Latitude: 40.6413, Longitude: -73.7781}
}

func searchingRide(passengerID uuid.UUID) *models.Ride {
	return &models.Ride{
		ID:           uuid.New(),
		PassengerID:  passengerID,
		VehicleClass: "economy",
		Status:       models.RideStatusSearching,
		Pickup:       *downtown(),
		Destination:  *airport(),
		Fare:         models.FareBreakdown{Total: 23.78, Currency: "USD"},
		RequestedAt:  fixedNow.Add(-time.Minute),
	}
}

func withDriver(r *models.Ride, status models.RideStatus, driver *models.DriverCard) *models.Ride {
	r.Status = status
	r.DriverID = &driver.ID
	r.Driver = driver
	return r
}

func TestRequestRide_Success(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	req := models.RideRequest{Pickup: downtown(), Destination: airport(), VehicleClass: "premium"}

	var scheduled dispatch.AssignFunc
	f.repo.EXPECT().GetActiveRideByPassenger(gomock.Any(), caller.ID).Return(nil, models.ErrNotFound)
	f.repo.EXPECT().GetPassengerCard(gomock.Any(), caller.ID).
		Return(&models.PassengerCard{ID: caller.ID, Name: "Alex Kim", Rating: 4.9}, nil)
	f.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	f.appState.EXPECT().Dispatch(gomock.Any(), caller.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, a appstate.Action) (appstate.State, error) {
			assert.Equal(t, appstate.RideActivated, a.Type)
			return appstate.State{}, nil
		})
	f.gw.EXPECT().PublishRideUpdated(gomock.Any(), gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().Schedule(gomock.Any(), gomock.Any()).
		Do(func(_ uuid.UUID, fn dispatch.AssignFunc) { scheduled = fn })

	// Act
	ride, err := f.uc.RequestRide(context.Background(), caller, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusSearching, ride.Status)
	assert.Equal(t, "premium", ride.VehicleClass)
	assert.Equal(t, "Alex Kim", ride.Passenger.Name)
	assert.Equal(t, fixedNow, ride.RequestedAt)
	assert.Greater(t, ride.Fare.Total, 0.0)
	assert.Nil(t, ride.DriverID)
	assert.NotNil(t, scheduled)
}

func TestRequestRide_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		req   models.RideRequest
		field string
	}{
		{
			name:  "missing pickup",
			req:   models.RideRequest{Destination: airport(), VehicleClass: "economy"},
			field: "pickup",
		},
		{
			name:  "blank destination address",
			req:   models.RideRequest{Pickup: downtown(), Destination: &models.Place{Latitude: 1, Longitude: 1}, VehicleClass: "economy"},
			field: "destination",
		},
		{
			name:  "unknown vehicle class",
			req:   models.RideRequest{Pickup: downtown(), Destination: airport(), VehicleClass: "limousine"},
			field: "vehicle_class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRideFixture(t)

			ride, err := f.uc.RequestRide(context.Background(), rider(), tt.req)

			assert.Nil(t, ride)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestRequestRide_ActiveRideExists(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	f.repo.EXPECT().GetActiveRideByPassenger(gomock.Any(), caller.ID).Return(searchingRide(caller.ID), nil)

	// Act
	ride, err := f.uc.RequestRide(context.Background(), caller,
		models.RideRequest{Pickup: downtown(), Destination: airport(), VehicleClass: "economy"})

	// Assert
	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRequestRide_LosesRaceToConcurrentRequest(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	f.repo.EXPECT().GetActiveRideByPassenger(gomock.Any(), caller.ID).Return(nil, models.ErrNotFound)
	f.repo.EXPECT().GetPassengerCard(gomock.Any(), caller.ID).Return(nil, models.ErrNotFound)
	f.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: %s", models.ErrActiveRideExists, caller.ID))

	// Act
	ride, err := f.uc.RequestRide(context.Background(), caller,
		models.RideRequest{Pickup: downtown(), Destination: airport(), VehicleClass: "economy"})

	// Assert
	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.ErrorIs(t, err, models.ErrActiveRideExists)
}

func TestGetRide_NotParticipant(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	ride := searchingRide(uuid.New())
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	// Act
	got, err := f.uc.GetRide(context.Background(), rider(), ride.ID)

	// Assert
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestGetActiveRide_FromAppState(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	ride := searchingRide(caller.ID)
	f.appState.EXPECT().Get(gomock.Any(), caller.ID).
		Return(appstate.State{UserID: caller.ID, Mode: models.ModeRider, ActiveRideID: &ride.ID}, nil)
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	// Act
	got, err := f.uc.GetActiveRide(context.Background(), caller)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ride.ID, got.ID)
}

func TestGetActiveRide_DriverModeLooksUpDriverFirst(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := models.Caller{ID: uuid.New(), Role: models.RoleDriver}
	ride := withDriver(searchingRide(uuid.New()), models.RideStatusDriverAssigned, &models.DriverCard{ID: caller.ID})

	f.appState.EXPECT().Get(gomock.Any(), caller.ID).Return(appstate.State{Mode: models.ModeDriver}, nil)
	f.repo.EXPECT().GetActiveRideByDriver(gomock.Any(), caller.ID).Return(ride, nil)

	// Act
	got, err := f.uc.GetActiveRide(context.Background(), caller)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ride.ID, got.ID)
}

func TestGetActiveRide_None(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	f.appState.EXPECT().Get(gomock.Any(), caller.ID).Return(appstate.Default(caller.ID), nil)
	f.repo.EXPECT().GetActiveRideByPassenger(gomock.Any(), caller.ID).Return(nil, models.ErrNotFound)
	f.repo.EXPECT().GetActiveRideByDriver(gomock.Any(), caller.ID).Return(nil, models.ErrNotFound)

	// Act
	got, err := f.uc.GetActiveRide(context.Background(), caller)

	// Assert
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAssignDriver_NearbyOnlineDriver(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	ride := searchingRide(uuid.New())
	busyID, freeID := uuid.New(), uuid.New()
	card := &models.DriverCard{ID: freeID, Name: "Jordan Lee", Rating: 4.8}

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().FindNearbyDrivers(gomock.Any(), ride.Pickup, 5.0, nearbyDriverLimit).
		Return([]models.NearbyDriver{{UserID: busyID}, {UserID: freeID}}, nil)
	f.repo.EXPECT().ListBusyDrivers(gomock.Any(), []uuid.UUID{busyID, freeID}).Return([]uuid.UUID{busyID}, nil)
	f.repo.EXPECT().GetDriverCard(gomock.Any(), freeID).Return(card, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusSearching).Return(nil)
	f.gw.EXPECT().PublishRideUpdated(gomock.Any(), gomock.Any()).Return(nil)
	f.appState.EXPECT().Dispatch(gomock.Any(), freeID, appstate.ActivateRide(ride.ID)).Return(appstate.State{}, nil)

	// Act
	got, err := f.uc.AssignDriver(context.Background(), ride.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusDriverAssigned, got.Status)
	assert.Equal(t, freeID, *got.DriverID)
	assert.Equal(t, "Jordan Lee", got.Driver.Name)
	require.NotNil(t, got.AssignedAt)
	assert.Equal(t, fixedNow, *got.AssignedAt)
}

func TestAssignDriver_FallsBackToDemoRoster(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	ride := searchingRide(uuid.New())

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().FindNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis unavailable"))
	f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusSearching).Return(nil)
	f.gw.EXPECT().PublishRideUpdated(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	got, err := f.uc.AssignDriver(context.Background(), ride.ID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, got.DriverID)
	_, demo := f.catalog.DemoDriver(*got.DriverID)
	assert.True(t, demo)
}

func TestAssignDriver_DriverTakenFallsBackToDemoRoster(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	ride := searchingRide(uuid.New())
	driverID := uuid.New()

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().FindNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.NearbyDriver{{UserID: driverID}}, nil)
	f.repo.EXPECT().ListBusyDrivers(gomock.Any(), []uuid.UUID{driverID}).Return(nil, nil)
	f.repo.EXPECT().GetDriverCard(gomock.Any(), driverID).Return(&models.DriverCard{ID: driverID}, nil)
	gomock.InOrder(
		f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusSearching).
			Return(fmt.Errorf("%w: %s", models.ErrDriverBusy, driverID)),
		f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusSearching).Return(nil),
	)
	f.gw.EXPECT().PublishRideUpdated(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	got, err := f.uc.AssignDriver(context.Background(), ride.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusDriverAssigned, got.Status)
	require.NotNil(t, got.DriverID)
	assert.NotEqual(t, driverID, *got.DriverID)
	_, demo := f.catalog.DemoDriver(*got.DriverID)
	assert.True(t, demo)
	assert.True(t, got.DemoDriver)
}

func TestAssignDriver_RideNoLongerSearching(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	ride := searchingRide(uuid.New())
	ride.Status = models.RideStatusCancelled
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	// Act
	got, err := f.uc.AssignDriver(context.Background(), ride.ID)

	// Assert
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestDriverActions_FullTrip(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	driver := models.Caller{ID: uuid.New(), Role: models.RoleDriver}
	ride := withDriver(searchingRide(uuid.New()), models.RideStatusDriverAssigned, &models.DriverCard{ID: driver.ID})

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil).Times(3)
	gomock.InOrder(
		f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusDriverAssigned).Return(nil),
		f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusArrived).Return(nil),
		f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusInProgress).Return(nil),
	)
	f.gw.EXPECT().PublishRideUpdated(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.gw.EXPECT().PublishRideCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.RideCompletedEvent) error {
			assert.Equal(t, ride.ID, ev.RideID)
			assert.Equal(t, driver.ID, ev.DriverID)
			assert.InDelta(t, 19.02, ev.DriverEarnings, 0.001)
			return nil
		})
	f.appState.EXPECT().Dispatch(gomock.Any(), ride.PassengerID, appstate.ClearRide(ride.ID)).Return(appstate.State{}, nil)
	f.appState.EXPECT().Dispatch(gomock.Any(), driver.ID, appstate.ClearRide(ride.ID)).Return(appstate.State{}, nil)
	ctx := context.Background()

	// Act
	_, err := f.uc.ArrivedAtPickup(ctx, driver, ride.ID)
	require.NoError(t, err)
	_, err = f.uc.StartTrip(ctx, driver, ride.ID)
	require.NoError(t, err)
	got, err := f.uc.CompleteTrip(ctx, driver, ride.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, got.Status)
	assert.NotNil(t, got.ArrivedAt)
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)
}

func TestDriverAction_PassengerCannotActForRealDriver(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	ride := withDriver(searchingRide(caller.ID), models.RideStatusDriverAssigned, &models.DriverCard{ID: uuid.New()})
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	// Act
	got, err := f.uc.ArrivedAtPickup(context.Background(), caller, ride.ID)

	// Assert
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestDriverAction_PassengerAdvancesDemoDriver(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	demo := f.catalog.DemoDrivers[0].Card()
	ride := withDriver(searchingRide(caller.ID), models.RideStatusDriverAssigned, demo)
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusDriverAssigned).Return(nil)
	f.gw.EXPECT().PublishRideUpdated(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	got, err := f.uc.ArrivedAtPickup(context.Background(), caller, ride.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusArrived, got.Status)
}

func TestCompleteTrip_NotInProgress(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	driver := models.Caller{ID: uuid.New()}
	ride := withDriver(searchingRide(uuid.New()), models.RideStatusArrived, &models.DriverCard{ID: driver.ID})
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	// Act
	got, err := f.uc.CompleteTrip(context.Background(), driver, ride.ID)

	// Assert
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestCancelRide_WhileSearching(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	ride := searchingRide(caller.ID)
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusSearching).Return(nil)
	f.gw.EXPECT().PublishRideUpdated(gomock.Any(), gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().Cancel(ride.ID).Return(true)
	f.appState.EXPECT().Dispatch(gomock.Any(), caller.ID, appstate.ClearRide(ride.ID)).Return(appstate.State{}, nil)

	// Act
	got, err := f.uc.CancelRide(context.Background(), caller, ride.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, got.Status)
	assert.False(t, got.CancellationFeeWarning)
	assert.NotNil(t, got.CancelledAt)
}

func TestCancelRide_AfterAssignmentWarnsAboutFee(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	ride := withDriver(searchingRide(caller.ID), models.RideStatusDriverAssigned, f.catalog.DemoDrivers[1].Card())
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusDriverAssigned).Return(nil)
	f.gw.EXPECT().PublishRideUpdated(gomock.Any(), gomock.Any()).Return(nil)
	f.dispatcher.EXPECT().Cancel(ride.ID).Return(false)
	f.appState.EXPECT().Dispatch(gomock.Any(), caller.ID, appstate.ClearRide(ride.ID)).Return(appstate.State{}, nil)

	// Act
	got, err := f.uc.CancelRide(context.Background(), caller, ride.ID)

	// Assert
	require.NoError(t, err)
	assert.True(t, got.CancellationFeeWarning)
}

func TestCancelRide_InProgressUnsupported(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	ride := withDriver(searchingRide(caller.ID), models.RideStatusInProgress, &models.DriverCard{ID: uuid.New()})
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	// Act
	got, err := f.uc.CancelRide(context.Background(), caller, ride.ID)

	// Assert
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrUnsupportedTransition)
}

func TestCancelRide_LostRaceWithAssignment(t *testing.T) {
	// Arrange
	f := newRideFixture(t)
	caller := rider()
	ride := searchingRide(caller.ID)
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), ride, models.RideStatusSearching).Return(models.ErrConflict)

	// Act
	got, err := f.uc.CancelRide(context.Background(), caller, ride.ID)

	// Assert
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestEstimateFares(t *testing.T) {
	f := newRideFixture(t)

	quotes, err := f.uc.EstimateFares(context.Background(), *downtown(), *airport())

	require.NoError(t, err)
	assert.Len(t, quotes, len(f.catalog.VehicleClasses))

	_, err = f.uc.EstimateFares(context.Background(), *downtown(), models.Place{Address: "Nowhere", Latitude: 123})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListVehicleClasses_ReturnsCopy(t *testing.T) {
	f := newRideFixture(t)

	classes := f.uc.ListVehicleClasses()
	classes[0].Name = "changed"

	assert.NotEqual(t, "changed", f.catalog.VehicleClasses[0].Name)
}
