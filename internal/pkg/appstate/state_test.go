package appstate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	rideID := uuid.New()
	otherRide := uuid.New()

	t.Run("switch mode", func(t *testing.T) {
		next, err := Reduce(Default(userID), SwitchMode(models.ModeDriver), at)
		require.NoError(t, err)
		assert.Equal(t, models.ModeDriver, next.Mode)
		assert.Equal(t, at, next.UpdatedAt)
	})

	t.Run("invalid mode keeps state", func(t *testing.T) {
		start := Default(userID)
		next, err := Reduce(start, SwitchMode("pilot"), at)
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Equal(t, start, next)
	})

	t.Run("activate and clear ride", func(t *testing.T) {
		active, err := Reduce(Default(userID), ActivateRide(rideID), at)
		require.NoError(t, err)
		require.NotNil(t, active.ActiveRideID)
		assert.Equal(t, rideID, *active.ActiveRideID)

		untouched, err := Reduce(active, ClearRide(otherRide), at.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, active, untouched)

		cleared, err := Reduce(active, ClearRide(rideID), at.Add(time.Minute))
		require.NoError(t, err)
		assert.Nil(t, cleared.ActiveRideID)
		assert.Equal(t, at.Add(time.Minute), cleared.UpdatedAt)
	})

	t.Run("activate requires ride", func(t *testing.T) {
		_, err := Reduce(Default(userID), ActivateRide(uuid.Nil), at)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := Reduce(Default(userID), Action{Type: "reset"}, at)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		start := Default(userID)
		_, err := Reduce(start, ActivateRide(rideID), at)
		require.NoError(t, err)
		assert.Nil(t, start.ActiveRideID)
	})
}

func TestAction_Checkpoint(t *testing.T) {
	assert.True(t, SwitchMode(models.ModeRider).Checkpoint())
	assert.True(t, ActivateRide(uuid.New()).Checkpoint())
	assert.True(t, ClearRide(uuid.New()).Checkpoint())
	assert.False(t, Action{Type: "noop"}.Checkpoint())
}
