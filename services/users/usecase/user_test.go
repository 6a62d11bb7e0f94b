package usecase

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type userFixture struct {
	uc       *userUC
	repo     *mocks.MockUserRepo
	gw       *mocks.MockUserGW
	appState *mocks.MockAppState
	userID   uuid.UUID
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockUserGW(ctrl)
	appState := mocks.NewMockAppState(ctrl)

	cfg := &models.Config{Users: models.UsersConfig{NearbyRadiusKm: 5}}
	uc := NewUserUC(cfg, repo, gw, appState).(*userUC)
	uc.now = func() time.Time { return fixedNow }
	return &userFixture{uc: uc, repo: repo, gw: gw, appState: appState, userID: uuid.New()}
}

func strPtr(s string) *string { return &s }

func TestGetUserProfiles(t *testing.T) {
	t.Run("passes trimmed filter", func(t *testing.T) {
		f := newUserFixture(t)
		ctx := context.Background()
		want := []models.UserProfile{{ID: f.userID, FullName: "Alex Johnson"}}

		f.repo.EXPECT().ListUserProfiles(ctx, models.UserProfileFilter{Roles: []string{"driver"}, Search: "alex"}).Return(want, nil)

		result := f.uc.GetUserProfiles(ctx, models.UserProfileFilter{Roles: []string{"driver"}, Search: "  alex "})

		require.True(t, result.Success)
		assert.Equal(t, want, result.Data)
		assert.Empty(t, result.Error)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newUserFixture(t)

		result := f.uc.GetUserProfiles(context.Background(), models.UserProfileFilter{Roles: []string{"admin"}})

		assert.False(t, result.Success)
		assert.ErrorIs(t, result.Err, models.ErrValidation)
		assert.Equal(t, "role: must be rider or driver", result.Error)
	})

	t.Run("connectivity failure", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().ListUserProfiles(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("failed to list user profiles: %w", syscall.ECONNREFUSED))

		result := f.uc.GetUserProfiles(context.Background(), models.UserProfileFilter{})

		assert.False(t, result.Success)
		assert.Equal(t, utils.CannotConnectMessage, result.Error)
	})

	t.Run("other failure uses operation message", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().ListUserProfiles(gomock.Any(), gomock.Any()).Return(nil, errors.New("relation does not exist"))

		result := f.uc.GetUserProfiles(context.Background(), models.UserProfileFilter{})

		assert.Equal(t, "Failed to load user profiles.", result.Error)
	})
}

func TestGetUserByID(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUserProfile(ctx, f.userID).Return(nil, fmt.Errorf("%w: user %s", models.ErrNotFound, f.userID))

	result := f.uc.GetUserByID(ctx, f.userID)

	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	assert.ErrorIs(t, result.Err, models.ErrNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	t.Run("normalizes and announces", func(t *testing.T) {
		// Arrange
		f := newUserFixture(t)
		ctx := context.Background()
		update := models.UserProfileUpdate{
			FullName: strPtr("  Alex   Johnson "),
			Email:    strPtr(" Alex.Johnson@Email.com"),
			Phone:    strPtr("+1 (555) 123-4567"),
		}
		stored := &models.UserProfile{ID: f.userID, FullName: "Alex Johnson", Email: "alex.johnson@email.com"}

		f.repo.EXPECT().UpdateUserProfile(ctx, f.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, got models.UserProfileUpdate) (*models.UserProfile, error) {
				assert.Equal(t, "Alex Johnson", *got.FullName)
				assert.Equal(t, "alex.johnson@email.com", *got.Email)
				assert.Equal(t, "+1 (555) 123-4567", *got.Phone)
				assert.Nil(t, got.Status)
				return stored, nil
			})
		f.gw.EXPECT().PublishProfileChange(realtime.EventUpdate, *stored).Return(nil)

		// Act
		result := f.uc.UpdateUserProfile(ctx, f.userID, update)

		// Assert
		require.True(t, result.Success)
		assert.Equal(t, stored, result.Data)
	})

	t.Run("publish failure does not fail the update", func(t *testing.T) {
		f := newUserFixture(t)
		stored := &models.UserProfile{ID: f.userID}
		f.repo.EXPECT().UpdateUserProfile(gomock.Any(), f.userID, gomock.Any()).Return(stored, nil)
		f.gw.EXPECT().PublishProfileChange(gomock.Any(), gomock.Any()).Return(errors.New("nats: connection closed"))

		result := f.uc.UpdateUserProfile(context.Background(), f.userID, models.UserProfileUpdate{Status: strPtr("inactive")})

		assert.True(t, result.Success)
	})

	invalid := []struct {
		name   string
		update models.UserProfileUpdate
		want   string
	}{
		{"empty update", models.UserProfileUpdate{}, "profile: no changes provided"},
		{"blank name", models.UserProfileUpdate{FullName: strPtr("   ")}, "full_name: is required"},
		{"bad email", models.UserProfileUpdate{Email: strPtr("alex@")}, "email: is not a valid email address"},
		{"bad phone", models.UserProfileUpdate{Phone: strPtr("12")}, "phone: is not a valid phone number"},
		{"status", models.UserProfileUpdate{Status: strPtr("suspended")}, "status: must be active or inactive"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)

			result := f.uc.UpdateUserProfile(context.Background(), f.userID, tt.update)

			assert.False(t, result.Success)
			assert.Equal(t, tt.want, result.Error)
			assert.ErrorIs(t, result.Err, models.ErrValidation)
		})
	}
}
