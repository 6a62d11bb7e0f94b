package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/users"
)

const maxNameLength = 100

// Profile statuses a user may set on their own account
var selfStatuses = map[string]bool{
	"active":   true,
	"inactive": true,
}

// userUC implements users.UserUC
type userUC struct {
	cfg      *models.Config
	repo     users.UserRepo
	gw       users.UserGW
	appState users.AppState
	now      func() time.Time
}

// NewUserUC creates the user use case
func NewUserUC(cfg *models.Config, repo users.UserRepo, gw users.UserGW, appState users.AppState) users.UserUC {
	return &userUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		appState: appState,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// announce publishes a row change. Subscribers are best effort, so failures are only logged.
func announce(row string, err error) {
	if err != nil {
		logger.Warn("Failed to publish realtime change",
			logger.String("row", row),
			logger.Err(err))
	}
}

// GetUserProfiles lists profiles newest first
func (uc *userUC) GetUserProfiles(ctx context.Context, filter models.UserProfileFilter) models.Result[[]models.UserProfile] {
	const fallback = "Failed to load user profiles."

	for _, role := range filter.Roles {
		if role != string(models.RoleRider) && role != string(models.RoleDriver) {
			return utils.AdapterResult[[]models.UserProfile](models.NewValidationError("role", "must be rider or driver"), fallback)
		}
	}
	filter.Search = strings.TrimSpace(filter.Search)

	profiles, err := uc.repo.ListUserProfiles(ctx, filter)
	if err != nil {
		return utils.AdapterResult[[]models.UserProfile](err, fallback)
	}
	return models.Ok(profiles)
}

// GetUserByID returns one profile with its driver profile
func (uc *userUC) GetUserByID(ctx context.Context, userID uuid.UUID) models.Result[*models.UserProfile] {
	profile, err := uc.repo.GetUserProfile(ctx, userID)
	if err != nil {
		return utils.AdapterResult[*models.UserProfile](err, "Failed to load user.")
	}
	return models.Ok(profile)
}

// UpdateUserProfile validates and applies a partial profile update
func (uc *userUC) UpdateUserProfile(ctx context.Context, userID uuid.UUID, update models.UserProfileUpdate) models.Result[*models.UserProfile] {
	const fallback = "Failed to update user profile."

	if err := normalizeProfileUpdate(&update); err != nil {
		return utils.AdapterResult[*models.UserProfile](err, fallback)
	}

	profile, err := uc.repo.UpdateUserProfile(ctx, userID, update)
	if err != nil {
		return utils.AdapterResult[*models.UserProfile](err, fallback)
	}

	announce("user_profile", uc.gw.PublishProfileChange(realtime.EventUpdate, *profile))
	return models.Ok(profile)
}

func normalizeProfileUpdate(update *models.UserProfileUpdate) error {
	if update.FullName == nil && update.Email == nil && update.Phone == nil &&
		update.AvatarURL == nil && update.Status == nil {
		return models.NewValidationError("profile", "no changes provided")
	}

	if update.FullName != nil {
		name := utils.SanitizeString(*update.FullName)
		if name == "" {
			return models.NewValidationError("full_name", "is required")
		}
		name = utils.Truncate(name, maxNameLength)
		update.FullName = &name
	}
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if !utils.IsValidEmail(email) {
			return models.NewValidationError("email", "is not a valid email address")
		}
		update.Email = &email
	}
	if update.Phone != nil {
		phone := strings.TrimSpace(*update.Phone)
		if !utils.IsValidPhoneNumber(phone) {
			return models.NewValidationError("phone", "is not a valid phone number")
		}
		update.Phone = &phone
	}
	if update.AvatarURL != nil {
		avatar := strings.TrimSpace(*update.AvatarURL)
		update.AvatarURL = &avatar
	}
	if update.Status != nil && !selfStatuses[*update.Status] {
		return models.NewValidationError("status", "must be active or inactive")
	}
	return nil
}
