package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/users"
)

const profileColumns = `id, full_name, email, phone, role, status, avatar_url, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// UserRepo implements users.UserRepo on PostgreSQL with the driver GEO index in Redis
type UserRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) users.UserRepo {
	return &UserRepo{cfg: cfg, db: db, redisClient: redisClient}
}

// ListUserProfiles returns the profiles matching filter, newest first, with their driver profiles
func (r *UserRepo) ListUserProfiles(ctx context.Context, filter models.UserProfileFilter) ([]models.UserProfile, error) {
	var (
		conds []string
		args  []interface{}
	)
	if len(filter.Roles) > 0 {
		args = append(args, pq.Array(filter.Roles))
		conds = append(conds, fmt.Sprintf("role = ANY($%d)", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.Search)+"%")
		conds = append(conds, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + profileColumns + ` FROM user_profiles`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	profiles := []models.UserProfile{}
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list user profiles: %w", err)
	}
	if len(profiles) == 0 {
		return profiles, nil
	}

	ids := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	drivers, err := r.driverProfiles(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if d, ok := drivers[profiles[i].ID]; ok {
			profiles[i].DriverProfile = d
		}
	}
	return profiles, nil
}

// GetUserProfile returns one profile with its driver profile and vehicles
func (r *UserRepo) GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE id = $1`
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	drivers, err := r.driverProfiles(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	profile.DriverProfile = drivers[userID]
	return &profile, nil
}

// UpdateUserProfile applies the set fields of update and returns the stored row
func (r *UserRepo) UpdateUserProfile(ctx context.Context, userID uuid.UUID, update models.UserProfileUpdate) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles SET
			full_name = COALESCE($2, full_name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			avatar_url = COALESCE($5, avatar_url),
			status = COALESCE($6, status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + profileColumns

	var profile models.UserProfile
	err := r.db.GetContext(ctx, &profile, query,
		userID, update.FullName, update.Email, update.Phone, update.AvatarURL, update.Status)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
	case database.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: email is already registered", models.ErrConflict)
	case err != nil:
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return &profile, nil
}
