package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "pullup-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	tests := []struct {
		name     string
		caller   models.Caller
		wantRole models.UserRole
	}{
		{
			name:     "rider",
			caller:   models.Caller{ID: uuid.New(), Role: models.RoleRider, Name: "Sarah Johnson"},
			wantRole: models.RoleRider,
		},
		{
			name:     "driver",
			caller:   models.Caller{ID: uuid.New(), Role: models.RoleDriver, Phone: "+1 555 0100"},
			wantRole: models.RoleDriver,
		},
		{
			name:     "unknown role defaults to rider",
			caller:   models.Caller{ID: uuid.New(), Role: "authenticated"},
			wantRole: models.RoleRider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, exp, err := GenerateToken(tt.caller, getTestConfig())
			require.NoError(t, err)
			assert.Greater(t, exp, time.Now().Unix())

			claims, err := ValidateToken(token, getTestConfig())
			require.NoError(t, err)

			caller, err := claims.Caller()
			require.NoError(t, err)
			assert.Equal(t, tt.caller.ID, caller.ID)
			assert.Equal(t, tt.wantRole, caller.Role)
			assert.Equal(t, tt.caller.Name, caller.Name)
			assert.Equal(t, tt.caller.Phone, caller.Phone)
		})
	}
}

func TestValidateToken_Rejects(t *testing.T) {
	cfg := getTestConfig()
	token, _, err := GenerateToken(models.Caller{ID: uuid.New()}, cfg)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := cfg
		other.Secret = "other"
		_, err := ValidateToken(token, other)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := cfg
		other.Issuer = "someone-else"
		_, err := ValidateToken(token, other)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := cfg
		expired.Expiration = -5
		tok, _, err := GenerateToken(models.Caller{ID: uuid.New()}, expired)
		require.NoError(t, err)
		_, err = ValidateToken(tok, cfg)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateToken("not-a-token", cfg)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaims_CallerFromSubject(t *testing.T) {
	id := uuid.New()
	claims := &Claims{Role: "driver", RegisteredClaims: jwt.RegisteredClaims{Subject: id.String()}}

	caller, err := claims.Caller()
	require.NoError(t, err)
	assert.Equal(t, id, caller.ID)
	assert.Equal(t, models.RoleDriver, caller.Role)

	_, err = (&Claims{UserID: "nope"}).Caller()
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws/rides?access_token=q", nil)
	assert.Equal(t, "q", ExtractToken(req))

	req.Header.Set("Authorization", "Bearer h")
	assert.Equal(t, "h", ExtractToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "", ExtractToken(req))
}
