package session

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	timeadapter "github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/time"
)

var testSecret = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 48)))

func testUser() *entity.User {
	return &entity.User{
		ID:         17,
		SocialID:   "g-42",
		SocialType: entity.SocialGoogle,
		Nickname:   "Kim",
	}
}

func TestNewTokenIssuer(t *testing.T) {
	clock := timeadapter.NewFixedTimeProvider(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	t.Run("should reject a secret that is not base64", func(t *testing.T) {
		_, err := NewTokenIssuer("%%%", time.Hour, clock)
		assert.Error(t, err)
	})

	t.Run("should reject a short secret", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString([]byte("short"))
		_, err := NewTokenIssuer(short, time.Hour, clock)
		assert.ErrorIs(t, err, ErrWeakSecret)
	})

	t.Run("should reject a non-positive expiration", func(t *testing.T) {
		_, err := NewTokenIssuer(testSecret, 0, clock)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Run("should verify a token it issued", func(t *testing.T) {
		// Arrange
		issuedAt := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
		clock := timeadapter.NewFixedTimeProvider(issuedAt)
		issuer, err := NewTokenIssuer(testSecret, 24*time.Hour, clock)
		require.NoError(t, err)

		// Act
		token, err := issuer.Issue(testUser())
		require.NoError(t, err)
		claims, err := issuer.Verify(token)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(17), claims.UserID)
		assert.Equal(t, "g-42", claims.SocialID)
		assert.Equal(t, entity.SocialGoogle, claims.SocialType)
		assert.Equal(t, "Kim", claims.Nickname)
		assert.True(t, claims.IssuedAt.Equal(issuedAt))
		assert.True(t, claims.ExpiresAt.Equal(issuedAt.Add(24*time.Hour)))
	})

	t.Run("should refuse to issue for an unsaved user", func(t *testing.T) {
		// Arrange
		clock := timeadapter.NewFixedTimeProvider(time.Now())
		issuer, err := NewTokenIssuer(testSecret, time.Hour, clock)
		require.NoError(t, err)

		// Act
		_, err = issuer.Issue(&entity.User{})

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestTokenIssuer_Verify(t *testing.T) {
	issuedAt := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("should reject an expired token", func(t *testing.T) {
		// Arrange
		clock := timeadapter.NewFixedTimeProvider(issuedAt)
		issuer, err := NewTokenIssuer(testSecret, time.Hour, clock)
		require.NoError(t, err)
		token, err := issuer.Issue(testUser())
		require.NoError(t, err)

		later, err := NewTokenIssuer(testSecret, time.Hour, timeadapter.NewFixedTimeProvider(issuedAt.Add(2*time.Hour)))
		require.NoError(t, err)

		// Act
		claims, err := later.Verify(token)

		// Assert
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		// Arrange
		clock := timeadapter.NewFixedTimeProvider(issuedAt)
		otherSecret := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("z", 32)))
		other, err := NewTokenIssuer(otherSecret, time.Hour, clock)
		require.NoError(t, err)
		issuer, err := NewTokenIssuer(testSecret, time.Hour, clock)
		require.NoError(t, err)
		token, err := other.Issue(testUser())
		require.NoError(t, err)

		// Act
		_, err = issuer.Verify(token)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should reject the none algorithm", func(t *testing.T) {
		// Arrange
		clock := timeadapter.NewFixedTimeProvider(issuedAt)
		issuer, err := NewTokenIssuer(testSecret, time.Hour, clock)
		require.NoError(t, err)
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"userId": 17,
			"exp":    issuedAt.Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		// Act
		_, err = issuer.Verify(unsigned)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		// Arrange
		clock := timeadapter.NewFixedTimeProvider(issuedAt)
		issuer, err := NewTokenIssuer(testSecret, time.Hour, clock)
		require.NoError(t, err)

		// Act
		_, err = issuer.Verify("not.a.token")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
