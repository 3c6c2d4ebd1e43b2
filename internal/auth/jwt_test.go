package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(2, "Beyonce")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(2), claims.UserID)
	require.Equal(t, "Beyonce", claims.Name)
	require.Equal(t, "2", claims.Subject)
}

func TestValidateToken_Invalid(t *testing.T) {
	_, err := ValidateToken("invalid.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongAudienceAndExpired(t *testing.T) {
	sign := func(c Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(jwtSecret)
		require.NoError(t, err)
		return s
	}

	wrongAud := sign(Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    jwtIssuer,
		Audience:  jwt.ClaimStrings{"someone-else"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	_, err := ValidateToken(wrongAud)
	require.ErrorIs(t, err, ErrInvalidToken)

	expired := sign(Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    jwtIssuer,
		Audience:  jwt.ClaimStrings{jwtAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})
	_, err = ValidateToken(expired)
	require.ErrorIs(t, err, ErrInvalidToken)
}
