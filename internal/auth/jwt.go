package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// Token lifetimes. Access tokens are short-lived; the client silently renews
// them with the refresh token when the API starts answering 401.
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	tokenUseAccess  = "access"
	tokenUseRefresh = "refresh"
)

// JWTClaims represents the JWT token claims
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TokenUse string `json:"token_use"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// InitializeJWT sets the JWT secret key
func InitializeJWT(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateAccessToken creates a short-lived bearer token for API calls
func GenerateAccessToken(userID, email, role string) (string, error) {
	return generateToken(userID, email, role, tokenUseAccess, AccessTokenTTL)
}

// GenerateRefreshToken creates a long-lived token used only to mint a new
// access token. It is never accepted as a bearer credential.
func GenerateRefreshToken(userID, email, role string) (string, error) {
	return generateToken(userID, email, role, tokenUseRefresh, RefreshTokenTTL)
}

func generateToken(userID, email, role, use string, ttl time.Duration) (string, error) {
	if len(jwtSecret) == 0 {
		return "", fmt.Errorf("JWT secret not initialized")
	}

	now := time.Now()
	claims := JWTClaims{
		UserID:   userID,
		Email:    email,
		Role:     role,
		TokenUse: use,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateAccessToken validates a bearer token and returns its claims
func ValidateAccessToken(tokenString string) (*JWTClaims, error) {
	return validateToken(tokenString, tokenUseAccess)
}

// ValidateRefreshToken validates a refresh token and returns its claims
func ValidateRefreshToken(tokenString string) (*JWTClaims, error) {
	return validateToken(tokenString, tokenUseRefresh)
}

func validateToken(tokenString, expectedUse string) (*JWTClaims, error) {
	if len(jwtSecret) == 0 {
		return nil, fmt.Errorf("JWT secret not initialized")
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	// A refresh token must never pass as a bearer credential, and vice versa
	if claims.TokenUse != expectedUse {
		return nil, fmt.Errorf("token is not a %s token", expectedUse)
	}

	return claims, nil
}
