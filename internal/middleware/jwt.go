package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"fleet_manager/internal/apperr"
)

const (
	// TokenHeader carries the token on login responses and authenticated requests.
	TokenHeader = "auth-token"

	// CredentialIDKey is the gin context key holding the authenticated credential id.
	CredentialIDKey = "credential_id"
)

// TokenManager signs and verifies HS256 tokens carrying a credential id.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Generate issues a token for the credential. Tokens carry only the id and
// do not expire.
func (tm *TokenManager) Generate(credentialID string) (string, error) {
	claims := jwt.MapClaims{
		"id": credentialID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Validate verifies the signature and returns the credential id.
func (tm *TokenManager) Validate(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", apperr.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperr.ErrInvalidToken
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", apperr.ErrInvalidToken
	}
	return id, nil
}

// RequireAuth rejects requests without a token with 401 and requests with a
// token that does not verify with 400.
func RequireAuth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrUnauthorized.Message})
			return
		}

		id, err := tm.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": apperr.ErrInvalidToken.Message})
			return
		}

		c.Set(CredentialIDKey, id)
	}
}
