// Package auth verifies the client access key supplied on protected routes.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bguntupallics/TradingSandbox/internal/api"
)

// HeaderAccessKey is the request header carrying the client access key.
const HeaderAccessKey = "X-ACCESS-KEY"

var (
	// ErrMissingKey is returned when no access key header is present.
	ErrMissingKey = errors.New("missing API key")

	// ErrInvalidKey is returned when the supplied key does not match the stored digest.
	ErrInvalidKey = errors.New("invalid API key")
)

// Verify checks a client-supplied access key against the stored SHA-256 hex
// digest. The comparison is constant-time so the check leaks no timing
// information about the digest. Pure function of its inputs.
func Verify(providedKey, storedDigest string) error {
	if providedKey == "" {
		return ErrMissingKey
	}

	sum := sha256.Sum256([]byte(providedKey))
	providedDigest := hex.EncodeToString(sum[:])

	if !hmac.Equal([]byte(providedDigest), []byte(storedDigest)) {
		return ErrInvalidKey
	}
	return nil
}

// Required returns a Gin middleware that rejects requests whose X-ACCESS-KEY
// header does not hash to the stored digest. It must run before rate limiting
// and before any upstream call on every protected route.
func Required(storedDigest string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the access key header
		key := c.GetHeader(HeaderAccessKey)

		// 2. Compare its digest against the stored digest
		switch err := Verify(key, storedDigest); {
		case errors.Is(err, ErrMissingKey):
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Missing API key"})
		case errors.Is(err, ErrInvalidKey):
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Invalid API key"})
		default:
			// 3. Pass control to the next handler
			c.Next()
		}
	}
}
