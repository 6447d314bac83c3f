package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/arjunvx/skillfolio/token"
)

////////////////////////////////////////////////////////////////////////
// Constants used in authMiddleware
////////////////////////////////////////////////////////////////////////

const (
	authorizationHeaderKey  = "authorization"         // HTTP header where token is expected
	authorizationTypeBearer = "bearer"                // Authorization type: Bearer <token>
	authorizationPayloadKey = "authorization_payload" // Context key for storing the token payload
)

////////////////////////////////////////////////////////////////////////
// Middleware to authenticate JWTs
////////////////////////////////////////////////////////////////////////

// authMiddleware checks for a valid JWT token in the "Authorization" header.
// If valid, it stores the decoded token (claims) in Gin's context for use in handlers.
// If invalid or missing, it blocks access with a 401 Unauthorized.
func authMiddleware(tokenMaker *token.JWTMaker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 1. Get the value of the Authorization header
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 2. The expected format is: "Bearer <token>"
		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 3. Check that the type is "Bearer" (case-insensitive)
		authType := strings.ToLower(fields[0])
		if authType != authorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 4. Validate the JWT token
		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 5. Save the token claims to the Gin context so handlers can read them
		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

////////////////////////////////////////////////////////////////////////
// Helpers to extract JWT claims from context
////////////////////////////////////////////////////////////////////////

// getAuthorizationPayload retrieves the JWT claims stored by authMiddleware.
func getAuthorizationPayload(ctx *gin.Context) (jwt.MapClaims, error) {
	payload, exists := ctx.Get(authorizationPayloadKey)
	if !exists {
		return nil, errors.New("authorization payload not found")
	}

	claims, ok := payload.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid authorization payload type")
	}

	return claims, nil
}

// getAuthUserID extracts the authenticated user's id from the token claims.
// JWT numeric claims decode as float64, so the id needs an explicit conversion.
func getAuthUserID(ctx *gin.Context) (int64, error) {
	claims, err := getAuthorizationPayload(ctx)
	if err != nil {
		return 0, err
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("user_id claim missing or malformed")
	}

	return int64(rawID), nil
}
