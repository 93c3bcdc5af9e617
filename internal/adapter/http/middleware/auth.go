package middleware

import (
	"net/http"
	"strings"

	"rocket_help/internal/usecase"
	"rocket_help/internal/usecase/interfaces"
	"rocket_help/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const claimsKey = "session_claims"

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)

// RequireSession rejects requests without a valid, non-revoked bearer token
// and stores the verified claims on the context.
func RequireSession(sessions usecase.ISessionUseCase, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		claims, err := sessions.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("[session][middleware] rejected token", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Claims returns the claims stored by RequireSession.
func Claims(c *gin.Context) (interfaces.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return interfaces.TokenClaims{}, false
	}
	claims, ok := v.(interfaces.TokenClaims)
	return claims, ok
}

// SetClaims is used by handler tests that bypass RequireSession.
func SetClaims(c *gin.Context, claims interfaces.TokenClaims) {
	c.Set(claimsKey, claims)
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
