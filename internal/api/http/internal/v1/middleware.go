package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nzwalks/backend/internal/domain"
	"github.com/nzwalks/backend/pkg/auth"
	"github.com/nzwalks/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	subjectCtx          = "subject"
	rolesCtx            = "roles"
)

var (
	errEmptyAuthHeader   = errors.New("empty auth header")
	errInvalidAuthHeader = errors.New("invalid auth header")
	errEmptyToken        = errors.New("token is empty")
)

// requireRole aborts with 401 when the caller has no valid token and with
// 403 when the token lacks role.
func (h *Handler) requireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := h.parseAuthHeader(c)
		if err != nil {
			if !errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, errEmptyAuthHeader) {
				logger.Warn("parse auth header failed", zap.Error(err))
			}
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if !domain.HasRole(claims.Roles, role) {
			logger.Debug("role required",
				zap.String("subject", claims.Subject),
				zap.String("role", string(role)),
				zap.Strings("granted", claims.Roles),
			)
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(subjectCtx, claims.Subject)
		c.Set(rolesCtx, claims.Roles)
		c.Next()
	}
}

func (h *Handler) parseAuthHeader(c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return nil, errEmptyAuthHeader
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return nil, errInvalidAuthHeader
	}

	if len(headerParts[1]) == 0 {
		return nil, errEmptyToken
	}

	return h.tokenManager.Parse(headerParts[1])
}

func getSubject(c *gin.Context) string {
	return c.GetString(subjectCtx)
}
