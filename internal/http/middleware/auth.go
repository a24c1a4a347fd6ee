package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ashutosh-sx/Emergo/domain"
)

// AuthMW wraps the token service for middleware wiring
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithJWT returns the session-cookie middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc)
}
