package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/ashutosh-sx/Emergo/internal/http/handlers"
	"github.com/ashutosh-sx/Emergo/internal/http/middleware"
)

// RouterConfig carries the knobs the route table needs beyond the handlers.
type RouterConfig struct {
	ChatRateRPS   float64
	ChatRateBurst int
}

func BuildRouter(ah *handlers.AuthHandlers, bh *handlers.BookingHandlers, dh *handlers.DriverHandlers, ch *handlers.ChatHandlers, mh *handlers.DirectionsHandlers, jwtmw *middleware.AuthMW, cfg RouterConfig) *gin.Engine {
	r := gin.New(); r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context){ c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)

	authed := r.Group("/api").Use(jwtmw.WithJWT())
	authed.GET("/auth/me", ah.Me)

	bookings := r.Group("/api/bookings")
	bookings.POST("", bh.Create)
	bookings.GET("/:id", bh.Get)

	r.POST("/api/driver/register", dh.Register)

	r.POST("/api/chat", middleware.RateLimit(cfg.ChatRateRPS, cfg.ChatRateBurst), ch.Ask)
	r.GET("/api/directions", mh.Route)

	return r
}
