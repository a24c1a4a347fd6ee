package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/internal/config"
	httpx "github.com/ashutosh-sx/Emergo/internal/http"
	"github.com/ashutosh-sx/Emergo/internal/http/handlers"
	"github.com/ashutosh-sx/Emergo/internal/http/middleware"
)

func Run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	secureCookie := cfg.GinMode == gin.ReleaseMode

	authH := handlers.NewAuthHandlers(c.AuthSvc, cfg.SessionTTL, secureCookie, log)
	bookingH := handlers.NewBookingHandlers(c.BookingSvc, log)
	driverH := handlers.NewDriverHandlers(c.DriverSvc, log)
	chatH := handlers.NewChatHandlers(c.ChatSvc, log)
	directionsH := handlers.NewDirectionsHandlers(c.Directions, log)

	jwtMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, bookingH, driverH, chatH, directionsH, jwtMW, httpx.RouterConfig{
		ChatRateRPS:   cfg.ChatRateRPS,
		ChatRateBurst: cfg.ChatRateBurst,
	})

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}
