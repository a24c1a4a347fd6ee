package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
)

// DirectionsHandlers serves the route/ETA lookups behind the live-tracking page
type DirectionsHandlers struct {
	directions domain.DirectionsProvider
	log        zerolog.Logger
}

// NewDirectionsHandlers creates new directions handlers
func NewDirectionsHandlers(directions domain.DirectionsProvider, log zerolog.Logger) *DirectionsHandlers {
	return &DirectionsHandlers{
		directions: directions,
		log:        log.With().Str("component", "directions_handlers").Logger(),
	}
}

// Route handles GET /api/directions?origin=...&destination=...
// With no maps key configured the response is 503 and the tracking page
// falls back to its static ETA display.
func (h *DirectionsHandlers) Route(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination are required"})
		return
	}

	route, err := h.directions.GetDirections(c.Request.Context(), origin, destination)
	if err != nil {
		if errors.Is(err, domain.ErrMapsUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Map services are currently unavailable"})
			return
		}
		h.log.Error().Err(err).Msg("directions request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to calculate route at this time"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": route})
}
