package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
)

// BookingHandlers handles booking HTTP requests
type BookingHandlers struct {
	bookingSvc domain.BookingService
	log        zerolog.Logger
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(bookingSvc domain.BookingService, log zerolog.Logger) *BookingHandlers {
	return &BookingHandlers{
		bookingSvc: bookingSvc,
		log:        log.With().Str("component", "booking_handlers").Logger(),
	}
}

// CreateBookingRequest represents a booking submission. The booking form
// posts "name"; the chat widget's quick-book flow posts "patientName".
type CreateBookingRequest struct {
	Name        string `json:"name" binding:"omitempty,min=2"`
	PatientName string `json:"patientName" binding:"omitempty,min=2"`
	Phone       string `json:"phone" binding:"required,min=10"`
	AltPhone    string `json:"altPhone"`
	Pickup      string `json:"pickup" binding:"required,min=5"`
	Destination string `json:"destination" binding:"required,min=5"`
	Type        string `json:"type" binding:"required,oneof=Basic ICU"`
	Date        string `json:"date" binding:"required"`
	Condition   string `json:"condition"`
	UserID      *uint  `json:"userId"`
}

// Create handles booking submission
func (h *BookingHandlers) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	name := req.Name
	if name == "" {
		name = req.PatientName
	}
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name is required"})
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &domain.BookingRequest{
		Name:        name,
		Phone:       req.Phone,
		AltPhone:    req.AltPhone,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Type:        req.Type,
		Date:        req.Date,
		Condition:   req.Condition,
		UserID:      req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("booking creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

// Get returns a single booking for the tracking page
func (h *BookingHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid booking id"})
		return
	}

	booking, err := h.bookingSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
			return
		}
		h.log.Error().Err(err).Msg("booking lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}
