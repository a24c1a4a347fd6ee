package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
)

// DriverHandlers handles driver registration HTTP requests
type DriverHandlers struct {
	driverSvc domain.DriverService
	log       zerolog.Logger
}

// NewDriverHandlers creates new driver handlers
func NewDriverHandlers(driverSvc domain.DriverService, log zerolog.Logger) *DriverHandlers {
	return &DriverHandlers{
		driverSvc: driverSvc,
		log:       log.With().Str("component", "driver_handlers").Logger(),
	}
}

// RegisterDriverRequest represents a driver application. All six document
// photos are required up front; verification happens out of band.
type RegisterDriverRequest struct {
	Name                 string `json:"name" binding:"required"`
	Phone                string `json:"phone" binding:"required,min=10"`
	LicenseNumber        string `json:"licenseNumber" binding:"required"`
	VehicleType          string `json:"vehicleType" binding:"required"`
	VehicleRegNumber     string `json:"vehicleRegNumber" binding:"required"`
	DriverPhoto          string `json:"driverPhoto" binding:"required"`
	AmbulanceFrontPhoto  string `json:"ambulanceFrontPhoto" binding:"required"`
	AmbulanceInsidePhoto string `json:"ambulanceInsidePhoto" binding:"required"`
	AmbulanceSidePhoto   string `json:"ambulanceSidePhoto" binding:"required"`
	DriverIDPhoto        string `json:"driverIdPhoto" binding:"required"`
	DriverLicensePhoto   string `json:"driverLicensePhoto" binding:"required"`
}

// Register handles a driver application
func (h *DriverHandlers) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driverID, err := h.driverSvc.Register(c.Request.Context(), &domain.Driver{
		Name:                 req.Name,
		Phone:                req.Phone,
		LicenseNumber:        req.LicenseNumber,
		VehicleType:          req.VehicleType,
		VehicleRegNumber:     req.VehicleRegNumber,
		DriverPhoto:          req.DriverPhoto,
		AmbulanceFrontPhoto:  req.AmbulanceFrontPhoto,
		AmbulanceInsidePhoto: req.AmbulanceInsidePhoto,
		AmbulanceSidePhoto:   req.AmbulanceSidePhoto,
		DriverIDPhoto:        req.DriverIDPhoto,
		DriverLicensePhoto:   req.DriverLicensePhoto,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDriverAlreadyRegistered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Driver or Vehicle already registered"})
			return
		}
		h.log.Error().Err(err).Msg("driver registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register driver"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "driverId": driverID})
}
