package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
)

// DriverServiceImpl implements domain.DriverService
type DriverServiceImpl struct {
	driverRepo domain.DriverRepository
	log        zerolog.Logger
}

// NewDriverService creates a new driver registration service
func NewDriverService(driverRepo domain.DriverRepository, log zerolog.Logger) domain.DriverService {
	return &DriverServiceImpl{
		driverRepo: driverRepo,
		log:        log.With().Str("component", "driver").Logger(),
	}
}

// Register implements domain.DriverService. The identity probe covers phone,
// license number and vehicle registration number; matching any one of the
// three on an existing application is a conflict. The unique indexes on the
// drivers table are the backstop when two registrations race past the probe.
func (s *DriverServiceImpl) Register(ctx context.Context, driver *domain.Driver) (uint, error) {
	existing, err := s.driverRepo.FindByIdentity(ctx, driver.Phone, driver.LicenseNumber, driver.VehicleRegNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to probe driver identity: %w", err)
	}
	if existing != nil {
		return 0, domain.ErrDriverAlreadyRegistered
	}

	driver.IsVerified = false
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return 0, err
	}

	s.log.Info().Uint("driver_id", driver.ID).Str("vehicle", driver.VehicleRegNumber).Msg("driver application received")
	return driver.ID, nil
}
