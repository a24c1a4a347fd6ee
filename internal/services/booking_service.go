package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashutosh-sx/Emergo/domain"
)

// Accepted layouts for the booking date. The web form posts a bare date;
// API clients may send a full RFC 3339 instant or a local datetime.
var bookingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// BookingServiceImpl implements domain.BookingService
type BookingServiceImpl struct {
	bookingRepo     domain.BookingRepository
	notificationSvc domain.NotificationService
	log             zerolog.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo domain.BookingRepository, notificationSvc domain.NotificationService, log zerolog.Logger) domain.BookingService {
	return &BookingServiceImpl{
		bookingRepo:     bookingRepo,
		notificationSvc: notificationSvc,
		log:             log.With().Str("component", "booking").Logger(),
	}
}

// Create implements domain.BookingService. Bookings never fail for business
// reasons, only for malformed input; there is no capacity check and no
// dispatch step, so the stored status is always "confirmed".
func (s *BookingServiceImpl) Create(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error) {
	if req.Type != domain.AmbulanceBasic && req.Type != domain.AmbulanceICU {
		return nil, domain.ErrInvalidType
	}

	date, err := parseBookingDate(req.Date)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID:      req.UserID,
		GuestName:   req.Name,
		GuestPhone:  req.Phone,
		AltPhone:    req.AltPhone,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Type:        req.Type,
		Date:        date,
		Status:      domain.BookingStatusConfirmed,
		Condition:   req.Condition,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Best effort: a failed confirmation SMS never fails the booking.
	message := fmt.Sprintf("Emergo: your %s ambulance from %s to %s is confirmed. Booking #%d.",
		booking.Type, booking.Pickup, booking.Destination, booking.ID)
	if err := s.notificationSvc.SendSMS(booking.GuestPhone, message); err != nil {
		s.log.Warn().Err(err).Uint("booking_id", booking.ID).Msg("confirmation sms failed")
	}

	return booking, nil
}

// Get implements domain.BookingService
func (s *BookingServiceImpl) Get(ctx context.Context, id uint) (*domain.Booking, error) {
	return s.bookingRepo.FindByID(ctx, id)
}

func parseBookingDate(value string) (time.Time, error) {
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidDate
}
