package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ashutosh-sx/Emergo/domain"
)

// BookingRepositoryImpl implements domain.BookingRepository using GORM
type BookingRepositoryImpl struct {
	db *gorm.DB
}

// DBBooking represents the database model for Booking. Bookings are written
// once and never updated in this system.
type DBBooking struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      *uint  `gorm:"index"`
	GuestName   string `gorm:"size:255"`
	GuestPhone  string `gorm:"size:32"`
	AltPhone    string `gorm:"size:32"`
	Pickup      string `gorm:"size:512"`
	Destination string `gorm:"size:512"`
	Type        string `gorm:"size:16"`
	Date        time.Time
	Status      string `gorm:"size:32"`
	Condition   string `gorm:"size:1024"`
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBBooking) TableName() string {
	return "bookings"
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domain.BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

// Create implements domain.BookingRepository
func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *domain.Booking) error {
	dbBooking := &DBBooking{
		UserID:      booking.UserID,
		GuestName:   booking.GuestName,
		GuestPhone:  booking.GuestPhone,
		AltPhone:    booking.AltPhone,
		Pickup:      booking.Pickup,
		Destination: booking.Destination,
		Type:        booking.Type,
		Date:        booking.Date,
		Status:      booking.Status,
		Condition:   booking.Condition,
	}
	if err := r.db.WithContext(ctx).Create(dbBooking).Error; err != nil {
		return err
	}
	booking.ID = dbBooking.ID
	booking.CreatedAt = dbBooking.CreatedAt
	return nil
}

// FindByID implements domain.BookingRepository
func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Booking, error) {
	var dbBooking DBBooking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbBooking).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &domain.Booking{
		ID:          dbBooking.ID,
		UserID:      dbBooking.UserID,
		GuestName:   dbBooking.GuestName,
		GuestPhone:  dbBooking.GuestPhone,
		AltPhone:    dbBooking.AltPhone,
		Pickup:      dbBooking.Pickup,
		Destination: dbBooking.Destination,
		Type:        dbBooking.Type,
		Date:        dbBooking.Date,
		Status:      dbBooking.Status,
		Condition:   dbBooking.Condition,
		CreatedAt:   dbBooking.CreatedAt,
	}, nil
}
