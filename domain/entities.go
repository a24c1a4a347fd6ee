package domain

import "time"

// User represents a registered account
type User struct {
	ID               uint
	Name             string
	Email            string
	Phone            string
	PasswordHash     string
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PublicUser is the projection of a user returned to clients.
// The password hash and reset-token fields never leave the server.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// Ambulance types accepted on a booking
const (
	AmbulanceBasic = "Basic"
	AmbulanceICU   = "ICU"
)

// BookingStatusConfirmed is the only status a booking ever holds here;
// there is no dispatch confirmation step.
const BookingStatusConfirmed = "confirmed"

// Booking represents an ambulance request, guest-originated or user-linked
type Booking struct {
	ID          uint      `json:"id"`
	UserID      *uint     `json:"userId,omitempty"`
	GuestName   string    `json:"guestName"`
	GuestPhone  string    `json:"guestPhone"`
	AltPhone    string    `json:"altPhone,omitempty"`
	Pickup      string    `json:"pickup"`
	Destination string    `json:"destination"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Condition   string    `json:"condition,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Driver represents a driver application. IsVerified stays false until an
// operator verifies the documents out of band.
type Driver struct {
	ID                   uint
	Name                 string
	Phone                string
	LicenseNumber        string
	VehicleType          string
	VehicleRegNumber     string
	DriverPhoto          string
	AmbulanceFrontPhoto  string
	AmbulanceInsidePhoto string
	AmbulanceSidePhoto   string
	DriverIDPhoto        string
	DriverLicensePhoto   string
	IsVerified           bool
	CreatedAt            time.Time
}

// SessionClaims are the claims carried by the cookie session token
type SessionClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Route is the directions result backing the live-tracking page
type Route struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	Polyline string `json:"polyline,omitempty"`
}
