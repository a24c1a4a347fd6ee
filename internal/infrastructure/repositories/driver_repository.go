package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ashutosh-sx/Emergo/domain"
)

// DriverRepositoryImpl implements domain.DriverRepository using GORM
type DriverRepositoryImpl struct {
	db *gorm.DB
}

// DBDriver represents the database model for a driver application. The three
// identity columns carry their own unique indexes so a check-then-write race
// between two concurrent registrations still cannot produce duplicates.
type DBDriver struct {
	ID                   uint   `gorm:"primaryKey"`
	Name                 string `gorm:"size:255"`
	Phone                string `gorm:"uniqueIndex;size:32"`
	LicenseNumber        string `gorm:"uniqueIndex;size:64"`
	VehicleType          string `gorm:"size:64"`
	VehicleRegNumber     string `gorm:"uniqueIndex;size:32"`
	DriverPhoto          string `gorm:"size:1024"`
	AmbulanceFrontPhoto  string `gorm:"size:1024"`
	AmbulanceInsidePhoto string `gorm:"size:1024"`
	AmbulanceSidePhoto   string `gorm:"size:1024"`
	DriverIDPhoto        string `gorm:"size:1024"`
	DriverLicensePhoto   string `gorm:"size:1024"`
	IsVerified           bool
	CreatedAt            time.Time
}

// TableName returns the table name for GORM
func (DBDriver) TableName() string {
	return "drivers"
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) domain.DriverRepository {
	return &DriverRepositoryImpl{db: db}
}

// Create implements domain.DriverRepository. A duplicate-key violation from
// one of the unique indexes maps to ErrDriverAlreadyRegistered, the same
// error the application-level probe produces.
func (r *DriverRepositoryImpl) Create(ctx context.Context, driver *domain.Driver) error {
	dbDriver := r.domainToDB(driver)
	if err := r.db.WithContext(ctx).Create(dbDriver).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDriverAlreadyRegistered
		}
		return err
	}
	driver.ID = dbDriver.ID
	driver.CreatedAt = dbDriver.CreatedAt
	return nil
}

// FindByIdentity implements domain.DriverRepository
func (r *DriverRepositoryImpl) FindByIdentity(ctx context.Context, phone, licenseNumber, vehicleRegNumber string) (*domain.Driver, error) {
	var dbDriver DBDriver
	err := r.db.WithContext(ctx).
		Where("phone = ? OR license_number = ? OR vehicle_reg_number = ?", phone, licenseNumber, vehicleRegNumber).
		First(&dbDriver).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.dbToDomain(&dbDriver), nil
}

func isDuplicateKey(err error) bool {
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func (r *DriverRepositoryImpl) domainToDB(driver *domain.Driver) *DBDriver {
	return &DBDriver{
		ID:                   driver.ID,
		Name:                 driver.Name,
		Phone:                driver.Phone,
		LicenseNumber:        driver.LicenseNumber,
		VehicleType:          driver.VehicleType,
		VehicleRegNumber:     driver.VehicleRegNumber,
		DriverPhoto:          driver.DriverPhoto,
		AmbulanceFrontPhoto:  driver.AmbulanceFrontPhoto,
		AmbulanceInsidePhoto: driver.AmbulanceInsidePhoto,
		AmbulanceSidePhoto:   driver.AmbulanceSidePhoto,
		DriverIDPhoto:        driver.DriverIDPhoto,
		DriverLicensePhoto:   driver.DriverLicensePhoto,
		IsVerified:           driver.IsVerified,
	}
}

func (r *DriverRepositoryImpl) dbToDomain(dbDriver *DBDriver) *domain.Driver {
	return &domain.Driver{
		ID:                   dbDriver.ID,
		Name:                 dbDriver.Name,
		Phone:                dbDriver.Phone,
		LicenseNumber:        dbDriver.LicenseNumber,
		VehicleType:          dbDriver.VehicleType,
		VehicleRegNumber:     dbDriver.VehicleRegNumber,
		DriverPhoto:          dbDriver.DriverPhoto,
		AmbulanceFrontPhoto:  dbDriver.AmbulanceFrontPhoto,
		AmbulanceInsidePhoto: dbDriver.AmbulanceInsidePhoto,
		AmbulanceSidePhoto:   dbDriver.AmbulanceSidePhoto,
		DriverIDPhoto:        dbDriver.DriverIDPhoto,
		DriverLicensePhoto:   dbDriver.DriverLicensePhoto,
		IsVerified:           dbDriver.IsVerified,
		CreatedAt:            dbDriver.CreatedAt,
	}
}
