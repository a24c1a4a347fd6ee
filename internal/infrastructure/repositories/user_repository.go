package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ashutosh-sx/Emergo/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID               uint       `gorm:"primaryKey"`
	Name             string     `gorm:"size:255"`
	Email            string     `gorm:"uniqueIndex;size:255"`
	Phone            string     `gorm:"size:32"`
	PasswordHash     string     `gorm:"column:password"`
	ResetToken       *string    `gorm:"index;size:64"`
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// SetResetToken implements domain.UserRepository
func (r *UserRepositoryImpl) SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error
}

// ConsumeResetToken implements domain.UserRepository. The password swap and
// the clearing of both reset fields happen in one conditional UPDATE, so a
// concurrent second redemption of the same token matches zero rows.
func (r *UserRepositoryImpl) ConsumeResetToken(ctx context.Context, token, passwordHash string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expiry > ?", token, time.Now()).
		First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}

	// Conditional on the token still being present: if a concurrent reset
	// committed between the read and this update, zero rows match.
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND reset_token = ? AND reset_token_expiry > ?", dbUser.ID, token, time.Now()).
		Updates(map[string]interface{}{
			"password":           passwordHash,
			"reset_token":        nil,
			"reset_token_expiry": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrResetTokenInvalid
	}

	dbUser.PasswordHash = passwordHash
	dbUser.ResetToken = nil
	dbUser.ResetTokenExpiry = nil
	return r.dbToDomain(&dbUser), nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Phone:            user.Phone,
		PasswordHash:     user.PasswordHash,
		ResetToken:       user.ResetToken,
		ResetTokenExpiry: user.ResetTokenExpiry,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		Name:             dbUser.Name,
		Email:            dbUser.Email,
		Phone:            dbUser.Phone,
		PasswordHash:     dbUser.PasswordHash,
		ResetToken:       dbUser.ResetToken,
		ResetTokenExpiry: dbUser.ResetTokenExpiry,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
