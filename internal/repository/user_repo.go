package repository

import (
	"errors"

	"work-log-server/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Exists(email string) (bool, error)
	GetAll() ([]*models.User, error)
	UpdateRole(email string, role models.Role) error
	GetStats() (int, int, error)
}

type GormUserRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormUserRepository(db *gorm.DB) (*GormUserRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.User{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate users table")
		return nil, err
	}

	logger.Info("User repository initialized")

	return &GormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormUserRepository) Create(user *models.User) error {
	r.logger.WithField("email", user.Email).Info("Creating user")

	var existing models.User
	result := r.db.Where("email = ?", user.Email).First(&existing)
	if result.Error == nil {
		r.logger.WithField("email", user.Email).Warn("User already exists")
		return errors.New("user already exists")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithError(result.Error).Error("Failed to check user existence")
		return result.Error
	}

	result = r.db.Create(user)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create user")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":    user.ID,
		"email": user.Email,
	}).Info("User created successfully")

	return nil
}

func (r *GormUserRepository) Update(user *models.User) error {
	var existing models.User
	result := r.db.Where("email = ?", user.Email).First(&existing)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return errors.New("user not found")
	}

	result = r.db.Save(user)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update user")
		return result.Error
	}

	return nil
}

func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("User not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get user by ID")
		return nil, result.Error
	}

	return &user, nil
}

func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("email", email).Debug("User not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get user by email")
		return nil, result.Error
	}

	return &user, nil
}

func (r *GormUserRepository) Exists(email string) (bool, error) {
	var count int64
	result := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to check user existence")
		return false, result.Error
	}

	return count > 0, nil
}

func (r *GormUserRepository) GetAll() ([]*models.User, error) {
	var users []*models.User
	result := r.db.Find(&users)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get all users")
		return nil, result.Error
	}

	return users, nil
}

func (r *GormUserRepository) UpdateRole(email string, role models.Role) error {
	result := r.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", role)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update user role")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}

func (r *GormUserRepository) GetStats() (int, int, error) {
	var total int64
	var admins int64

	result := r.db.Model(&models.User{}).Count(&total)
	if result.Error != nil {
		return 0, 0, result.Error
	}

	result = r.db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&admins)
	if result.Error != nil {
		return 0, 0, result.Error
	}

	return int(total), int(admins), nil
}
