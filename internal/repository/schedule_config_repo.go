package repository

import (
	"errors"
	"time"

	"work-log-server/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ScheduleConfigRepository interface {
	Create(config *models.ScheduleConfig) error
	Update(config *models.ScheduleConfig) error
	GetByUserID(userID uint) (*models.ScheduleConfig, error)
	Exists(userID uint) (bool, error)
}

type GormScheduleConfigRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormScheduleConfigRepository(db *gorm.DB) (*GormScheduleConfigRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.ScheduleConfig{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate schedule_configs table")
		return nil, err
	}

	logger.Info("Schedule config repository initialized")

	return &GormScheduleConfigRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormScheduleConfigRepository) Create(config *models.ScheduleConfig) error {
	r.logger.WithFields(logrus.Fields{
		"user_id":  config.UserID,
		"start":    config.StartTime,
		"end":      config.EndTime,
		"duration": config.SlotDurationMinutes,
		"timezone": config.Timezone,
	}).Info("Creating schedule config")

	if !config.IsValid() {
		r.logger.WithField("user_id", config.UserID).Warn("Invalid schedule config data")
		return errors.New("invalid schedule config data")
	}

	exists, err := r.Exists(config.UserID)
	if err != nil {
		r.logger.WithError(err).Error("Failed to check schedule config existence")
		return err
	}

	if exists {
		r.logger.WithField("user_id", config.UserID).Warn("Schedule config already exists")
		return errors.New("schedule config already exists for this user")
	}

	result := r.db.Create(config)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create schedule config")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":      config.ID,
		"user_id": config.UserID,
	}).Info("Schedule config created successfully")

	return nil
}

// Update replaces the user's schedule in place. Configs are never deleted;
// a changed schedule simply overwrites the previous one.
func (r *GormScheduleConfigRepository) Update(config *models.ScheduleConfig) error {
	r.logger.WithFields(logrus.Fields{
		"id":       config.ID,
		"user_id":  config.UserID,
		"start":    config.StartTime,
		"end":      config.EndTime,
		"duration": config.SlotDurationMinutes,
	}).Info("Updating schedule config")

	if !config.IsValid() {
		r.logger.WithField("user_id", config.UserID).Warn("Invalid schedule config data for update")
		return errors.New("invalid schedule config data")
	}

	existing, err := r.GetByUserID(config.UserID)
	if err != nil {
		r.logger.WithError(err).Error("Failed to get schedule config for update")
		return err
	}

	if existing == nil {
		r.logger.WithField("user_id", config.UserID).Warn("Schedule config not found for update")
		return errors.New("schedule config not found")
	}

	config.ID = existing.ID
	config.CreatedAt = existing.CreatedAt
	config.UpdatedAt = time.Now()

	result := r.db.Save(config)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update schedule config")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":      config.ID,
		"user_id": config.UserID,
	}).Info("Schedule config updated successfully")

	return nil
}

func (r *GormScheduleConfigRepository) GetByUserID(userID uint) (*models.ScheduleConfig, error) {
	var config models.ScheduleConfig
	result := r.db.Where("user_id = ?", userID).First(&config)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("user_id", userID).Debug("Schedule config not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get schedule config by user")
		return nil, result.Error
	}

	return &config, nil
}

func (r *GormScheduleConfigRepository) Exists(userID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.ScheduleConfig{}).
		Where("user_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to check schedule config existence")
		return false, result.Error
	}

	return count > 0, nil
}
