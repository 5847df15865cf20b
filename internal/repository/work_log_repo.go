package repository

import (
	"errors"

	"work-log-server/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkLogRepository interface {
	Upsert(entry *models.WorkLogEntry) error
	GetByUserAndDate(userID uint, date string) ([]models.WorkLogEntry, error)
	GetByUserAndDateRange(userID uint, startDate, endDate string) ([]models.WorkLogEntry, error)
	SetHoliday(userID uint, date string, slots []string, isHoliday bool) error
	CountForDate(userID uint, date string) (int64, error)
}

type GormWorkLogRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkLogRepository(db *gorm.DB) (*GormWorkLogRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.WorkLogEntry{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate work_log_entries table")
		return nil, err
	}

	logger.Info("Work log repository initialized")

	return &GormWorkLogRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert writes the entry for its (user, date, slot) key. The first write
// creates the row, later writes overwrite description and holiday flag in
// place: last write wins, redundant writes are safe.
func (r *GormWorkLogRepository) Upsert(entry *models.WorkLogEntry) error {
	r.logger.WithFields(logrus.Fields{
		"user_id": entry.UserID,
		"date":    entry.Date,
		"slot":    entry.TimeSlot,
	}).Debug("Upserting work log entry")

	if !entry.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"user_id": entry.UserID,
			"date":    entry.Date,
			"slot":    entry.TimeSlot,
		}).Warn("Invalid work log entry data")
		return errors.New("invalid work log entry data")
	}

	var existing models.WorkLogEntry
	result := r.db.Where("user_id = ? AND date = ? AND time_slot = ?",
		entry.UserID, entry.Date, entry.TimeSlot).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		if createErr := r.db.Create(entry).Error; createErr != nil {
			r.logger.WithError(createErr).Error("Failed to create work log entry")
			return createErr
		}
		return nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to look up work log entry")
		return result.Error
	}

	existing.WorkDescription = entry.WorkDescription
	existing.IsHoliday = entry.IsHoliday

	if saveErr := r.db.Save(&existing).Error; saveErr != nil {
		r.logger.WithError(saveErr).Error("Failed to update work log entry")
		return saveErr
	}

	*entry = existing
	return nil
}

func (r *GormWorkLogRepository) GetByUserAndDate(userID uint, date string) ([]models.WorkLogEntry, error) {
	var entries []models.WorkLogEntry
	result := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("time_slot ASC").
		Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work log entries by date")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    date,
		"count":   len(entries),
	}).Debug("Retrieved work log entries by date")

	return entries, nil
}

// GetByUserAndDateRange returns entries for [startDate, endDate], both
// endpoints inclusive.
func (r *GormWorkLogRepository) GetByUserAndDateRange(userID uint, startDate, endDate string) ([]models.WorkLogEntry, error) {
	var entries []models.WorkLogEntry
	result := r.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC, time_slot ASC").
		Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work log entries by date range")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"start":   startDate,
		"end":     endDate,
		"count":   len(entries),
	}).Debug("Retrieved work log entries by date range")

	return entries, nil
}

// SetHoliday flags every slot of the date in one transaction. The flag is
// denormalized onto each slot row, so a half-applied day must never be
// visible to a concurrent summary read.
func (r *GormWorkLogRepository) SetHoliday(userID uint, date string, slots []string, isHoliday bool) error {
	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    date,
		"slots":   len(slots),
		"holiday": isHoliday,
	}).Info("Setting holiday flag for date")

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, slot := range slots {
			var existing models.WorkLogEntry
			result := tx.Where("user_id = ? AND date = ? AND time_slot = ?",
				userID, date, slot).First(&existing)

			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				entry := models.WorkLogEntry{
					UserID:    userID,
					Date:      date,
					TimeSlot:  slot,
					IsHoliday: isHoliday,
				}
				if createErr := tx.Create(&entry).Error; createErr != nil {
					return createErr
				}
				continue
			}

			if result.Error != nil {
				return result.Error
			}

			if updateErr := tx.Model(&existing).Update("is_holiday", isHoliday).Error; updateErr != nil {
				return updateErr
			}
		}

		// Rows left over from an older, longer schedule keep the day
		// consistent too.
		return tx.Model(&models.WorkLogEntry{}).
			Where("user_id = ? AND date = ?", userID, date).
			Update("is_holiday", isHoliday).Error
	})

	if err != nil {
		r.logger.WithError(err).Error("Failed to set holiday flag")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    date,
		"holiday": isHoliday,
	}).Info("Holiday flag updated")

	return nil
}

func (r *GormWorkLogRepository) CountForDate(userID uint, date string) (int64, error) {
	var count int64
	result := r.db.Model(&models.WorkLogEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to count work log entries")
		return 0, result.Error
	}

	return count, nil
}
