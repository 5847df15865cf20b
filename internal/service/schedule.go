package service

import (
	"fmt"

	"work-log-server/internal/models"
	"work-log-server/internal/repository"
	"work-log-server/internal/timeline"

	"github.com/sirupsen/logrus"
)

type ScheduleService struct {
	repo   repository.ScheduleConfigRepository
	logger *logrus.Logger
}

func NewScheduleService(repo repository.ScheduleConfigRepository) *ScheduleService {
	return &ScheduleService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// GetOrCreate returns the user's schedule, seeding the system default
// {09:00, 17:00, 60, UTC} on first access.
func (s *ScheduleService) GetOrCreate(userID uint) (*models.ScheduleConfig, error) {
	config, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get schedule config")
		return nil, err
	}

	if config != nil {
		return config, nil
	}

	s.logger.WithField("user_id", userID).Info("No schedule configured, creating default")

	config = models.DefaultScheduleConfig(userID)
	if err := s.repo.Create(config); err != nil {
		s.logger.WithError(err).Error("Failed to create default schedule config")
		return nil, err
	}

	return config, nil
}

// Update replaces the user's schedule. Historical log rows are not migrated:
// entries keyed to a slot label that the new grid no longer produces are
// reported as orphaned by the day view instead of disappearing.
func (s *ScheduleService) Update(userID uint, startTime, endTime string, slotDurationMinutes int, timezone string) (*models.ScheduleConfig, error) {
	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"start":    startTime,
		"end":      endTime,
		"duration": slotDurationMinutes,
		"timezone": timezone,
	}).Info("Updating schedule config")

	config := &models.ScheduleConfig{
		UserID:              userID,
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: slotDurationMinutes,
		Timezone:            timezone,
	}

	if !config.IsValid() {
		s.logger.Warn("Invalid schedule data provided")
		return nil, fmt.Errorf("invalid schedule: start must precede end (HH:MM), duration one of 15/30/60, timezone a valid IANA name")
	}

	existing, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get schedule config for update")
		return nil, err
	}

	if existing == nil {
		if err := s.repo.Create(config); err != nil {
			s.logger.WithError(err).Error("Failed to create schedule config")
			return nil, err
		}
		return config, nil
	}

	if err := s.repo.Update(config); err != nil {
		s.logger.WithError(err).Error("Failed to update schedule config")
		return nil, err
	}

	return config, nil
}

// Slots generates the slot grid for a schedule.
func (s *ScheduleService) Slots(config *models.ScheduleConfig) []string {
	if config == nil {
		return []string{}
	}
	return timeline.GenerateSlots(config.StartTime, config.EndTime, config.SlotDurationMinutes)
}
