package service

import (
	"errors"
	"time"

	"work-log-server/internal/models"
	"work-log-server/internal/repository"
	"work-log-server/internal/timeline"

	"github.com/sirupsen/logrus"
)

type WorkLogService struct {
	logRepo         repository.WorkLogRepository
	scheduleService *ScheduleService
	logger          *logrus.Logger
}

func NewWorkLogService(
	logRepo repository.WorkLogRepository,
	scheduleService *ScheduleService,
) *WorkLogService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &WorkLogService{
		logRepo:         logRepo,
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// SlotView is one cell of the day view.
type SlotView struct {
	TimeSlot        string `json:"time_slot"`
	WorkDescription string `json:"work_description"`
	Completed       bool   `json:"completed"`
	Current         bool   `json:"current"`
}

// DayLog is the rendered day: the slot grid with saved descriptions, the
// live clock status, and any entries orphaned by a schedule change.
type DayLog struct {
	Date            string                `json:"date"`
	IsHoliday       bool                  `json:"is_holiday"`
	Slots           []SlotView            `json:"slots"`
	Status          models.DayStatus      `json:"status"`
	OrphanedEntries []models.WorkLogEntry `json:"orphaned_entries"`
}

// SaveEntry upserts the description for one (date, slot) cell. Writes are
// idempotent; the day's holiday flag is preserved across description saves.
func (s *WorkLogService) SaveEntry(userID uint, date, slot, description string) (*models.WorkLogEntry, error) {
	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    date,
		"slot":    slot,
	}).Info("Saving work log entry")

	config, err := s.scheduleService.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	slots := s.scheduleService.Slots(config)
	if !containsSlot(slots, slot) {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"slot":    slot,
		}).Warn("Slot not in current schedule")
		return nil, errors.New("time slot is not part of the current schedule")
	}

	existing, err := s.logRepo.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	holiday := anyHoliday(existing)

	entry := &models.WorkLogEntry{
		UserID:          userID,
		Date:            date,
		TimeSlot:        slot,
		WorkDescription: description,
		IsHoliday:       holiday,
	}

	if err := s.logRepo.Upsert(entry); err != nil {
		s.logger.WithError(err).Error("Failed to upsert work log entry")
		return nil, err
	}

	return entry, nil
}

// GetDayLog renders the day for the UI: every slot of the current grid with
// its saved description, which slot is "current" right now, and entries whose
// slot label fell out of the grid after a schedule change.
func (s *WorkLogService) GetDayLog(userID uint, date string, now time.Time) (*DayLog, error) {
	config, err := s.scheduleService.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	slots := s.scheduleService.Slots(config)
	entries, err := s.logRepo.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}

	bySlot := map[string]models.WorkLogEntry{}
	for _, e := range entries {
		bySlot[e.TimeSlot] = e
	}

	loc := timeline.ResolveLocation(config.Timezone)
	currentSlot, hasCurrent := timeline.CurrentSlot(now, loc, slots)

	day := &DayLog{
		Date:      date,
		IsHoliday: anyHoliday(entries),
		Slots:     []SlotView{},
		Status: models.DayStatus{
			IsWorkingHours: timeline.IsWorkingHours(now, loc, config.StartTime, config.EndTime),
			CurrentSlot:    currentSlot,
			HasCurrentSlot: hasCurrent,
		},
		OrphanedEntries: []models.WorkLogEntry{},
	}

	for _, slot := range slots {
		view := SlotView{
			TimeSlot: slot,
			Current:  hasCurrent && slot == currentSlot,
		}
		if e, ok := bySlot[slot]; ok {
			view.WorkDescription = e.WorkDescription
			view.Completed = e.IsCompleted()
		}
		day.Slots = append(day.Slots, view)
	}

	for _, e := range entries {
		if !containsSlot(slots, e.TimeSlot) {
			day.OrphanedEntries = append(day.OrphanedEntries, e)
		}
	}

	return day, nil
}

// SetHoliday flags or unflags the whole date. The flag lives on every slot
// row of the day, written as one bulk upsert.
func (s *WorkLogService) SetHoliday(userID uint, date string, isHoliday bool) error {
	config, err := s.scheduleService.GetOrCreate(userID)
	if err != nil {
		return err
	}

	slots := s.scheduleService.Slots(config)
	if len(slots) == 0 {
		count, countErr := s.logRepo.CountForDate(userID, date)
		if countErr != nil {
			return countErr
		}
		if count == 0 {
			return errors.New("no schedule configured for this user")
		}
	}

	return s.logRepo.SetHoliday(userID, date, slots, isHoliday)
}

// GetEntries returns the raw rows for a date.
func (s *WorkLogService) GetEntries(userID uint, date string) ([]models.WorkLogEntry, error) {
	return s.logRepo.GetByUserAndDate(userID, date)
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func anyHoliday(entries []models.WorkLogEntry) bool {
	for _, e := range entries {
		if e.IsHoliday {
			return true
		}
	}
	return false
}
