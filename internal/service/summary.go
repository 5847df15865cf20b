package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"work-log-server/internal/models"
	"work-log-server/internal/repository"
	"work-log-server/internal/timeline"
	"work-log-server/pkg/calendar"
	"work-log-server/pkg/notify"

	"github.com/sirupsen/logrus"
)

type SummaryService struct {
	logRepo            repository.WorkLogRepository
	scheduleService    *ScheduleService
	notifier           notify.Notifier
	defaultDestination string
	logger             *logrus.Logger
}

func NewSummaryService(
	logRepo repository.WorkLogRepository,
	scheduleService *ScheduleService,
	notifier notify.Notifier,
	defaultDestination string,
) *SummaryService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &SummaryService{
		logRepo:            logRepo,
		scheduleService:    scheduleService,
		notifier:           notifier,
		defaultDestination: defaultDestination,
		logger:             logger,
	}
}

// Daily computes the day rollup for a user. The date must already be
// validated by the caller.
func (s *SummaryService) Daily(userID uint, date string) (*models.DailySummary, error) {
	config, err := s.scheduleService.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.logRepo.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}

	slots := s.scheduleService.Slots(config)
	summary := timeline.DailySummary(date, slots, entries, config.SlotDurationMinutes)

	s.logger.WithFields(logrus.Fields{
		"user_id":   userID,
		"date":      date,
		"completed": summary.CompletedSlots,
		"holiday":   summary.IsHoliday,
	}).Debug("Computed daily summary")

	return &summary, nil
}

// Monthly computes the month rollup. Year and month must already be validated
// by the caller; the month query is calendar-correct at both endpoints.
func (s *SummaryService) Monthly(userID uint, year, month int) (*models.MonthlySummaryEnhanced, error) {
	config, err := s.scheduleService.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	first, last := calendar.MonthRange(year, month)
	entries, err := s.logRepo.GetByUserAndDateRange(userID, first, last)
	if err != nil {
		return nil, err
	}

	slots := s.scheduleService.Slots(config)
	summary := timeline.MonthlySummary(year, month, slots, entries, config.SlotDurationMinutes)

	s.logger.WithFields(logrus.Fields{
		"user_id":      userID,
		"year":         year,
		"month":        month,
		"total_days":   summary.TotalDays,
		"working_days": summary.WorkingDays,
	}).Debug("Computed monthly summary")

	return &summary, nil
}

// NotifyDaily pushes the formatted day rollup through the configured
// notifier. An empty destination falls back to the configured default.
func (s *SummaryService) NotifyDaily(userID uint, date, destination string) error {
	if destination == "" {
		destination = s.defaultDestination
	}
	if destination == "" {
		return errors.New("no notification destination configured")
	}

	summary, err := s.Daily(userID, date)
	if err != nil {
		return err
	}

	message := s.FormatDailySummary(summary)

	if err := s.notifier.Send(destination, message); err != nil {
		s.logger.WithError(err).Error("Failed to send daily summary notification")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    date,
	}).Info("Daily summary notification sent")

	return nil
}

// FormatDailySummary renders the rollup as a plain-text message.
func (s *SummaryService) FormatDailySummary(summary *models.DailySummary) string {
	if summary == nil {
		return "No summary available"
	}

	if summary.IsHoliday {
		return fmt.Sprintf("Work log for %s\n\nHoliday - no productivity accounting for this day.", summary.Date)
	}

	var result strings.Builder
	fmt.Fprintf(&result, "Work log for %s\n\n", summary.Date)
	fmt.Fprintf(&result, "Hours logged: %s\n", formatHours(summary.TotalHours))
	fmt.Fprintf(&result, "Slots: %d/%d (%d%%)\n", summary.CompletedSlots, summary.TotalSlots, summary.CompletionPercentage)

	if len(summary.WorkAreas) > 0 {
		result.WriteString("\nWork areas:\n")
		for _, area := range summary.WorkAreas {
			fmt.Fprintf(&result, "  %s - %s (%d%%)\n", area.Area, formatHours(area.Hours), area.Percentage)
		}
	}

	if len(summary.KeyAccomplishments) > 0 {
		result.WriteString("\nKey accomplishments:\n")
		for i, acc := range summary.KeyAccomplishments {
			fmt.Fprintf(&result, "  %d. %s\n", i+1, acc)
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// FormatMonthlySummary renders the month rollup as a plain-text message.
func (s *SummaryService) FormatMonthlySummary(summary *models.MonthlySummaryEnhanced) string {
	if summary == nil {
		return "No summary available"
	}

	monthName := time.Month(summary.Month).String()

	var result strings.Builder
	fmt.Fprintf(&result, "Monthly report: %s %d\n\n", monthName, summary.Year)
	fmt.Fprintf(&result, "Days logged: %d (working %d, holidays %d)\n",
		summary.TotalDays, summary.WorkingDays, summary.HolidayDays)
	fmt.Fprintf(&result, "Productive hours: %s\n", formatHours(summary.TotalProductiveHours))
	fmt.Fprintf(&result, "Average per working day: %.1fh\n", summary.AverageHoursPerDay)

	if len(summary.TopWorkAreas) > 0 {
		result.WriteString("\nTop work areas:\n")
		for _, area := range summary.TopWorkAreas {
			fmt.Fprintf(&result, "  %s - %s (%d%%)\n", area.Area, formatHours(area.Hours), area.Percentage)
		}
	}

	if len(summary.MostProductiveDays) > 0 {
		result.WriteString("\nMost productive days:\n")
		for i, day := range summary.MostProductiveDays {
			fmt.Fprintf(&result, "  %d. %s - %s (%d%%)\n", i+1, day.Date, formatHours(day.Hours), day.CompletionPercentage)
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

func formatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}
