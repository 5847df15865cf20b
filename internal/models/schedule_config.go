package models

import (
	"time"
)

// Allowed slot durations in minutes.
var AllowedSlotDurations = []int{15, 30, 60}

// Defaults applied when a user has no schedule yet.
const (
	DefaultStartTime    = "09:00"
	DefaultEndTime      = "17:00"
	DefaultSlotDuration = 60
	DefaultTimezone     = "UTC"
)

type ScheduleConfig struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	UserID              uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	StartTime           string    `gorm:"type:varchar(5);not null;default:'09:00'" json:"start_time"`
	EndTime             string    `gorm:"type:varchar(5);not null;default:'17:00'" json:"end_time"`
	SlotDurationMinutes int       `gorm:"not null;default:60" json:"slot_duration_minutes"`
	Timezone            string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (ScheduleConfig) TableName() string {
	return "schedule_configs"
}

// DefaultScheduleConfig returns the system default schedule for a user.
func DefaultScheduleConfig(userID uint) *ScheduleConfig {
	return &ScheduleConfig{
		UserID:              userID,
		StartTime:           DefaultStartTime,
		EndTime:             DefaultEndTime,
		SlotDurationMinutes: DefaultSlotDuration,
		Timezone:            DefaultTimezone,
	}
}

// IsValid checks the schedule data. Start must precede end as same-day clock
// times and the duration must be one of the allowed values.
func (sc *ScheduleConfig) IsValid() bool {
	if sc.UserID == 0 {
		return false
	}
	if !isClockTime(sc.StartTime) || !isClockTime(sc.EndTime) {
		return false
	}
	if sc.StartTime >= sc.EndTime {
		return false
	}
	durationOK := false
	for _, d := range AllowedSlotDurations {
		if sc.SlotDurationMinutes == d {
			durationOK = true
			break
		}
	}
	if !durationOK {
		return false
	}
	if _, err := time.LoadLocation(sc.Timezone); err != nil {
		return false
	}
	return true
}

// Location resolves the configured timezone, falling back to UTC.
func (sc *ScheduleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(sc.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// isClockTime reports whether s is a zero-padded 24-hour HH:MM string.
func isClockTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return false
	}
	return true
}
