package models

import (
	"strings"
	"time"
)

type WorkLogEntry struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex:idx_user_date_slot" json:"user_id"`
	Date            string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_date_slot;index" json:"date"`
	TimeSlot        string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_user_date_slot" json:"time_slot"`
	WorkDescription string    `gorm:"type:text;default:''" json:"work_description"`
	IsHoliday       bool      `gorm:"not null;default:false" json:"is_holiday"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WorkLogEntry) TableName() string {
	return "work_log_entries"
}

// IsCompleted reports whether the entry carries a non-blank description.
func (e *WorkLogEntry) IsCompleted() bool {
	return strings.TrimSpace(e.WorkDescription) != ""
}

// IsValid checks the entry data.
func (e *WorkLogEntry) IsValid() bool {
	if e.UserID == 0 {
		return false
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return false
	}
	if !isClockTime(e.TimeSlot) {
		return false
	}
	return true
}
