package models

// Computed value objects. None of these are persisted; they are derived from
// the schedule and the stored work log entries on every read.

// WorkAreaStat is one categorized bucket of logged work.
type WorkAreaStat struct {
	Area       string  `json:"area"`
	Hours      float64 `json:"hours"`
	Percentage int     `json:"percentage"`
}

// DailySummary is the per-day productivity rollup.
type DailySummary struct {
	Date                 string         `json:"date"`
	TotalHours           float64        `json:"total_hours"`
	CompletedSlots       int            `json:"completed_slots"`
	TotalSlots           int            `json:"total_slots"`
	CompletionPercentage int            `json:"completion_percentage"`
	WorkAreas            []WorkAreaStat `json:"work_areas"`
	KeyAccomplishments   []string       `json:"key_accomplishments"`
	IsHoliday            bool           `json:"is_holiday"`
}

// ProductiveDay is one ranked entry of the monthly "most productive days" list.
type ProductiveDay struct {
	Date                 string  `json:"date"`
	Hours                float64 `json:"hours"`
	CompletionPercentage int     `json:"completion_percentage"`
}

// MonthlySummaryEnhanced is the whole-month productivity rollup.
type MonthlySummaryEnhanced struct {
	Year                 int             `json:"year"`
	Month                int             `json:"month"`
	TotalDays            int             `json:"total_days"`
	WorkingDays          int             `json:"working_days"`
	HolidayDays          int             `json:"holiday_days"`
	TotalProductiveHours float64         `json:"total_productive_hours"`
	AverageHoursPerDay   float64         `json:"average_hours_per_day"`
	TopWorkAreas         []WorkAreaStat  `json:"top_work_areas"`
	DailySummaries       []DailySummary  `json:"daily_summaries"`
	KeyAccomplishments   []string        `json:"key_accomplishments"`
	MostProductiveDays   []ProductiveDay `json:"most_productive_days"`
}

// DayStatus describes where "now" falls inside a user's schedule.
type DayStatus struct {
	IsWorkingHours bool   `json:"is_working_hours"`
	CurrentSlot    string `json:"current_slot,omitempty"`
	HasCurrentSlot bool   `json:"has_current_slot"`
}
