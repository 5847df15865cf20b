package timeline

import (
	"math"
	"sort"
	"strings"

	"work-log-server/internal/models"
)

const (
	dailyAccomplishmentMinLen   = 10
	monthlyAccomplishmentMinLen = 15
	dailyAccomplishmentCap      = 5
	monthlyAccomplishmentCap    = 10
	topWorkAreasLimit           = 6
	mostProductiveDaysLimit     = 5
)

// workAreaGroups defines the classification buckets in precedence order.
// The first group containing a matching keyword wins, so a description like
// "Reviewed the new react component" lands in Frontend Development, not
// Code Review.
var workAreaGroups = []struct {
	area     string
	keywords []string
}{
	{"Frontend Development", []string{"frontend", "react", "ui"}},
	{"Backend Development", []string{"backend", "api", "server"}},
	{"Code Review", []string{"review"}},
	{"Meetings", []string{"meeting", "standup"}},
	{"Documentation", []string{"documentation", "docs"}},
	{"Testing", []string{"testing", "test"}},
	{"Deployment", []string{"deployment", "deploy"}},
}

const workAreaOther = "Other"

// ClassifyWorkArea assigns a description to exactly one work-area bucket.
// Matching is a case-insensitive substring check.
func ClassifyWorkArea(description string) string {
	lower := strings.ToLower(description)
	for _, group := range workAreaGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.area
			}
		}
	}
	return workAreaOther
}

// DailySummary folds one day's entries into a rollup. A single holiday-flagged
// entry makes the whole day a holiday regardless of anything else logged.
func DailySummary(date string, slots []string, entries []models.WorkLogEntry, slotDurationMinutes int) models.DailySummary {
	summary := models.DailySummary{
		Date:               date,
		TotalSlots:         len(slots),
		WorkAreas:          []models.WorkAreaStat{},
		KeyAccomplishments: []string{},
	}

	for _, e := range entries {
		if e.IsHoliday {
			summary.IsHoliday = true
			summary.KeyAccomplishments = []string{"Holiday"}
			return summary
		}
	}

	completed := 0
	for _, e := range entries {
		if e.IsCompleted() {
			completed++
		}
	}

	summary.CompletedSlots = completed
	summary.TotalHours = hoursForSlots(completed, slotDurationMinutes)
	summary.CompletionPercentage = roundPercentage(completed, len(slots))
	summary.WorkAreas = tallyWorkAreas(entries, slotDurationMinutes, completed, 0)
	summary.KeyAccomplishments = collectAccomplishments(entries, dailyAccomplishmentMinLen, dailyAccomplishmentCap)

	return summary
}

// MonthlySummary folds a whole month's entries into the enhanced rollup. The
// caller validates year and month before invoking; the aggregator only groups
// whatever entries it is handed.
func MonthlySummary(year, month int, slots []string, entries []models.WorkLogEntry, slotDurationMinutes int) models.MonthlySummaryEnhanced {
	summary := models.MonthlySummaryEnhanced{
		Year:               year,
		Month:              month,
		TopWorkAreas:       []models.WorkAreaStat{},
		DailySummaries:     []models.DailySummary{},
		KeyAccomplishments: []string{},
		MostProductiveDays: []models.ProductiveDay{},
	}

	byDate := map[string][]models.WorkLogEntry{}
	dates := []string{}
	for _, e := range entries {
		if _, seen := byDate[e.Date]; !seen {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	sort.Strings(dates)

	holidayDates := map[string]bool{}
	for _, e := range entries {
		if e.IsHoliday {
			holidayDates[e.Date] = true
		}
	}

	summary.TotalDays = len(dates)
	summary.HolidayDays = len(holidayDates)
	summary.WorkingDays = summary.TotalDays - summary.HolidayDays

	workEntries := []models.WorkLogEntry{}
	for _, e := range entries {
		if !holidayDates[e.Date] {
			workEntries = append(workEntries, e)
		}
	}

	completed := 0
	for _, e := range workEntries {
		if e.IsCompleted() {
			completed++
		}
	}

	summary.TotalProductiveHours = hoursForSlots(completed, slotDurationMinutes)
	if summary.WorkingDays > 0 {
		summary.AverageHoursPerDay = roundToOneDecimal(summary.TotalProductiveHours / float64(summary.WorkingDays))
	}

	summary.TopWorkAreas = tallyWorkAreas(workEntries, slotDurationMinutes, completed, topWorkAreasLimit)
	summary.KeyAccomplishments = collectAccomplishments(workEntries, monthlyAccomplishmentMinLen, monthlyAccomplishmentCap)

	for _, date := range dates {
		summary.DailySummaries = append(summary.DailySummaries, DailySummary(date, slots, byDate[date], slotDurationMinutes))
	}

	ranked := make([]models.DailySummary, len(summary.DailySummaries))
	copy(ranked, summary.DailySummaries)
	// Descending by hours; equal days rank by date ascending.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalHours != ranked[j].TotalHours {
			return ranked[i].TotalHours > ranked[j].TotalHours
		}
		return ranked[i].Date < ranked[j].Date
	})
	for _, day := range ranked {
		if len(summary.MostProductiveDays) == mostProductiveDaysLimit {
			break
		}
		summary.MostProductiveDays = append(summary.MostProductiveDays, models.ProductiveDay{
			Date:                 day.Date,
			Hours:                day.TotalHours,
			CompletionPercentage: day.CompletionPercentage,
		})
	}

	return summary
}

// tallyWorkAreas classifies every completed entry and returns buckets sorted
// by count descending. Ties keep classification precedence order. limit of 0
// means unlimited. A zero completed count is treated as 1 to guard the
// percentage division.
func tallyWorkAreas(entries []models.WorkLogEntry, slotDurationMinutes, completed, limit int) []models.WorkAreaStat {
	counts := map[string]int{}
	for _, e := range entries {
		if !e.IsCompleted() {
			continue
		}
		counts[ClassifyWorkArea(e.WorkDescription)]++
	}

	denominator := completed
	if denominator == 0 {
		denominator = 1
	}

	stats := []models.WorkAreaStat{}
	appendArea := func(area string) {
		count, ok := counts[area]
		if !ok {
			return
		}
		stats = append(stats, models.WorkAreaStat{
			Area:       area,
			Hours:      hoursForSlots(count, slotDurationMinutes),
			Percentage: roundPercentage(count, denominator),
		})
	}
	for _, group := range workAreaGroups {
		appendArea(group.area)
	}
	appendArea(workAreaOther)

	sort.SliceStable(stats, func(i, j int) bool {
		return countFor(counts, stats[i].Area) > countFor(counts, stats[j].Area)
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

func countFor(counts map[string]int, area string) int {
	return counts[area]
}

// collectAccomplishments picks notable descriptions: trimmed length above
// minLen, de-duplicated in first-seen order, capped.
func collectAccomplishments(entries []models.WorkLogEntry, minLen, limit int) []string {
	seen := map[string]bool{}
	accomplishments := []string{}
	for _, e := range entries {
		desc := strings.TrimSpace(e.WorkDescription)
		if len(desc) <= minLen || seen[desc] {
			continue
		}
		seen[desc] = true
		accomplishments = append(accomplishments, desc)
		if len(accomplishments) == limit {
			break
		}
	}
	return accomplishments
}

func hoursForSlots(count, slotDurationMinutes int) float64 {
	return float64(count) * float64(slotDurationMinutes) / 60
}

func roundPercentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
