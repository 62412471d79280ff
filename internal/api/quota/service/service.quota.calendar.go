package quotasvc

import (
	"time"

	quotamodels "hr_admin/internal/api/quota/models"
)

// MonthCell một ô trong lưới tháng 6 tuần (42 ô, bắt đầu thứ Hai)
type MonthCell struct {
	Date             string             `json:"date"` // YYYY-MM-DD
	IsToday          bool               `json:"isToday"`
	IsCurrentMonth   bool               `json:"isCurrentMonth"`
	IsWeekend        bool               `json:"isWeekend"`
	IsHoliday        bool               `json:"isHoliday"`
	HolidayName      string             `json:"holidayName,omitempty"`
	Quota            *quotamodels.Quota `json:"quota,omitempty"`
	CurrentOccupancy int                `json:"currentOccupancy"`
}

// BuildMonth dựng lưới tháng: padding về thứ Hai đầu tuần chứa ngày 1,
// luôn đủ 6 tuần (42 ô) để lưới ổn định giữa các tháng.
// quotas/occupancy/holidays key theo YYYY-MM-DD.
func BuildMonth(year int, month time.Month, today time.Time, quotas map[string]quotamodels.Quota, occupancy map[string]int, holidays map[string]quotamodels.Holiday) []MonthCell {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Lùi về thứ Hai của tuần chứa ngày 1 (Weekday: Sunday=0)
	offset := int(firstOfMonth.Weekday()+6) % 7
	start := firstOfMonth.AddDate(0, 0, -offset)

	todayStr := today.Format("2006-01-02")

	cells := make([]MonthCell, 0, 42)
	for i := 0; i < 42; i++ {
		day := start.AddDate(0, 0, i)
		dateStr := day.Format("2006-01-02")
		weekday := day.Weekday()

		cell := MonthCell{
			Date:             dateStr,
			IsToday:          dateStr == todayStr,
			IsCurrentMonth:   day.Month() == month && day.Year() == year,
			IsWeekend:        weekday == time.Saturday || weekday == time.Sunday,
			CurrentOccupancy: occupancy[dateStr],
		}

		if quota, ok := quotas[dateStr]; ok {
			q := quota
			cell.Quota = &q
		}
		if holiday, ok := holidays[dateStr]; ok {
			cell.IsHoliday = true
			cell.HolidayName = holiday.Name
		}

		cells = append(cells, cell)
	}

	return cells
}
