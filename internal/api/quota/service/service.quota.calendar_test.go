// Package quotasvc - Test dựng lưới tháng 42 ô cho calendar planner.
package quotasvc

import (
	"testing"
	"time"

	quotamodels "hr_admin/internal/api/quota/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonth_Always42Cells(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		cells := BuildMonth(2026, month, time.Time{}, nil, nil, nil)
		assert.Len(t, cells, 42, "tháng %s phải có đúng 42 ô", month)
	}
}

func TestBuildMonth_PadsToMonday(t *testing.T) {
	// Tháng 3/2026: ngày 1 rơi vào Chủ nhật → lưới bắt đầu từ thứ Hai 23/02
	cells := BuildMonth(2026, time.March, time.Time{}, nil, nil, nil)
	require.Len(t, cells, 42)

	assert.Equal(t, "2026-02-23", cells[0].Date)
	assert.False(t, cells[0].IsCurrentMonth)

	// Ngày 1 của tháng nằm ở vị trí offset 6 (Chủ nhật của tuần đầu)
	assert.Equal(t, "2026-03-01", cells[6].Date)
	assert.True(t, cells[6].IsCurrentMonth)
	assert.True(t, cells[6].IsWeekend)
}

func TestBuildMonth_MonthStartingOnMonday(t *testing.T) {
	// Tháng 6/2026: ngày 1 là thứ Hai → không có padding đầu
	cells := BuildMonth(2026, time.June, time.Time{}, nil, nil, nil)
	require.Len(t, cells, 42)
	assert.Equal(t, "2026-06-01", cells[0].Date)
	assert.True(t, cells[0].IsCurrentMonth)
}

func TestBuildMonth_Flags(t *testing.T) {
	today := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	quotas := map[string]quotamodels.Quota{
		"2026-03-15": {Date: "2026-03-15", Limit: 5, Note: "họp toàn công ty"},
	}
	occupancy := map[string]int{"2026-03-15": 3}
	holidays := map[string]quotamodels.Holiday{
		"2026-03-16": {Date: "2026-03-16", Name: "Nghỉ bù"},
	}

	cells := BuildMonth(2026, time.March, today, quotas, occupancy, holidays)

	byDate := make(map[string]MonthCell, len(cells))
	for _, cell := range cells {
		byDate[cell.Date] = cell
	}

	cell15 := byDate["2026-03-15"]
	assert.True(t, cell15.IsToday)
	require.NotNil(t, cell15.Quota)
	assert.Equal(t, 5, cell15.Quota.Limit)
	assert.Equal(t, 3, cell15.CurrentOccupancy)
	assert.False(t, cell15.IsHoliday)

	cell16 := byDate["2026-03-16"]
	assert.True(t, cell16.IsHoliday)
	assert.Equal(t, "Nghỉ bù", cell16.HolidayName)
	assert.False(t, cell16.IsToday)
	assert.Equal(t, 0, cell16.CurrentOccupancy, "ngày không có submission phải có occupancy 0")
}

func TestBuildMonth_WeekendFlags(t *testing.T) {
	cells := BuildMonth(2026, time.June, time.Time{}, nil, nil, nil)
	// Lưới bắt đầu thứ Hai: ô 5, 6 của mỗi tuần là thứ Bảy, Chủ nhật
	for week := 0; week < 6; week++ {
		for day := 0; day < 7; day++ {
			cell := cells[week*7+day]
			if day == 5 || day == 6 {
				assert.True(t, cell.IsWeekend, "ô %s phải là cuối tuần", cell.Date)
			} else {
				assert.False(t, cell.IsWeekend, "ô %s không phải cuối tuần", cell.Date)
			}
		}
	}
}
