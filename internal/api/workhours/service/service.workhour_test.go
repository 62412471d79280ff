// Package workhoursvc - Test dựng lưới tuần giờ làm việc (phần thuần, không cần DB).
package workhoursvc

import (
	"testing"
	"time"

	workhourmodels "hr_admin/internal/api/workhours/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart_NormalizesToMonday(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-03-16", "2026-03-16"}, // Thứ Hai giữ nguyên
		{"2026-03-18", "2026-03-16"}, // Thứ Tư
		{"2026-03-22", "2026-03-16"}, // Chủ nhật vẫn thuộc tuần bắt đầu 16/03
	}

	for _, tt := range tests {
		day, err := time.Parse("2006-01-02", tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, weekStart(day).Format("2006-01-02"), "weekStart sai với input %s", tt.in)
	}
}

func TestBuildWeekGrid_ZeroFillsMissingDays(t *testing.T) {
	monday, _ := time.Parse("2006-01-02", "2026-03-16")
	records := []workhourmodels.WorkHour{
		{EmployeeName: "An", Date: "2026-03-16", Hours: 8},
		{EmployeeName: "An", Date: "2026-03-18", Hours: 4, Note: "nửa ngày"},
	}

	grid := buildWeekGrid("An", monday, records)

	require.Len(t, grid.Days, 7, "lưới tuần phải đủ 7 ngày")
	assert.Equal(t, "2026-03-16", grid.Start)
	assert.Equal(t, "An", grid.EmployeeName)
	assert.Equal(t, float64(12), grid.TotalHours)

	assert.Equal(t, float64(8), grid.Days[0].Hours)
	assert.Equal(t, float64(0), grid.Days[1].Hours, "ngày không có bản ghi phải fill 0")
	assert.Equal(t, float64(4), grid.Days[2].Hours)
	assert.Equal(t, "nửa ngày", grid.Days[2].Note)

	assert.Equal(t, "Monday", grid.Days[0].Weekday)
	assert.Equal(t, "Sunday", grid.Days[6].Weekday)
	assert.Equal(t, "2026-03-22", grid.Days[6].Date)
}

func TestBuildWeekGrid_NoRecords(t *testing.T) {
	monday, _ := time.Parse("2006-01-02", "2026-03-16")
	grid := buildWeekGrid("An", monday, nil)

	require.Len(t, grid.Days, 7)
	assert.Equal(t, float64(0), grid.TotalHours)
	for _, day := range grid.Days {
		assert.Equal(t, float64(0), day.Hours)
	}
}
