package workhoursvc

import (
	"context"
	"fmt"
	"time"

	basesvc "hr_admin/internal/api/base/service"
	workhourmodels "hr_admin/internal/api/workhours/models"
	"hr_admin/internal/common"
	"hr_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// WorkHourService là cấu trúc chứa các phương thức liên quan đến giờ làm việc
type WorkHourService struct {
	*basesvc.BaseServiceMongoImpl[workhourmodels.WorkHour]
}

// NewWorkHourService tạo mới WorkHourService
func NewWorkHourService() (*WorkHourService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.WorkHours)
	if !exist {
		return nil, fmt.Errorf("failed to get work_hours collection: %v", common.ErrNotFound)
	}

	return &WorkHourService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[workhourmodels.WorkHour](collection),
	}, nil
}

// UpsertDay ghi giờ làm việc của một nhân viên trong một ngày.
// Cặp (employeeName, date) là khóa upsert: đã có → cập nhật hours/note, chưa có → tạo mới.
func (s *WorkHourService) UpsertDay(ctx context.Context, employeeName, date string, hours float64, note string) (workhourmodels.WorkHour, error) {
	filter := bson.M{
		"employeeName": employeeName,
		"date":         date,
	}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"employeeName": employeeName,
			"date":         date,
			"hours":        hours,
			"note":         note,
		},
	}
	return s.Upsert(ctx, filter, update)
}

// WeekDay một ngày trong lưới tuần
type WeekDay struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Weekday string  `json:"weekday"`
	Hours   float64 `json:"hours"`
	Note    string  `json:"note,omitempty"`
}

// WeekGrid lưới tuần Thứ Hai → Chủ Nhật của một nhân viên
type WeekGrid struct {
	EmployeeName string    `json:"employeeName"`
	Start        string    `json:"start"` // Thứ Hai của tuần
	Days         []WeekDay `json:"days"`  // Đủ 7 ngày, ngày không có bản ghi fill 0
	TotalHours   float64   `json:"totalHours"`
}

// GetWeek trả về lưới tuần chứa ngày start: luôn đủ 7 ngày Thứ Hai → Chủ Nhật,
// ngày không có bản ghi được fill hours=0.
func (s *WorkHourService) GetWeek(ctx context.Context, employeeName, start string) (*WeekGrid, error) {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Ngày '%s' không đúng định dạng YYYY-MM-DD", start),
			common.StatusBadRequest,
			err,
		)
	}

	monday := weekStart(startDay)
	sunday := monday.AddDate(0, 0, 6)

	filter := bson.M{
		"employeeName": employeeName,
		"date": bson.M{
			"$gte": monday.Format("2006-01-02"),
			"$lte": sunday.Format("2006-01-02"),
		},
	}
	records, err := s.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	return buildWeekGrid(employeeName, monday, records), nil
}

// weekStart lùi về Thứ Hai của tuần chứa day (Weekday: Sunday=0)
func weekStart(day time.Time) time.Time {
	offset := int(day.Weekday()+6) % 7
	return day.AddDate(0, 0, -offset)
}

// buildWeekGrid dựng lưới 7 ngày từ Thứ Hai monday, fill 0 cho ngày thiếu bản ghi
func buildWeekGrid(employeeName string, monday time.Time, records []workhourmodels.WorkHour) *WeekGrid {
	byDate := make(map[string]workhourmodels.WorkHour, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	grid := &WeekGrid{
		EmployeeName: employeeName,
		Start:        monday.Format("2006-01-02"),
		Days:         make([]WeekDay, 0, 7),
	}
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		dateStr := day.Format("2006-01-02")

		weekDay := WeekDay{
			Date:    dateStr,
			Weekday: day.Weekday().String(),
		}
		if record, ok := byDate[dateStr]; ok {
			weekDay.Hours = record.Hours
			weekDay.Note = record.Note
		}
		grid.TotalHours += weekDay.Hours
		grid.Days = append(grid.Days, weekDay)
	}

	return grid
}
