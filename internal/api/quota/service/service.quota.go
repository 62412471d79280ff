package quotasvc

import (
	"context"
	"fmt"
	"time"

	basesvc "hr_admin/internal/api/base/service"
	quotamodels "hr_admin/internal/api/quota/models"
	submissionmodels "hr_admin/internal/api/submission/models"
	"hr_admin/internal/common"
	"hr_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// attendanceFormName tên form hệ thống chứa submission chấm công; occupancy đếm theo formData.date
const attendanceFormName = "attendance"

// QuotaService là cấu trúc chứa các phương thức liên quan đến Quota theo ngày
type QuotaService struct {
	*basesvc.BaseServiceMongoImpl[quotamodels.Quota]
	submissionService *basesvc.BaseServiceMongoImpl[submissionmodels.FormSubmission]
}

// NewQuotaService tạo mới QuotaService
func NewQuotaService() (*QuotaService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Quotas)
	if !exist {
		return nil, fmt.Errorf("failed to get quotas collection: %v", common.ErrNotFound)
	}

	submissionCollection, exist := global.RegistryCollections.Get(global.ColNames.FormSubmissions)
	if !exist {
		return nil, fmt.Errorf("failed to get form_submissions collection: %v", common.ErrNotFound)
	}

	return &QuotaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[quotamodels.Quota](collection),
		submissionService:    basesvc.NewBaseServiceMongo[submissionmodels.FormSubmission](submissionCollection),
	}, nil
}

// HolidayService là cấu trúc chứa các phương thức liên quan đến ngày nghỉ lễ
type HolidayService struct {
	*basesvc.BaseServiceMongoImpl[quotamodels.Holiday]
}

// NewHolidayService tạo mới HolidayService
func NewHolidayService() (*HolidayService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Holidays)
	if !exist {
		return nil, fmt.Errorf("failed to get holidays collection: %v", common.ErrNotFound)
	}

	return &HolidayService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[quotamodels.Holiday](collection),
	}, nil
}

// FindByDate tìm quota của một ngày. Không có → (nil, nil), không phải lỗi,
// để handler trả về payload exists:false cho contract "open after load".
func (s *QuotaService) FindByDate(ctx context.Context, date string) (*quotamodels.Quota, error) {
	quota, err := s.FindOne(ctx, bson.M{"date": date}, nil)
	if err == common.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quota, nil
}

// UpsertRange upsert một quota per ngày trong [start, end] (cả hai đầu, đã chuẩn hóa start ≤ end)
func (s *QuotaService) UpsertRange(ctx context.Context, start, end string, limit int, note string) ([]quotamodels.Quota, error) {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Ngày bắt đầu '%s' không đúng định dạng YYYY-MM-DD", start), common.StatusBadRequest, err)
	}
	endDay, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Ngày kết thúc '%s' không đúng định dạng YYYY-MM-DD", end), common.StatusBadRequest, err)
	}

	// Chuẩn hóa thứ tự thời gian như RangeSelection
	if endDay.Before(startDay) {
		startDay, endDay = endDay, startDay
	}

	results := make([]quotamodels.Quota, 0)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format("2006-01-02")
		update := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"date":  dateStr,
				"limit": limit,
				"note":  note,
			},
		}
		quota, err := s.Upsert(ctx, bson.M{"date": dateStr}, update)
		if err != nil {
			return results, err
		}
		results = append(results, quota)
	}

	return results, nil
}

// GetMonth dựng lưới tháng với quota, occupancy và holiday của từng ngày
func (s *QuotaService) GetMonth(ctx context.Context, year int, month time.Month, holidayService *HolidayService) ([]MonthCell, error) {
	// Lưới 6 tuần có thể lấn sang tháng trước/sau, query dư một tháng mỗi đầu
	rangeStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0).Format("2006-01-02")
	rangeEnd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 2, 0).Format("2006-01-02")
	dateFilter := bson.M{"date": bson.M{"$gte": rangeStart, "$lt": rangeEnd}}

	quotaList, err := s.Find(ctx, dateFilter, nil)
	if err != nil {
		return nil, err
	}
	quotas := make(map[string]quotamodels.Quota, len(quotaList))
	for _, q := range quotaList {
		quotas[q.Date] = q
	}

	holidayList, err := holidayService.Find(ctx, dateFilter, nil)
	if err != nil {
		return nil, err
	}
	holidays := make(map[string]quotamodels.Holiday, len(holidayList))
	for _, h := range holidayList {
		holidays[h.Date] = h
	}

	occupancy, err := s.occupancyByDate(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	return BuildMonth(year, month, time.Now(), quotas, occupancy, holidays), nil
}

// occupancyByDate đếm số submission chấm công per ngày trong [start, end)
func (s *QuotaService) occupancyByDate(ctx context.Context, start, end string) (map[string]int, error) {
	filter := bson.M{
		"formName":      attendanceFormName,
		"formData.date": bson.M{"$gte": start, "$lt": end},
	}

	submissions, err := s.submissionService.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	occupancy := make(map[string]int)
	for _, sub := range submissions {
		if date, ok := sub.FormData["date"].(string); ok && date != "" {
			occupancy[date]++
		}
	}

	return occupancy, nil
}
