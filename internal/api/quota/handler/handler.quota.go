package quotahdl

import (
	"fmt"
	"strconv"
	"time"

	basehdl "hr_admin/internal/api/base/handler"
	quotadto "hr_admin/internal/api/quota/dto"
	quotamodels "hr_admin/internal/api/quota/models"
	quotasvc "hr_admin/internal/api/quota/service"
	"hr_admin/internal/common"

	"github.com/gofiber/fiber/v3"
)

// QuotaHandler xử lý các request liên quan đến Quota theo ngày
type QuotaHandler struct {
	*basehdl.BaseHandler[quotamodels.Quota, quotadto.QuotaCreateInput, quotadto.QuotaUpdateInput]
	quotaService   *quotasvc.QuotaService
	holidayService *quotasvc.HolidayService
}

// NewQuotaHandler tạo mới QuotaHandler
func NewQuotaHandler() (*QuotaHandler, error) {
	quotaService, err := quotasvc.NewQuotaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create quota service: %v", err)
	}

	holidayService, err := quotasvc.NewHolidayService()
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday service: %v", err)
	}

	hdl := &QuotaHandler{
		BaseHandler:    basehdl.NewBaseHandler[quotamodels.Quota, quotadto.QuotaCreateInput, quotadto.QuotaUpdateInput](quotaService),
		quotaService:   quotaService,
		holidayService: holidayService,
	}
	return hdl, nil
}

// HandleMonth trả về lưới tháng 6 tuần với quota, occupancy và holiday per ngày
// @Router /quotas/month [get]
func (h *QuotaHandler) HandleMonth(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		now := time.Now()

		year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
		if err != nil || year < 1970 || year > 9999 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Tham số year không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		monthNum, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
		if err != nil || monthNum < 1 || monthNum > 12 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Tham số month phải từ 1 đến 12", common.StatusBadRequest, nil))
			return nil
		}

		data, err := h.quotaService.GetMonth(c.Context(), year, time.Month(monthNum), h.holidayService)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleByDate trả về quota của một ngày. Luôn 200: exists=false khi ngày chưa có quota,
// để client gate việc mở modal chỉnh sửa sau khi load xong.
// @Router /quotas/date/:date [get]
func (h *QuotaHandler) HandleByDate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		date := c.Params("date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Ngày '%s' không đúng định dạng YYYY-MM-DD", date),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		quota, err := h.quotaService.FindByDate(c.Context(), date)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"exists": quota != nil,
			"quota":  quota,
		}, nil)
		return nil
	})
}

// HandleRange gán cùng một limit cho mọi ngày trong khoảng [start, end] (upsert per ngày)
// @Router /quotas/range [post]
func (h *QuotaHandler) HandleRange(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input quotadto.QuotaRangeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.quotaService.UpsertRange(c.Context(), input.Start, input.End, input.Limit, input.Note)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HolidayHandler xử lý các request liên quan đến ngày nghỉ lễ
type HolidayHandler struct {
	*basehdl.BaseHandler[quotamodels.Holiday, quotadto.HolidayCreateInput, quotadto.HolidayUpdateInput]
	holidayService *quotasvc.HolidayService
}

// NewHolidayHandler tạo mới HolidayHandler
func NewHolidayHandler() (*HolidayHandler, error) {
	holidayService, err := quotasvc.NewHolidayService()
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday service: %v", err)
	}

	hdl := &HolidayHandler{
		BaseHandler:    basehdl.NewBaseHandler[quotamodels.Holiday, quotadto.HolidayCreateInput, quotadto.HolidayUpdateInput](holidayService),
		holidayService: holidayService,
	}
	return hdl, nil
}
