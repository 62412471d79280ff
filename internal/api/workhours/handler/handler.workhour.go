package workhourhdl

import (
	"fmt"

	basehdl "hr_admin/internal/api/base/handler"
	workhourdto "hr_admin/internal/api/workhours/dto"
	workhourmodels "hr_admin/internal/api/workhours/models"
	workhoursvc "hr_admin/internal/api/workhours/service"
	"hr_admin/internal/common"

	"github.com/gofiber/fiber/v3"
)

// WorkHourHandler xử lý các request liên quan đến giờ làm việc
type WorkHourHandler struct {
	*basehdl.BaseHandler[workhourmodels.WorkHour, workhourdto.WorkHourCreateInput, workhourdto.WorkHourUpdateInput]
	workHourService *workhoursvc.WorkHourService
}

// NewWorkHourHandler tạo mới WorkHourHandler
func NewWorkHourHandler() (*WorkHourHandler, error) {
	workHourService, err := workhoursvc.NewWorkHourService()
	if err != nil {
		return nil, fmt.Errorf("failed to create work hour service: %v", err)
	}

	hdl := &WorkHourHandler{
		BaseHandler:     basehdl.NewBaseHandler[workhourmodels.WorkHour, workhourdto.WorkHourCreateInput, workhourdto.WorkHourUpdateInput](workHourService),
		workHourService: workHourService,
	}
	return hdl, nil
}

// HandleUpsertDay ghi giờ làm việc của một nhân viên trong một ngày (upsert trên employeeName + date)
// @Router /work-hours [post]
func (h *WorkHourHandler) HandleUpsertDay(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input workhourdto.WorkHourCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.workHourService.UpsertDay(c.Context(), input.EmployeeName, input.Date, input.Hours, input.Note)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleWeek trả về lưới tuần Thứ Hai → Chủ Nhật của một nhân viên, zero-fill ngày trống
// @Router /work-hours/week [get]
func (h *WorkHourHandler) HandleWeek(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		employee := c.Query("employee", "")
		if employee == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Tham số employee là bắt buộc",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		start := c.Query("start", "")
		if start == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Tham số start (YYYY-MM-DD) là bắt buộc",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.workHourService.GetWeek(c.Context(), employee, start)
		h.HandleResponse(c, data, err)
		return nil
	})
}
