package submissionhdl

import (
	"fmt"

	basehdl "hr_admin/internal/api/base/handler"
	submissiondto "hr_admin/internal/api/submission/dto"
	submissionmodels "hr_admin/internal/api/submission/models"
	submissionsvc "hr_admin/internal/api/submission/service"
	"hr_admin/internal/common"
	"hr_admin/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormSubmissionHandler xử lý các request liên quan đến Form Submission
type FormSubmissionHandler struct {
	*basehdl.BaseHandler[submissionmodels.FormSubmission, submissiondto.FormSubmissionCreateInput, submissiondto.FormSubmissionUpdateInput]
	submissionService *submissionsvc.FormSubmissionService
}

// NewFormSubmissionHandler tạo mới FormSubmissionHandler
func NewFormSubmissionHandler() (*FormSubmissionHandler, error) {
	submissionService, err := submissionsvc.NewFormSubmissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create form submission service: %v", err)
	}

	hdl := &FormSubmissionHandler{
		BaseHandler:       basehdl.NewBaseHandler[submissionmodels.FormSubmission, submissiondto.FormSubmissionCreateInput, submissiondto.FormSubmissionUpdateInput](submissionService),
		submissionService: submissionService,
	}
	return hdl, nil
}

// HandleGrid query submissions theo kiểu bảng: filter per-column + phân trang
// @Router /form-submissions/grid [post]
func (h *FormSubmissionHandler) HandleGrid(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input submissiondto.GridQueryInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		formID, err := h.parseFormID(input.FormID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.submissionService.QueryGrid(c.Context(), submissionsvc.GridRequest{
			FormID:  formID,
			Filters: input.Filters,
			Columns: input.Columns,
			Page:    input.Page,
			Limit:   input.Limit,
		})
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFacets trả về danh sách giá trị gợi ý (distinct) của một cột cho filter dropdown
// @Router /form-submissions/facets [get]
func (h *FormSubmissionHandler) HandleFacets(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		formID, err := h.parseFormID(c.Query("formId", ""))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		column := c.Query("column", "")
		if column == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Tham số column là bắt buộc",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.submissionService.Facets(c.Context(), formID, column)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMetrics tính các metric khai báo trong schema trên submissions của form
// @Router /form-submissions/metrics [get]
func (h *FormSubmissionHandler) HandleMetrics(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		formID, err := h.parseFormID(c.Query("formId", ""))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.submissionService.CalculateMetrics(c.Context(), formID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleExport xuất view bảng hiện tại ra file .xlsx
// @Router /form-submissions/export [get]
func (h *FormSubmissionHandler) HandleExport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		formID, err := h.parseFormID(c.Query("formId", ""))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		file, fileName, err := h.submissionService.ExportGrid(c.Context(), submissionsvc.GridRequest{
			FormID: formID,
		})
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		buf, err := file.WriteToBuffer()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi ghi file export: %v", err),
				common.StatusInternalServerError,
				err,
			))
			return nil
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
		return c.Send(buf.Bytes())
	})
}

// parseFormID parse và validate formId hex string
func (h *FormSubmissionHandler) parseFormID(id string) (primitive.ObjectID, error) {
	if id == "" || !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("formId '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}
