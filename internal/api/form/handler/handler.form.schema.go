package formhdl

import (
	"fmt"

	basehdl "hr_admin/internal/api/base/handler"
	formdto "hr_admin/internal/api/form/dto"
	formmodels "hr_admin/internal/api/form/models"
	formsvc "hr_admin/internal/api/form/service"
	"hr_admin/internal/api/render"
	"hr_admin/internal/common"
	"hr_admin/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormSchemaHandler xử lý các request liên quan đến Form Schema
type FormSchemaHandler struct {
	*basehdl.BaseHandler[formmodels.FormSchema, formdto.FormSchemaCreateInput, formdto.FormSchemaUpdateInput]
	schemaService  *formsvc.FormSchemaService
	resolveService *formsvc.FormResolveService
	renderRegistry *render.Registry
}

// NewFormSchemaHandler tạo mới FormSchemaHandler
func NewFormSchemaHandler() (*FormSchemaHandler, error) {
	schemaService, err := formsvc.NewFormSchemaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create form schema service: %v", err)
	}

	resolveService, err := formsvc.NewFormResolveService()
	if err != nil {
		return nil, fmt.Errorf("failed to create form resolve service: %v", err)
	}

	hdl := &FormSchemaHandler{
		BaseHandler:    basehdl.NewBaseHandler[formmodels.FormSchema, formdto.FormSchemaCreateInput, formdto.FormSchemaUpdateInput](schemaService),
		schemaService:  schemaService,
		resolveService: resolveService,
		renderRegistry: render.DefaultRegistry(),
	}
	return hdl, nil
}

// HandlePartialData trả về danh sách rút gọn id + formName của tất cả schema
// @Router /form-fields/partial-data [get]
func (h *FormSchemaHandler) HandlePartialData(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.schemaService.FindPartialData(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleResolved trả về schema với options đã resolve từ foreign form
// @Router /form-fields/resolved/:id [get]
func (h *FormSchemaHandler) HandleResolved(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseSchemaID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.resolveService.ResolveSchema(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRender trả về danh sách control descriptor của một schema.
// Body (optional): giá trị hiện tại của các field khi đang sửa một submission.
// @Router /forms/:id/render [post]
func (h *FormSchemaHandler) HandleRender(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseSchemaID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input formdto.FormRenderInput
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		// Render trên schema đã resolve để các field foreign có options động
		schema, err := h.resolveService.ResolveSchema(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		state := render.NewFormState(schema, input.Values)
		controls, err := h.renderRegistry.RenderForm(schema, state)
		h.HandleResponse(c, controls, err)
		return nil
	})
}

// parseSchemaID parse và validate schema id từ URI params
func (h *FormSchemaHandler) parseSchemaID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" || !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}
