package formdto

import (
	formmodels "hr_admin/internal/api/form/models"
	"hr_admin/internal/api/metrics"
)

// FormSchemaCreateInput dùng cho tạo form schema (tầng transport)
type FormSchemaCreateInput struct {
	FormName    string                   `json:"formName" validate:"required"`
	Description string                   `json:"description,omitempty"`
	Fields      []formmodels.FieldSchema `json:"fields" validate:"required,min=1,dive"`
	Metrics     []metrics.MetricConfig   `json:"metrics,omitempty" validate:"omitempty,dive"`
}

// FormSchemaUpdateInput dùng cho cập nhật form schema (tầng transport)
type FormSchemaUpdateInput struct {
	FormName    string                   `json:"formName,omitempty"`
	Description string                   `json:"description,omitempty"`
	Fields      []formmodels.FieldSchema `json:"fields,omitempty" validate:"omitempty,dive"`
	Metrics     []metrics.MetricConfig   `json:"metrics,omitempty" validate:"omitempty,dive"`
}

// FormRenderInput dùng cho render form: giá trị hiện tại của các field (nếu đang sửa submission)
type FormRenderInput struct {
	Values map[string]interface{} `json:"values,omitempty"`
}
