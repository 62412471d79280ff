// Package models - FormSchema thuộc domain Form: định nghĩa schema động cho form builder.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hr_admin/internal/api/metrics"
)

// Các type tag của field được renderer hỗ trợ
const (
	FieldTypeText               = "text"
	FieldTypeEmail              = "email"
	FieldTypePassword           = "password"
	FieldTypeTel                = "tel"
	FieldTypeNumber             = "number"
	FieldTypeURL                = "url"
	FieldTypeDate               = "date"
	FieldTypeTextarea           = "textarea"
	FieldTypeSwitch             = "switch"
	FieldTypeSelect             = "select"
	FieldTypeMultipleSelect     = "multipleSelect"
	FieldTypeSelectAutocomplete = "selectAutocomplete"
	FieldTypeRadio              = "radio"
	FieldTypeFile               = "file"
	FieldTypeAttendance         = "attendance"
	FieldTypeAttendanceHistory  = "attendanceHistory"
)

// FieldOption một lựa chọn của các field dạng choice (select/radio/...).
// Value là giá trị được commit vào formData, Label là text hiển thị.
type FieldOption struct {
	Value string `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

// FieldSchema định nghĩa một field trong form.
// ForeignFormID + ForeignField phải cùng có hoặc cùng vắng: khi có, options của field
// được resolve động từ submissions của form ngoại (một option per submission).
type FieldSchema struct {
	Name          string        `json:"name" bson:"name" validate:"required"`
	Type          string        `json:"type" bson:"type" validate:"required,field_type"`
	Label         string        `json:"label" bson:"label"`
	Placeholder   string        `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
	Required      bool          `json:"required" bson:"required"`
	DefaultValue  interface{}   `json:"defaultValue,omitempty" bson:"defaultValue,omitempty"`
	Options       []FieldOption `json:"options,omitempty" bson:"options,omitempty"`
	Items         []string      `json:"items,omitempty" bson:"items,omitempty"`
	ForeignFormID string        `json:"foreignFormId,omitempty" bson:"foreignFormId,omitempty"`
	ForeignField  string        `json:"foreignField,omitempty" bson:"foreignField,omitempty"`

	// Ràng buộc validation tùy chọn, áp dụng khi Apply giá trị vào FormState
	MinLength int      `json:"minLength,omitempty" bson:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty" bson:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" bson:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty" bson:"pattern,omitempty"`
}

// HasForeignRef kiểm tra field có cấu hình foreign reference đầy đủ không
func (f *FieldSchema) HasForeignRef() bool {
	return f.ForeignFormID != "" && f.ForeignField != ""
}

// IsChoiceType kiểm tra field có phải dạng choice (cần options) không
func (f *FieldSchema) IsChoiceType() bool {
	switch f.Type {
	case FieldTypeSelect, FieldTypeMultipleSelect, FieldTypeSelectAutocomplete, FieldTypeRadio:
		return true
	}
	return false
}

// FormSchema định nghĩa một form động: danh sách field + cấu hình metric.
// FormName là unique toàn hệ thống. Schema hệ thống (IsSystem) không xóa được qua API.
type FormSchema struct {
	ID          primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	FormName    string                 `json:"formName" bson:"formName" index:"unique"`
	Description string                 `json:"description,omitempty" bson:"description,omitempty"`
	Fields      []FieldSchema          `json:"fields" bson:"fields"`
	Metrics     []metrics.MetricConfig `json:"metrics,omitempty" bson:"metrics,omitempty"`
	IsSystem    bool                   `json:"isSystem" bson:"isSystem" index:"single"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// FormSchemaPartial dữ liệu rút gọn cho danh sách schema (projection id + formName)
type FormSchemaPartial struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	FormName string             `json:"formName" bson:"formName"`
}
