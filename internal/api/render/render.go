// Package render chuyển FieldSchema thành control descriptor sẵn sàng hiển thị.
// Mỗi type tag map tới một ControlRenderer qua registry; tag không đăng ký bị bỏ qua
// (skip unrecognized field), không sinh lỗi.
package render

import (
	formmodels "hr_admin/internal/api/form/models"
)

// Constraints các ràng buộc nhập liệu của một control
type Constraints struct {
	Required  bool     `json:"required"`
	MinLength int      `json:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
}

// Control descriptor sẵn sàng hiển thị của một field
type Control struct {
	Kind        string                   `json:"kind"` // Loại control (trùng type tag của field)
	Name        string                   `json:"name"`
	Label       string                   `json:"label"`
	Placeholder string                   `json:"placeholder,omitempty"`
	Value       interface{}              `json:"value,omitempty"` // Giá trị hiện tại từ state, fallback DefaultValue
	Constraints Constraints              `json:"constraints"`
	Options     []formmodels.FieldOption `json:"options,omitempty"` // Cho các control dạng choice
	Multiple    bool                     `json:"multiple,omitempty"`
	Error       string                   `json:"error,omitempty"` // Lỗi validation hiện tại của field
}

// ControlRenderer render một field schema thành control.
// Trả về (nil, nil) nghĩa là renderer từ chối field này (không phải lỗi).
type ControlRenderer interface {
	Render(field formmodels.FieldSchema, state *FormState) (*Control, error)
}

// Registry map type tag → ControlRenderer. Lookup một lần per field khi render.
type Registry struct {
	renderers map[string]ControlRenderer
}

// NewRegistry tạo registry rỗng
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]ControlRenderer)}
}

// Register đăng ký renderer cho một type tag, ghi đè nếu đã có
func (r *Registry) Register(typeTag string, renderer ControlRenderer) {
	r.renderers[typeTag] = renderer
}

// Lookup tìm renderer theo type tag
func (r *Registry) Lookup(typeTag string) (ControlRenderer, bool) {
	renderer, ok := r.renderers[typeTag]
	return renderer, ok
}

// RenderForm render tất cả field của schema theo thứ tự khai báo.
// Field có type tag không đăng ký bị bỏ qua — schema cũ chứa type lạ vẫn render được phần còn lại.
func (r *Registry) RenderForm(schema formmodels.FormSchema, state *FormState) ([]Control, error) {
	controls := make([]Control, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		renderer, ok := r.Lookup(field.Type)
		if !ok {
			continue // Skip unrecognized field
		}

		control, err := renderer.Render(field, state)
		if err != nil {
			return nil, err
		}
		if control == nil {
			continue
		}
		controls = append(controls, *control)
	}
	return controls, nil
}

// baseControl dựng phần chung của control từ field schema + state
func baseControl(field formmodels.FieldSchema, state *FormState) Control {
	c := Control{
		Kind:        field.Type,
		Name:        field.Name,
		Label:       field.Label,
		Placeholder: field.Placeholder,
		Constraints: Constraints{
			Required:  field.Required,
			MinLength: field.MinLength,
			MaxLength: field.MaxLength,
			Min:       field.Min,
			Max:       field.Max,
			Pattern:   field.Pattern,
		},
	}
	if state != nil {
		c.Value = state.Value(field.Name)
		c.Error = state.Error(field.Name)
	} else {
		c.Value = field.DefaultValue
	}
	return c
}
