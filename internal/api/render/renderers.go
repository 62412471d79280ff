package render

import (
	formmodels "hr_admin/internal/api/form/models"
)

// inputRenderer render các field nhập text đơn giản (text, email, password, tel, url, textarea, date)
type inputRenderer struct{}

func (inputRenderer) Render(field formmodels.FieldSchema, state *FormState) (*Control, error) {
	c := baseControl(field, state)
	return &c, nil
}

// numberRenderer render field số
type numberRenderer struct{}

func (numberRenderer) Render(field formmodels.FieldSchema, state *FormState) (*Control, error) {
	c := baseControl(field, state)
	return &c, nil
}

// switchRenderer render field bool: value luôn được chuẩn về bool
type switchRenderer struct{}

func (switchRenderer) Render(field formmodels.FieldSchema, state *FormState) (*Control, error) {
	c := baseControl(field, state)
	if b, ok := c.Value.(bool); ok {
		c.Value = b
	} else {
		c.Value = false
	}
	return &c, nil
}

// choiceRenderer render các field dạng choice (select, multipleSelect, selectAutocomplete, radio).
// Control commit VALUE của option và hiển thị LABEL — nhất quán cho mọi control dạng choice.
type choiceRenderer struct {
	multiple bool
}

func (r choiceRenderer) Render(field formmodels.FieldSchema, state *FormState) (*Control, error) {
	c := baseControl(field, state)
	c.Multiple = r.multiple

	if len(field.Options) > 0 {
		c.Options = field.Options
	} else if len(field.Items) > 0 {
		// Items là shorthand: value == label
		options := make([]formmodels.FieldOption, 0, len(field.Items))
		for _, item := range field.Items {
			options = append(options, formmodels.FieldOption{Value: item, Label: item})
		}
		c.Options = options
	}

	return &c, nil
}

// fileRenderer render field upload file: value là URL đã upload (nếu có)
type fileRenderer struct{}

func (fileRenderer) Render(field formmodels.FieldSchema, state *FormState) (*Control, error) {
	c := baseControl(field, state)
	return &c, nil
}

// attendanceRenderer render composite chấm công: value là map ngày/trạng thái prefill từ state
type attendanceRenderer struct{}

func (attendanceRenderer) Render(field formmodels.FieldSchema, state *FormState) (*Control, error) {
	c := baseControl(field, state)
	if c.Value == nil {
		c.Value = map[string]interface{}{}
	}
	return &c, nil
}

// DefaultRegistry tạo registry với đầy đủ renderer built-in cho các type tag được hỗ trợ
func DefaultRegistry() *Registry {
	r := NewRegistry()

	input := inputRenderer{}
	for _, tag := range []string{
		formmodels.FieldTypeText,
		formmodels.FieldTypeEmail,
		formmodels.FieldTypePassword,
		formmodels.FieldTypeTel,
		formmodels.FieldTypeURL,
		formmodels.FieldTypeDate,
		formmodels.FieldTypeTextarea,
	} {
		r.Register(tag, input)
	}

	r.Register(formmodels.FieldTypeNumber, numberRenderer{})
	r.Register(formmodels.FieldTypeSwitch, switchRenderer{})

	r.Register(formmodels.FieldTypeSelect, choiceRenderer{multiple: false})
	r.Register(formmodels.FieldTypeRadio, choiceRenderer{multiple: false})
	r.Register(formmodels.FieldTypeSelectAutocomplete, choiceRenderer{multiple: false})
	r.Register(formmodels.FieldTypeMultipleSelect, choiceRenderer{multiple: true})

	r.Register(formmodels.FieldTypeFile, fileRenderer{})

	attendance := attendanceRenderer{}
	r.Register(formmodels.FieldTypeAttendance, attendance)
	r.Register(formmodels.FieldTypeAttendanceHistory, attendance)

	return r
}
