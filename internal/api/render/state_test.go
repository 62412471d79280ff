// Package render - Test FormState: apply giá trị, validate per-field, lỗi không chặn field khác.
package render

import (
	"testing"

	formmodels "hr_admin/internal/api/form/models"

	"github.com/stretchr/testify/assert"
)

func testSchema() formmodels.FormSchema {
	min := 1.0
	max := 24.0
	return formmodels.FormSchema{
		FormName: "test",
		Fields: []formmodels.FieldSchema{
			{Name: "name", Type: formmodels.FieldTypeText, Required: true, MinLength: 2, MaxLength: 10},
			{Name: "email", Type: formmodels.FieldTypeEmail, Pattern: `^[^@\s]+@[^@\s]+$`},
			{Name: "hours", Type: formmodels.FieldTypeNumber, Min: &min, Max: &max},
			{Name: "note", Type: formmodels.FieldTypeTextarea},
		},
	}
}

func TestFormState_ApplyValid(t *testing.T) {
	state := NewFormState(testSchema(), nil)

	assert.NoError(t, state.Apply("name", "Alice"))
	assert.Empty(t, state.Error("name"))
	assert.Equal(t, "Alice", state.Value("name"))
	assert.False(t, state.HasErrors())
}

func TestFormState_RequiredField(t *testing.T) {
	state := NewFormState(testSchema(), nil)

	err := state.Apply("name", "")
	assert.Error(t, err)
	assert.NotEmpty(t, state.Error("name"))
	// Giá trị vẫn được ghi dù không hợp lệ
	assert.Equal(t, "", state.Value("name"))
	assert.True(t, state.HasErrors())

	// Sửa lại hợp lệ → lỗi được xóa
	assert.NoError(t, state.Apply("name", "Bob"))
	assert.Empty(t, state.Error("name"))
	assert.False(t, state.HasErrors())
}

func TestFormState_LengthConstraints(t *testing.T) {
	state := NewFormState(testSchema(), nil)

	assert.Error(t, state.Apply("name", "a"), "ngắn hơn minLength phải bị từ chối")
	assert.Error(t, state.Apply("name", "dài quá mười ký tự rồi"), "dài hơn maxLength phải bị từ chối")
	assert.NoError(t, state.Apply("name", "vừa đủ"))
}

func TestFormState_Pattern(t *testing.T) {
	state := NewFormState(testSchema(), nil)

	assert.Error(t, state.Apply("email", "not-an-email"))
	assert.NoError(t, state.Apply("email", "a@b.vn"))
	// Pattern không áp dụng cho giá trị rỗng của field optional
	assert.NoError(t, state.Apply("email", ""))
}

func TestFormState_NumericRange(t *testing.T) {
	state := NewFormState(testSchema(), nil)

	assert.Error(t, state.Apply("hours", 0.5))
	assert.Error(t, state.Apply("hours", 25))
	assert.NoError(t, state.Apply("hours", 8))
	assert.NoError(t, state.Apply("hours", "12"), "chuỗi số phải được chấp nhận trong khoảng")
}

func TestFormState_ErrorsAreIsolatedPerField(t *testing.T) {
	state := NewFormState(testSchema(), nil)

	_ = state.Apply("name", "")
	assert.NoError(t, state.Apply("note", "ghi chú bình thường"), "lỗi của field khác không được chặn field này")
	assert.Empty(t, state.Error("note"))
	assert.NotEmpty(t, state.Error("name"))
}

func TestFormState_UnknownFieldNotValidated(t *testing.T) {
	state := NewFormState(testSchema(), nil)

	assert.NoError(t, state.Apply("extra", "anything"))
	assert.Equal(t, "anything", state.Value("extra"))
	assert.False(t, state.HasErrors())
}

func TestFormState_InitialValuesAndDefault(t *testing.T) {
	schema := testSchema()
	schema.Fields[3].DefaultValue = "mặc định"

	state := NewFormState(schema, map[string]interface{}{"name": "Alice"})
	assert.Equal(t, "Alice", state.Value("name"))
	assert.Equal(t, "mặc định", state.Value("note"), "field chưa nhập phải fallback DefaultValue")
	assert.Nil(t, state.Value("unknown"))

	values := state.Values()
	assert.Equal(t, map[string]interface{}{"name": "Alice"}, values, "Values chỉ chứa giá trị đã ghi, không chứa default")
}
