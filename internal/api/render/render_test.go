// Package render - Test registry renderer và policy bỏ qua type tag không nhận diện được.
package render

import (
	"testing"

	formmodels "hr_admin/internal/api/form/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderForm_SkipsUnrecognizedType(t *testing.T) {
	schema := formmodels.FormSchema{
		FormName: "test",
		Fields: []formmodels.FieldSchema{
			{Name: "name", Type: formmodels.FieldTypeText, Label: "Tên"},
			{Name: "legacy", Type: "3dViewer", Label: "Type lạ"},
			{Name: "age", Type: formmodels.FieldTypeNumber, Label: "Tuổi"},
		},
	}

	controls, err := DefaultRegistry().RenderForm(schema, nil)
	require.NoError(t, err, "type tag không nhận diện được không phải là lỗi")
	require.Len(t, controls, 2, "field với type lạ phải bị bỏ qua")
	assert.Equal(t, "name", controls[0].Name)
	assert.Equal(t, "age", controls[1].Name)
}

func TestRenderForm_PreservesFieldOrder(t *testing.T) {
	schema := formmodels.FormSchema{
		Fields: []formmodels.FieldSchema{
			{Name: "c", Type: formmodels.FieldTypeText},
			{Name: "a", Type: formmodels.FieldTypeText},
			{Name: "b", Type: formmodels.FieldTypeText},
		},
	}

	controls, err := DefaultRegistry().RenderForm(schema, nil)
	require.NoError(t, err)
	require.Len(t, controls, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{controls[0].Name, controls[1].Name, controls[2].Name})
}

func TestChoiceRenderer_ItemsShorthand(t *testing.T) {
	field := formmodels.FieldSchema{
		Name:  "size",
		Type:  formmodels.FieldTypeSelect,
		Items: []string{"S", "M", "L"},
	}

	control, err := choiceRenderer{}.Render(field, nil)
	require.NoError(t, err)
	require.Len(t, control.Options, 3)
	// Items là shorthand: value == label
	assert.Equal(t, "M", control.Options[1].Value)
	assert.Equal(t, "M", control.Options[1].Label)
}

func TestChoiceRenderer_OptionsKeepValueLabelPair(t *testing.T) {
	field := formmodels.FieldSchema{
		Name: "status",
		Type: formmodels.FieldTypeSelect,
		Options: []formmodels.FieldOption{
			{Value: "present", Label: "Có mặt"},
			{Value: "leave", Label: "Nghỉ phép"},
		},
	}
	state := NewFormState(formmodels.FormSchema{Fields: []formmodels.FieldSchema{field}}, map[string]interface{}{
		"status": "leave",
	})

	control, err := choiceRenderer{}.Render(field, state)
	require.NoError(t, err)
	// Control commit value, label chỉ để hiển thị
	assert.Equal(t, "leave", control.Value)
	assert.Equal(t, "Nghỉ phép", control.Options[1].Label)
	assert.False(t, control.Multiple)
}

func TestChoiceRenderer_Multiple(t *testing.T) {
	field := formmodels.FieldSchema{
		Name:  "tags",
		Type:  formmodels.FieldTypeMultipleSelect,
		Items: []string{"a", "b"},
	}
	control, err := choiceRenderer{multiple: true}.Render(field, nil)
	require.NoError(t, err)
	assert.True(t, control.Multiple)
}

func TestSwitchRenderer_NormalizesToBool(t *testing.T) {
	field := formmodels.FieldSchema{Name: "active", Type: formmodels.FieldTypeSwitch}

	control, err := switchRenderer{}.Render(field, nil)
	require.NoError(t, err)
	assert.Equal(t, false, control.Value, "switch không có giá trị phải chuẩn về false")

	state := NewFormState(formmodels.FormSchema{Fields: []formmodels.FieldSchema{field}}, map[string]interface{}{
		"active": true,
	})
	control, err = switchRenderer{}.Render(field, state)
	require.NoError(t, err)
	assert.Equal(t, true, control.Value)
}

func TestBaseControl_UsesDefaultValueWithoutState(t *testing.T) {
	field := formmodels.FieldSchema{
		Name:         "country",
		Type:         formmodels.FieldTypeText,
		DefaultValue: "VN",
	}
	control, err := inputRenderer{}.Render(field, nil)
	require.NoError(t, err)
	assert.Equal(t, "VN", control.Value)
}

func TestBaseControl_CarriesConstraintsAndError(t *testing.T) {
	field := formmodels.FieldSchema{
		Name:      "username",
		Type:      formmodels.FieldTypeText,
		Required:  true,
		MinLength: 3,
	}
	state := NewFormState(formmodels.FormSchema{Fields: []formmodels.FieldSchema{field}}, nil)
	_ = state.Apply("username", "ab")

	control, err := inputRenderer{}.Render(field, state)
	require.NoError(t, err)
	assert.True(t, control.Constraints.Required)
	assert.Equal(t, 3, control.Constraints.MinLength)
	assert.NotEmpty(t, control.Error, "control phải mang lỗi validation hiện tại của field")
	assert.Equal(t, "ab", control.Value, "giá trị không hợp lệ vẫn được hiển thị lại")
}

func TestAttendanceRenderer_DefaultEmptyMap(t *testing.T) {
	field := formmodels.FieldSchema{Name: "att", Type: formmodels.FieldTypeAttendance}
	control, err := attendanceRenderer{}.Render(field, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{}, control.Value)
}
