// Package submissionsvc - Test coerce formData theo field type của schema.
package submissionsvc

import (
	"context"
	"testing"

	basesvc "hr_admin/internal/api/base/service"
	formmodels "hr_admin/internal/api/form/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func coercionSchema() formmodels.FormSchema {
	return formmodels.FormSchema{
		FormName: "attendance",
		Fields: []formmodels.FieldSchema{
			{Name: "employeeName", Type: formmodels.FieldTypeText},
			{Name: "hours", Type: formmodels.FieldTypeNumber},
			{Name: "remote", Type: formmodels.FieldTypeSwitch},
			{Name: "tags", Type: formmodels.FieldTypeMultipleSelect},
			{Name: "date", Type: formmodels.FieldTypeDate},
			{Name: "status", Type: formmodels.FieldTypeSelect},
		},
	}
}

func TestCoerceFormData_Number(t *testing.T) {
	schema := coercionSchema()

	out := CoerceFormData(schema, map[string]interface{}{"hours": "7.5"})
	assert.Equal(t, 7.5, out["hours"], "chuỗi số phải được chuẩn về float64")

	out = CoerceFormData(schema, map[string]interface{}{"hours": 8})
	assert.Equal(t, float64(8), out["hours"])

	out = CoerceFormData(schema, map[string]interface{}{"hours": "abc"})
	assert.Equal(t, "abc", out["hours"], "giá trị không parse được giữ nguyên")
}

func TestCoerceFormData_Switch(t *testing.T) {
	schema := coercionSchema()

	tests := []struct {
		in   interface{}
		want bool
	}{
		{true, true},
		{"true", true},
		{"1", true},
		{"false", false},
		{float64(0), false},
		{float64(1), true},
		{[]string{"x"}, false},
	}
	for _, tt := range tests {
		out := CoerceFormData(schema, map[string]interface{}{"remote": tt.in})
		assert.Equal(t, tt.want, out["remote"], "switch coerce sai với input %v", tt.in)
	}
}

func TestCoerceFormData_MultipleSelect(t *testing.T) {
	schema := coercionSchema()

	out := CoerceFormData(schema, map[string]interface{}{"tags": []interface{}{"a", "b"}})
	assert.Equal(t, []string{"a", "b"}, out["tags"])

	out = CoerceFormData(schema, map[string]interface{}{"tags": "solo"})
	assert.Equal(t, []string{"solo"}, out["tags"], "giá trị đơn phải được bọc thành slice")

	out = CoerceFormData(schema, map[string]interface{}{"tags": ""})
	assert.Equal(t, []string{}, out["tags"])
}

func TestCoerceFormData_Date(t *testing.T) {
	schema := coercionSchema()

	out := CoerceFormData(schema, map[string]interface{}{"date": "2026-03-15T08:30:00Z"})
	assert.Equal(t, "2026-03-15", out["date"], "date RFC3339 phải được chuẩn về YYYY-MM-DD")

	out = CoerceFormData(schema, map[string]interface{}{"date": "2026-03-15"})
	assert.Equal(t, "2026-03-15", out["date"])

	out = CoerceFormData(schema, map[string]interface{}{"date": "15/03/2026"})
	assert.Equal(t, "15/03/2026", out["date"], "định dạng lạ giữ nguyên để không mất dữ liệu")
}

func TestCoerceFormData_TextLikeKeepsForeignRefMap(t *testing.T) {
	schema := coercionSchema()

	ref := map[string]interface{}{"_id": "abc123", "display": "Phòng A"}
	out := CoerceFormData(schema, map[string]interface{}{"status": ref})
	assert.Equal(t, ref, out["status"], "foreign ref {_id, display} phải được giữ nguyên")

	out = CoerceFormData(schema, map[string]interface{}{"employeeName": 42.0})
	assert.Equal(t, "42", out["employeeName"])
}

func TestCoerceFormData_UnknownKeyPassesThrough(t *testing.T) {
	schema := coercionSchema()
	out := CoerceFormData(schema, map[string]interface{}{"extra": 123})
	assert.Equal(t, 123, out["extra"])
}

func TestCoerceFormData_NilInput(t *testing.T) {
	out := CoerceFormData(coercionSchema(), nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCoerceUpdatePayload_PassThroughWithoutFormData(t *testing.T) {
	s := &FormSubmissionService{}

	// Payload không đụng formData lẫn formId → trả nguyên vẹn, không cần lookup schema
	update := &basesvc.UpdateData{Set: map[string]interface{}{"formName": "attendance"}}
	out, err := s.coerceUpdatePayload(context.Background(), primitive.NewObjectID(), update)
	require.NoError(t, err)
	assert.Equal(t, update, out, "payload không có formData phải được giữ nguyên")
}

func TestCoerceUpdatePayload_RequiresFormID(t *testing.T) {
	s := &FormSubmissionService{}

	// Không có formId từ document hiện có lẫn payload → không xác định được schema để coerce
	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"formData": map[string]interface{}{"hours": "8"},
	}}
	_, err := s.coerceUpdatePayload(context.Background(), primitive.NilObjectID, update)
	assert.Error(t, err, "thiếu formId phải bị từ chối như khi insert")
}
