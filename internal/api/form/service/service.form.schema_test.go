// Package formsvc - Test business validation của form schema (không cần DB).
package formsvc

import (
	"testing"

	basesvc "hr_admin/internal/api/base/service"
	formmodels "hr_admin/internal/api/form/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateSchema_DuplicateFieldNames(t *testing.T) {
	s := &FormSchemaService{}
	schema := formmodels.FormSchema{
		FormName: "test",
		Fields: []formmodels.FieldSchema{
			{Name: "email", Type: formmodels.FieldTypeEmail},
			{Name: "email", Type: formmodels.FieldTypeText},
		},
	}

	err := s.ValidateSchema(schema)
	assert.Error(t, err, "tên field trùng trong một schema phải bị từ chối")
}

func TestValidateSchema_PartialForeignPair(t *testing.T) {
	s := &FormSchemaService{}

	// Chỉ có foreignFormId, thiếu foreignField
	schema := formmodels.FormSchema{
		FormName: "test",
		Fields: []formmodels.FieldSchema{
			{Name: "dept", Type: formmodels.FieldTypeSelect, ForeignFormID: "abc"},
		},
	}
	assert.Error(t, s.ValidateSchema(schema))

	// Chỉ có foreignField, thiếu foreignFormId
	schema.Fields[0] = formmodels.FieldSchema{Name: "dept", Type: formmodels.FieldTypeSelect, ForeignField: "name"}
	assert.Error(t, s.ValidateSchema(schema))

	// Đủ cặp → hợp lệ
	schema.Fields[0] = formmodels.FieldSchema{
		Name: "dept", Type: formmodels.FieldTypeSelect,
		ForeignFormID: "abc", ForeignField: "name",
	}
	assert.NoError(t, s.ValidateSchema(schema))
}

func TestValidateSchema_ChoiceWithoutSource(t *testing.T) {
	s := &FormSchemaService{}

	schema := formmodels.FormSchema{
		FormName: "test",
		Fields: []formmodels.FieldSchema{
			{Name: "status", Type: formmodels.FieldTypeSelect},
		},
	}
	assert.Error(t, s.ValidateSchema(schema), "choice type không có nguồn lựa chọn phải bị từ chối")

	// Options là một nguồn hợp lệ
	schema.Fields[0].Options = []formmodels.FieldOption{{Value: "a", Label: "A"}}
	assert.NoError(t, s.ValidateSchema(schema))

	// Items cũng là nguồn hợp lệ
	schema.Fields[0].Options = nil
	schema.Fields[0].Items = []string{"a"}
	assert.NoError(t, s.ValidateSchema(schema))
}

func TestMergeUpdateIntoSchema_PartialUpdateKeepsExistingFields(t *testing.T) {
	id := primitive.NewObjectID()
	existing := formmodels.FormSchema{
		ID:       id,
		FormName: "attendance",
		Fields: []formmodels.FieldSchema{
			{Name: "employeeName", Type: formmodels.FieldTypeText},
			{Name: "date", Type: formmodels.FieldTypeDate},
		},
	}

	// Update chỉ đổi formName: fields hiện có phải được giữ nguyên trong trạng thái merge
	update := &basesvc.UpdateData{Set: map[string]interface{}{"formName": "attendance-v2"}}
	merged, err := MergeUpdateIntoSchema(existing, update)
	require.NoError(t, err)

	assert.Equal(t, "attendance-v2", merged.FormName)
	assert.Equal(t, id, merged.ID, "ID phải được giữ nguyên để uniqueness check loại trừ chính document")
	require.Len(t, merged.Fields, 2, "partial update không đụng fields thì fields phải còn nguyên")
	assert.Equal(t, "employeeName", merged.Fields[0].Name)
	assert.Equal(t, "date", merged.Fields[1].Name)
}

func TestMergeUpdateIntoSchema_DuplicateFieldsRejectedOnUpdate(t *testing.T) {
	s := &FormSchemaService{}
	existing := formmodels.FormSchema{
		ID:       primitive.NewObjectID(),
		FormName: "attendance",
		Fields: []formmodels.FieldSchema{
			{Name: "employeeName", Type: formmodels.FieldTypeText},
		},
	}

	// Update thay fields bằng danh sách có tên trùng: trạng thái sau merge phải bị từ chối
	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"fields": []formmodels.FieldSchema{
			{Name: "email", Type: formmodels.FieldTypeEmail},
			{Name: "email", Type: formmodels.FieldTypeText},
		},
	}}
	merged, err := MergeUpdateIntoSchema(existing, update)
	require.NoError(t, err)
	assert.Error(t, s.ValidateSchema(merged), "update sinh tên field trùng phải bị validation chặn")
}

func TestMergeUpdateIntoSchema_PartialForeignPairRejectedOnUpdate(t *testing.T) {
	s := &FormSchemaService{}
	existing := formmodels.FormSchema{
		ID:       primitive.NewObjectID(),
		FormName: "attendance",
		Fields: []formmodels.FieldSchema{
			{Name: "dept", Type: formmodels.FieldTypeSelect, ForeignFormID: "abc", ForeignField: "name"},
		},
	}

	// Update để lại foreign reference nửa cặp
	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"fields": []formmodels.FieldSchema{
			{Name: "dept", Type: formmodels.FieldTypeSelect, ForeignFormID: "abc"},
		},
	}}
	merged, err := MergeUpdateIntoSchema(existing, update)
	require.NoError(t, err)
	assert.Error(t, s.ValidateSchema(merged), "update sinh foreign reference nửa cặp phải bị validation chặn")
}

func TestMergeUpdateIntoSchema_UnsetRemovesKey(t *testing.T) {
	existing := formmodels.FormSchema{
		ID:          primitive.NewObjectID(),
		FormName:    "attendance",
		Description: "mô tả cũ",
	}

	update := &basesvc.UpdateData{Unset: map[string]interface{}{"description": ""}}
	merged, err := MergeUpdateIntoSchema(existing, update)
	require.NoError(t, err)
	assert.Empty(t, merged.Description, "key trong $unset phải biến mất khỏi trạng thái merge")
	assert.Equal(t, "attendance", merged.FormName)
}

func TestValidateSchema_NonChoiceWithoutOptions(t *testing.T) {
	s := &FormSchemaService{}
	schema := formmodels.FormSchema{
		FormName: "test",
		Fields: []formmodels.FieldSchema{
			{Name: "name", Type: formmodels.FieldTypeText},
			{Name: "age", Type: formmodels.FieldTypeNumber},
		},
	}
	assert.NoError(t, s.ValidateSchema(schema))
}
