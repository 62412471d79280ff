// Package submissionsvc - Test phần thuần của grid: filter substring, label lookup, format giá trị cột.
package submissionsvc

import (
	"testing"

	formmodels "hr_admin/internal/api/form/models"
	submissionmodels "hr_admin/internal/api/submission/models"

	"github.com/stretchr/testify/assert"
)

func gridSchema() formmodels.FormSchema {
	return formmodels.FormSchema{
		FormName: "employees",
		Fields: []formmodels.FieldSchema{
			{Name: "name", Type: formmodels.FieldTypeText},
			{Name: "status", Type: formmodels.FieldTypeSelect, Options: []formmodels.FieldOption{
				{Value: "present", Label: "Có mặt"},
				{Value: "leave", Label: "Nghỉ phép"},
			}},
		},
	}
}

func sub(data map[string]interface{}) submissionmodels.FormSubmission {
	return submissionmodels.FormSubmission{FormData: data}
}

func TestMatchesFilters_SubstringCaseInsensitive(t *testing.T) {
	lookup := buildLabelLookup(gridSchema())
	s := sub(map[string]interface{}{"name": "Nguyễn Văn An", "status": "present"})

	assert.True(t, matchesFilters(s, map[string]string{"name": "văn"}, lookup))
	assert.True(t, matchesFilters(s, map[string]string{"name": "VĂN"}, lookup))
	assert.False(t, matchesFilters(s, map[string]string{"name": "bình"}, lookup))
}

func TestMatchesFilters_MatchesResolvedLabel(t *testing.T) {
	lookup := buildLabelLookup(gridSchema())
	s := sub(map[string]interface{}{"status": "leave"})

	// Khớp trên raw value
	assert.True(t, matchesFilters(s, map[string]string{"status": "leave"}, lookup))
	// Khớp trên label hiển thị của option
	assert.True(t, matchesFilters(s, map[string]string{"status": "nghỉ"}, lookup))
	assert.False(t, matchesFilters(s, map[string]string{"status": "có mặt"}, lookup))
}

func TestMatchesFilters_AndSemantics(t *testing.T) {
	lookup := buildLabelLookup(gridSchema())
	s := sub(map[string]interface{}{"name": "An", "status": "present"})

	assert.True(t, matchesFilters(s, map[string]string{"name": "an", "status": "present"}, lookup))
	assert.False(t, matchesFilters(s, map[string]string{"name": "an", "status": "leave"}, lookup),
		"tất cả filter phải cùng khớp (AND)")
}

func TestMatchesFilters_EmptyFilterIgnored(t *testing.T) {
	lookup := buildLabelLookup(gridSchema())
	s := sub(map[string]interface{}{"name": "An"})

	assert.True(t, matchesFilters(s, map[string]string{"name": "", "status": ""}, lookup),
		"filter rỗng không được lọc bớt record nào")
}

func TestMatchesFilters_MissingColumn(t *testing.T) {
	lookup := buildLabelLookup(gridSchema())
	s := sub(map[string]interface{}{"name": "An"})

	assert.False(t, matchesFilters(s, map[string]string{"status": "present"}, lookup),
		"cột không có giá trị không thể khớp filter khác rỗng")
}

func TestFormDataString(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
		want string
	}{
		{"string", map[string]interface{}{"c": "hello"}, "hello"},
		{"number", map[string]interface{}{"c": 7.5}, "7.5"},
		{"bool", map[string]interface{}{"c": true}, "true"},
		{"missing", map[string]interface{}{}, ""},
		{"nil", map[string]interface{}{"c": nil}, ""},
		{"foreign_ref_display", map[string]interface{}{"c": map[string]interface{}{"_id": "x", "display": "Phòng A"}}, "Phòng A"},
		{"foreign_ref_id_only", map[string]interface{}{"c": map[string]interface{}{"_id": "x"}}, "x"},
		{"string_slice", map[string]interface{}{"c": []string{"a", "b"}}, "a, b"},
		{"interface_slice", map[string]interface{}{"c": []interface{}{"a", 2.0}}, "a, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formDataString(sub(tt.data), "c"))
		})
	}
}

func TestBuildLabelLookup_OnlyChoiceFieldsWithOptions(t *testing.T) {
	lookup := buildLabelLookup(gridSchema())

	assert.Contains(t, lookup, "status")
	assert.NotContains(t, lookup, "name", "field không có options không cần lookup")
	assert.Equal(t, "Có mặt", lookup["status"]["present"])
}
