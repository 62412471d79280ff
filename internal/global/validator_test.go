// Package global - Test custom validator field_type và date_ymd.
package global

import (
	"testing"

	formmodels "hr_admin/internal/api/form/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateFieldType(t *testing.T) {
	InitValidator()

	field := formmodels.FieldSchema{Name: "status", Type: formmodels.FieldTypeSelect}
	assert.NoError(t, Validate.Struct(field), "type trong danh sách hỗ trợ phải qua validation")

	field.Type = "3dViewer"
	assert.Error(t, Validate.Struct(field), "type ngoài danh sách hỗ trợ phải bị từ chối ở boundary ghi")

	field.Type = ""
	assert.Error(t, Validate.Struct(field), "type rỗng đã bị required chặn")
}

func TestValidateDateYMD(t *testing.T) {
	InitValidator()

	type dateInput struct {
		Date string `validate:"omitempty,date_ymd"`
	}

	assert.NoError(t, Validate.Struct(dateInput{Date: "2026-03-15"}))
	assert.NoError(t, Validate.Struct(dateInput{Date: ""}), "rỗng là hợp lệ khi optional")
	assert.Error(t, Validate.Struct(dateInput{Date: "15/03/2026"}), "định dạng ngoài YYYY-MM-DD phải bị từ chối")
}
