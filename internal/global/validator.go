package global

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("field_type", validateFieldType)
	_ = Validate.RegisterValidation("date_ymd", validateDateYMD)
}

// fieldTypeTags là tập các type tag được hỗ trợ bởi field renderer.
// Type ngoài danh sách bị reject ở boundary ghi (tag field_type trên FieldSchema.Type);
// renderer vẫn skip type lạ để chịu được dữ liệu cũ ghi thẳng vào DB.
var fieldTypeTags = map[string]bool{
	"text":               true,
	"email":              true,
	"password":           true,
	"tel":                true,
	"number":             true,
	"url":                true,
	"date":               true,
	"textarea":           true,
	"switch":             true,
	"select":             true,
	"multipleSelect":     true,
	"selectAutocomplete": true,
	"radio":              true,
	"file":               true,
	"attendance":         true,
	"attendanceHistory":  true,
}

// validateFieldType kiểm tra type tag của field có nằm trong danh sách hỗ trợ không
func validateFieldType(fl validator.FieldLevel) bool {
	return fieldTypeTags[fl.Field().String()]
}

// validateDateYMD kiểm tra chuỗi ngày theo định dạng YYYY-MM-DD
func validateDateYMD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Rỗng do optional, required xử lý riêng
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
