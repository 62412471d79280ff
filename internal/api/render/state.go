package render

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	formmodels "hr_admin/internal/api/form/models"
)

// FormState là túi giá trị dùng chung của một form đang nhập:
// giữ giá trị hiện tại và lỗi validation per-field.
// Lỗi của một field không bao giờ chặn các field khác.
type FormState struct {
	mu     sync.RWMutex
	fields map[string]formmodels.FieldSchema
	values map[string]interface{}
	errors map[string]string
}

// NewFormState tạo FormState cho một schema, seed giá trị ban đầu (nếu đang sửa submission)
func NewFormState(schema formmodels.FormSchema, initial map[string]interface{}) *FormState {
	fields := make(map[string]formmodels.FieldSchema, len(schema.Fields))
	for _, f := range schema.Fields {
		fields[f.Name] = f
	}

	values := make(map[string]interface{}, len(initial))
	for k, v := range initial {
		values[k] = v
	}

	return &FormState{
		fields: fields,
		values: values,
		errors: make(map[string]string),
	}
}

// Value trả về giá trị hiện tại của field, fallback về DefaultValue của schema
func (s *FormState) Value(name string) interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[name]; ok {
		return v
	}
	if f, ok := s.fields[name]; ok {
		return f.DefaultValue
	}
	return nil
}

// Error trả về lỗi validation hiện tại của field (chuỗi rỗng nếu hợp lệ)
func (s *FormState) Error(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors[name]
}

// Values trả về snapshot toàn bộ giá trị hiện tại
func (s *FormState) Values() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Apply ghi giá trị vào state và validate theo schema của field.
// Giá trị luôn được ghi kể cả khi không hợp lệ; lỗi lưu per-field để hiển thị.
func (s *FormState) Apply(name string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[name] = value

	field, ok := s.fields[name]
	if !ok {
		// Field không có trong schema: ghi nhận giá trị, không validate
		delete(s.errors, name)
		return nil
	}

	if msg := validateValue(field, value); msg != "" {
		s.errors[name] = msg
		return fmt.Errorf("%s: %s", name, msg)
	}

	delete(s.errors, name)
	return nil
}

// HasErrors kiểm tra state còn field nào không hợp lệ không
func (s *FormState) HasErrors() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.errors) > 0
}

// validateValue kiểm tra một giá trị theo ràng buộc của field schema
func validateValue(field formmodels.FieldSchema, value interface{}) string {
	if isEmptyValue(value) {
		if field.Required {
			return "Trường này là bắt buộc"
		}
		return ""
	}

	if str, ok := value.(string); ok {
		if field.MinLength > 0 && len([]rune(str)) < field.MinLength {
			return fmt.Sprintf("Độ dài tối thiểu %d ký tự", field.MinLength)
		}
		if field.MaxLength > 0 && len([]rune(str)) > field.MaxLength {
			return fmt.Sprintf("Độ dài tối đa %d ký tự", field.MaxLength)
		}
		if field.Pattern != "" {
			re, err := regexp.Compile(field.Pattern)
			if err == nil && !re.MatchString(str) {
				return "Giá trị không đúng định dạng yêu cầu"
			}
		}
	}

	if field.Min != nil || field.Max != nil {
		if num, ok := toNumber(value); ok {
			if field.Min != nil && num < *field.Min {
				return fmt.Sprintf("Giá trị tối thiểu là %v", *field.Min)
			}
			if field.Max != nil && num > *field.Max {
				return fmt.Sprintf("Giá trị tối đa là %v", *field.Max)
			}
		}
	}

	return ""
}

func isEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []interface{}:
		return len(v) == 0
	case []string:
		return len(v) == 0
	}
	return false
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return num, true
	}
	return 0, false
}
